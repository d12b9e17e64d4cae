package zoo

import (
	"fmt"
	"io"
	"iter"
)

// Flatten yields every element of rows in row-major order
func Flatten[T any](rows [][]T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, row := range rows {
			for _, v := range row {
				if !yield(v) {
					return
				}
			}
		}
	}
}

func FlattenSlice[T any](rows [][]T) []T {
	size := 0
	for _, row := range rows {
		size += len(row)
	}

	flat := make([]T, 0, size)
	for v := range Flatten(rows) {
		flat = append(flat, v)
	}

	return flat
}

// PrintFlattened writes each element of rows on its own line
func PrintFlattened[T any](w io.Writer, rows [][]T) error {
	for v := range Flatten(rows) {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}
	return nil
}
