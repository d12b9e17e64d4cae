package predicates

import (
	"strconv"
)

// Predicate decides something about a pair of values
type Predicate[T any] func(a, b T) bool

// Apply calls predicate with a and b and returns its result unchanged
func Apply[T any](a, b T, predicate func(a, b T) bool) bool {
	return predicate(a, b)
}

func BothDivisibleByThree(a, b int) bool {
	return a%3 == 0 && b%3 == 0
}

// SumOfDigits returns the sum of the decimal digits of n. The sign is ignored.
func SumOfDigits(n int) int {
	sum := 0
	for _, r := range strconv.Itoa(n) {
		if r >= '0' && r <= '9' {
			sum += int(r - '0')
		}
	}
	return sum
}

func SameDigitSum(a, b int) bool {
	return SumOfDigits(a) == SumOfDigits(b)
}
