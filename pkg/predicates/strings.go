package predicates

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/diwise/playgrounds/pkg/optional"
)

// ShortStringLimit is the exclusive upper bound on the length of strings
// that ConcatenateSmallStrings will join
const ShortStringLimit int = 5

// Transform turns a pair of strings into a string, or nothing
type Transform func(a, b string) optional.Option[string]

// ManipulateStrings writes the result of transform on its own line. Nothing
// is written when the transform produces no value.
func ManipulateStrings(w io.Writer, a, b string, transform Transform) error {
	result, ok := transform(a, b).Get()
	if !ok {
		return nil
	}

	_, err := fmt.Fprintln(w, result)
	return err
}

// ConcatenateSmallStrings joins a and b if both are shorter than
// ShortStringLimit characters
func ConcatenateSmallStrings(a, b string) optional.Option[string] {
	if utf8.RuneCountInString(a) < ShortStringLimit && utf8.RuneCountInString(b) < ShortStringLimit {
		return optional.Some(a + b)
	}
	return optional.None[string]()
}
