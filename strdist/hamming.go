package strdist

import (
	"errors"
	"unicode/utf8"
)

// ErrLengthMismatch is returned by Hamming when the inputs differ in rune
// count; positional comparison is undefined for unequal lengths.
var ErrLengthMismatch = errors.New("strdist: inputs differ in rune count")

// Hamming returns the number of positions at which the runes of a and b
// differ. Both strings must contain the same number of runes.
func Hamming(a, b string) (int, error) {
	distance := 0
	for len(a) > 0 && len(b) > 0 {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		if ra != rb {
			distance++
		}
		a, b = a[na:], b[nb:]
	}
	if len(a) != 0 || len(b) != 0 {
		return 0, ErrLengthMismatch
	}
	return distance, nil
}
