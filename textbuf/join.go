package textbuf

import (
	"iter"
	"strings"
)

// Join concatenates the fragments produced by seq with exactly one sep
// between consecutive fragments, none before the first or after the last.
// Slices plug in via slices.Values.
func Join(seq iter.Seq[string], sep string) string {
	var sb strings.Builder
	first := true
	for s := range seq {
		if !first {
			sb.WriteString(sep)
		}
		sb.WriteString(s)
		first = false
	}
	return sb.String()
}
