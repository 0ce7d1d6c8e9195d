// Package strdist implements string-similarity algorithms over Unicode scalar
// values: Levenshtein edit distance, Hamming distance, longest common
// substring, and per-rune frequency counting. Multi-byte characters count as
// one unit throughout. All functions are pure; none mutates its inputs.
package strdist

import "unicode/utf8"

// Levenshtein returns the minimum number of single-rune insertions, deletions
// and substitutions (each cost 1) that turn a into b. It is symmetric and
// zero for equal strings.
//
// The common prefix and suffix contribute nothing to the distance and are
// stripped before the DP so the rolling row covers only the differing middle;
// the row is sized to the shorter remaining input, giving
// O(min(len(a), len(b))) space.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	// Strip the common suffix, backing up to a rune boundary. The stripped
	// regions are byte-equal, so a boundary in a is a boundary in b too.
	end := 0
	for end < len(a) && end < len(b) && a[len(a)-1-end] == b[len(b)-1-end] {
		end++
	}
	for end > 0 && !utf8.RuneStart(a[len(a)-end]) {
		end--
	}
	a, b = a[:len(a)-end], b[:len(b)-end]

	// Same for the common prefix.
	start := 0
	for start < len(a) && start < len(b) && a[start] == b[start] {
		start++
	}
	for start > 0 && start < len(a) && !utf8.RuneStart(a[start]) {
		start--
	}
	a, b = a[start:], b[start:]

	if a == "" {
		return utf8.RuneCountInString(b)
	}
	if b == "" {
		return utf8.RuneCountInString(a)
	}

	// The row spans b; keep the smaller side there.
	if len(a) < len(b) {
		a, b = b, a
	}

	n := utf8.RuneCountInString(b)
	costs := make([]int, n+1)
	for i := range costs {
		costs[i] = i
	}

	ai := 0
	for _, ar := range a {
		corner := ai
		costs[0] = ai + 1
		bi := 0
		for _, br := range b {
			upper := costs[bi+1]
			if ar == br {
				costs[bi+1] = corner
			} else {
				costs[bi+1] = 1 + min(costs[bi], upper, corner)
			}
			corner = upper
			bi++
		}
		ai++
	}

	return costs[n]
}
