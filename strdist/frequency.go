package strdist

import (
	"cmp"
	"slices"
)

// RuneCount pairs a rune with its occurrence count.
type RuneCount struct {
	Rune  rune
	Count int
}

// Tally calls add once per rune of s in order, letting the caller accumulate
// counts into any container — a map, an insertion-ordered list, whatever the
// destination needs.
func Tally(s string, add func(rune)) {
	for _, r := range s {
		add(r)
	}
}

// Frequencies returns the occurrence count of every rune in s.
func Frequencies(s string) map[rune]int {
	m := make(map[rune]int)
	for _, r := range s {
		m[r]++
	}
	return m
}

// SortedFrequencies returns the occurrence counts of s ordered by rune.
func SortedFrequencies(s string) []RuneCount {
	freq := Frequencies(s)
	out := make([]RuneCount, 0, len(freq))
	for r, n := range freq {
		out = append(out, RuneCount{Rune: r, Count: n})
	}
	slices.SortFunc(out, func(x, y RuneCount) int {
		return cmp.Compare(x.Rune, y.Rune)
	})
	return out
}
