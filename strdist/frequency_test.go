package strdist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrequencies(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  map[rune]int
	}{
		{name: "basic", input: "hello", want: map[rune]int{'h': 1, 'e': 1, 'l': 2, 'o': 1}},
		{name: "empty", input: "", want: map[rune]int{}},
		{name: "multibyte", input: "路路🦀", want: map[rune]int{'路': 2, '🦀': 1}},
		{name: "whitespace_counts", input: "a a", want: map[rune]int{'a': 2, ' ': 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Frequencies(tt.input))
		})
	}
}

// Tally feeds runes to the caller in encounter order, so an insertion-ordered
// container works as well as a map.
func TestTallyInsertionOrder(t *testing.T) {
	t.Parallel()

	var order []rune
	counts := map[rune]int{}
	Tally("abca", func(r rune) {
		if counts[r] == 0 {
			order = append(order, r)
		}
		counts[r]++
	})

	assert.Equal(t, []rune{'a', 'b', 'c'}, order)
	assert.Equal(t, map[rune]int{'a': 2, 'b': 1, 'c': 1}, counts)
}

func TestSortedFrequencies(t *testing.T) {
	t.Parallel()

	got := SortedFrequencies("banana")
	want := []RuneCount{
		{Rune: 'a', Count: 3},
		{Rune: 'b', Count: 1},
		{Rune: 'n', Count: 2},
	}
	assert.Equal(t, want, got)

	assert.Empty(t, SortedFrequencies(""))
}
