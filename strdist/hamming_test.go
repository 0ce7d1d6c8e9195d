package strdist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHamming(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "transposed_pair", a: "update", b: "udpate", want: 2},
		{name: "identical", a: "same", b: "same", want: 0},
		{name: "both_empty", a: "", b: "", want: 0},
		{name: "all_positions_differ", a: "abc", b: "xyz", want: 3},
		{name: "multibyte_same_rune_count", a: "路a", b: "路b", want: 1},
		{name: "rune_positions_not_bytes", a: "路路", b: "aa", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Hamming(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHammingLengthMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
	}{
		{name: "shorter_second", a: "abc", b: "ab"},
		{name: "shorter_first", a: "ab", b: "abc"},
		{name: "empty_vs_nonempty", a: "", b: "x"},
		{name: "same_bytes_fewer_runes", a: "路", b: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Hamming(tt.a, tt.b)
			assert.ErrorIs(t, err, ErrLengthMismatch)
		})
	}
}
