package textbuf

import "unicode/utf8"

// NextBoundary returns the smallest rune boundary in s at or after i, clamped
// to [0, len(s)]. Both 0 and len(s) count as valid boundaries. Since UTF-8
// encodes at most four bytes per rune, the walk never exceeds three bytes.
func NextBoundary(s string, i int) int {
	if i <= 0 {
		return 0
	}
	if i >= len(s) {
		return len(s)
	}
	for i < len(s) && !utf8.RuneStart(s[i]) {
		i++
	}
	return i
}

// PrevBoundary returns the largest rune boundary in s at or before i, clamped
// to [0, len(s)].
func PrevBoundary(s string, i int) int {
	if i <= 0 {
		return 0
	}
	if i >= len(s) {
		return len(s)
	}
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}

// NextBoundary returns the smallest rune boundary at or after byte offset i.
func (b *Buffer) NextBoundary(i int) int {
	if i <= 0 {
		return 0
	}
	if i >= len(b.data) {
		return len(b.data)
	}
	for i < len(b.data) && !utf8.RuneStart(b.data[i]) {
		i++
	}
	return i
}

// PrevBoundary returns the largest rune boundary at or before byte offset i.
func (b *Buffer) PrevBoundary(i int) int {
	if i <= 0 {
		return 0
	}
	if i >= len(b.data) {
		return len(b.data)
	}
	for i > 0 && !utf8.RuneStart(b.data[i]) {
		i--
	}
	return i
}
