package textbuf

import (
	"bytes"
	"slices"
	"unicode"
	"unicode/utf8"
)

// TrimStart removes leading whitespace in place.
func (b *Buffer) TrimStart() {
	i := 0
	for i < len(b.data) {
		r, size := utf8.DecodeRune(b.data[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	if i > 0 {
		b.Splice(0, i, "")
	}
}

// TrimEnd removes trailing whitespace in place. No bytes move; the length
// simply shrinks.
func (b *Buffer) TrimEnd() {
	i := len(b.data)
	for i > 0 {
		r, size := utf8.DecodeLastRune(b.data[:i])
		if !unicode.IsSpace(r) {
			break
		}
		i -= size
	}
	if i < len(b.data) {
		b.Splice(i, len(b.data), "")
	}
}

// Trim removes leading and trailing whitespace in place. The end is trimmed
// first so the leading shift moves as few bytes as possible.
func (b *Buffer) Trim() {
	b.TrimEnd()
	b.TrimStart()
}

// FillStart prepends pattern repeated times, in order, with no separator.
// An empty pattern or non-positive times is a no-op.
func (b *Buffer) FillStart(pattern string, times int) {
	b.spliceRepeat(0, pattern, times)
}

// FillEnd appends pattern repeated times.
func (b *Buffer) FillEnd(pattern string, times int) {
	b.spliceRepeat(len(b.data), pattern, times)
}

// Center pads both ends with pattern repeated times — times repetitions on
// each side, not split between them. Capacity for both fills is reserved up
// front so the content shifts only once.
func (b *Buffer) Center(pattern string, times int) {
	if pattern == "" || times <= 0 {
		return
	}
	b.data = slices.Grow(b.data, 2*len(pattern)*times)
	b.FillEnd(pattern, times)
	b.FillStart(pattern, times)
}

// Enclose prepends lead and appends trail, each exactly once.
func (b *Buffer) Enclose(lead, trail string) {
	if lead == "" && trail == "" {
		return
	}
	b.data = slices.Grow(b.data, len(lead)+len(trail))
	b.Splice(len(b.data), len(b.data), trail)
	b.Splice(0, 0, lead)
}

// ExpandTabs replaces every tab with width spaces. It does not track column
// position; each tab becomes exactly width spaces. A non-positive width is a
// no-op, matching the allocating ExpandTabs.
//
// The buffer grows once by the total expansion, then a single right-to-left
// pass writes the result in place.
func (b *Buffer) ExpandTabs(width int) {
	if width <= 0 || len(b.data) == 0 {
		return
	}
	tabs := bytes.Count(b.data, []byte{'\t'})
	if tabs == 0 {
		return
	}
	extra := tabs * (width - 1)
	oldLen := len(b.data)
	b.data = slices.Grow(b.data, extra)
	b.data = b.data[:oldLen+extra]
	w := len(b.data)
	for r := oldLen - 1; r >= 0; r-- {
		if b.data[r] == '\t' {
			for range width {
				w--
				b.data[w] = ' '
			}
		} else {
			w--
			b.data[w] = b.data[r]
		}
	}
}

// Shift inserts fill repeated count times at index, pushing trailing content
// right. An index that is out of range or inside a multi-byte rune is
// resolved forward to the nearest boundary, so the insertion never splits a
// rune.
func (b *Buffer) Shift(index, count int, fill rune) {
	if count <= 0 {
		return
	}
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], fill)
	b.spliceRepeat(b.NextBoundary(index), string(enc[:n]), count)
}

// Replace splices repl over the first byte-exact occurrence of needle and
// reports whether a replacement happened. An empty or absent needle leaves
// the buffer unchanged; neither is an error.
func (b *Buffer) Replace(needle, repl string) bool {
	if needle == "" {
		return false
	}
	i := bytes.Index(b.data, []byte(needle))
	if i < 0 {
		return false
	}
	b.Splice(i, i+len(needle), repl)
	return true
}

// Truncate shortens the content to at most maxRunes runes, splicing suffix
// over the removed tail. Content that already fits is left untouched.
func (b *Buffer) Truncate(maxRunes int, suffix string) {
	if utf8.RuneCount(b.data) <= maxRunes {
		return
	}
	keep := maxRunes - utf8.RuneCountInString(suffix)
	if keep < 0 {
		keep = 0
	}
	cut := 0
	for range keep {
		_, size := utf8.DecodeRune(b.data[cut:])
		cut += size
	}
	b.Splice(cut, len(b.data), suffix)
}
