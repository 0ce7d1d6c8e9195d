// Package textbuf provides UTF-8 safe text editing over an owned, growable
// byte buffer, plus allocating equivalents for callers that hold plain strings.
//
// A Buffer mutates in place: shrinking edits keep their capacity and growing
// edits reallocate with amortized growth, so a sequence of edits touches the
// minimum number of bytes. Every exported operation leaves the buffer valid
// UTF-8. Inputs are assumed to be valid UTF-8 already; the package does not
// validate arbitrary byte soup.
package textbuf

import "slices"

// Buffer is an owned, growable UTF-8 text buffer.
//
// The zero value is an empty buffer ready for use. A Buffer is not safe for
// concurrent mutation; callers serialize access.
type Buffer struct {
	data []byte
}

// New returns a buffer initialized with s.
func New(s string) *Buffer {
	b := &Buffer{}
	b.Set(s)
	return b
}

// NewSize returns a buffer initialized with s and capacity of at least
// capacity bytes, avoiding reallocation for edits that grow up to that size.
func NewSize(s string, capacity int) *Buffer {
	if capacity < len(s) {
		capacity = len(s)
	}
	b := &Buffer{data: make([]byte, 0, capacity)}
	b.data = append(b.data, s...)
	return b
}

// String returns the buffer content.
func (b *Buffer) String() string {
	return string(b.data)
}

// Bytes returns a copy of the buffer content. The buffer never hands out
// references to its internal storage.
func (b *Buffer) Bytes() []byte {
	return slices.Clone(b.data)
}

// Len returns the content length in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Cap returns the current capacity in bytes.
func (b *Buffer) Cap() int {
	return cap(b.data)
}

// IsEmpty returns true if the buffer holds no bytes.
func (b *Buffer) IsEmpty() bool {
	return len(b.data) == 0
}

// Set replaces the content with s, reusing existing capacity when possible.
func (b *Buffer) Set(s string) {
	b.data = append(b.data[:0], s...)
}

// Grow ensures capacity for at least n more bytes without changing content.
func (b *Buffer) Grow(n int) {
	if n > 0 {
		b.data = slices.Grow(b.data, n)
	}
}

// Splice replaces the byte range [start, end) with repl, shifting the tail
// and adjusting length. It is the single mutation primitive: every edit
// operation in this package reduces to one or more Splice calls.
//
// When repl is shorter than the removed range the tail moves left and the
// length shrinks without releasing capacity. When longer, capacity grows
// amortized before the tail moves right.
//
// Preconditions, not validated: 0 <= start <= end <= Len(), start and end lie
// on rune boundaries, and repl is valid UTF-8. Callers resolve arbitrary
// indices through NextBoundary or PrevBoundary first.
func (b *Buffer) Splice(start, end int, repl string) {
	removed := end - start
	delta := len(repl) - removed
	switch {
	case delta < 0:
		copy(b.data[start:], repl)
		copy(b.data[start+len(repl):], b.data[end:])
		b.data = b.data[:len(b.data)+delta]
	case delta == 0:
		copy(b.data[start:end], repl)
	default:
		b.data = slices.Grow(b.data, delta)
		oldLen := len(b.data)
		b.data = b.data[:oldLen+delta]
		copy(b.data[end+delta:], b.data[end:oldLen])
		copy(b.data[start:], repl)
	}
}

// spliceRepeat splices pattern repeated times into position at, writing each
// repetition directly into the destination instead of materializing the
// repeated string first.
func (b *Buffer) spliceRepeat(at int, pattern string, times int) {
	if pattern == "" || times <= 0 {
		return
	}
	extra := len(pattern) * times
	b.data = slices.Grow(b.data, extra)
	oldLen := len(b.data)
	b.data = b.data[:oldLen+extra]
	copy(b.data[at+extra:], b.data[at:oldLen])
	for i := at; i < at+extra; i += len(pattern) {
		copy(b.data[i:], pattern)
	}
}
