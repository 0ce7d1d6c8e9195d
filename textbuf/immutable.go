package textbuf

import (
	"strings"
	"unicode/utf8"
)

// Allocating equivalents of the Buffer operations for callers holding plain
// strings. Each function leaves its input untouched and returns a new string
// byte-identical to running the in-place operation on a copy. The output is
// sized up front so each call allocates exactly once.
//
// There are no Trim equivalents here: strings.TrimSpace and friends already
// are the allocating form.

// FillStart returns s with pattern prepended times times.
func FillStart(s, pattern string, times int) string {
	if pattern == "" || times <= 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(pattern)*times + len(s))
	for range times {
		sb.WriteString(pattern)
	}
	sb.WriteString(s)
	return sb.String()
}

// FillEnd returns s with pattern appended times times.
func FillEnd(s, pattern string, times int) string {
	if pattern == "" || times <= 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + len(pattern)*times)
	sb.WriteString(s)
	for range times {
		sb.WriteString(pattern)
	}
	return sb.String()
}

// Center returns s padded on both ends with pattern repeated times — times
// repetitions per side.
func Center(s, pattern string, times int) string {
	if pattern == "" || times <= 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(2*len(pattern)*times + len(s))
	for range times {
		sb.WriteString(pattern)
	}
	sb.WriteString(s)
	for range times {
		sb.WriteString(pattern)
	}
	return sb.String()
}

// Enclose returns s with lead prepended and trail appended, each once.
func Enclose(s, lead, trail string) string {
	if lead == "" && trail == "" {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(lead) + len(s) + len(trail))
	sb.WriteString(lead)
	sb.WriteString(s)
	sb.WriteString(trail)
	return sb.String()
}

// ExpandTabs returns s with every tab replaced by width spaces. A
// non-positive width returns s unchanged.
func ExpandTabs(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	tabs := strings.Count(s, "\t")
	if tabs == 0 {
		return s
	}
	spaces := strings.Repeat(" ", width)
	var sb strings.Builder
	sb.Grow(len(s) + tabs*(width-1))
	for {
		i := strings.IndexByte(s, '\t')
		if i < 0 {
			break
		}
		sb.WriteString(s[:i])
		sb.WriteString(spaces)
		s = s[i+1:]
	}
	sb.WriteString(s)
	return sb.String()
}

// Shift returns s with fill repeated count times inserted at index. The index
// is resolved forward to the nearest rune boundary, clamped to the string.
func Shift(s string, index, count int, fill rune) string {
	if count <= 0 {
		return s
	}
	at := NextBoundary(s, index)
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], fill)
	var sb strings.Builder
	sb.Grow(len(s) + n*count)
	sb.WriteString(s[:at])
	for range count {
		sb.Write(enc[:n])
	}
	sb.WriteString(s[at:])
	return sb.String()
}

// Replace returns s with the first occurrence of needle replaced by repl. An
// empty or absent needle returns s unchanged.
func Replace(s, needle, repl string) string {
	if needle == "" {
		return s
	}
	return strings.Replace(s, needle, repl, 1)
}

// Truncate returns s shortened to at most maxRunes runes with suffix replacing
// the removed tail. Strings that already fit come back unchanged. Safe for
// multi-byte UTF-8, unlike byte-based slicing.
func Truncate(s string, maxRunes int, suffix string) string {
	if utf8.RuneCountInString(s) <= maxRunes {
		return s
	}
	keep := maxRunes - utf8.RuneCountInString(suffix)
	if keep < 0 {
		keep = 0
	}
	cut := 0
	for range keep {
		_, size := utf8.DecodeRuneInString(s[cut:])
		cut += size
	}
	return s[:cut] + suffix
}
