// Package utf8util implements the byte-oriented UTF-8 arithmetic the
// editor needs for cursor motion, deletion and rendering: byte-length
// classification, strict validation, decoding, and per-codepoint display
// width. Unlike the standard library's unicode/utf8, callers here work
// directly on raw gap-buffer/row bytes and need the exact boundary rules
// a terminal editor relies on (overlong-encoding rejection, surrogate
// rejection, next/prev boundary walks).
package utf8util

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// RuneError is returned by Decode for a malformed sequence. It matches
// unicode/utf8's replacement character so callers can compare directly.
const RuneError = utf8.RuneError

// ByteLength reports how many bytes a UTF-8 sequence starting with b is
// expected to occupy, based solely on the lead byte. It does not validate
// the continuation bytes; see Validate for that.
func ByteLength(b byte) int {
	switch {
	case b < 0x80:
		return 1
	case b >= 0xC2 && b <= 0xDF:
		return 2
	case b >= 0xE0 && b <= 0xEF:
		return 3
	case b >= 0xF0 && b <= 0xF4:
		return 4
	default:
		return 1
	}
}

func isContinuation(b byte) bool {
	return b&0xC0 == 0x80
}

// Validate checks the sequence starting at s[0] against at most max
// bytes and returns its length (1-4) and whether it is well-formed. A
// malformed or truncated sequence reports length 1 (the lead byte alone)
// and false, so callers can always advance by at least one byte.
func Validate(s []byte, max int) (int, bool) {
	if max <= 0 || len(s) == 0 {
		return 0, false
	}
	if max > len(s) {
		max = len(s)
	}

	b0 := s[0]
	n := ByteLength(b0)
	if n == 1 {
		return 1, b0 < 0x80
	}
	if n > max {
		return 1, false
	}

	switch n {
	case 2:
		if b0 == 0xC0 || b0 == 0xC1 {
			return 1, false
		}
		if !isContinuation(s[1]) {
			return 1, false
		}
	case 3:
		if b0 == 0xE0 && s[1] < 0xA0 {
			return 1, false
		}
		if b0 == 0xED && s[1] > 0x9F {
			return 1, false
		}
		if !isContinuation(s[1]) || !isContinuation(s[2]) {
			return 1, false
		}
	case 4:
		if b0 == 0xF0 && s[1] < 0x90 {
			return 1, false
		}
		if b0 == 0xF4 && s[1] > 0x8F {
			return 1, false
		}
		if !isContinuation(s[1]) || !isContinuation(s[2]) || !isContinuation(s[3]) {
			return 1, false
		}
	}
	return n, true
}

// Decode returns the code point starting at s[0] and its byte length. A
// malformed sequence yields (RuneError, 1) so the caller can always make
// progress; spec §7(e) requires the offending byte to be insertable raw.
func Decode(s []byte) (rune, int) {
	if len(s) == 0 {
		return RuneError, 0
	}
	n, ok := Validate(s, len(s))
	if !ok {
		return RuneError, 1
	}
	r, size := utf8.DecodeRune(s[:n])
	if size != n {
		return RuneError, 1
	}
	return r, n
}

// isZeroWidth reports the control and combining-mark ranges spec §4.1
// calls out explicitly as width 0.
func isZeroWidth(r rune) bool {
	switch {
	case r < 0x20 || r == 0x7F:
		return true
	case r >= 0x0300 && r <= 0x036F:
		return true
	case r >= 0x1AB0 && r <= 0x1AFF:
		return true
	case r >= 0x1DC0 && r <= 0x1DFF:
		return true
	default:
		return false
	}
}

// Width returns the rendered column width of a code point: 0 for
// controls/combining marks, 2 for wide East Asian script ranges, 1
// otherwise. The wide/narrow classification itself is delegated to
// go-runewidth, which carries the full East Asian Width property table;
// only the spec's explicit zero-width overrides are applied by hand,
// since they take precedence over whatever go-runewidth would report for
// e.g. combining marks it treats as width 1.
func Width(r rune) int {
	if isZeroWidth(r) {
		return 0
	}
	w := runewidth.RuneWidth(r)
	if w <= 0 {
		return 1
	}
	if w > 2 {
		return 2
	}
	return w
}

// Next advances a byte offset into s by one UTF-8 character, per the
// lead byte at s[i]. It stops in place at a NUL byte or at the end of s.
func Next(s []byte, i int) int {
	if i < 0 || i >= len(s) {
		return len(s)
	}
	if s[i] == 0 {
		return i
	}
	n := ByteLength(s[i])
	if i+n > len(s) {
		n = len(s) - i
	}
	return i + n
}

// Prev walks a byte offset i backward by one UTF-8 character, never
// passing start. It always moves back at least one byte, then skips any
// continuation bytes until it lands on start or a lead byte.
func Prev(s []byte, start, i int) int {
	if i <= start {
		return start
	}
	j := i - 1
	for j > start && isContinuation(s[j]) {
		j--
	}
	return j
}
