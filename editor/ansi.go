package editor

import "github.com/ovistrand/me/internal/syntaxdb"

// ANSI/VT100 escape sequences the renderer composes frames with. The
// teacher carries these as untyped constants in a root-level ansi.go for
// package main; that file has no equivalent for the editor package, so
// this mirrors its naming for the sequences the teacher already uses and
// adds the alternate-screen pair spec §6 names that the teacher never
// emits.
const (
	ClearScreen = "\x1b[2J"
	ClearLine   = "\x1b[K"
	CursorHome  = "\x1b[H"
	CursorHide  = "\x1b[?25l"
	CursorShow  = "\x1b[?25h"

	CursorPositionFormat = "\x1b[%d;%dH"

	ColorsReset  = "\x1b[m"
	ColorsInvert = "\x1b[7m"

	AltScreenOn  = "\x1b[?47h"
	AltScreenOff = "\x1b[?47l"

	GutterColor = "\x1b[90m" // dark grey, for the line-number gutter
)

// sgrForClass returns the SGR parameter for a highlight class, per the
// palette spec §6 names explicitly.
func sgrForClass(hl byte) int {
	switch hl {
	case syntaxdb.Normal:
		return 97
	case syntaxdb.Match:
		return 43
	case syntaxdb.SLComment, syntaxdb.MLComment:
		return 36
	case syntaxdb.Keyword1:
		return 93
	case syntaxdb.Keyword2:
		return 92
	case syntaxdb.Keyword3:
		return 36
	case syntaxdb.String:
		return 91
	case syntaxdb.Number:
		return 31
	default:
		return 97
	}
}
