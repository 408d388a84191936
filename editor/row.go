package editor

import (
	"github.com/ovistrand/me/internal/syntaxdb"
	"github.com/ovistrand/me/internal/utf8util"
)

// TabStop and ControlWidth mirror the teacher's editorRow.cxToRx constants,
// extended to account for wide runes (spec §3/§4.4: the row cache must
// size control sequences and double-width runes correctly).
const (
	TabStop      = 4
	ControlWidth = 2
)

// Row is one line of the render/syntax cache (C4). Start/End are byte
// offsets into the gap buffer's logical content, excluding the line's
// own newline. Render and Hl are derived from the buffer's bytes in
// [Start,End) and are rebuilt whenever that range changes.
type Row struct {
	Start, End    int
	Render        []byte
	Hl            []byte
	Control       []bool // true for bytes of an expanded "^X" control display
	HlOpenComment bool
}

func isControl(c byte) bool { return c < 32 || c == 127 }

// buildRows rescans content (the full buffer) and produces one Row per
// newline-delimited line, the way the teacher's Open() builds one
// editorRow per scanner line. A flat gap buffer has no per-line
// structure of its own, so the row cache must be rebuilt from byte
// offsets rather than grown incrementally row-by-row like the teacher's
// slice-of-rows model.
func buildRows(content []byte) []Row {
	rows := make([]Row, 0, 64)
	start := 0
	for i := 0; i <= len(content); i++ {
		if i == len(content) || content[i] == '\n' {
			rows = append(rows, Row{Start: start, End: i})
			start = i + 1
		}
	}
	if len(rows) == 0 {
		rows = append(rows, Row{Start: 0, End: 0})
	}
	return rows
}

// updateRender rebuilds Render from the raw bytes in [r.Start,r.End) of
// content, expanding tabs to TabStop boundaries and control bytes to a
// visible "^X" pair, exactly like the teacher's editorRow.Update — then
// reclassifies it with lang via syntaxdb, carrying the previous row's
// open-multiline-comment state forward.
func (r *Row) updateRender(content []byte, lang *syntaxdb.Lang, prevOpenComment bool) {
	raw := content[r.Start:r.End]
	r.Render, r.Control = expandRender(raw)
	r.Hl, r.HlOpenComment = syntaxdb.HighlightRow(r.Render, lang, prevOpenComment)
}

// newDisplayRow builds a Row for modal (non-buffer-backed) content, such
// as the help screen's static text or the file browser's directory
// listing: it goes through the same tab/control expansion as a normal
// row but has no highlight language and no buffer offsets.
func newDisplayRow(text string) Row {
	render, control := expandRender([]byte(text))
	return Row{Render: render, Hl: make([]byte, len(render)), Control: control}
}

func expandRender(raw []byte) ([]byte, []bool) {
	size := 0
	for i := 0; i < len(raw); {
		n := utf8util.ByteLength(raw[i])
		if raw[i] == '\t' {
			size += TabStop
		} else if isControl(raw[i]) {
			size += ControlWidth
		} else {
			ru, _ := utf8util.Decode(raw[i:])
			w := utf8util.Width(ru)
			if w < 1 {
				w = 1
			}
			size += w
		}
		i += n
	}

	render := make([]byte, 0, size)
	control := make([]bool, 0, size)
	for i := 0; i < len(raw); {
		n := utf8util.ByteLength(raw[i])
		switch {
		case raw[i] == '\t':
			render = append(render, ' ')
			control = append(control, false)
			for len(render)%TabStop != 0 {
				render = append(render, ' ')
				control = append(control, false)
			}
		case isControl(raw[i]):
			render = append(render, '^')
			control = append(control, true)
			switch raw[i] {
			case 127:
				render = append(render, '?')
			case '\x1b':
				render = append(render, '[')
			default:
				render = append(render, raw[i]+'@')
			}
			control = append(control, true)
		default:
			render = append(render, raw[i:i+n]...)
			for range n {
				control = append(control, false)
			}
		}
		i += n
	}

	return render, control
}

// cxToRx converts a byte offset within the row's raw bytes to a render
// column, accounting for tabs, control sequences and wide runes (spec
// §4.4's reversible cx<->rx mapping).
func (r *Row) cxToRx(content []byte, cx int) int {
	raw := content[r.Start:r.End]
	rx := 0
	for i := 0; i < cx && i < len(raw); {
		n := utf8util.ByteLength(raw[i])
		switch {
		case raw[i] == '\t':
			rx += TabStop - (rx % TabStop)
		case isControl(raw[i]):
			rx += ControlWidth
		default:
			ru, _ := utf8util.Decode(raw[i:])
			w := utf8util.Width(ru)
			if w < 1 {
				w = 1
			}
			rx += w
		}
		i += n
	}
	return rx
}

// rxToCx is cxToRx's inverse, used to place the cursor from a render
// column (when locating a search match).
func (r *Row) rxToCx(content []byte, rx int) int {
	raw := content[r.Start:r.End]
	curRx := 0
	for i := 0; i < len(raw); {
		n := utf8util.ByteLength(raw[i])
		width := 1
		switch {
		case raw[i] == '\t':
			width = TabStop - (curRx % TabStop)
		case isControl(raw[i]):
			width = ControlWidth
		default:
			ru, _ := utf8util.Decode(raw[i:])
			width = utf8util.Width(ru)
			if width < 1 {
				width = 1
			}
		}
		if curRx+width > rx {
			return i
		}
		curRx += width
		i += n
	}
	return len(raw)
}

// Len returns the row's byte length (End-Start); convenience used by
// cursor clamping throughout the editor package.
func (r *Row) Len() int { return r.End - r.Start }
