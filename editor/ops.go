package editor

import (
	"github.com/ovistrand/me/internal/history"
	"github.com/ovistrand/me/internal/utf8util"
)

// cursorPos returns the cursor's absolute byte offset into the gap
// buffer's logical content.
func (e *Editor) cursorPos() int {
	if e.cy >= len(e.rows) {
		return e.rows[len(e.rows)-1].End
	}
	return e.rows[e.cy].Start + e.cx
}

// insertBytes inserts p at the cursor as a single undo record (C6:
// exactly one record per edit operation, spec §4.3/§4.6), advances the
// cursor past it, and rebuilds the row cache.
func (e *Editor) insertBytes(p []byte) {
	pos := e.cursorPos()
	if !e.buf.Insert(pos, p) {
		return
	}
	e.hist.Push(history.KindInsert, pos, p)
	e.advanceCursorBy(p)
	e.resync()
}

// advanceCursorBy moves (cy,cx) forward past freshly-inserted bytes p,
// stepping onto new rows for every newline in p.
func (e *Editor) advanceCursorBy(p []byte) {
	for _, b := range p {
		if b == '\n' {
			e.cy++
			e.cx = 0
		} else {
			e.cx++
		}
	}
}

// feedByte accumulates one byte of input into an atomic character
// insertion. ASCII bytes insert immediately; a lead byte of a multi-byte
// UTF-8 sequence is buffered until utf8util.ByteLength's count has
// arrived, at which point the whole rune is inserted as one edit (spec
// C6: "UTF-8 accumulation" — a terminal delivers multi-byte characters
// one byte per keypress, but the buffer and the undo history must see a
// single logical character).
func (e *Editor) feedByte(b byte) {
	if len(e.pendingUTF8) == 0 {
		n := utf8util.ByteLength(b)
		if n == 1 {
			e.insertBytes([]byte{b})
			return
		}
		e.pendingUTF8 = append(e.pendingUTF8[:0], b)
		e.pendingUTF8Want = n
		return
	}

	e.pendingUTF8 = append(e.pendingUTF8, b)
	if len(e.pendingUTF8) < e.pendingUTF8Want {
		return
	}
	p := make([]byte, len(e.pendingUTF8))
	copy(p, e.pendingUTF8)
	e.pendingUTF8 = e.pendingUTF8[:0]
	e.pendingUTF8Want = 0
	e.insertBytes(p)
}

// InsertNewline splits the current row at the cursor, the way the
// teacher's Editor.InsertNewline does, but through the gap buffer: a
// bare '\n' insertion already achieves the split once resync rebuilds
// the row cache.
func (e *Editor) InsertNewline() {
	e.pendingUTF8 = e.pendingUTF8[:0]
	e.insertBytes([]byte{'\n'})
}

// deleteRange removes [pos,pos+n) from the buffer as a single undo
// record and resyncs the row cache. Returns the number of bytes
// actually removed.
func (e *Editor) deleteRange(pos, n int) int {
	if n <= 0 {
		return 0
	}
	removed := e.buf.Slice(pos, n)
	cp := make([]byte, len(removed))
	copy(cp, removed)
	got := e.buf.Delete(pos, n)
	if got == 0 {
		return 0
	}
	e.hist.Push(history.KindDelete, pos, cp[:got])
	e.resync()
	return got
}

// DeleteBackward implements Backspace: delete the rune (not just the
// byte) before the cursor, joining with the previous row at column 0
// (spec §4.6 edge case).
func (e *Editor) DeleteBackward() {
	e.pendingUTF8 = e.pendingUTF8[:0]
	if e.cy == 0 && e.cx == 0 {
		return
	}
	content := e.buf.Bytes()
	pos := e.cursorPos()
	prev := utf8util.Prev(content, 0, pos)
	n := pos - prev
	if n <= 0 {
		return
	}
	e.deleteRange(prev, n)
	e.placeCursorAtPos(prev)
}

// DeleteForward implements Delete: remove the rune at the cursor,
// joining with the next row when the cursor sits at end-of-line.
func (e *Editor) DeleteForward() {
	e.pendingUTF8 = e.pendingUTF8[:0]
	content := e.buf.Bytes()
	pos := e.cursorPos()
	if pos >= len(content) {
		return
	}
	n := utf8util.ByteLength(content[pos])
	if pos+n > len(content) {
		n = len(content) - pos
	}
	e.deleteRange(pos, n)
	e.placeCursorAtPos(pos)
}

// DeleteLine removes the entire current row as one undo record, together
// with its trailing newline, or, on the last row, with the newline before
// it. CutLine builds on it; the cut-to-end-of-line op is LineKill.
func (e *Editor) DeleteLine() {
	if e.cy >= len(e.rows) {
		return
	}
	row := e.rows[e.cy]
	content := e.buf.Bytes()
	end := row.End
	if end < len(content) && content[end] == '\n' {
		end++
	} else if end == len(content) && row.Start > 0 {
		row = Row{Start: row.Start - 1, End: end}
	}
	n := end - row.Start
	if n <= 0 {
		return
	}
	e.deleteRange(row.Start, n)
	e.placeCursorAtPos(row.Start)
}

// CopyLine stashes the current row's bytes (no trailing newline) in the
// clipboard without modifying the buffer.
func (e *Editor) CopyLine() {
	if e.cy >= len(e.rows) {
		return
	}
	row := e.rows[e.cy]
	content := e.buf.Bytes()
	cp := make([]byte, row.Len())
	copy(cp, content[row.Start:row.End])
	e.clipboard = cp
	e.SetStatusMessage("Copied line (%d bytes)", len(cp))
}

// CutLine copies the current row to the clipboard, then deletes it
// (including its trailing newline if not the last row) as one undo
// record.
func (e *Editor) CutLine() {
	if e.cy >= len(e.rows) {
		return
	}
	e.CopyLine()
	e.DeleteLine()
}

// LineKill implements Ctrl-K: cut from the cursor to end-of-line into
// the clipboard if the cursor isn't already at the row's end; join with
// the next row if it is; otherwise (last row, cursor at its end) cut
// the whole line. A selection, if active, takes priority and is cut
// instead.
func (e *Editor) LineKill() {
	if e.selection.Active {
		e.CutSelection()
		return
	}
	if e.cy >= len(e.rows) {
		return
	}
	row := e.rows[e.cy]

	switch {
	case e.cx < row.Len():
		start := row.Start + e.cx
		n := row.End - start
		content := e.buf.Bytes()
		cp := make([]byte, n)
		copy(cp, content[start:start+n])
		e.clipboard = cp
		e.deleteRange(start, n)
		e.placeCursorAtPos(start)

	case e.cy < len(e.rows)-1:
		e.deleteRange(row.End, 1)
		e.placeCursorAtPos(row.End)

	default:
		e.CutLine()
	}
}

// placeCursorAtPos relocates (cy,cx) to the row containing the absolute
// byte offset pos, after an edit has shifted row boundaries.
func (e *Editor) placeCursorAtPos(pos int) {
	for i, r := range e.rows {
		if pos <= r.End || i == len(e.rows)-1 {
			e.cy = i
			e.cx = pos - r.Start
			if e.cx < 0 {
				e.cx = 0
			}
			return
		}
	}
}

// Undo and Redo wrap the history stack, then resync and put the cursor
// back at the absolute offset it had before the call, clamped to the new
// buffer length. The cursor is not moved to the site of the undone or
// redone edit.
func (e *Editor) Undo() {
	pos := e.cursorPos()
	if !e.hist.Undo(e.buf) {
		e.SetStatusMessage("Nothing to undo")
		return
	}
	e.resync()
	e.placeCursorAtPos(clamp(pos, 0, len(e.buf.Bytes())))
}

func (e *Editor) Redo() {
	pos := e.cursorPos()
	if !e.hist.Redo(e.buf) {
		e.SetStatusMessage("Nothing to redo")
		return
	}
	e.resync()
	e.placeCursorAtPos(clamp(pos, 0, len(e.buf.Bytes())))
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
