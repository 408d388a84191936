package editor

// Selection implements C8: a mark-to-cursor region over the buffer's
// logical byte range. Grounded on the view/cursor separation in
// rjmcguire-godit's view.go (a termbox editor that keeps the selection
// anchor as a distinct location from the live cursor rather than folding
// it into the cursor struct), adapted to absolute buffer byte offsets
// since this editor's source of truth is a flat gap buffer rather than
// per-row slices.
type Selection struct {
	Active bool
	Anchor int // absolute byte offset where the selection began
}

// StartSelection marks the current cursor position as the selection
// anchor and enters select mode.
func (e *Editor) StartSelection() {
	e.selection = Selection{Active: true, Anchor: e.cursorPos()}
	e.mode = ModeSelect
}

// ClearSelection cancels the active selection and returns to normal mode.
func (e *Editor) ClearSelection() {
	e.selection = Selection{}
	if e.mode == ModeSelect {
		e.mode = ModeNormal
	}
}

// selectionBounds returns the selection's [lo,hi) absolute byte range, ordered
// regardless of which side the cursor is on.
func (e *Editor) selectionBounds() (int, int) {
	pos := e.cursorPos()
	if e.selection.Anchor <= pos {
		return e.selection.Anchor, pos
	}
	return pos, e.selection.Anchor
}

// selectionContains reports whether the absolute byte offset pos falls within the
// active selection, the way the renderer needs for inverse-video marking
// (spec §5's "selection inverse video when selection.contains is true").
func (e *Editor) selectionContains(pos int) bool {
	if !e.selection.Active {
		return false
	}
	lo, hi := e.selectionBounds()
	return pos >= lo && pos < hi
}

// SelectionText returns a copy of the selected bytes, or nil if there is
// no active selection.
func (e *Editor) SelectionText() []byte {
	if !e.selection.Active {
		return nil
	}
	lo, hi := e.selectionBounds()
	if hi <= lo {
		return nil
	}
	raw := e.buf.Slice(lo, hi-lo)
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return cp
}

// CopySelection copies the selected text to the clipboard without
// modifying the buffer.
func (e *Editor) CopySelection() {
	text := e.SelectionText()
	if text == nil {
		return
	}
	e.clipboard = text
	e.SetStatusMessage("Copied %d bytes", len(text))
}

// CutSelection copies the selected text to the clipboard, then deletes
// it from the buffer as a single undo record.
func (e *Editor) CutSelection() {
	if !e.selection.Active {
		return
	}
	lo, hi := e.selectionBounds()
	if hi <= lo {
		e.ClearSelection()
		return
	}
	text := e.SelectionText()
	e.clipboard = text
	e.deleteRange(lo, hi-lo)
	e.placeCursorAtPos(lo)
	e.ClearSelection()
}

// Paste inserts the clipboard contents at the cursor as a single undo
// record. A clipboard containing a newline creates new rows once resync
// rebuilds the row cache, matching how any other multi-byte insertBytes
// call behaves.
func (e *Editor) Paste() {
	if len(e.clipboard) == 0 {
		return
	}
	e.insertBytes(e.clipboard)
}
