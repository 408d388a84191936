package editor

import (
	"bytes"

	"github.com/ovistrand/me/internal/syntaxdb"
)

// searchState holds the incremental-search cursor across keystrokes,
// mirroring the teacher's package-level lastMatch/direction/savedHl
// globals in Find/FindCallback but scoped to the Editor so multiple
// editors (and tests) don't share state.
type searchState struct {
	lastMatch   int
	direction   int
	savedHlRow  int
	savedHl     []byte
	savedHlSet  bool
}

func newSearchState() searchState {
	return searchState{lastMatch: -1, direction: 1}
}

// FindCallback is invoked on every keystroke of the search prompt (C7):
// it restores whichever row's highlight it last overlaid with Match,
// decides a new search direction from arrow keys, and walks rows
// starting at lastMatch until query is found, wrapping around the file.
func (e *Editor) FindCallback(query []byte, key int) {
	if e.search.savedHlSet {
		if e.search.savedHlRow < len(e.rows) {
			copy(e.rows[e.search.savedHlRow].Hl, e.search.savedHl)
		}
		e.search.savedHlSet = false
	}

	switch key {
	case '\r', '\x1b':
		e.search.lastMatch = -1
		e.search.direction = 1
		return
	case keyArrowRight, keyArrowDown:
		e.search.direction = 1
	case keyArrowLeft, keyArrowUp:
		e.search.direction = -1
	default:
		e.search.lastMatch = -1
		e.search.direction = 1
	}

	if len(query) == 0 {
		return
	}
	if e.search.lastMatch == -1 {
		e.search.direction = 1
	}
	current := e.search.lastMatch

	for range e.rows {
		current += e.search.direction
		if current == -1 {
			current = len(e.rows) - 1
		} else if current == len(e.rows) {
			current = 0
		}

		row := &e.rows[current]
		match := bytes.Index(row.Render, query)
		if match != -1 {
			e.search.lastMatch = current
			e.cy = current
			e.cx = row.rxToCx(e.buf.Bytes(), match)
			e.rowOffset = len(e.rows)

			e.search.savedHlRow = current
			e.search.savedHl = append(e.search.savedHl[:0], row.Hl...)
			e.search.savedHlSet = true
			for k := match; k < match+len(query) && k < len(row.Hl); k++ {
				row.Hl[k] = syntaxdb.Match
			}
			break
		}
	}
}

// Find opens the incremental search prompt, restoring the cursor and
// viewport if the user cancels without picking a match (spec §4.7).
func (e *Editor) Find() {
	savedCx, savedCy := e.cx, e.cy
	savedColOffset, savedRowOffset := e.colOffset, e.rowOffset

	e.search = newSearchState()
	query := e.Prompt("Search: %s (Use ESC/Arrows/Enter)", e.FindCallback)

	if query == "" {
		e.cx, e.cy = savedCx, savedCy
		e.colOffset, e.rowOffset = savedColOffset, savedRowOffset
	}
}
