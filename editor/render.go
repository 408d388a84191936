package editor

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/ovistrand/me/internal/syntaxdb"
)

// appendBuffer is the teacher's append-buffer idiom: the whole frame is
// built into one growing byte slice and written with a single syscall,
// per spec §5 ("a single frame write per tick").
type appendBuffer struct {
	b []byte
}

func (ab *appendBuffer) append(s []byte) { ab.b = append(ab.b, s...) }
func (ab *appendBuffer) appendStr(s string) { ab.b = append(ab.b, s...) }

// Scroll adjusts rowOffset/colOffset so the cursor stays within the
// visible viewport, exactly like the teacher's Editor.Scroll.
func (e *Editor) Scroll() {
	e.rx = 0
	if e.cy < len(e.rows) {
		e.rx = e.rows[e.cy].cxToRx(e.buf.Bytes(), e.cx)
	}

	if e.cy < e.rowOffset {
		e.rowOffset = e.cy
	}
	if e.cy >= e.rowOffset+e.screenRows {
		e.rowOffset = e.cy - e.screenRows + 1
	}

	if e.rx < e.colOffset {
		e.colOffset = e.rx
	}
	if e.rx >= e.colOffset+e.screenCols {
		e.colOffset = e.rx - e.screenCols + 1
	}
}

// gutterWidth returns the line-number gutter's width (digits(num_rows)+2,
// spec §5), or 0 if line numbers are disabled or this isn't normal-mode
// editing (gutters don't apply to modal screens).
func (e *Editor) gutterWidth() int {
	if !e.showLineNumbers || e.mode != ModeNormal {
		return 0
	}
	return len(strconv.Itoa(len(e.rows))) + 2
}

// DrawRows renders the visible rows (or the welcome banner when the
// buffer is a single empty row), with SGR transitions for highlight-class changes,
// inverse video for control-character display and the active selection,
// and the line-number gutter spec §5 adds over the teacher's DrawRows.
func (e *Editor) DrawRows(abuf *appendBuffer) {
	gutter := e.gutterWidth()
	textCols := e.screenCols - gutter

	for y := 0; y < e.screenRows; y++ {
		filerow := y + e.rowOffset
		if filerow >= len(e.rows) {
			if len(e.rows) == 1 && e.rows[0].Len() == 0 && y == e.screenRows/3 && e.mode == ModeNormal {
				welcome := "me editor -- version " + Version
				welcomeLen := min(len(welcome), e.screenCols)
				padding := (e.screenCols - welcomeLen) / 2
				if padding > 0 {
					abuf.appendStr("~")
					padding--
				}
				for i := 0; i < padding; i++ {
					abuf.appendStr(" ")
				}
				abuf.appendStr(welcome[:welcomeLen])
			} else {
				abuf.appendStr("~")
			}
		} else {
			if gutter > 0 {
				abuf.appendStr(GutterColor)
				abuf.appendStr(fmt.Sprintf("%*d  ", gutter-2, filerow+1))
				abuf.appendStr(ColorsReset)
			}
			e.drawRowContent(abuf, filerow, textCols)
		}

		abuf.appendStr(ClearLine)
		abuf.appendStr("\r\n")
	}
}

func (e *Editor) drawRowContent(abuf *appendBuffer, filerow, textCols int) {
	row := &e.rows[filerow]
	lineLen := min(max(len(row.Render)-e.colOffset, 0), textCols)
	start := e.colOffset

	currentSGR := -1
	inverse := false

	for j := 0; j < lineLen; j++ {
		idx := start + j
		c := row.Render[idx]
		h := row.Hl[idx]
		wantInverse := (idx < len(row.Control) && row.Control[idx]) || e.selectionContains(row.Start+idx) || h == syntaxdb.Match
		sgr := sgrForClass(h)

		if sgr != currentSGR || wantInverse != inverse {
			abuf.appendStr(ColorsReset)
			abuf.appendStr(fmt.Sprintf("\x1b[%dm", sgr))
			if wantInverse {
				abuf.appendStr(ColorsInvert)
			}
			currentSGR = sgr
			inverse = wantInverse
		}
		abuf.append([]byte{c})
	}
	abuf.appendStr(ColorsReset)
}

// DrawStatusBar renders the inverse-video status line: mode tag, file
// name, modified marker and line/col counters, as the teacher's
// DrawStatusBar does, plus the mode tag spec §5 adds.
func (e *Editor) DrawStatusBar(abuf *appendBuffer) {
	abuf.appendStr(ColorsInvert)

	filename := "[No Name]"
	if e.filename != "" {
		filename = e.filename
		if len(filename) > 20 {
			filename = filename[:20]
		}
	}
	dirty := ""
	if e.hist.Modified() {
		dirty = "(modified)"
	}

	status := fmt.Sprintf("%s - %s %s %s", modeTag(e.mode), filename, dirty, strconv.Itoa(len(e.rows))+" lines")
	statusLen := min(len(status), e.screenCols)

	filetype := "no ft"
	if e.lang != nil {
		filetype = e.lang.Name
	}
	rstatus := fmt.Sprintf("%s | %d/%d col %d", filetype, e.cy+1, len(e.rows), e.rx+1)
	rstatusLen := len(rstatus)

	abuf.appendStr(status[:statusLen])
	for statusLen < e.screenCols {
		if e.screenCols-statusLen == rstatusLen {
			abuf.appendStr(rstatus)
			break
		}
		abuf.appendStr(" ")
		statusLen++
	}

	abuf.appendStr(ColorsReset)
	abuf.appendStr("\r\n")
}

func modeTag(mode int) string {
	switch mode {
	case ModeSelect:
		return "SELECT"
	case ModeSearch:
		return "SEARCH"
	case ModePrompt:
		return "PROMPT"
	case ModeConfirm:
		return "CONFIRM"
	case ModeHelp:
		return "HELP"
	case ModeBrowser:
		return "BROWSE"
	default:
		return "NORMAL"
	}
}

// DrawMessageBar renders the transient status message, which fades after
// 5 seconds (the teacher's DrawMessageBar).
func (e *Editor) DrawMessageBar(abuf *appendBuffer) {
	abuf.appendStr(ClearLine)
	messageLen := min(len(e.statusMessage), e.screenCols)
	if time.Since(e.statusMessageTime) < 5*time.Second {
		abuf.appendStr(e.statusMessage[:messageLen])
	}
}

// RefreshScreen composes and writes one full frame, the teacher's
// RefreshScreen, now ending with a gutter-aware cursor position.
func (e *Editor) RefreshScreen() {
	e.Scroll()

	var abuf appendBuffer
	abuf.appendStr(CursorHide)
	abuf.appendStr(CursorHome)

	e.DrawRows(&abuf)
	e.DrawStatusBar(&abuf)
	e.DrawMessageBar(&abuf)

	col := e.rx - e.colOffset + 1 + e.gutterWidth()
	abuf.appendStr(fmt.Sprintf(CursorPositionFormat, e.cy-e.rowOffset+1, col))
	abuf.appendStr(CursorShow)

	os.Stdout.Write(abuf.b)
}
