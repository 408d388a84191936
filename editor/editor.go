// Package editor implements the integrated text editor engine (C4,
// C6-C11, C13): the row cache, edit operations, search, selection, file
// browser, modal state machine, renderer and the terminal event loop
// built on top of internal/gapbuffer, internal/history, internal/syntaxdb,
// internal/terminal and internal/utf8util.
//
// Grounded throughout on the teacher's (hnnsb-go-ditor) editor/editor.go:
// the Editor/Terminal struct split, Die/ShowError, Scroll/DrawRows/
// DrawStatusBar/DrawMessageBar/RefreshScreen, Prompt, MoveCursor and
// ProcessKeypress all keep the teacher's shape, generalized to read and
// write through a gap buffer + undo history instead of a plain slice of
// rows.
package editor

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/ovistrand/me/internal/gapbuffer"
	"github.com/ovistrand/me/internal/history"
	"github.com/ovistrand/me/internal/syntaxdb"
	"github.com/ovistrand/me/internal/terminal"
	"github.com/ovistrand/me/internal/utf8util"
)

// Version and tuning constants, named the way the teacher names
// KIGO_VERSION/TAB_STOP/QUIT_TIMES.
const (
	Version      = "1.0.0"
	QuitTimes    = 3
	PollInterval = 100 * time.Millisecond // spec §4.13's cooperative poll tick
)

func getLineEnding() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// Editor holds the complete state of one editing session.
type Editor struct {
	buf  *gapbuffer.Buffer
	hist *history.Stack
	rows []Row
	lang *syntaxdb.Lang

	cx, cy                 int
	rx                     int
	rowOffset, colOffset   int
	screenRows, screenCols int

	filename          string
	statusMessage     string
	statusMessageTime time.Time

	mode      int
	selection Selection
	search    searchState
	clipboard []byte

	pendingUTF8     []byte
	pendingUTF8Want int

	term      *terminal.Term
	quitTimes int

	showLineNumbers bool
}

// NewEditor constructs an Editor with an empty buffer, ready for Init.
func NewEditor() *Editor {
	return &Editor{
		buf:             gapbuffer.New(4096),
		hist:            history.New(history.DefaultMaxLevels),
		term:            terminal.New(),
		quitTimes:       QuitTimes,
		showLineNumbers: true,
	}
}

// Init prepares the editor for its first frame: raw mode, alternate
// screen, window size and an empty row cache, mirroring the teacher's
// Editor.Init plus the alternate-screen entry spec §6 adds.
func (e *Editor) Init() error {
	if err := e.term.EnableRaw(); err != nil {
		return err
	}
	terminal.EnterAltScreen()

	e.cx, e.cy, e.rx = 0, 0, 0
	e.rowOffset, e.colOffset = 0, 0
	e.mode = ModeNormal
	e.search = newSearchState()
	e.buf = gapbuffer.New(4096)
	e.hist.Reset()
	e.rows = buildRows(nil)

	rows, cols, err := terminal.Size()
	e.screenRows, e.screenCols = rows, cols
	e.screenRows -= 2 // status bar + message bar
	if err != nil {
		return errors.New("getting window size")
	}
	return nil
}

// Shutdown restores the terminal to its original state. Safe to call
// more than once.
func (e *Editor) Shutdown() {
	terminal.ExitAltScreen()
	e.term.Restore()
}

// Die restores the terminal and exits with an error, as the teacher's
// Editor.Die does.
func (e *Editor) Die(format string, args ...any) {
	e.Shutdown()
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// ShowError surfaces a problem in the status bar instead of terminating,
// for recoverable errors (a failed save, a failed directory read).
func (e *Editor) ShowError(format string, args ...any) {
	e.SetStatusMessage("Warn: "+format, args...)
}

// SetStatusMessage sets the message bar's content and its 5-second
// display timer (spec §5's message bar expiry).
func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMessage = fmt.Sprintf(format, args...)
	e.statusMessageTime = time.Now()
}

// readKey polls the terminal with the event loop's poll interval.
func (e *Editor) readKey() (int, bool, error) {
	return terminal.ReadKey(PollInterval)
}

// resync rebuilds the row cache from the buffer's current bytes and
// reclassifies every row's highlighting, then clamps the cursor back
// into range. Spec §4.4/§4.5: any edit invalidates the row cache and the
// syntax state that depends on it.
func (e *Editor) resync() {
	content := e.buf.Bytes()
	e.rows = buildRows(content)

	open := false
	for i := range e.rows {
		e.rows[i].updateRender(content, e.lang, open)
		open = e.rows[i].HlOpenComment
	}

	if e.cy >= len(e.rows) {
		e.cy = len(e.rows) - 1
	}
	if e.cy < 0 {
		e.cy = 0
	}
	if e.cx > e.rows[e.cy].Len() {
		e.cx = e.rows[e.cy].Len()
	}
}

// SelectSyntaxHighlight chooses a language from the filename and
// reclassifies every row, per the teacher's SelectSyntaxHighlight.
func (e *Editor) SelectSyntaxHighlight() {
	e.lang = syntaxdb.Select(e.filename)
	e.resync()
}

/*** file i/o ***/

// rowsToBytes serializes the row cache back to a file's worth of bytes
// with the platform line ending, mirroring the teacher's RowsToString.
func (e *Editor) rowsToBytes() []byte {
	var b strings.Builder
	ending := getLineEnding()
	content := e.buf.Bytes()
	for i, row := range e.rows {
		b.Write(content[row.Start:row.End])
		if i < len(e.rows)-1 {
			b.WriteString(ending)
		}
	}
	return []byte(b.String())
}

// Open loads filename into a fresh buffer, discarding all history, as
// the teacher's Editor.Open does.
func (e *Editor) Open(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("could not open file '%s'", filename)
	}
	defer file.Close()

	e.filename = filename
	e.buf = gapbuffer.New(4096)
	e.hist.Reset()
	e.cx, e.cy = 0, 0
	e.rowOffset, e.colOffset = 0, 0
	e.selection = Selection{}

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)
	first := true
	for scanner.Scan() {
		if !first {
			e.buf.Insert(e.buf.Length(), []byte{'\n'})
		}
		first = false
		e.buf.Insert(e.buf.Length(), scanner.Bytes())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading file '%s': %w", filename, err)
	}

	e.buf.ClearModified()
	e.SelectSyntaxHighlight()
	return nil
}

// Save writes the buffer to disk, prompting for a filename if the
// buffer has none yet, mirroring the teacher's Editor.Save.
func (e *Editor) Save() {
	if e.filename == "" {
		name := e.Prompt("Save as: %s (ESC to cancel)", nil)
		if name == "" {
			e.SetStatusMessage("Save aborted")
			return
		}
		e.filename = name
		e.SelectSyntaxHighlight()
	}

	buf := e.rowsToBytes()

	file, err := os.OpenFile(e.filename, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}
	defer file.Close()

	if err := file.Truncate(int64(len(buf))); err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}
	n, err := file.Write(buf)
	if err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return
	}
	if n != len(buf) {
		e.SetStatusMessage("Can't save! Partial write: %d/%d bytes", n, len(buf))
		return
	}

	e.SetStatusMessage("%d bytes written to disk", len(buf))
	e.buf.ClearModified()
}

/*** cursor movement ***/

// MoveCursor moves the cursor by one logical unit, clamping to the
// current row's length the way the teacher's MoveCursor does, but
// stepping whole runes via internal/utf8util rather than single bytes.
func (e *Editor) MoveCursor(key int) {
	content := e.buf.Bytes()
	row := &e.rows[e.cy]

	switch key {
	case keyArrowLeft:
		if e.cx != 0 {
			abs := row.Start + e.cx
			e.cx = utf8util.Prev(content, row.Start, abs) - row.Start
		} else if e.cy > 0 {
			e.cy--
			e.cx = e.rows[e.cy].Len()
		}
	case keyArrowRight:
		if e.cx < row.Len() {
			abs := row.Start + e.cx
			e.cx = utf8util.Next(content, abs) - row.Start
		} else if e.cy < len(e.rows)-1 {
			e.cy++
			e.cx = 0
		}
	case keyArrowUp:
		if e.cy != 0 {
			e.cy--
		}
	case keyArrowDown:
		if e.cy < len(e.rows)-1 {
			e.cy++
		}
	}

	row = &e.rows[e.cy]
	if e.cx > row.Len() {
		e.cx = row.Len()
	}
}

/*** prompt ***/

// Prompt reads a line of input on the status bar, invoking callback (if
// non-nil) after every keystroke, exactly the shape of the teacher's
// Editor.Prompt.
func (e *Editor) Prompt(prompt string, callback func([]byte, int)) string {
	prevMode := e.mode
	e.mode = ModePrompt
	defer func() { e.mode = prevMode }()

	buf := make([]byte, 0, 128)

	for {
		e.SetStatusMessage(prompt, string(buf))
		e.RefreshScreen()

		key, ok, err := e.readKey()
		if err != nil {
			e.ShowError("%v", err)
			continue
		}
		if !ok {
			continue
		}

		switch key {
		case keyDelete, keyBackspace, withControlKey('h'):
			if len(buf) != 0 {
				buf = buf[:len(buf)-1]
			}

		case '\x1b':
			e.SetStatusMessage("")
			if callback != nil {
				callback(buf, key)
			}
			return ""

		case '\r':
			if len(buf) != 0 {
				e.SetStatusMessage("")
				if callback != nil {
					callback(buf, key)
				}
				return string(buf)
			}

		default:
			if !isControl(byte(key)) && key < 128 {
				buf = append(buf, byte(key))
			}
		}
		if callback != nil {
			callback(buf, key)
		}
	}
}

// Confirm asks a yes/no question on the status bar (C10's Confirm mode),
// a generalization of the teacher's inline "press Ctrl-Q N more times"
// warning into a reusable yes/no prompt.
func (e *Editor) Confirm(question string) bool {
	prevMode := e.mode
	e.mode = ModeConfirm
	defer func() { e.mode = prevMode }()

	for {
		e.SetStatusMessage("%s (y/n)", question)
		e.RefreshScreen()
		key, ok, err := e.readKey()
		if err != nil {
			e.ShowError("%v", err)
			continue
		}
		if !ok {
			continue
		}
		switch key {
		case 'y', 'Y':
			return true
		case 'n', 'N', '\x1b':
			return false
		}
	}
}

/*** event loop ***/

// ProcessKeypress dispatches one decoded key, the way the teacher's
// Editor.ProcessKeypress does, extended with undo/redo, selection and
// clipboard chords the teacher never had.
func (e *Editor) ProcessKeypress(key int) {
	switch key {
	case '\r':
		e.InsertNewline()

	case withControlKey('q'):
		if e.hist.Modified() && e.quitTimes > 0 {
			e.SetStatusMessage("WARNING: File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitTimes)
			e.quitTimes--
			return
		}
		e.Shutdown()
		fmt.Println("Goodbye")
		os.Exit(0)

	case withControlKey('s'):
		e.Save()

	case withControlKey('z'):
		e.Undo()

	case withControlKey('r'):
		e.Redo()

	case withControlKey('x'):
		if e.selection.Active {
			e.ClearSelection()
		} else {
			e.StartSelection()
		}

	case withControlKey('c'):
		if e.selection.Active {
			e.CopySelection()
		} else {
			e.CopyLine()
		}

	case withControlKey('v'):
		e.Paste()

	case withControlKey('k'):
		e.LineKill()

	case keyHome:
		e.cx = 0

	case keyEnd:
		e.cx = e.rows[e.cy].Len()

	case withControlKey('o'):
		e.Browse()

	case withControlKey('f'):
		e.Find()

	case withControlKey('n'):
		e.showLineNumbers = !e.showLineNumbers

	case keyHelp:
		e.Help()

	case keyBackspace, withControlKey('h'):
		e.DeleteBackward()

	case keyDelete:
		e.DeleteForward()

	case keyPageUp:
		e.cy = e.rowOffset
		for i := 0; i < e.screenRows; i++ {
			e.MoveCursor(keyArrowUp)
		}

	case keyPageDown:
		e.cy = min(e.rowOffset+e.screenRows-1, len(e.rows)-1)
		for i := 0; i < e.screenRows; i++ {
			e.MoveCursor(keyArrowDown)
		}

	case keyArrowLeft, keyArrowRight, keyArrowUp, keyArrowDown:
		e.MoveCursor(key)

	case withControlKey('l'):
		e.Redraw()

	case '\x1b':
		// no-op, as in the teacher

	default:
		if key >= 0 && key < 256 {
			e.feedByte(byte(key))
		}
	}

	e.quitTimes = QuitTimes
}

// Redraw forces a full window-size requery and repaint, for Ctrl-L and
// for terminal resize recovery (the teacher's Editor.Redraw).
func (e *Editor) Redraw() {
	rows, cols, err := terminal.Size()
	if err != nil {
		e.ShowError("%v", err)
	}
	e.screenRows, e.screenCols = rows, cols
	e.screenRows -= 2
	e.RefreshScreen()
}

// Run is the cooperative, single-threaded event loop (C13): it polls for
// a key every PollInterval and never blocks indefinitely, per spec
// §4.13. On a timeout tick it simply redraws, so the message bar's
// 5-second expiry is still observed even with no keyboard activity.
func (e *Editor) Run() {
	for {
		e.RefreshScreen()
		key, ok, err := e.readKey()
		if err != nil {
			e.ShowError("%v", err)
			continue
		}
		if !ok {
			continue
		}
		e.ProcessKeypress(key)
	}
}
