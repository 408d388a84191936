// Package terminal owns the raw VT100/xterm terminal: raw-mode toggle,
// the CSI/SS3 key decoder, window-size queries and alternate-screen
// management (spec §4.12). It is the only package that touches stdin's
// file descriptor directly.
//
// Grounded on the teacher's (hnnsb-go-ditor) EnableRawMode/
// RestoreTerminal/readKey/getWindowsSize, which already use
// golang.org/x/term for raw mode and window size; the poll-with-timeout
// read used by the event loop (spec §4.13) follows the
// SetReadDeadline-based pattern the pack's dshills-gokeys input backend
// uses for the same VMIN=0/VTIME-style non-blocking read, since
// golang.org/x/term does not expose raw termios fields to set VMIN/VTIME
// directly.
package terminal

import (
	"errors"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// Key codes returned by ReadKey. Backspace is the literal DEL byte (127)
// terminals send for it; the others stand for sequences with no single
// byte representation and lie above 255 so they never collide with a
// literal byte.
const (
	Backspace = 127

	ArrowLeft = iota + 1000
	ArrowRight
	ArrowUp
	ArrowDown
	Delete
	Home
	End
	PageUp
	PageDown
)

// ANSI escape sequences the renderer and event loop compose frames with.
// Spec §6 names each of these explicitly.
const (
	ClearScreen  = "\x1b[2J"
	ClearLine    = "\x1b[K"
	CursorHome   = "\x1b[H"
	CursorHide   = "\x1b[?25l"
	CursorShow   = "\x1b[?25h"
	PosFormat    = "\x1b[%d;%dH"
	ColorsReset  = "\x1b[m"
	ColorsInvert = "\x1b[7m"
	AltScreenOn  = "\x1b[?47h"
	AltScreenOff = "\x1b[?47l"
)

// Term wraps the raw-mode lifecycle for stdin/stdout.
type Term struct {
	fd    int
	state *term.State
}

// New returns a Term bound to the process's stdin.
func New() *Term {
	return &Term{fd: int(os.Stdin.Fd())}
}

// EnableRaw switches the terminal into raw mode: no line buffering, no
// echo, 8-bit clean input, signals/flow-control disabled (spec §4.12).
func (t *Term) EnableRaw() error {
	if !term.IsTerminal(t.fd) {
		return errors.New("not running in a terminal")
	}
	state, err := term.MakeRaw(t.fd)
	if err != nil {
		return errors.New("enabling terminal raw mode: " + err.Error())
	}
	t.state = state
	return nil
}

// Restore returns the terminal to its original (cooked) mode. Safe to
// call more than once or before EnableRaw ever succeeded.
func (t *Term) Restore() {
	if t.state != nil {
		term.Restore(t.fd, t.state)
		t.state = nil
	}
}

// EnterAltScreen and ExitAltScreen switch to/from the alternate screen
// buffer, so the editor's display never disturbs the caller's scrollback.
func EnterAltScreen() { os.Stdout.WriteString(AltScreenOn) }
func ExitAltScreen()  { os.Stdout.WriteString(AltScreenOff) }

// Size returns the current window size. On failure it still returns the
// 24x80 fallback spec §4.12 allows, alongside the error, so a caller
// that chooses to ignore the error gets a usable size regardless.
func Size() (rows, cols int, err error) {
	cols, rows, err = term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 24, 80, err
	}
	return rows, cols, nil
}

func isTimeout(err error) bool {
	var ne interface{ Timeout() bool }
	if errors.As(err, &ne) {
		return ne.Timeout()
	}
	return os.IsTimeout(err)
}

// readByteWithTimeout reads exactly one byte from stdin, or reports
// ok=false if none arrives within timeout. A non-timeout error is
// returned as-is.
func readByteWithTimeout(timeout time.Duration) (byte, bool, error) {
	var buf [1]byte
	if timeout > 0 {
		_ = os.Stdin.SetReadDeadline(time.Now().Add(timeout))
		defer os.Stdin.SetReadDeadline(time.Time{})
	}
	n, err := os.Stdin.Read(buf[:])
	if n == 1 {
		return buf[0], true, nil
	}
	if err != nil {
		if isTimeout(err) || err == io.EOF {
			return 0, false, nil
		}
		return 0, false, err
	}
	return 0, false, nil
}

// ReadKey polls stdin for up to timeout and decodes one key. ok is false
// if nothing arrived in time (the caller's poll tick per spec §4.13);
// callers should treat timeout<=0 as "block indefinitely".
func ReadKey(timeout time.Duration) (key int, ok bool, err error) {
	b, ok, err := readByteWithTimeout(timeout)
	if err != nil || !ok {
		return 0, ok, err
	}

	if b != '\x1b' {
		return int(b), true, nil
	}

	// Escape sequence: CSI ("\x1b[") or SS3 ("\x1bO"). A bare ESC with
	// nothing following within a short grace period is just Escape.
	b1, ok, _ := readByteWithTimeout(50 * time.Millisecond)
	if !ok {
		return '\x1b', true, nil
	}
	b2, ok, _ := readByteWithTimeout(50 * time.Millisecond)
	if !ok {
		return '\x1b', true, nil
	}

	switch b1 {
	case '[':
		if b2 >= '0' && b2 <= '9' {
			b3, ok, _ := readByteWithTimeout(50 * time.Millisecond)
			if !ok || b3 != '~' {
				return '\x1b', true, nil
			}
			switch b2 {
			case '1', '7':
				return Home, true, nil
			case '3':
				return Delete, true, nil
			case '4', '8':
				return End, true, nil
			case '5':
				return PageUp, true, nil
			case '6':
				return PageDown, true, nil
			}
			return '\x1b', true, nil
		}
		switch b2 {
		case 'A':
			return ArrowUp, true, nil
		case 'B':
			return ArrowDown, true, nil
		case 'C':
			return ArrowRight, true, nil
		case 'D':
			return ArrowLeft, true, nil
		case 'H':
			return Home, true, nil
		case 'F':
			return End, true, nil
		}
	case 'O':
		switch b2 {
		case 'H':
			return Home, true, nil
		case 'F':
			return End, true, nil
		}
	}
	return '\x1b', true, nil
}
