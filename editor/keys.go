package editor

import "github.com/ovistrand/me/internal/terminal"

// Key aliases, kept local to the editor package the way the teacher
// keeps BACKSPACE/ARROW_LEFT/etc. as package-level constants in
// editor.go, rather than spelling out terminal.ArrowLeft at every call
// site.
const (
	keyBackspace  = terminal.Backspace
	keyArrowLeft  = terminal.ArrowLeft
	keyArrowRight = terminal.ArrowRight
	keyArrowUp    = terminal.ArrowUp
	keyArrowDown  = terminal.ArrowDown
	keyDelete     = terminal.Delete
	keyHome       = terminal.Home
	keyEnd        = terminal.End
	keyPageUp     = terminal.PageUp
	keyPageDown   = terminal.PageDown
)

// withControlKey maps an ASCII letter to its Ctrl-chord code, as the
// teacher's withControlKey does.
func withControlKey(c int) int { return c & 0x1f }

// keyHelp is the normal-mode chord for entering help mode. The
// mode-machine names it Ctrl-?, but a terminal sends DEL (0x7f) for
// Ctrl-?, the same byte as keyBackspace/Del — indistinguishable from a
// deletion keypress on the wire. 0x1f (Ctrl-/ on most terminals) is the
// nearest unclaimed chord, so help binds there instead.
const keyHelp = 0x1f
