package editor

import "fmt"

// HelpScreen is a ModalScreen showing static keybinding help, adapted
// from the teacher's HelpScreen with this package's keybindings
// (selection, undo/redo, cut/copy/paste, browser hidden-file toggle)
// that the teacher's simpler editor never had.
type HelpScreen struct {
	content []Row
}

// NewHelpScreen builds the help screen's content rows.
func NewHelpScreen() *HelpScreen {
	lines := []string{
		"=== HELP ===",
		"",
		"NAVIGATION:",
		"  Arrow Keys       - Move cursor",
		"  Page Up/Down     - Scroll by page",
		"  Home/End         - Move to line start/end",
		"",
		"EDITING:",
		"  Ctrl+S           - Save file",
		"  Ctrl+Q           - Quit (with confirmation if unsaved)",
		"  Delete/Backspace - Delete characters",
		"  Ctrl+H           - Delete character (same as Backspace)",
		"  Ctrl+Z / Ctrl+R  - Undo / Redo",
		"  Ctrl+N           - Toggle line numbers",
		"",
		"SELECTION:",
		"  Ctrl+X           - Start/clear selection",
		"  Ctrl+C           - Copy selection, or copy current line",
		"  Ctrl+K           - Cut selection, or cut to end of line",
		"  Ctrl+V           - Paste",
		"",
		"SEARCH:",
		"  Ctrl+F           - Find text",
		"  Arrow Up/Down    - Navigate search results",
		"  Escape           - Cancel search",
		"",
		"FILE OPERATIONS:",
		"  Ctrl+O           - Open file browser",
		"  H (browser)      - Toggle hidden files",
		"",
		"OTHER:",
		"  Ctrl+/           - Show this help",
		"  Ctrl+L           - Redraw screen",
		"",
		fmt.Sprintf("  Version: %s", Version),
		"",
		"Press 'q' or Escape to close this help screen.",
	}

	content := make([]Row, len(lines))
	for i, line := range lines {
		content[i] = newDisplayRow(line)
	}
	return &HelpScreen{content: content}
}

func (h *HelpScreen) GetContent() []Row { return h.content }
func (h *HelpScreen) GetTitle() string  { return "Help" }
func (h *HelpScreen) GetStatusMessage() string {
	return "Help Screen - Use Arrow Keys to scroll, 'q' or Escape to exit"
}

func (h *HelpScreen) Initialize(e *Editor) {
	e.cy = 0
	e.rowOffset = 0
}

func (h *HelpScreen) HandleKey(key int, e *Editor) (bool, bool) {
	switch key {
	case 'q', 'Q', '\x1b':
		return true, true

	case keyArrowUp:
		if e.cy > 0 {
			e.cy--
		} else if e.rowOffset > 0 {
			e.rowOffset--
		}

	case keyArrowDown:
		maxCy := len(h.content) - 1
		if e.cy < e.screenRows-1 && e.cy < maxCy {
			e.cy++
		} else if e.rowOffset+e.screenRows < len(h.content) {
			e.rowOffset++
		}

	case keyPageUp:
		for i := 0; i < e.screenRows && (e.cy > 0 || e.rowOffset > 0); i++ {
			if e.cy > 0 {
				e.cy--
			} else if e.rowOffset > 0 {
				e.rowOffset--
			}
		}

	case keyPageDown:
		for i := 0; i < e.screenRows && e.rowOffset+e.cy < len(h.content)-1; i++ {
			maxCy := len(h.content) - 1
			if e.cy < e.screenRows-1 && e.cy < maxCy {
				e.cy++
			} else if e.rowOffset+e.screenRows < len(h.content) {
				e.rowOffset++
			}
		}

	case keyHome:
		e.cy, e.rowOffset = 0, 0

	case keyEnd:
		maxRows := len(h.content)
		if maxRows <= e.screenRows {
			e.cy, e.rowOffset = maxRows-1, 0
		} else {
			e.cy, e.rowOffset = e.screenRows-1, maxRows-e.screenRows
		}
	}

	return false, false
}

// Help displays the help screen via the modal system.
func (e *Editor) Help() {
	NewModalManager(e, NewHelpScreen()).Show(ModeHelp)
}
