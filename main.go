// Command me is the terminal text editor's CLI entry point. It parses
// the optional filename argument, brings the terminal up and tears it
// back down with panic-safe deferred restoration, and hands off to the
// editor package's event loop — the same thin-main shape as the
// teacher's original main(), now delegating to the structured editor
// package the teacher itself later grew instead of inlining the whole
// engine here.
package main

import (
	"fmt"
	"os"

	"github.com/ovistrand/me/editor"
)

func main() {
	e := editor.NewEditor()

	if err := e.Init(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	defer e.Shutdown()

	if len(os.Args) > 1 {
		if err := e.Open(os.Args[1]); err != nil {
			e.Die("%v", err)
		}
	}

	e.SetStatusMessage("HELP: Ctrl-/ = help | Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find | Ctrl-O = browse")

	e.Run()
}
