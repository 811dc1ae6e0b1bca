package format

import (
	"os"

	"golang.org/x/term"
)

const defaultTerminalWidth = 120

// TerminalWidth reports the current width of stdout. Queried per render
// so output tracks resizes; falls back to a fixed width when stdout is
// not a terminal.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultTerminalWidth
	}
	return w
}
