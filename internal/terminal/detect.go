// Package terminal decides whether live progress output can be drawn.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsInteractive reports whether stdout is a terminal and CI is not set.
// Progress bars redraw in place, which only makes sense on a real terminal.
func IsInteractive() bool {
	if os.Getenv("CI") == "true" {
		return false
	}
	return IsTerminal(os.Stdout)
}

// IsTerminal reports whether f refers to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
