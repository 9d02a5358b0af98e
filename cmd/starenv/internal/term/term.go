package term

import (
	"os"

	"golang.org/x/term"
)

// Width returns the width of the terminal attached to f, or zero if f is not a terminal.
func Width(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return width
}

// Truncate shortens s to at most width runes, marking the cut with an ellipsis. A non-positive width disables
// truncation.
func Truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return string(runes[:width-1]) + "…"
}
