package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// Lines reserved below a fitted maze for the caption and prompt
const reservedLines = 3

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdout is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// FitSize returns the largest odd maze size, at least minimum in each axis,
// that fits a terminal of the given width and height with one character per cell.
func FitSize(width, height, minimum int) (rows, cols int) {
	rows = height - reservedLines
	cols = width

	// Keep rows and cols odd so portals line up with room columns
	if rows%2 == 0 {
		rows--
	}
	if cols%2 == 0 {
		cols--
	}

	if rows < minimum {
		rows = minimum
	}
	if cols < minimum {
		cols = minimum
	}

	return rows, cols
}

// FitCurrent is FitSize for the current terminal
func FitCurrent(minimum int) (rows, cols int) {
	width, height := GetSize()
	return FitSize(width, height, minimum)
}
