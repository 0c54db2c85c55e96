package renderer

import (
	"io"

	"keymaze/pkg/game/generator"
	"keymaze/pkg/game/solvability"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleHeading
	StyleSubtle
	StyleGood
	StyleDenied
)

// Renderer defines the interface for maze preview backends
type Renderer interface {
	// Init initializes the renderer (colors, glyphs)
	Init()

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// RenderHeader writes the caption line for maze index of total
	RenderHeader(w io.Writer, index, total int, m *generator.Maze) error

	// RenderMaze writes the maze, one line per row
	RenderMaze(w io.Writer, l solvability.Layout) error

	// RenderReport writes a solvability summary
	RenderReport(w io.Writer, r solvability.Report) error
}

// Current holds the active renderer instance
var Current Renderer = &Plain{}

// SetRenderer sets and initializes the active renderer
func SetRenderer(r Renderer) {
	Current = r
	Current.Init()
}
