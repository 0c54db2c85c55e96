package renderer

import (
	"fmt"
	"io"
	"strings"

	"keymaze/pkg/game/generator"
	"keymaze/pkg/game/solvability"
)

// Plain writes mazes as their raw cell codes, with no colors. Its output
// parses back with world.ParseGrid.
type Plain struct{}

// Init does nothing for plain output
func (p *Plain) Init() {}

// StyleText returns text unchanged
func (p *Plain) StyleText(text string, _ TextStyle) string {
	return text
}

// RenderHeader writes "# maze i/n HxW seed S id ID"
func (p *Plain) RenderHeader(w io.Writer, index, total int, m *generator.Maze) error {
	seed, _ := m.Seed()
	_, err := fmt.Fprintf(w, "# maze %d/%d %dx%d seed %d id %s\n", index, total, m.Height(), m.Width(), seed, m.ID())
	return err
}

// RenderMaze writes one line of codes per row
func (p *Plain) RenderMaze(w io.Writer, l solvability.Layout) error {
	var sb strings.Builder
	for row := 0; row < l.Height(); row++ {
		for col := 0; col < l.Width(); col++ {
			sb.WriteRune(rune(l.At(row, col)))
		}
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// RenderReport writes the report as key: value lines
func (p *Plain) RenderReport(w io.Writer, r solvability.Report) error {
	_, err := fmt.Fprintf(w, "# solvable: %v open: %d reachable: %d components: %d\n",
		r.Solvable(), r.OpenCells, r.Reachable, r.Components)
	return err
}
