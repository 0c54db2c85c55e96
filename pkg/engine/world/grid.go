package world

import (
	"fmt"
	"strings"
)

// Grid is a rectangular map of cell codes with encapsulated storage
type Grid struct {
	cells [][]Code
	rows  int
	cols  int
}

// NewGrid creates a new grid with the given dimensions, every cell set to Wall
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols, Wall)
	return g
}

// ParseGrid builds a grid from serialized rows. All rows must have the same
// width and contain only known codes.
func ParseGrid(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("grid has no cells")
	}

	g := &Grid{}
	g.Build(len(lines), len(lines[0]), Wall)

	for row, line := range lines {
		if len(line) != g.cols {
			return nil, fmt.Errorf("row %d has width %d, want %d", row, len(line), g.cols)
		}
		for col := 0; col < len(line); col++ {
			code := Code(line[col])
			if !code.IsValid() {
				return nil, fmt.Errorf("unknown cell code %q at %d,%d", line[col], row, col)
			}
			g.cells[row][col] = code
		}
	}

	return g, nil
}

// Build initializes the grid with the given dimensions and fill code
func (g *Grid) Build(rows, cols int, fill Code) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.cells = make([][]Code, rows)

	for currentRow := 0; currentRow < rows; currentRow++ {
		g.cells[currentRow] = make([]Code, cols)
		for currentCol := 0; currentCol < cols; currentCol++ {
			g.cells[currentRow][currentCol] = fill
		}
	}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// IsPlayablePosition checks if a position is within the playable area (not on the perimeter)
func (g *Grid) IsPlayablePosition(row, col int) bool {
	return row >= 1 && row < g.rows-1 && col >= 1 && col < g.cols-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(row, col int) bool {
	return g.IsValidPosition(row, col) && !g.IsPlayablePosition(row, col)
}

// Get returns the code at the given position, or Border if out of bounds
func (g *Grid) Get(row, col int) Code {
	if !g.IsValidPosition(row, col) {
		return Border
	}
	return g.cells[row][col]
}

// GetAt is Get for a Position
func (g *Grid) GetAt(p Position) Code {
	return g.Get(p.Row, p.Col)
}

// Set stores a code at the given position. Returns false if out of bounds.
func (g *Grid) Set(row, col int, code Code) bool {
	if !g.IsValidPosition(row, col) {
		return false
	}
	g.cells[row][col] = code
	return true
}

// SetAt is Set for a Position
func (g *Grid) SetAt(p Position, code Code) bool {
	return g.Set(p.Row, p.Col, code)
}

// ForEachCell iterates over all cells in the grid, calling the provided function for each
func (g *Grid) ForEachCell(fn func(row, col int, code Code)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(row, col, g.cells[row][col])
		}
	}
}

// Count returns how many cells hold the given code
func (g *Grid) Count(code Code) int {
	n := 0
	g.ForEachCell(func(_, _ int, c Code) {
		if c == code {
			n++
		}
	})
	return n
}

// Framed returns a new grid two cells larger in each axis, with g copied into
// the middle and a one-cell ring of the given code around it.
func (g *Grid) Framed(ring Code) *Grid {
	out := &Grid{}
	out.Build(g.rows+2, g.cols+2, ring)
	g.ForEachCell(func(row, col int, code Code) {
		out.cells[row+1][col+1] = code
	})
	return out
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	out := &Grid{rows: g.rows, cols: g.cols, cells: make([][]Code, g.rows)}
	for row := range g.cells {
		out.cells[row] = append([]Code(nil), g.cells[row]...)
	}
	return out
}

// Row returns one row of the grid as a string of codes
func (g *Grid) Row(row int) string {
	if row < 0 || row >= g.rows {
		return ""
	}
	var sb strings.Builder
	sb.Grow(g.cols)
	for _, code := range g.cells[row] {
		sb.WriteByte(byte(code))
	}
	return sb.String()
}

// Lines returns every row of the grid as strings, top to bottom
func (g *Grid) Lines() []string {
	lines := make([]string, g.rows)
	for row := range lines {
		lines[row] = g.Row(row)
	}
	return lines
}

// Validate checks the grid for common issues and returns an error description or empty string if valid
func (g *Grid) Validate() string {
	if g.rows <= 0 || g.cols <= 0 {
		return "Grid has invalid dimensions"
	}

	bad := ""
	g.ForEachCell(func(row, col int, code Code) {
		if bad == "" && !code.IsValid() {
			bad = fmt.Sprintf("Unknown cell code %q at %d,%d", rune(code), row, col)
		}
	})

	return bad
}
