package generator

import (
	"slices"
	"strings"

	"github.com/google/uuid"

	"keymaze/pkg/engine/world"
)

// Maze is a finished maze. It has no mutating methods and is safe to share
// between goroutines.
type Maze struct {
	id    uuid.UUID
	grid  *world.Grid
	lines []string

	entry world.Position
	exit  world.Position
	key   world.Position

	steps  int
	seed   int64
	seeded bool
}

// ID returns the maze identifier
func (m *Maze) ID() uuid.UUID {
	return m.id
}

// Height returns the number of rows, border included
func (m *Maze) Height() int {
	return m.grid.Rows()
}

// Width returns the number of columns, border included
func (m *Maze) Width() int {
	return m.grid.Cols()
}

// At returns the code at the given position, or Border outside the maze
func (m *Maze) At(row, col int) world.Code {
	return m.grid.Get(row, col)
}

// Rows returns the maze as one string per row. The slice is a copy.
func (m *Maze) Rows() []string {
	return slices.Clone(m.lines)
}

// String returns the rows joined by newlines, with a trailing newline
func (m *Maze) String() string {
	var sb strings.Builder
	for _, line := range m.lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Entry returns the position of the entry portal on the bottom border
func (m *Maze) Entry() world.Position {
	return m.entry
}

// Exit returns the position of the exit portal on the top border
func (m *Maze) Exit() world.Position {
	return m.exit
}

// Key returns the position of the key
func (m *Maze) Key() world.Position {
	return m.key
}

// Steps returns how many bulldozer moves carving took
func (m *Maze) Steps() int {
	return m.steps
}

// Seed returns the seed the maze was generated from. ok is false when the
// caller supplied its own random source.
func (m *Maze) Seed() (seed int64, ok bool) {
	return m.seed, m.seeded
}

// Grid returns a copy of the underlying grid
func (m *Maze) Grid() *world.Grid {
	return m.grid.Clone()
}
