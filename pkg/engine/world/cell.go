// Package world provides generic 2D grid-based world primitives.
// These are engine-level constructs usable by any tile-based game.
package world

// Code is the single-character content of one grid cell.
type Code rune

// Cell codes. Each one is a single byte so a serialized row of a grid
// with n columns is exactly n bytes long.
const (
	Wall   Code = '#'
	Empty  Code = '.'
	Border Code = '%'
	Enter  Code = '@'
	Exit   Code = 'X'
	Key    Code = 'K'
)

// AllCodes returns every cell code in a stable order
func AllCodes() []Code {
	return []Code{Wall, Empty, Border, Enter, Exit, Key}
}

// String returns the code as a one-character string
func (c Code) String() string {
	return string(rune(c))
}

// Name returns a human-readable name for the code
func (c Code) Name() string {
	switch c {
	case Wall:
		return "Wall"
	case Empty:
		return "Empty"
	case Border:
		return "Border"
	case Enter:
		return "Enter"
	case Exit:
		return "Exit"
	case Key:
		return "Key"
	default:
		return "Unknown"
	}
}

// IsValid returns true if c is one of the known cell codes
func (c Code) IsValid() bool {
	switch c {
	case Wall, Empty, Border, Enter, Exit, Key:
		return true
	default:
		return false
	}
}

// IsOpen returns true for cells a walker can stand on inside the maze.
// Portals are not open: they live on the border and are the game's concern.
func (c Code) IsOpen() bool {
	return c == Empty || c == Key
}

// IsPortal returns true for the entry and exit cells
func (c Code) IsPortal() bool {
	return c == Enter || c == Exit
}

// Position is a row/column coordinate in a grid
type Position struct {
	Row int
	Col int
}

// Step returns the position n cells away in the given direction
func (p Position) Step(dir Direction, n int) Position {
	rowDelta, colDelta := dir.Stride(n)
	return Position{Row: p.Row + rowDelta, Col: p.Col + colDelta}
}

// Neighbors returns the four orthogonally adjacent positions, in AllDirections order
func (p Position) Neighbors() []Position {
	out := make([]Position, 0, 4)
	for _, dir := range AllDirections() {
		out = append(out, p.Step(dir, 1))
	}
	return out
}
