// Package generator builds key-and-exit tile mazes.
//
// A maze is carved by a random walk (the bulldozer) over an interior grid
// of alternating room and wall-slot cells, framed by a solid border with an
// exit on the top edge and an entry on the bottom edge, and finished with a
// single key on a random room.
package generator

import (
	"errors"
	"math/rand"
)

// Generation errors.
var (
	ErrInvalidDimensions = errors.New("maze dimensions must be at least 3x3")
	ErrNotConverged      = errors.New("maze generation did not converge within the step budget")
	ErrNilSource         = errors.New("random source is nil")
)

// MinDimension is the smallest accepted row or column count.
const MinDimension = 3

// Default maze size.
const (
	DefaultRows = 11
	DefaultCols = 25
)

// Source is the random source consumed by generation. *rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// GridGenerator is an interface for maze generation algorithms
type GridGenerator interface {
	Generate(rows, cols int, rng Source, opts ...Option) (*Maze, error)
	Name() string
}

// Available generators
var (
	Bulldozer = &BulldozerGenerator{}
)

// DefaultGenerator is the default maze generator
var DefaultGenerator GridGenerator = Bulldozer

// Generate builds a maze with the default generator.
func Generate(rows, cols int, rng Source, opts ...Option) (*Maze, error) {
	return DefaultGenerator.Generate(rows, cols, rng, opts...)
}

// GenerateSeeded builds a maze from a fresh source seeded with seed.
// The same seed and size always produce the same rows.
func GenerateSeeded(rows, cols int, seed int64, opts ...Option) (*Maze, error) {
	m, err := Generate(rows, cols, rand.New(rand.NewSource(seed)), opts...)
	if err != nil {
		return nil, err
	}
	m.seed = seed
	m.seeded = true
	return m, nil
}

// NormalizeDimension coerces an even dimension up to the next odd value so
// the portals always sit next to a room column. Values below MinDimension are
// returned unchanged.
func NormalizeDimension(n int) int {
	if n < MinDimension || n%2 == 1 {
		return n
	}
	return n + 1
}
