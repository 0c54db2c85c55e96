package generator

import (
	"fmt"

	"keymaze/pkg/engine/world"
)

// BulldozerGenerator carves mazes with a random walk that opens every room
// it steps into for the first time, together with the wall-slot it crossed.
type BulldozerGenerator struct{}

// Name returns the name of this generator
func (g *BulldozerGenerator) Name() string {
	return "Bulldozer"
}

// Generate creates a new maze of rows x cols cells.
// Even dimensions are coerced up to the next odd value.
func (g *BulldozerGenerator) Generate(rows, cols int, rng Source, opts ...Option) (*Maze, error) {
	if rows < MinDimension || cols < MinDimension {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if rng == nil {
		return nil, ErrNilSource
	}

	b := &builder{
		rows: NormalizeDimension(rows),
		cols: NormalizeDimension(cols),
		rng:  rng,
		opts: buildOptions(opts),
	}

	b.initialize()
	if err := b.carve(); err != nil {
		return nil, err
	}
	b.frame()
	b.placeKey()

	return b.finalize(), nil
}

// builder owns the grid while a maze is under construction. Phases run in
// order and nothing outside this file sees the grid before finalize.
type builder struct {
	rows int
	cols int
	rng  Source
	opts options

	grid  *world.Grid
	steps int
	entry world.Position
	exit  world.Position
	key   world.Position
}

// initialize allocates the interior, leaving room for the border
func (b *builder) initialize() {
	b.grid = world.NewGrid(b.rows-2, b.cols-2)
}

// roomSpan returns how many rooms fit along an interior axis of length n
func roomSpan(n int) int {
	return (n + 1) / 2
}

// bulldozer is the carving cursor. It only lives inside carve.
type bulldozer struct {
	pos world.Position
	dir world.Direction
}

// legalDirections returns every direction whose room two steps away is inside the grid
func (d *bulldozer) legalDirections(grid *world.Grid) []world.Direction {
	dirs := make([]world.Direction, 0, 4)
	for _, dir := range []world.Direction{world.West, world.East, world.North, world.South} {
		target := d.pos.Step(dir, 2)
		if grid.IsValidPosition(target.Row, target.Col) {
			dirs = append(dirs, dir)
		}
	}
	return dirs
}

// breakWalls opens the wall-slot and the room ahead if that room is still a
// wall, then moves the cursor onto the room either way. Returns true if a
// room was opened.
func (d *bulldozer) breakWalls(grid *world.Grid) bool {
	target := d.pos.Step(d.dir, 2)
	opened := false
	if grid.GetAt(target) == world.Wall {
		grid.SetAt(d.pos.Step(d.dir, 1), world.Empty)
		grid.SetAt(target, world.Empty)
		opened = true
	}
	d.pos = target
	return opened
}

// carve runs the bulldozer until no room is left closed
func (b *builder) carve() error {
	roomRows := roomSpan(b.grid.Rows())
	roomCols := roomSpan(b.grid.Cols())

	dozer := bulldozer{
		pos: world.Position{
			Row: 2 * b.rng.Intn(roomRows),
			Col: 2 * b.rng.Intn(roomCols),
		},
	}
	b.grid.SetAt(dozer.pos, world.Empty)
	closed := roomRows*roomCols - 1

	for closed > 0 {
		if b.opts.maxSteps > 0 && b.steps >= b.opts.maxSteps {
			return fmt.Errorf("%w: %d rooms still closed after %d steps", ErrNotConverged, closed, b.steps)
		}

		dirs := dozer.legalDirections(b.grid)
		dozer.dir = dirs[b.rng.Intn(len(dirs))]
		if dozer.breakWalls(b.grid) {
			closed--
		}
		b.steps++
	}

	return nil
}

// frame wraps the interior in a border and punches the two portals
func (b *builder) frame() {
	b.grid = b.grid.Framed(world.Border)

	b.exit = world.Position{Row: 0, Col: b.cols - 2}
	b.entry = world.Position{Row: b.rows - 1, Col: 1}
	b.grid.SetAt(b.exit, world.Exit)
	b.grid.SetAt(b.entry, world.Enter)
}

// placeKey drops the key on a random room. Rooms are odd/odd once framed.
func (b *builder) placeKey() {
	b.key = world.Position{
		Row: 1 + 2*b.rng.Intn(roomSpan(b.rows-2)),
		Col: 1 + 2*b.rng.Intn(roomSpan(b.cols-2)),
	}
	b.grid.SetAt(b.key, world.Key)
}

// finalize hands the grid over to an immutable Maze
func (b *builder) finalize() *Maze {
	m := &Maze{
		id:    b.opts.id,
		grid:  b.grid,
		lines: b.grid.Lines(),
		entry: b.entry,
		exit:  b.exit,
		key:   b.key,
		steps: b.steps,
	}
	b.grid = nil
	return m
}
