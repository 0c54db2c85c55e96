// Package solvability audits finished mazes: every open cell reachable from
// the entry, key and exit reachable, border intact, portals aligned.
package solvability

import (
	"errors"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"keymaze/pkg/engine/world"
)

// Layout is the read-only view of a maze the audit needs.
type Layout interface {
	Height() int
	Width() int
	At(row, col int) world.Code
}

// Audit errors.
var (
	ErrTooSmall       = errors.New("layout is smaller than 3x3")
	ErrPortalCount    = errors.New("layout must have exactly one entry and one exit")
	ErrKeyCount       = errors.New("layout must have exactly one key")
	ErrBorderLeak     = errors.New("border ring holds a non-border cell")
	ErrPortalMisalign = errors.New("portal does not open onto an open cell")
	ErrClosedRoom     = errors.New("room cell is still a wall")
	ErrDisconnected   = errors.New("open cells are not all reachable from the entry")
)

// Report is the result of auditing a layout
type Report struct {
	Counts map[world.Code]int

	OpenCells  int
	Reachable  int
	Components int
	ClosedRoom int

	Entry world.Position
	Exit  world.Position
	Key   world.Position

	BorderPure    bool
	EntryAligned  bool
	ExitAligned   bool
	KeyReachable  bool
	ExitReachable bool
}

// Solvable returns true when a player entering the maze can collect the key
// and reach the exit
func (r Report) Solvable() bool {
	return r.EntryAligned && r.ExitAligned && r.KeyReachable && r.ExitReachable
}

// Check audits the layout. It never fails; Validate turns the report into errors.
func Check(l Layout) Report {
	r := Report{
		Counts:     make(map[world.Code]int),
		BorderPure: true,
	}
	rows, cols := l.Height(), l.Width()

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			code := l.At(row, col)
			r.Counts[code]++

			switch code {
			case world.Enter:
				r.Entry = world.Position{Row: row, Col: col}
			case world.Exit:
				r.Exit = world.Position{Row: row, Col: col}
			case world.Key:
				r.Key = world.Position{Row: row, Col: col}
			}

			onBorder := row == 0 || col == 0 || row == rows-1 || col == cols-1
			if onBorder && code != world.Border && !code.IsPortal() {
				r.BorderPure = false
			}
			if code.IsOpen() {
				r.OpenCells++
			}
			if !onBorder && row%2 == 1 && col%2 == 1 && code == world.Wall {
				r.ClosedRoom++
			}
		}
	}

	entryInside := inward(r.Entry, rows, cols)
	exitInside := inward(r.Exit, rows, cols)
	r.EntryAligned = r.Counts[world.Enter] == 1 && l.At(entryInside.Row, entryInside.Col).IsOpen()
	r.ExitAligned = r.Counts[world.Exit] == 1 && l.At(exitInside.Row, exitInside.Col).IsOpen()

	seen := mapset.New[world.Position]()
	if r.EntryAligned {
		reachable := flood(l, entryInside, &seen)
		r.Reachable = reachable.Size()
		r.KeyReachable = r.Counts[world.Key] == 1 && reachable.Has(r.Key)
		r.ExitReachable = r.ExitAligned && reachable.Has(exitInside)
		r.Components++
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			p := world.Position{Row: row, Col: col}
			if l.At(row, col).IsOpen() && !seen.Has(p) {
				flood(l, p, &seen)
				r.Components++
			}
		}
	}

	return r
}

// Validate audits the layout and returns every violated guarantee joined
// into one error, or nil
func Validate(l Layout) error {
	if l.Height() < 3 || l.Width() < 3 {
		return fmt.Errorf("%w: got %dx%d", ErrTooSmall, l.Height(), l.Width())
	}

	r := Check(l)
	var errs []error

	if r.Counts[world.Enter] != 1 || r.Counts[world.Exit] != 1 {
		errs = append(errs, fmt.Errorf("%w: %d entries, %d exits", ErrPortalCount, r.Counts[world.Enter], r.Counts[world.Exit]))
	}
	if r.Counts[world.Key] != 1 {
		errs = append(errs, fmt.Errorf("%w: found %d", ErrKeyCount, r.Counts[world.Key]))
	}
	if !r.BorderPure {
		errs = append(errs, ErrBorderLeak)
	}
	if !r.EntryAligned || !r.ExitAligned {
		errs = append(errs, ErrPortalMisalign)
	}
	if r.ClosedRoom > 0 {
		errs = append(errs, fmt.Errorf("%w: %d rooms", ErrClosedRoom, r.ClosedRoom))
	}
	if r.Components != 1 || r.Reachable != r.OpenCells {
		errs = append(errs, fmt.Errorf("%w: %d of %d reachable, %d components", ErrDisconnected, r.Reachable, r.OpenCells, r.Components))
	}

	return errors.Join(errs...)
}

// inward returns the cell just inside the border from a portal position
func inward(p world.Position, rows, cols int) world.Position {
	switch {
	case p.Row == 0:
		return world.Position{Row: 1, Col: p.Col}
	case p.Row == rows-1:
		return world.Position{Row: rows - 2, Col: p.Col}
	case p.Col == 0:
		return world.Position{Row: p.Row, Col: 1}
	default:
		return world.Position{Row: p.Row, Col: cols - 2}
	}
}

// flood returns all open cells connected to start by BFS, adding them to seen
func flood(l Layout, start world.Position, seen *mapset.Set[world.Position]) mapset.Set[world.Position] {
	reachable := mapset.New[world.Position]()
	queue := []world.Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if reachable.Has(current) || !l.At(current.Row, current.Col).IsOpen() {
			continue
		}

		reachable.Put(current)
		seen.Put(current)

		for _, n := range current.Neighbors() {
			if !reachable.Has(n) && l.At(n.Row, n.Col).IsOpen() {
				queue = append(queue, n)
			}
		}
	}

	return reachable
}
