// Package batch generates sets of mazes from a single master seed, the way a
// game pre-builds a pool of levels and picks one per round.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"

	"golang.org/x/sync/errgroup"

	"keymaze/pkg/game/generator"
)

// ErrEmpty is returned by Pick for an empty pool
var ErrEmpty = errors.New("no mazes to pick from")

// Request describes one batch
type Request struct {
	Rows     int
	Cols     int
	Count    int
	Seed     int64
	MaxSteps int
	Workers  int
}

// Seeds derives the per-maze seeds of a batch from its master seed.
// The same master seed always yields the same list.
func Seeds(master int64, count int) []int64 {
	rng := rand.New(rand.NewSource(master))
	seeds := make([]int64, count)
	for i := range seeds {
		seeds[i] = rng.Int63()
	}
	return seeds
}

// Generate builds req.Count mazes, in seed order, using up to req.Workers
// goroutines. Cancelling ctx stops mazes that have not started yet; the
// first failure cancels the rest.
func Generate(ctx context.Context, req Request) ([]*generator.Maze, error) {
	if req.Count < 1 {
		return nil, fmt.Errorf("batch count must be positive, got %d", req.Count)
	}

	workers := req.Workers
	if workers < 1 {
		workers = 1
	}

	seeds := Seeds(req.Seed, req.Count)
	mazes := make([]*generator.Maze, req.Count)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, seed := range seeds {
		i, seed := i, seed // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			m, err := generator.GenerateSeeded(req.Rows, req.Cols, seed, generator.WithMaxSteps(req.MaxSteps))
			if err != nil {
				return fmt.Errorf("maze %d (seed %d): %w", i, seed, err)
			}

			mazes[i] = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Printf("[Batch] Generated %d mazes of %dx%d from seed %d", req.Count, mazes[0].Height(), mazes[0].Width(), req.Seed)
	return mazes, nil
}

// Pick returns a random maze from the pool
func Pick(mazes []*generator.Maze, rng generator.Source) (*generator.Maze, error) {
	if len(mazes) == 0 {
		return nil, ErrEmpty
	}
	return mazes[rng.Intn(len(mazes))], nil
}
