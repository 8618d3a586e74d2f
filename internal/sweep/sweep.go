// Package sweep evaluates random Game of Life soups headlessly, one board per
// seed, in parallel.
package sweep

import (
	"context"
	"fmt"
	"runtime"

	"lifeviewer/internal/core"

	"golang.org/x/sync/errgroup"
)

// Config describes a batch of soups.
type Config struct {
	Rows    int
	Cols    int
	Density float64
	Steps   int

	// Seeds BaseSeed, BaseSeed+1, ... BaseSeed+Count-1 are evaluated.
	BaseSeed int64
	Count    int

	Workers int
}

// DefaultConfig returns a batch on the reference board.
func DefaultConfig() Config {
	return Config{
		Rows:     80,
		Cols:     100,
		Density:  0.25,
		Steps:    500,
		BaseSeed: 1,
		Count:    16,
		Workers:  runtime.NumCPU(),
	}
}

// Result summarizes one soup.
type Result struct {
	Seed    int64
	Initial int
	Final   int
	Peak    int
	// ExtinctAt is the generation at which the board emptied, or -1.
	ExtinctAt int
}

// Run steps every soup for cfg.Steps generations and returns the results in
// seed order. It stops early when ctx is cancelled.
func Run(ctx context.Context, cfg Config) ([]Result, error) {
	if cfg.Count < 0 || cfg.Steps < 0 {
		return nil, fmt.Errorf("sweep: negative count %d or steps %d", cfg.Count, cfg.Steps)
	}
	if _, err := core.NewGrid(cfg.Rows, cfg.Cols); err != nil {
		return nil, fmt.Errorf("sweep: %w", err)
	}

	results := make([]Result, cfg.Count)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, cfg.Workers))
	for i := range results {
		seed := cfg.BaseSeed + int64(i)
		g.Go(func() error {
			res, err := evaluate(ctx, cfg, seed)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func evaluate(ctx context.Context, cfg Config, seed int64) (Result, error) {
	grid, err := core.NewGrid(cfg.Rows, cfg.Cols)
	if err != nil {
		return Result{}, err
	}
	grid.Randomize(core.NewRNG(seed), cfg.Density)

	res := Result{Seed: seed, Initial: grid.Population(), ExtinctAt: -1}
	res.Peak = res.Initial
	if res.Initial == 0 {
		res.ExtinctAt = 0
	}
	for step := 0; step < cfg.Steps; step++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		grid.Step()
		pop := grid.Population()
		res.Peak = max(res.Peak, pop)
		if pop == 0 && res.ExtinctAt < 0 {
			res.ExtinctAt = grid.Generation()
		}
	}
	res.Final = grid.Population()
	return res, nil
}
