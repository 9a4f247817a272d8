package sim

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/tui-life/internal/core"
)

// BatchResult is the outcome of one headless run.
type BatchResult struct {
	Config     core.RuntimeConfig
	Generation uint64
	Population int
}

// RunBatch runs every config for the given number of generations, in
// parallel, one Simulation per run. Results keep the order of cfgs.
// workers <= 0 uses one worker per CPU. The first failure cancels the rest.
func RunBatch(ctx context.Context, cfgs []core.RuntimeConfig, generations uint64, workers int) ([]BatchResult, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]BatchResult, len(cfgs))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, cfg := range cfgs {
		eg.Go(func() error {
			s := New(DefaultDisplay())
			if err := s.Reset(cfg); err != nil {
				return fmt.Errorf("run %d: %w", i, err)
			}
			for gen := uint64(0); gen < generations; gen++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				s.Advance()
			}
			st := s.State()
			results[i] = BatchResult{Config: s.Config(), Generation: st.Generation, Population: st.Population}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("sim: batch: %w", err)
	}
	return results, nil
}
