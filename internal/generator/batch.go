package generator

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"

	"statline/domain/player"
	"statline/internal"
	"statline/ports"
)

// GenerateBatch builds one population per seed, at most limit at a time. Each run
// owns its own generator, so results match sequential Generate calls. Output order
// follows seeds. The first error, or context cancellation, fails the batch.
func GenerateBatch(ctx context.Context, base Config, seeds []int64, limit int) ([][]player.Record, error) {
	if limit <= 0 {
		limit = 1
	}
	if base.Catalog != nil {
		if err := base.Catalog.Validate(); err != nil {
			return nil, err
		}
	}

	sem := semaphore.NewWeighted(int64(limit))
	results := make([][]player.Record, len(seeds))

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	setErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	for i, seed := range seeds {
		if err := sem.Acquire(ctx, 1); err != nil {
			setErr(fmt.Errorf("batch cancelled before seed %d: %w", seed, err))
			break
		}
		wg.Add(1)
		go func(i int, seed int64) {
			defer wg.Done()
			defer sem.Release(1)

			if err := ctx.Err(); err != nil {
				setErr(err)
				return
			}
			cfg := base
			cfg.Seed = seed
			records, err := GenerateWith(cfg)
			if err != nil {
				setErr(fmt.Errorf("seed %d: %w", seed, err))
				return
			}
			results[i] = records
			internal.DefaultLogger.Debug("batch: seed %d produced %d records", seed, len(records))
		}(i, seed)
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}

// Engine serves generation requests against a fixed catalog and source.
type Engine struct {
	Base Config
}

var _ ports.PopulationGenerator = Engine{}

// Generate runs base with seed and count substituted.
func (e Engine) Generate(ctx context.Context, seed int64, count int) ([]player.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cfg := e.Base
	cfg.Seed = seed
	cfg.Count = count
	return GenerateWith(cfg)
}
