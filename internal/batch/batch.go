// Package batch splits key generation work across worker goroutines
// and reassembles ordered results.
package batch

import (
	"fmt"
	"sync"
	"time"

	"hexkeygen/internal/keygen"
)

// Config contains batch generation configuration.
type Config struct {
	// Number of concurrent workers for parallel generation.
	Workers int

	// Base seed for the pseudo-random sources. Zero seeds from the
	// clock at generation time.
	Seed int64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{Workers: 4}
}

// span is a contiguous half-open index range owned by one worker.
type span struct {
	start, end int
}

// clampWorkers bounds a requested worker count to [1, count] so that
// range partitioning is always defined and no worker receives an
// empty range. A count of zero still yields one worker.
func clampWorkers(count, workers int) int {
	if workers > count {
		workers = count
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// partition splits [0,count) into one contiguous, non-overlapping
// range per worker. The last range absorbs the remainder from integer
// division, so every index is covered exactly once.
func partition(count, workers int) []span {
	if count <= 0 {
		return nil
	}
	workers = clampWorkers(count, workers)

	perWorker := count / workers
	spans := make([]span, workers)
	for w := 0; w < workers; w++ {
		start := w * perWorker
		end := start + perWorker
		if w == workers-1 {
			end = count
		}
		spans[w] = span{start: start, end: end}
	}
	return spans
}

// baseSeed resolves the configured seed, defaulting to a clock reading.
func baseSeed(cfg Config) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}

// workerSeed derives an independent seed for one worker by mixing the
// base seed with the worker index.
func workerSeed(base int64, worker int) int64 {
	return int64(uint64(base) + uint64(worker)*0x9E3779B97F4A7C15)
}

// Generate produces count keys in draw order using a single generator.
// count must be >= 0; zero returns an empty (non-nil) result.
func Generate(count int, cfg Config) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("key count must be non-negative, got %d", count)
	}

	keys := make([]string, count)
	gen := keygen.New(baseSeed(cfg))
	for i := range keys {
		keys[i] = gen.Key()
	}
	return keys, nil
}

// GenerateParallel produces count keys split across cfg.Workers
// goroutines. Each worker owns an independent generator and writes
// only its assigned range of the shared result buffer, so the ranges
// need no locking and result ordering is deterministic by construction.
// The call blocks until every worker completes.
func GenerateParallel(count int, cfg Config) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("key count must be non-negative, got %d", count)
	}

	keys := make([]string, count)
	if count == 0 {
		return keys, nil
	}

	base := baseSeed(cfg)

	var wg sync.WaitGroup
	for w, sp := range partition(count, cfg.Workers) {
		wg.Add(1)
		go func(w int, sp span) {
			defer wg.Done()
			gen := keygen.New(workerSeed(base, w))
			for i := sp.start; i < sp.end; i++ {
				keys[i] = gen.Key()
			}
		}(w, sp)
	}
	wg.Wait()

	return keys, nil
}
