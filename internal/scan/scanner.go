// Package scan runs continuous batch key generation against a
// watchlist, emitting matches as they are found.
package scan

import (
	"context"
	"log"
	"sync/atomic"
	"time"

	"hexkeygen/internal/batch"
	"hexkeygen/internal/watchlist"
)

// Match is a generated key found in the watchlist.
type Match struct {
	Key   string
	Batch int64
}

// Stats contains scanner statistics.
type Stats struct {
	KeysGenerated int64
	BatchesRun    int64
	MatchesFound  int64
}

// Config contains scanner configuration.
type Config struct {
	// Keys generated per batch.
	BatchSize int

	// Concurrent workers per batch.
	Workers int

	// Pause between batches (0 = none).
	Interval time.Duration

	// Base seed. Zero seeds every batch from the clock; a non-zero
	// seed makes batch n use seed+n, so runs are reproducible.
	Seed int64

	// Verbose logging.
	Verbose bool
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		BatchSize: 10000,
		Workers:   4,
		Interval:  100 * time.Millisecond,
	}
}

// Scanner generates key batches in a loop and checks each batch
// against the watchlist.
type Scanner struct {
	watch *watchlist.Watchlist
	cfg   Config

	keysGenerated int64
	batchesRun    int64
	matchesFound  int64
}

// New creates a Scanner over the given watchlist.
func New(watch *watchlist.Watchlist, cfg Config) *Scanner {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultConfig().BatchSize
	}
	return &Scanner{
		watch: watch,
		cfg:   cfg,
	}
}

// Run starts the scan loop, returning matches on the channel. The
// loop runs until the context is cancelled; the channel is closed on
// return.
func (s *Scanner) Run(ctx context.Context) <-chan Match {
	matches := make(chan Match, 10)

	go func() {
		defer close(matches)

		for n := int64(0); ; n++ {
			select {
			case <-ctx.Done():
				return
			default:
			}

			keys, err := batch.GenerateParallel(s.cfg.BatchSize, batch.Config{
				Workers: s.cfg.Workers,
				Seed:    s.batchSeed(n),
			})
			if err != nil {
				if s.cfg.Verbose {
					log.Printf("Error generating batch %d: %v", n, err)
				}
				return
			}

			atomic.AddInt64(&s.batchesRun, 1)
			atomic.AddInt64(&s.keysGenerated, int64(len(keys)))

			found := s.watch.ContainsBatch(keys)
			for _, key := range keys {
				if !found[key] {
					continue
				}
				atomic.AddInt64(&s.matchesFound, 1)
				select {
				case matches <- Match{Key: key, Batch: n}:
				case <-ctx.Done():
					return
				}
			}

			if s.cfg.Interval > 0 {
				select {
				case <-ctx.Done():
					return
				case <-time.After(s.cfg.Interval):
				}
			}
		}
	}()

	return matches
}

// batchSeed derives the seed for batch n.
func (s *Scanner) batchSeed(n int64) int64 {
	if s.cfg.Seed == 0 {
		return 0
	}
	return s.cfg.Seed + n
}

// Stats returns current statistics.
func (s *Scanner) Stats() Stats {
	return Stats{
		KeysGenerated: atomic.LoadInt64(&s.keysGenerated),
		BatchesRun:    atomic.LoadInt64(&s.batchesRun),
		MatchesFound:  atomic.LoadInt64(&s.matchesFound),
	}
}

// Close releases resources.
func (s *Scanner) Close() error {
	return nil
}
