package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
	"time"

	"hexkeygen/internal/batch"
	"hexkeygen/internal/scan"
)

// Mutex for hits file writes
var hitsFileMutex sync.Mutex

// runWatch generates key batches continuously, checks them against a
// watchlist, and logs matches until the context is cancelled.
func runWatch(ctx context.Context, cfg batch.Config) {
	watch, err := loadWatchlist()
	if err != nil {
		log.Fatalf("Failed to load watchlist: %v", err)
	}
	log.Printf("Watchlist ready: %d keys (%.1f MB memory)",
		watch.Len(), float64(watch.MemoryUsage())/(1024*1024))

	scanner := scan.New(watch, scan.Config{
		BatchSize: *batchSize,
		Workers:   cfg.Workers,
		Interval:  *interval,
		Seed:      cfg.Seed,
		Verbose:   *verbose,
	})
	defer scanner.Close()

	log.Printf("Starting continuous generation: batch size %d, %d workers", *batchSize, cfg.Workers)
	matches := scanner.Run(ctx)

	// Progress reporter
	if *counterInterval > 0 {
		go func() {
			ticker := time.NewTicker(time.Duration(*counterInterval) * time.Second)
			defer ticker.Stop()

			lastCount := int64(0)
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					stats := scanner.Stats()
					rate := (stats.KeysGenerated - lastCount) / int64(*counterInterval)
					lastCount = stats.KeysGenerated
					log.Printf("Generated %d keys (%d/sec), %d batches, %d matches",
						stats.KeysGenerated, rate, stats.BatchesRun, stats.MatchesFound)
				}
			}
		}()
	}

	for match := range matches {
		logHit(match)
	}

	stats := scanner.Stats()
	log.Printf("Shutdown complete. Keys generated: %d, Batches: %d, Matches: %d",
		stats.KeysGenerated, stats.BatchesRun, stats.MatchesFound)
}

// logHit prints a match and appends it to the hits file.
func logHit(match scan.Match) {
	msg := fmt.Sprintf("HIT FOUND! Key: %s (batch %d)", match.Key, match.Batch)

	fmt.Println(strings.Repeat("=", 60))
	fmt.Println(msg)
	fmt.Println(strings.Repeat("=", 60))

	hitsFileMutex.Lock()
	defer hitsFileMutex.Unlock()

	file, err := os.OpenFile(*hitsFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		log.Printf("Error opening %s: %v", *hitsFile, err)
		return
	}
	defer file.Close()

	timestamp := time.Now().Format(time.RFC3339)
	logLine := fmt.Sprintf("[%s] Key: %s | Batch: %d\n", timestamp, match.Key, match.Batch)
	if _, err := file.WriteString(logLine); err != nil {
		log.Printf("Error writing to %s: %v", *hitsFile, err)
	}
}
