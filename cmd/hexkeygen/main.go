package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"syscall"
	"time"

	"hexkeygen/internal/batch"
	"hexkeygen/internal/watchlist"
)

var (
	// Operation mode
	mode = flag.String("mode", "demo", "Operation mode: demo, single, batch, bench, sweep, watch")

	// Generation configuration
	count     = flag.Int("n", 10, "Number of keys for batch mode")
	workers   = flag.Int("w", 4, "Number of concurrent workers")
	benchKeys = flag.Int("bn", 100000, "Key count for bench and sweep modes")
	seed      = flag.Int64("seed", 0, "Base PRNG seed (0 = seed from clock)")

	// Watch mode configuration
	watchFile = flag.String("watchlist", "", "Path to newline-delimited watchlist file")
	dbConn    = flag.String("db", "", "PostgreSQL connection string for the watchlist (alternative to -watchlist)")
	batchSize = flag.Int("batch", 10000, "Batch size for watch mode")
	interval  = flag.Duration("interval", 100*time.Millisecond, "Pause between batches in watch mode")
	hitsFile  = flag.String("hits", "hits.log", "File for logging watchlist matches")

	// Output configuration
	counterInterval = flag.Int("c", 5, "Interval in seconds for reporting stats in watch mode (0 = disabled)")
	verbose         = flag.Bool("v", false, "Enable verbose output")
)

func main() {
	flag.Parse()

	cfg := batch.Config{Workers: *workers, Seed: *seed}

	switch *mode {
	case "demo":
		runDemo(cfg)
	case "single":
		runSingle(cfg)
	case "batch":
		runBatch(cfg)
	case "bench":
		runBench(cfg)
	case "sweep":
		runSweep(cfg)
	case "watch":
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		runWatch(ctx, cfg)
	default:
		log.Fatalf("Unknown mode: %s", *mode)
	}
}

// runDemo prints a single key, ten numbered batch keys, and a
// benchmark report for a 100,000-key parallel batch with 4 workers.
func runDemo(cfg batch.Config) {
	fmt.Println("High-Performance Hex Key Generator")
	fmt.Println("==================================")

	fmt.Println("\nSingle key generation:")
	gen, err := batch.Generate(1, cfg)
	if err != nil {
		log.Fatalf("Failed to generate key: %v", err)
	}
	fmt.Printf("Private Key: %s\n", gen[0])

	fmt.Println("\nBatch key generation (10 keys):")
	keys, err := batch.Generate(10, cfg)
	if err != nil {
		log.Fatalf("Failed to generate batch: %v", err)
	}
	for i, key := range keys {
		fmt.Printf("Key %d: %s\n", i+1, key)
	}

	fmt.Println("\nPerformance Benchmark:")
	fmt.Println("Benchmarking key generation performance...")
	report, err := batch.Benchmark(100000, batch.Config{Workers: 4, Seed: cfg.Seed})
	if err != nil {
		log.Fatalf("Benchmark failed: %v", err)
	}
	fmt.Printf("Generated %d keys in %dms\n", report.KeyCount, report.Elapsed.Milliseconds())
	fmt.Printf("Performance: %.0f keys/second\n", report.KeysPerSecond)
}

func runSingle(cfg batch.Config) {
	keys, err := batch.Generate(1, cfg)
	if err != nil {
		log.Fatalf("Failed to generate key: %v", err)
	}
	fmt.Println(keys[0])
}

func runBatch(cfg batch.Config) {
	keys, err := batch.GenerateParallel(*count, cfg)
	if err != nil {
		log.Fatalf("Failed to generate batch: %v", err)
	}
	for i, key := range keys {
		fmt.Printf("Key %d: %s\n", i+1, key)
	}
}

func runBench(cfg batch.Config) {
	log.Printf("Benchmarking %d keys with %d workers...", *benchKeys, cfg.Workers)
	report, err := batch.Benchmark(*benchKeys, cfg)
	if err != nil {
		log.Fatalf("Benchmark failed: %v", err)
	}
	fmt.Printf("Generated %d keys in %dms\n", report.KeyCount, report.Elapsed.Milliseconds())
	fmt.Printf("Performance: %.0f keys/second (%d workers)\n", report.KeysPerSecond, report.Workers)
}

func runSweep(cfg batch.Config) {
	workerCounts := []int{1, 2, 4, 8}
	log.Printf("Sweeping %d keys across worker counts %v...", *benchKeys, workerCounts)

	results, err := batch.Sweep(*benchKeys, workerCounts, cfg)
	if err != nil {
		log.Fatalf("Sweep failed: %v", err)
	}
	for _, r := range results {
		fmt.Printf("%d workers: %.0f keys/second (%v)\n", r.Workers, r.KeysPerSecond, r.Elapsed.Round(time.Millisecond))
	}
}

// loadWatchlist loads the watchlist from the configured source.
func loadWatchlist() (*watchlist.Watchlist, error) {
	loadCfg := watchlist.LoadConfig{
		FilePath:         *watchFile,
		ConnString:       *dbConn,
		ProgressInterval: 5 * time.Second,
	}

	switch {
	case *watchFile != "":
		log.Printf("Loading watchlist from %s...", *watchFile)
		return watchlist.LoadFromFile(loadCfg)
	case *dbConn != "":
		log.Println("Loading watchlist from database...")
		return watchlist.LoadFromDatabase(loadCfg)
	default:
		return nil, fmt.Errorf("watch mode requires -watchlist <path> or -db <connection-string>")
	}
}
