package watchlist

import (
	"bufio"
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
)

// LoadConfig configures how watchlist keys are loaded.
type LoadConfig struct {
	// Path to a newline-delimited key file.
	FilePath string

	// PostgreSQL connection string (alternative to FilePath).
	ConnString string

	// Estimated entry count for pre-allocation (0 = auto).
	EstimatedCount int

	// Bloom filter false positive rate (0 = default).
	FalsePositiveRate float64

	// Progress logging interval (0 = no progress).
	ProgressInterval time.Duration
}

// LoadFromFile loads keys from a newline-delimited file, one key per
// line. Blank lines are skipped.
func LoadFromFile(cfg LoadConfig) (*Watchlist, error) {
	file, err := os.Open(cfg.FilePath)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return LoadFromReader(file, cfg)
}

// LoadFromReader loads keys from any io.Reader, one per line.
func LoadFromReader(r io.Reader, cfg LoadConfig) (*Watchlist, error) {
	capacity := cfg.EstimatedCount
	if capacity == 0 {
		capacity = 1_000_000 // Default estimate
	}

	watch := New(capacity, cfg.FalsePositiveRate)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024*1024), 1024*1024)

	var loaded int64
	lastProgress := time.Now()
	startTime := time.Now()

	// Batch for efficiency
	batch := make([]string, 0, 10000)

	for scanner.Scan() {
		key := strings.TrimSpace(scanner.Text())
		if key == "" {
			continue
		}

		batch = append(batch, key)

		// Flush batch
		if len(batch) >= 10000 {
			watch.AddBatch(batch)
			loaded += int64(len(batch))
			batch = batch[:0]
		}

		// Progress reporting
		if cfg.ProgressInterval > 0 && time.Since(lastProgress) >= cfg.ProgressInterval {
			rate := float64(loaded) / time.Since(startTime).Seconds()
			log.Printf("Loading watchlist: %d keys (%.0f/sec)", loaded, rate)
			lastProgress = time.Now()
		}
	}

	// Flush remaining
	if len(batch) > 0 {
		watch.AddBatch(batch)
		loaded += int64(len(batch))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning input: %w", err)
	}

	elapsed := time.Since(startTime)
	memMB := float64(watch.MemoryUsage()) / (1024 * 1024)
	log.Printf("Loaded %d watchlist keys in %v (%.1f MB memory)",
		watch.Len(), elapsed.Round(time.Millisecond), memMB)

	return watch, nil
}

// LoadFromDatabase loads keys from the watch_keys table in PostgreSQL.
func LoadFromDatabase(cfg LoadConfig) (*Watchlist, error) {
	db, err := sql.Open("postgres", cfg.ConnString)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query("SELECT key FROM watch_keys")
	if err != nil {
		return nil, fmt.Errorf("querying watch_keys: %w", err)
	}
	defer rows.Close()

	capacity := cfg.EstimatedCount
	if capacity == 0 {
		capacity = 1_000_000
	}
	watch := New(capacity, cfg.FalsePositiveRate)

	batch := make([]string, 0, 10000)
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scanning row: %w", err)
		}

		batch = append(batch, key)
		if len(batch) >= 10000 {
			watch.AddBatch(batch)
			batch = batch[:0]
		}
	}
	if len(batch) > 0 {
		watch.AddBatch(batch)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}

	log.Printf("Loaded %d watchlist keys from database", watch.Len())
	return watch, nil
}
