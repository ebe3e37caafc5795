// Package hexkeygen generates hex-encoded 32-byte key strings from a
// non-cryptographic pseudo-random source, sequentially or split across
// worker goroutines.
//
// The randomness comes from math/rand and carries no security
// properties. Output strings are display artifacts of random bytes,
// not usable key material.
package hexkeygen

import (
	"hexkeygen/internal/batch"
	"hexkeygen/internal/keygen"
)

const (
	// KeyHexLen is the length of every generated key string.
	KeyHexLen = keygen.KeyHexLen

	// DefaultWorkers is the worker count used when none is given.
	DefaultWorkers = 4

	// DefaultBenchmarkKeys is the batch size used when Benchmark is
	// called without a key count.
	DefaultBenchmarkKeys = 100000
)

// GenerateKey returns one 64-character lowercase hex key from a
// clock-seeded generator.
func GenerateKey() string {
	return keygen.NewFromClock().Key()
}

// GenerateBatch returns count keys in draw order. count must be >= 0;
// zero returns an empty result.
func GenerateBatch(count int) ([]string, error) {
	return batch.Generate(count, batch.DefaultConfig())
}

// GenerateBatchParallel splits generation of count keys across the
// given number of worker goroutines. workers <= 0 selects
// DefaultWorkers; a worker count above count is clamped to count.
func GenerateBatchParallel(count, workers int) ([]string, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	cfg := batch.DefaultConfig()
	cfg.Workers = workers
	return batch.GenerateParallel(count, cfg)
}

// Benchmark times a parallel batch of keyCount keys and returns the
// measured throughput in keys per second. keyCount <= 0 selects
// DefaultBenchmarkKeys.
func Benchmark(keyCount int) (float64, error) {
	if keyCount <= 0 {
		keyCount = DefaultBenchmarkKeys
	}
	report, err := batch.Benchmark(keyCount, batch.DefaultConfig())
	if err != nil {
		return 0, err
	}
	return report.KeysPerSecond, nil
}
