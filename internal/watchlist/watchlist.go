// Package watchlist tracks a set of target key strings and answers
// membership queries for generated keys.
package watchlist

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
)

// Watchlist answers membership queries with a Bloom filter front
// backed by an exact set. The filter cheaply rejects the overwhelming
// majority of generated keys; the exact set resolves false positives.
type Watchlist struct {
	filter *bloom.BloomFilter
	exact  map[string]struct{}

	mu sync.RWMutex
}

// DefaultFalsePositiveRate is used when no rate is configured.
const DefaultFalsePositiveRate = 0.001

// New creates a Watchlist sized for the expected entry count at the
// given Bloom filter false positive rate.
func New(capacity int, falsePositiveRate float64) *Watchlist {
	if capacity < 1 {
		capacity = 1
	}
	if falsePositiveRate <= 0 || falsePositiveRate >= 1 {
		falsePositiveRate = DefaultFalsePositiveRate
	}

	return &Watchlist{
		filter: bloom.NewWithEstimates(uint(capacity), falsePositiveRate),
		exact:  make(map[string]struct{}, capacity),
	}
}

// Add adds a single key.
func (w *Watchlist) Add(key string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.filter.AddString(key)
	w.exact[key] = struct{}{}
}

// AddBatch adds multiple keys efficiently.
func (w *Watchlist) AddBatch(keys []string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, key := range keys {
		w.filter.AddString(key)
		w.exact[key] = struct{}{}
	}
}

// Contains reports whether a key exists in the set.
func (w *Watchlist) Contains(key string) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()

	if !w.filter.TestString(key) {
		return false
	}
	_, ok := w.exact[key]
	return ok
}

// ContainsBatch checks multiple keys and returns a map of matches.
// More efficient than calling Contains repeatedly.
func (w *Watchlist) ContainsBatch(keys []string) map[string]bool {
	result := make(map[string]bool)

	w.mu.RLock()
	defer w.mu.RUnlock()

	for _, key := range keys {
		if !w.filter.TestString(key) {
			continue
		}
		if _, ok := w.exact[key]; ok {
			result[key] = true
		}
	}

	return result
}

// Len returns the number of unique keys in the set.
func (w *Watchlist) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.exact)
}

// MemoryUsage returns approximate memory usage in bytes.
func (w *Watchlist) MemoryUsage() int64 {
	w.mu.RLock()
	defer w.mu.RUnlock()

	// Bloom filter: one bit per filter cell
	total := int64(w.filter.Cap() / 8)

	for key := range w.exact {
		total += int64(len(key) + 16) // string header overhead
	}

	return total
}
