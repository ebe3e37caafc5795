package watchlist

import (
	"fmt"
	"testing"

	"hexkeygen/internal/keygen"
)

func generateRandomKeys(n int, seed int64) []string {
	gen := keygen.New(seed)
	keys := make([]string, n)
	for i := range keys {
		keys[i] = gen.Key()
	}
	return keys
}

func TestWatchlist_Basic(t *testing.T) {
	w := New(100, 0.001)

	keys := generateRandomKeys(4, 1)
	w.AddBatch(keys)

	// Test positive lookups
	for _, key := range keys {
		if !w.Contains(key) {
			t.Errorf("Expected to find %s", key)
		}
	}

	// Test negative lookups
	for _, key := range generateRandomKeys(4, 2) {
		if w.Contains(key) {
			t.Errorf("Did not expect to find %s", key)
		}
	}
}

func TestWatchlist_ContainsBatch(t *testing.T) {
	w := New(100, 0.001)

	present := generateRandomKeys(3, 1)
	absent := generateRandomKeys(3, 2)
	w.AddBatch(present)

	check := append(append([]string{}, present...), absent...)
	result := w.ContainsBatch(check)

	for _, key := range present {
		if !result[key] {
			t.Errorf("Expected to find %s", key)
		}
	}
	for _, key := range absent {
		if result[key] {
			t.Errorf("Did not expect to find %s", key)
		}
	}
}

func TestWatchlist_AddSingleAndLen(t *testing.T) {
	w := New(10, 0.001)

	keys := generateRandomKeys(5, 3)
	for _, key := range keys {
		w.Add(key)
	}
	// Adding the same key twice must not inflate the count
	w.Add(keys[0])

	if w.Len() != 5 {
		t.Errorf("Expected 5 unique keys, got %d", w.Len())
	}
}

func TestWatchlist_DefaultsForBadParameters(t *testing.T) {
	// Zero capacity and out-of-range rates fall back to defaults
	// instead of panicking inside the bloom filter.
	for _, rate := range []float64{0, -1, 1, 2} {
		w := New(0, rate)
		key := generateRandomKeys(1, 4)[0]
		w.Add(key)
		if !w.Contains(key) {
			t.Errorf("Expected to find %s with rate %f", key, rate)
		}
	}
}

func TestWatchlist_MemoryUsage(t *testing.T) {
	w := New(1000, 0.001)
	w.AddBatch(generateRandomKeys(100, 5))

	if w.MemoryUsage() <= 0 {
		t.Errorf("Expected positive memory usage, got %d", w.MemoryUsage())
	}
}

func BenchmarkWatchlist_Contains(b *testing.B) {
	keys := generateRandomKeys(1_000_000, 1)
	w := New(1_000_000, 0.001)
	w.AddBatch(keys)

	// Half present, half absent
	lookups := make([]string, 1000)
	copy(lookups, keys[:500])
	for i := 500; i < 1000; i++ {
		lookups[i] = fmt.Sprintf("%064d", i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, key := range lookups {
			w.Contains(key)
		}
	}
}

func BenchmarkWatchlist_ContainsBatch(b *testing.B) {
	keys := generateRandomKeys(1_000_000, 1)
	w := New(1_000_000, 0.001)
	w.AddBatch(keys)

	lookups := make([]string, 1000)
	copy(lookups, keys[:500])
	for i := 500; i < 1000; i++ {
		lookups[i] = fmt.Sprintf("%064d", i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.ContainsBatch(lookups)
	}
}
