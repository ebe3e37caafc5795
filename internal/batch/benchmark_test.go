package batch

import (
	"math"
	"testing"
	"time"
)

func TestBenchmarkReport(t *testing.T) {
	report, err := Benchmark(5000, Config{Workers: 4})
	if err != nil {
		t.Fatalf("Benchmark returned error: %v", err)
	}

	if report.KeyCount != 5000 {
		t.Errorf("Expected KeyCount 5000, got %d", report.KeyCount)
	}
	if report.Workers != 4 {
		t.Errorf("Expected Workers 4, got %d", report.Workers)
	}
	if report.Elapsed < 0 {
		t.Errorf("Expected non-negative elapsed time, got %v", report.Elapsed)
	}
	if report.KeysPerSecond <= 0 {
		t.Errorf("Expected positive throughput, got %f", report.KeysPerSecond)
	}
	if math.IsInf(report.KeysPerSecond, 0) || math.IsNaN(report.KeysPerSecond) {
		t.Errorf("Expected finite throughput, got %f", report.KeysPerSecond)
	}
}

func TestBenchmarkNegativeCount(t *testing.T) {
	if _, err := Benchmark(-5, DefaultConfig()); err == nil {
		t.Error("Expected error for negative key count")
	}
}

func TestThroughputZeroElapsed(t *testing.T) {
	// A run that completes below the clock resolution must not divide
	// by zero.
	got := throughput(100000, 0)
	if got <= 0 || math.IsInf(got, 0) || math.IsNaN(got) {
		t.Errorf("Expected positive finite throughput for zero elapsed, got %f", got)
	}

	got = throughput(100000, -time.Millisecond)
	if got <= 0 || math.IsInf(got, 0) || math.IsNaN(got) {
		t.Errorf("Expected positive finite throughput for negative elapsed, got %f", got)
	}
}

func TestThroughputScales(t *testing.T) {
	slow := throughput(1000, time.Second)
	fast := throughput(1000, 100*time.Millisecond)

	if slow != 1000 {
		t.Errorf("Expected 1000 keys/sec for 1000 keys in 1s, got %f", slow)
	}
	if fast != 10000 {
		t.Errorf("Expected 10000 keys/sec for 1000 keys in 100ms, got %f", fast)
	}
}

func TestSweep(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping sweep in short mode")
	}

	workerCounts := []int{1, 2}
	results, err := Sweep(2000, workerCounts, Config{Seed: 1})
	if err != nil {
		t.Fatalf("Sweep returned error: %v", err)
	}

	if len(results) != len(workerCounts) {
		t.Fatalf("Expected %d results, got %d", len(workerCounts), len(results))
	}
	for i, r := range results {
		if r.Workers != workerCounts[i] {
			t.Errorf("Result %d: expected %d workers, got %d", i, workerCounts[i], r.Workers)
		}
		if r.KeysPerSecond <= 0 {
			t.Errorf("Result %d: expected positive throughput, got %f", i, r.KeysPerSecond)
		}
	}
}
