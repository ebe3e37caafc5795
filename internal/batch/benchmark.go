package batch

import (
	"time"
)

// sweepRuns is the number of timed passes averaged per worker count.
const sweepRuns = 3

// Report summarizes one benchmark run.
type Report struct {
	KeyCount      int
	Workers       int
	Elapsed       time.Duration
	KeysPerSecond float64
}

// SweepResult holds measured throughput for one worker count.
type SweepResult struct {
	Workers       int
	Elapsed       time.Duration
	KeysPerSecond float64
}

// throughput converts a key count and elapsed duration to keys per
// second. A zero or negative elapsed reading is clamped before
// dividing, so the result is always finite.
func throughput(count int, elapsed time.Duration) float64 {
	if elapsed <= 0 {
		elapsed = time.Nanosecond
	}
	return float64(count) / elapsed.Seconds()
}

// Benchmark times a full parallel batch generation of keyCount keys
// and reports the measured throughput.
func Benchmark(keyCount int, cfg Config) (Report, error) {
	start := time.Now()
	keys, err := GenerateParallel(keyCount, cfg)
	if err != nil {
		return Report{}, err
	}
	elapsed := time.Since(start)

	return Report{
		KeyCount:      len(keys),
		Workers:       clampWorkers(keyCount, cfg.Workers),
		Elapsed:       elapsed,
		KeysPerSecond: throughput(len(keys), elapsed),
	}, nil
}

// Sweep benchmarks keyCount keys at each of the given worker counts,
// averaging the elapsed time over repeated passes per count.
func Sweep(keyCount int, workerCounts []int, cfg Config) ([]SweepResult, error) {
	results := make([]SweepResult, 0, len(workerCounts))

	for _, workers := range workerCounts {
		runCfg := cfg
		runCfg.Workers = workers

		var total time.Duration
		for run := 0; run < sweepRuns; run++ {
			start := time.Now()
			if _, err := GenerateParallel(keyCount, runCfg); err != nil {
				return nil, err
			}
			total += time.Since(start)
		}

		avg := total / sweepRuns
		results = append(results, SweepResult{
			Workers:       clampWorkers(keyCount, workers),
			Elapsed:       avg,
			KeysPerSecond: throughput(keyCount, avg),
		})
	}

	return results, nil
}
