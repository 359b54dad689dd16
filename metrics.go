package cmeans

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordIteration is called after each Engine.Step.
	// dropped is the number of input centroids missing from the candidates,
	// degenerate reports a result the caller should not commit.
	RecordIteration(alg Algorithm, duration time.Duration, dropped int, degenerate bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordIteration(Algorithm, time.Duration, int, bool) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// It is safe for concurrent use.
type BasicMetricsCollector struct {
	IterationCount      atomic.Int64
	IterationTotalNanos atomic.Int64
	HardCount           atomic.Int64
	FuzzyCount          atomic.Int64
	DroppedCentroids    atomic.Int64
	DegenerateCount     atomic.Int64
}

// RecordIteration implements MetricsCollector.
func (b *BasicMetricsCollector) RecordIteration(alg Algorithm, duration time.Duration, dropped int, degenerate bool) {
	b.IterationCount.Add(1)
	b.IterationTotalNanos.Add(duration.Nanoseconds())

	switch alg {
	case AlgorithmHard:
		b.HardCount.Add(1)
	case AlgorithmFuzzy:
		b.FuzzyCount.Add(1)
	}

	b.DroppedCentroids.Add(int64(dropped))
	if degenerate {
		b.DegenerateCount.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		IterationCount:    b.IterationCount.Load(),
		IterationAvgNanos: b.getAvgIterationNanos(),
		HardCount:         b.HardCount.Load(),
		FuzzyCount:        b.FuzzyCount.Load(),
		DroppedCentroids:  b.DroppedCentroids.Load(),
		DegenerateCount:   b.DegenerateCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgIterationNanos() int64 {
	count := b.IterationCount.Load()
	if count == 0 {
		return 0
	}
	return b.IterationTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	IterationCount    int64
	IterationAvgNanos int64
	HardCount         int64
	FuzzyCount        int64
	DroppedCentroids  int64
	DegenerateCount   int64
}
