package vecexpr

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting evaluation metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordAccumulate is called after a single Accumulate of an expression
	// into a destination of the given dimension.
	RecordAccumulate(strategy string, dimension int, duration time.Duration)

	// RecordRun is called after a repeated evaluation run.
	// err is nil if the run succeeded.
	RecordRun(strategy string, iterations int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAccumulate(string, int, time.Duration) {}
func (NoopMetricsCollector) RecordRun(string, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	AccumulateCount      atomic.Int64
	AccumulateElements   atomic.Int64
	AccumulateTotalNanos atomic.Int64
	RunCount             atomic.Int64
	RunErrors            atomic.Int64
	RunIterations        atomic.Int64
	RunTotalNanos        atomic.Int64
}

// RecordAccumulate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAccumulate(_ string, dimension int, duration time.Duration) {
	b.AccumulateCount.Add(1)
	b.AccumulateElements.Add(int64(dimension))
	b.AccumulateTotalNanos.Add(duration.Nanoseconds())
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(_ string, iterations int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	if err != nil {
		b.RunErrors.Add(1)
		return
	}
	b.RunIterations.Add(int64(iterations))
	b.RunTotalNanos.Add(duration.Nanoseconds())
}

// MetricsStats is a point-in-time snapshot of a BasicMetricsCollector.
type MetricsStats struct {
	AccumulateCount     int64
	AccumulateElements  int64
	AverageAccumulateNs int64
	RunCount            int64
	RunErrors           int64
	RunIterations       int64
	AverageIterationNs  int64
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() MetricsStats {
	stats := MetricsStats{
		AccumulateCount:    b.AccumulateCount.Load(),
		AccumulateElements: b.AccumulateElements.Load(),
		RunCount:           b.RunCount.Load(),
		RunErrors:          b.RunErrors.Load(),
		RunIterations:      b.RunIterations.Load(),
	}
	if stats.AccumulateCount > 0 {
		stats.AverageAccumulateNs = b.AccumulateTotalNanos.Load() / stats.AccumulateCount
	}
	if stats.RunIterations > 0 {
		stats.AverageIterationNs = b.RunTotalNanos.Load() / stats.RunIterations
	}
	return stats
}
