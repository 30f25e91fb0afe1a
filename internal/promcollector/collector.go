// Package promcollector implements vecexpr.MetricsCollector on top of
// Prometheus client metrics.
//
// # Metrics
//
//   - vecexpr_accumulate_total: Accumulate calls by strategy
//   - vecexpr_accumulate_elements_total: elements written by strategy
//   - vecexpr_accumulate_duration_seconds: Accumulate latency by strategy
//   - vecexpr_runs_total: repeated runs by strategy and status
//   - vecexpr_run_iteration_seconds: mean time per iteration of a run
//
// # Thread Safety
//
// All operations are thread-safe via Prometheus's internal locking.
package promcollector

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	"github.com/hupe1980/vecexpr"
)

const metricsNamespace = "vecexpr"

// Collector records evaluation metrics into a Prometheus registry.
type Collector struct {
	registry *prometheus.Registry

	accumulateTotal    *prometheus.CounterVec
	accumulateElements *prometheus.CounterVec
	accumulateDuration *prometheus.HistogramVec
	runsTotal          *prometheus.CounterVec
	runIteration       *prometheus.HistogramVec
}

var _ vecexpr.MetricsCollector = (*Collector)(nil)

// New creates a Collector registered on its own registry.
func New() *Collector {
	return NewWithRegistry(prometheus.NewRegistry())
}

// NewWithRegistry creates a Collector registered on reg.
func NewWithRegistry(reg *prometheus.Registry) *Collector {
	c := &Collector{
		registry: reg,
		accumulateTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "accumulate_total",
				Help:      "Total number of Accumulate calls by strategy",
			},
			[]string{"strategy"},
		),
		accumulateElements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "accumulate_elements_total",
				Help:      "Total number of destination elements written by strategy",
			},
			[]string{"strategy"},
		),
		accumulateDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "accumulate_duration_seconds",
				Help:      "Latency of a single Accumulate call",
				Buckets:   prometheus.ExponentialBuckets(1e-8, 4, 12),
			},
			[]string{"strategy"},
		),
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "runs_total",
				Help:      "Total number of repeated evaluation runs by strategy and status",
			},
			[]string{"strategy", "status"},
		),
		runIteration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "run_iteration_seconds",
				Help:      "Mean time per iteration of a run",
				Buckets:   prometheus.ExponentialBuckets(1e-8, 4, 12),
			},
			[]string{"strategy"},
		),
	}

	reg.MustRegister(
		c.accumulateTotal,
		c.accumulateElements,
		c.accumulateDuration,
		c.runsTotal,
		c.runIteration,
	)

	return c
}

// Registry returns the registry the metrics are registered on.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// RecordAccumulate implements vecexpr.MetricsCollector.
func (c *Collector) RecordAccumulate(strategy string, dimension int, duration time.Duration) {
	c.accumulateTotal.WithLabelValues(strategy).Inc()
	c.accumulateElements.WithLabelValues(strategy).Add(float64(dimension))
	c.accumulateDuration.WithLabelValues(strategy).Observe(duration.Seconds())
}

// RecordRun implements vecexpr.MetricsCollector.
func (c *Collector) RecordRun(strategy string, iterations int, duration time.Duration, err error) {
	if err != nil {
		c.runsTotal.WithLabelValues(strategy, "error").Inc()
		return
	}
	c.runsTotal.WithLabelValues(strategy, "success").Inc()
	if iterations > 0 {
		c.runIteration.WithLabelValues(strategy).Observe(duration.Seconds() / float64(iterations))
	}
}

// WriteText writes all metrics in the Prometheus text exposition format.
func (c *Collector) WriteText(w io.Writer) error {
	families, err := c.registry.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
