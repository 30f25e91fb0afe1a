package bench

import (
	"github.com/google/uuid"

	"github.com/hupe1980/vecexpr"
)

// DefaultIterations matches the reference workload.
const DefaultIterations = 10000

type options struct {
	iterations       int
	strategies       []Strategy
	logger           *vecexpr.Logger
	metricsCollector vecexpr.MetricsCollector
	recordEach       bool
	newRunID         func() string
}

func defaultOptions() options {
	return options{
		iterations:       DefaultIterations,
		strategies:       AllStrategies(),
		logger:           vecexpr.NoopLogger(),
		metricsCollector: vecexpr.NoopMetricsCollector{},
		newRunID:         uuid.NewString,
	}
}

// Option configures a benchmark run.
type Option func(*options)

// WithIterations sets the number of accumulations per strategy.
func WithIterations(n int) Option {
	return func(o *options) {
		o.iterations = n
	}
}

// WithStrategies restricts the run to the given strategies, in order.
// An empty list selects all strategies.
func WithStrategies(s ...Strategy) Option {
	return func(o *options) {
		if len(s) == 0 {
			o.strategies = AllStrategies()
			return
		}
		o.strategies = s
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
func WithLogger(l *vecexpr.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = vecexpr.NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector.
// Pass nil to disable metrics collection.
func WithMetricsCollector(mc vecexpr.MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = vecexpr.NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithPerAccumulateMetrics times every single Accumulate and reports it to
// the metrics collector. The extra clock reads skew the overall timing.
func WithPerAccumulateMetrics(enabled bool) Option {
	return func(o *options) {
		o.recordEach = enabled
	}
}

// WithRunIDGenerator overrides the run id source (UUIDv4 by default).
func WithRunIDGenerator(fn func() string) Option {
	return func(o *options) {
		if fn != nil {
			o.newRunID = fn
		}
	}
}
