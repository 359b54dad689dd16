package cmeans

import (
	"log/slog"
)

type options struct {
	fuzzifier        float64
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{
		fuzzifier:        DefaultFuzzifier,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// Option configures an Engine.
type Option func(*options)

// WithFuzzifier sets the exponent m used by the fuzzy algorithm.
// It must be greater than 1; New rejects other values with ErrInvalidFuzzifier.
//
// m close to 1 approaches hard assignment; larger m blends memberships more.
func WithFuzzifier(m float64) Option {
	return func(o *options) {
		o.fuzzifier = m
	}
}

// WithMetricsCollector configures a metrics collector for monitoring iterations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &cmeans.BasicMetricsCollector{}
//	eng, _ := cmeans.New(cmeans.WithMetricsCollector(metrics))
//	// ... use eng ...
//	stats := metrics.GetStats()
//	fmt.Printf("Iterations: %d, Avg latency: %dns\n", stats.IterationCount, stats.IterationAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for iterations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := cmeans.NewJSONLogger(slog.LevelInfo)
//	eng, _ := cmeans.New(cmeans.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}
