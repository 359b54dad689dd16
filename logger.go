package cmeans

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with cmeans-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithAlgorithm adds an algorithm field to the logger.
func (l *Logger) WithAlgorithm(alg Algorithm) *Logger {
	return &Logger{
		Logger: l.Logger.With("algorithm", alg.String()),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogIteration logs a completed clustering step.
func (l *Logger) LogIteration(ctx context.Context, r *Result, points, centroids int) {
	if r.Degenerate() && points > 0 && centroids > 0 {
		l.WarnContext(ctx, "iteration produced degenerate centroids",
			"algorithm", r.Algorithm.String(),
			"points", points,
			"centroids", centroids,
			"candidates", len(r.Centroids),
		)
		return
	}

	l.DebugContext(ctx, "iteration completed",
		"algorithm", r.Algorithm.String(),
		"points", points,
		"centroids", centroids,
		"candidates", len(r.Centroids),
		"dropped", r.Dropped(centroids),
		"cost", r.Cost,
	)
}

// LogCommit logs that a caller adopted the candidate centroids.
func (l *Logger) LogCommit(ctx context.Context, iteration int, cost float64) {
	l.InfoContext(ctx, "centroids committed",
		"iteration", iteration,
		"cost", cost,
	)
}

// LogReject logs that a caller refused the candidate centroids.
func (l *Logger) LogReject(ctx context.Context, iteration int, reason error) {
	l.InfoContext(ctx, "centroids rejected",
		"iteration", iteration,
		"reason", reason,
	)
}
