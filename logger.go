package vecexpr

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with vecexpr-specific context.
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

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// WithStrategy adds an evaluation strategy field to the logger.
func (l *Logger) WithStrategy(strategy string) *Logger {
	return &Logger{
		Logger: l.Logger.With("strategy", strategy),
	}
}

// WithRunID adds a run id field to the logger.
func (l *Logger) WithRunID(id string) *Logger {
	return &Logger{
		Logger: l.Logger.With("run_id", id),
	}
}

// LogRun logs the outcome of a repeated evaluation run.
func (l *Logger) LogRun(ctx context.Context, strategy string, iterations int, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "run failed",
			"strategy", strategy,
			"iterations", iterations,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "run completed",
			"strategy", strategy,
			"iterations", iterations,
			"elapsed", elapsed,
		)
	}
}

// LogExpression logs the shape of an expression before it is evaluated.
func (l *Logger) LogExpression(ctx context.Context, strategy string, depth int) {
	l.DebugContext(ctx, "expression built",
		"strategy", strategy,
		"depth", depth,
	)
}
