// Package logging provides the structured logger used by series storage.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/paveg/dataseries/internal/config"
)

// Logger wraps slog.Logger with series-specific context.
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

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.DiscardHandler)
}

// FromConfig builds the logger described by cfg. Without verbose logging
// only warnings and errors are emitted.
func FromConfig(cfg config.Config, w io.Writer) *Logger {
	if w == nil {
		w = os.Stderr
	}
	level := slog.LevelWarn
	if cfg.VerboseLogging {
		level = slog.LevelDebug
	}
	if cfg.LogFormat == config.LogFormatJSON {
		return NewJSONLogger(w, level)
	}
	return NewTextLogger(w, level)
}

// WithSeries returns a logger annotated with the series name.
func (l *Logger) WithSeries(name string) *Logger {
	return &Logger{Logger: l.With("series", name)}
}
