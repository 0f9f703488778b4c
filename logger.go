package densebit

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with densebit-specific context.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithSize adds a logical size field to the logger.
func (l *Logger) WithSize(size int) *Logger {
	return &Logger{
		Logger: l.Logger.With("size", size),
	}
}

// LogGrow logs a backing store resize.
func (l *Logger) LogGrow(fromWords, toWords int) {
	l.Debug("backing store grown",
		"from_words", fromWords,
		"to_words", toWords,
	)
}

// LogCapacityExceeded logs an operation rejected by the size ceiling.
func (l *Logger) LogCapacityExceeded(op string, bits, limit int) {
	l.Warn("bit capacity exceeded",
		"op", op,
		"bits", bits,
		"limit", limit,
	)
}

// LogParse logs the outcome of parsing a digit string.
func (l *Logger) LogParse(digits, radix, size int, err error) {
	if err != nil {
		l.Debug("parse failed",
			"digits", digits,
			"radix", radix,
			"error", err,
		)
	} else {
		l.Debug("parse completed",
			"digits", digits,
			"radix", radix,
			"size", size,
		)
	}
}
