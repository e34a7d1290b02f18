// Package logging provides the structured logger used across gitshape.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the logging interface used for dependency injection and testing.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// Config holds logger configuration.
type Config struct {
	Level   slog.Level
	Output  io.Writer
	AddTime bool
}

// slogLogger wraps slog.Logger to implement the Logger interface.
type slogLogger struct {
	logger *slog.Logger
}

// NewLogger creates a new logger with the given configuration.
func NewLogger(config Config) Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: config.Level}
	if !config.AddTime {
		// CLI tools don't need timestamps on stderr.
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		}
	}

	return &slogLogger{logger: slog.New(slog.NewTextHandler(config.Output, opts))}
}

// NewDefaultLogger creates a logger that only reports warnings and errors,
// keeping command output clean.
func NewDefaultLogger() Logger {
	return NewLogger(Config{Level: slog.LevelWarn})
}

// NewVerboseLogger creates a logger that shows debug information.
func NewVerboseLogger() Logger {
	return NewLogger(Config{Level: slog.LevelDebug})
}

// NewDisabledLogger creates a logger that discards all output (useful for tests).
func NewDisabledLogger() Logger {
	return NewLogger(Config{Level: slog.Level(1000), Output: io.Discard})
}

func (l *slogLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *slogLogger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *slogLogger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *slogLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}
