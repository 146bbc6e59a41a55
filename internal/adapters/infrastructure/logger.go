package infrastructure

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"forecastsync.app/internal/ports"
)

// SlogLoggerAdapter implements the Logger port using slog
type SlogLoggerAdapter struct {
	logger *slog.Logger
}

// NewSlogLoggerAdapter creates a JSON logger writing to stdout at the given level
func NewSlogLoggerAdapter(level string) *SlogLoggerAdapter {
	return NewSlogLoggerAdapterWithWriter(os.Stdout, level)
}

// NewSlogLoggerAdapterWithWriter creates a JSON logger writing to w
func NewSlogLoggerAdapterWithWriter(w io.Writer, level string) *SlogLoggerAdapter {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLogLevel(level)})
	return &SlogLoggerAdapter{logger: slog.New(handler)}
}

// ParseLogLevel converts a LOG_LEVEL value to a slog level; unknown values mean info
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Slog returns the underlying slog logger
func (l *SlogLoggerAdapter) Slog() *slog.Logger {
	return l.target()
}

// Debug logs a debug message
func (l *SlogLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	l.target().Debug(msg, toArgs(fields)...)
}

// Info logs an info message
func (l *SlogLoggerAdapter) Info(msg string, fields ...ports.Field) {
	l.target().Info(msg, toArgs(fields)...)
}

// Warn logs a warning message
func (l *SlogLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	l.target().Warn(msg, toArgs(fields)...)
}

// Error logs an error message
func (l *SlogLoggerAdapter) Error(msg string, fields ...ports.Field) {
	l.target().Error(msg, toArgs(fields)...)
}

func (l *SlogLoggerAdapter) target() *slog.Logger {
	if l == nil || l.logger == nil {
		return slog.Default()
	}
	return l.logger
}

func toArgs(fields []ports.Field) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for _, field := range fields {
		args = append(args, field.Key, field.Value)
	}
	return args
}
