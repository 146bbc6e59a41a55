package infrastructure

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"forecastsync.app/internal/ports"
	"github.com/rs/zerolog"
)

// ZerologFileLoggerAdapter writes structured JSON lines to a file using zerolog
type ZerologFileLoggerAdapter struct {
	file   *os.File
	logger zerolog.Logger
	mutex  sync.Mutex
	closed bool
}

// NewZerologFileLoggerAdapter opens logPath for appending, creating its directory when needed
func NewZerologFileLoggerAdapter(logPath string) (*ZerologFileLoggerAdapter, error) {
	if logPath == "" {
		return nil, fmt.Errorf("log file path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return &ZerologFileLoggerAdapter{
		file:   file,
		logger: zerolog.New(file).With().Timestamp().Logger(),
	}, nil
}

var _ ports.Logger = (*ZerologFileLoggerAdapter)(nil)

// Debug logs a debug message to file
func (z *ZerologFileLoggerAdapter) Debug(msg string, fields ...ports.Field) {
	z.write(zerolog.DebugLevel, msg, fields)
}

// Info logs an info message to file
func (z *ZerologFileLoggerAdapter) Info(msg string, fields ...ports.Field) {
	z.write(zerolog.InfoLevel, msg, fields)
}

// Warn logs a warning message to file
func (z *ZerologFileLoggerAdapter) Warn(msg string, fields ...ports.Field) {
	z.write(zerolog.WarnLevel, msg, fields)
}

// Error logs an error message to file
func (z *ZerologFileLoggerAdapter) Error(msg string, fields ...ports.Field) {
	z.write(zerolog.ErrorLevel, msg, fields)
}

// Close flushes and closes the log file; later writes are dropped
func (z *ZerologFileLoggerAdapter) Close() error {
	z.mutex.Lock()
	defer z.mutex.Unlock()

	if z.closed {
		return nil
	}
	z.closed = true
	return z.file.Close()
}

func (z *ZerologFileLoggerAdapter) write(level zerolog.Level, msg string, fields []ports.Field) {
	z.mutex.Lock()
	defer z.mutex.Unlock()

	if z.closed {
		return
	}

	event := z.logger.WithLevel(level)
	for _, field := range fields {
		if err, ok := field.Value.(error); ok {
			event = event.AnErr(field.Key, err)
			continue
		}
		event = event.Interface(field.Key, field.Value)
	}
	event.Msg(msg)
}
