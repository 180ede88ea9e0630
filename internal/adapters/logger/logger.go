// Package logger implements the logging adapter on charmbracelet/log.
package logger

import (
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"go.trai.ch/classmirror/internal/core/ports"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger.
type Logger struct {
	logger *charmlog.Logger
}

// New creates a Logger writing human-readable output to stderr.
func New() *Logger {
	return NewWithWriter(os.Stderr)
}

// NewWithWriter creates a Logger writing to w. Used by tests.
func NewWithWriter(w io.Writer) *Logger {
	return &Logger{
		logger: charmlog.NewWithOptions(w, charmlog.Options{
			Prefix: "classmirror",
			Level:  charmlog.InfoLevel,
		}),
	}
}

// Info logs an informational message with optional key-value pairs.
func (l *Logger) Info(msg string, keyvals ...any) {
	l.logger.Info(msg, keyvals...)
}

// Warn logs a warning.
func (l *Logger) Warn(msg string, keyvals ...any) {
	l.logger.Warn(msg, keyvals...)
}

// Error logs an error.
func (l *Logger) Error(msg string, keyvals ...any) {
	l.logger.Error(msg, keyvals...)
}
