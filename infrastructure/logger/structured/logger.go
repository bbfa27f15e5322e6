// ABOUTME: Structured logger implementation backed by logrus
// ABOUTME: Supports level filtering and text or JSON output for the API and the reader

package structured

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Format selects the output encoding
type Format string

const (
	// FormatText writes key=value lines
	FormatText Format = "text"

	// FormatJSON writes one JSON object per line
	FormatJSON Format = "json"
)

// Options configures a Logger
type Options struct {
	Level  string
	Format Format
	Output io.Writer
}

// Logger implements interfaces.Logger on top of a logrus logger
type Logger struct {
	base *logrus.Logger
}

// NewLogger creates a logger. Unknown levels and formats are rejected.
func NewLogger(opts Options) (*Logger, error) {
	level := logrus.InfoLevel
	if opts.Level != "" {
		parsed, err := logrus.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", opts.Level, err)
		}
		level = parsed
	}

	l := logrus.New()
	l.SetLevel(level)

	switch opts.Format {
	case "", FormatText:
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case FormatJSON:
		l.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid log format %q", opts.Format)
	}

	if opts.Output != nil {
		l.SetOutput(opts.Output)
	} else {
		l.SetOutput(os.Stdout)
	}

	return &Logger{base: l}, nil
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.with(fields).Debug(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.with(fields).Info(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.with(fields).Warn(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.with(fields).Error(msg)
}

func (l *Logger) with(fields map[string]interface{}) *logrus.Entry {
	if len(fields) == 0 {
		return logrus.NewEntry(l.base)
	}
	return l.base.WithFields(logrus.Fields(fields))
}
