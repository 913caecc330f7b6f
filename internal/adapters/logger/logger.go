// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/muesli/termenv"
	"github.com/snobb/imk/internal/adapters/detector"
	"github.com/snobb/imk/internal/core/domain"
	"github.com/snobb/imk/internal/core/ports"
)

var _ ports.Logger = (*Logger)(nil)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	mu         sync.RWMutex
	logger     *slog.Logger
	output     io.Writer
	format     string
	timestamps bool
}

// New creates a Logger writing pretty output to stderr.
func New() *Logger {
	l := &Logger{
		output:     os.Stderr,
		format:     domain.LogFormatPretty,
		timestamps: true,
	}
	l.rebuild()
	return l
}

// SetOutput updates the logger's output destination.
// If w is nil, os.Stderr is used.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if w == nil {
		w = os.Stderr
	}
	l.output = w
	l.rebuild()
}

// SetFormat selects pretty, plain or JSON output. "auto" detects the format from the
// current output destination.
func (l *Logger) SetFormat(format string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.format = detector.ResolveFormat(detector.DetectEnvironment(l.output), format)
	l.rebuild()
}

// SetTimestamps enables or disables the time prefix of pretty and plain output.
func (l *Logger) SetTimestamps(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.timestamps = enable
	l.rebuild()
}

// rebuild replaces the handler. Callers must hold mu.
func (l *Logger) rebuild() {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}

	var handler slog.Handler
	switch l.format {
	case domain.LogFormatJSON:
		handler = slog.NewJSONHandler(l.output, opts)
	case domain.LogFormatPlain:
		handler = l.pretty(termenv.Ascii, opts)
	default:
		handler = l.pretty(detector.ColorProfile(), opts)
	}
	l.logger = slog.New(handler)
}

func (l *Logger) pretty(profile termenv.Profile, opts *slog.HandlerOptions) *PrettyHandler {
	h := NewPrettyHandler(l.output, profile, opts)
	if !l.timestamps {
		h = h.WithoutTimestamps()
	}
	return h
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error together with its cause chain and metadata.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	entries := collectErrorEntries(err)
	if len(entries) == 0 {
		entries = []errorEntry{{Message: err.Error()}}
	}

	if l.format == domain.LogFormatJSON {
		attrs := make([]any, 0, 2)
		attrs = append(attrs, "error", err.Error())
		for key, value := range entries[0].Metadata {
			attrs = append(attrs, key, value)
		}
		l.logger.Error(entries[0].Message, attrs...)
		return
	}

	l.logger.Error(formatErrorEntries(entries))
}
