// Package logging provides structured logging for swipedeck.
// The terminal belongs to the UI while it runs, so logs go to a file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lmittmann/tint"
)

// Level represents a structured log level
type Level slog.Level

const (
	LevelDebug Level = Level(slog.LevelDebug)
	LevelInfo  Level = Level(slog.LevelInfo)
	LevelWarn  Level = Level(slog.LevelWarn)
	LevelError Level = Level(slog.LevelError)
)

// ParseLevel converts a textual log level into a Level value
func ParseLevel(value string) Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// String returns the slog name of the level
func (l Level) String() string {
	return slog.Level(l).String()
}

// NewLogger constructs a slog.Logger with a tint handler
// Color is disabled since output goes to files
func NewLogger(w io.Writer, level Level) *slog.Logger {
	if w == nil {
		w = io.Discard
	}
	handler := tint.NewHandler(w, &tint.Options{
		Level:   slog.Level(level),
		NoColor: true,
	})
	return slog.New(handler)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Open creates a logger appending to path, creating parent directories
// An empty path returns a logger that discards everything
func Open(path string, level Level) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return NewLogger(f, level), f, nil
}
