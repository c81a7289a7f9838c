// Package logging builds the process-wide slog.Logger from configuration.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	gommonlog "github.com/labstack/gommon/log"
)

// Formats accepted by NewLogger. Anything else falls back to FormatText.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// NewLogger creates a logger writing to stderr.
//
// level is the minimum slog level, format is FormatText or FormatJSON.
func NewLogger(level slog.Level, format string) *slog.Logger {
	return NewLoggerWithWriter(level, format, os.Stderr)
}

// NewLoggerWithWriter creates a logger writing to w.
func NewLoggerWithWriter(level slog.Level, format string, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel converts a level name to slog.Level.
// Unrecognized values yield slog.LevelInfo.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// EchoLevel maps a slog level onto the gommon level used by echo's own logger,
// so the HTTP framework is no chattier than the rest of the process.
func EchoLevel(level slog.Level) gommonlog.Lvl {
	switch {
	case level <= slog.LevelDebug:
		return gommonlog.DEBUG
	case level <= slog.LevelInfo:
		return gommonlog.INFO
	case level <= slog.LevelWarn:
		return gommonlog.WARN
	default:
		return gommonlog.ERROR
	}
}
