// Package logging configures the process-wide slog logger. Every record is
// written as JSON to stderr and carries the service name and version.
package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
)

// ParseLevel maps a LOG_LEVEL value to a slog level. Unknown values fall
// back to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// NewStructuredLogger returns a JSON logger writing to w.
func NewStructuredLogger(w io.Writer, service, version, level string) *slog.Logger {
	lvl := ParseLevel(level)
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
	})
	return slog.New(handler).With("service", service, "version", version)
}

// SetDefaultStructuredLogger installs a stderr JSON logger as the slog
// default. Output from the standard log package is routed through it too.
func SetDefaultStructuredLogger(service, version, level string) *slog.Logger {
	logger := NewStructuredLogger(os.Stderr, service, version, level)
	slog.SetDefault(logger)
	log.SetFlags(0)
	return logger
}
