package service

import (
	"context"
	"log/slog"

	"github.com/GoSim-25-26J-441/k8s-platform-portal/internal/logging"
)

// Logger provides structured logging for services
type Logger struct {
	log *slog.Logger
}

// NewLogger creates a logger with request context
func NewLogger(ctx context.Context) *Logger {
	return &Logger{log: slog.Default().With("request_id", logging.RequestID(ctx))}
}

// LogError logs an error with context
func (l *Logger) LogError(operation string, err error, args ...any) {
	l.log.Error("operation failed", append([]any{"operation", operation, "error", err}, args...)...)
}

// LogInfo logs an info message with context
func (l *Logger) LogInfo(operation string, message string, args ...any) {
	l.log.Info(message, append([]any{"operation", operation}, args...)...)
}

// LogWarn logs a warning with context
func (l *Logger) LogWarn(operation string, message string, args ...any) {
	l.log.Warn(message, append([]any{"operation", operation}, args...)...)
}
