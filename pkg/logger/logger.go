// Package logger provides the key/value logger used across anvilcost.
package logger

import (
	"io"
	"log/slog"
)

// Logger logs messages with alternating key/value pairs.
type Logger interface {
	Debug(msg string, keysAndValues ...any)
	Info(msg string, keysAndValues ...any)
	Error(msg string, keysAndValues ...any)

	// With returns a logger that adds keysAndValues to every message.
	With(keysAndValues ...any) Logger
}

// SlogLogger writes text records through log/slog.
type SlogLogger struct {
	l *slog.Logger
}

// NewLogger creates a logger writing to w. Debug messages are dropped unless
// debug is true.
func NewLogger(w io.Writer, debug bool) *SlogLogger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return &SlogLogger{
		l: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

// Debug logs at debug level.
func (s *SlogLogger) Debug(msg string, keysAndValues ...any) {
	s.l.Debug(msg, keysAndValues...)
}

// Info logs at info level.
func (s *SlogLogger) Info(msg string, keysAndValues ...any) {
	s.l.Info(msg, keysAndValues...)
}

// Error logs at error level.
func (s *SlogLogger) Error(msg string, keysAndValues ...any) {
	s.l.Error(msg, keysAndValues...)
}

// With returns a child logger.
func (s *SlogLogger) With(keysAndValues ...any) Logger {
	return &SlogLogger{l: s.l.With(keysAndValues...)}
}

// NoOpLogger discards everything.
type NoOpLogger struct{}

// NewNoOpLogger creates a logger that discards all messages.
func NewNoOpLogger() *NoOpLogger {
	return &NoOpLogger{}
}

func (*NoOpLogger) Debug(string, ...any) {}
func (*NoOpLogger) Info(string, ...any)  {}
func (*NoOpLogger) Error(string, ...any) {}

func (n *NoOpLogger) With(...any) Logger {
	return n
}
