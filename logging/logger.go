package logging

import (
	"fmt"
	"io"

	"golang.org/x/exp/slog"
)

// Verbosity mirrors the reference solver's notification levels.
type Verbosity int

const (
	NoNotifications Verbosity = iota
	LowNotifications
	MediumNotifications
	FullNotifications
	FullDebug
)

// slogLevel maps a Verbosity to the slog.Level that gates it: higher
// verbosity means a lower (more permissive) slog level threshold.
func (v Verbosity) slogLevel() slog.Level {
	switch v {
	case NoNotifications:
		return slog.Level(100) // above slog's highest built-in level: nothing passes
	case LowNotifications:
		return slog.LevelError
	case MediumNotifications:
		return slog.LevelWarn
	case FullNotifications:
		return slog.LevelInfo
	default: // FullDebug
		return slog.LevelDebug
	}
}

// Logger emits messages gated by verbosity, through slog.
type Logger struct {
	slog *slog.Logger
}

// New returns a Logger writing to w, emitting only messages at or below
// the given verbosity (NoNotifications suppresses everything).
func New(w io.Writer, verbosity Verbosity) *Logger {
	return &Logger{slog: slog.New(newTextHandler(w, verbosity.slogLevel()))}
}

// NewNop returns a Logger that discards everything, the default for
// callers that never configured a Logger explicitly.
func NewNop() *Logger {
	return &Logger{slog: slog.New(newTextHandler(io.Discard, NoNotifications.slogLevel()))}
}

// Debugf logs at FullDebug verbosity.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.slog.Debug(fmt.Sprintf(format, args...))
}

// Infof logs at FullNotifications verbosity.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.slog.Info(fmt.Sprintf(format, args...))
}

// Warnf logs at MediumNotifications verbosity.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.slog.Warn(fmt.Sprintf(format, args...))
}

// Errorf logs at LowNotifications verbosity.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.slog.Error(fmt.Sprintf(format, args...))
}
