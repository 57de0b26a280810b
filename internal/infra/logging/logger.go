// Package logging provides file-based logging for timers.
// Every entry goes to <dataDir>/logs/timers.log and is tagged with the timer
// it concerns, or "global".
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/runoshun/timers/internal/domain"
)

// Ensure Logger implements domain.Logger interface.
var _ domain.Logger = (*Logger)(nil)

// Logger writes leveled, tagged lines to the log file.
// Fields are ordered to minimize memory padding.
type Logger struct {
	file    *os.File
	now     func() time.Time
	dataDir string
	mu      sync.Mutex
	level   slog.Level
}

// New creates a new Logger that writes under dataDir.
// If dataDir is empty, logging is disabled.
func New(dataDir string, level slog.Level) *Logger {
	return &Logger{
		dataDir: dataDir,
		level:   level,
		now:     time.Now,
	}
}

// ParseLevel parses a log level string into slog.Level.
func ParseLevel(levelStr string) slog.Level {
	switch levelStr {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ensureFileLocked opens the log file on first use. l.mu must be held.
func (l *Logger) ensureFileLocked() (*os.File, error) {
	if l.file != nil {
		return l.file, nil
	}

	path := domain.GlobalLogPath(l.dataDir)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create logs directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640) //nolint:gosec // Log file readable by owner and group
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	l.file = f
	return f, nil
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

// formatLog formats a log entry.
// Format: [2025-12-30 09:32:51] [INFO] [timer-1741944600000] [engine] message
func formatLog(t time.Time, level slog.Level, timerID, category, msg string) string {
	return fmt.Sprintf("[%s] [%s] [%s] [%s] %s\n",
		t.Format("2006-01-02 15:04:05"),
		levelToString(level),
		domain.LogTag(timerID),
		category,
		msg,
	)
}

func levelToString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

func (l *Logger) log(level slog.Level, timerID, category, msg string) {
	if l.dataDir == "" {
		return // Logging disabled
	}
	if level < l.level {
		return
	}

	entry := formatLog(l.now(), level, timerID, category, msg)

	l.mu.Lock()
	defer l.mu.Unlock()
	if f, err := l.ensureFileLocked(); err == nil {
		_, _ = io.WriteString(f, entry)
	}
}

// Info logs an info message.
func (l *Logger) Info(timerID, category, msg string) {
	l.log(slog.LevelInfo, timerID, category, msg)
}

// Debug logs a debug message.
func (l *Logger) Debug(timerID, category, msg string) {
	l.log(slog.LevelDebug, timerID, category, msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(timerID, category, msg string) {
	l.log(slog.LevelWarn, timerID, category, msg)
}

// Error logs an error message.
func (l *Logger) Error(timerID, category, msg string) {
	l.log(slog.LevelError, timerID, category, msg)
}
