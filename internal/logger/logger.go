// Package logger writes Parley's diagnostic log. The TUI owns the terminal,
// so everything goes to a file.
package logger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

var (
	slogLogger *slog.Logger
	levelVar   = new(slog.LevelVar)
	logFile    *os.File
	logPath    string
	lazy       bool // opened at DefaultLogPath by a log call before Init
	mu         sync.Mutex
)

// DefaultLogPath is used when Init was never called.
var DefaultLogPath = filepath.Join(os.TempDir(), "parley.log")

// SetDebug switches between debug and info level.
func SetDebug(enabled bool) {
	if enabled {
		levelVar.Set(slog.LevelDebug)
	} else {
		levelVar.Set(slog.LevelInfo)
	}
}

// Init opens the log file at path, replacing the default file if something
// was logged before Init. Calling it again after a successful Init is a
// no-op until Close or Reset.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if slogLogger != nil && !lazy {
		return nil
	}
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	lazy = false
	return open(path)
}

func open(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logFile = f
	logPath = path
	slogLogger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: levelVar}))
	slogLogger.Info("Logger initialized", "path", path)
	return nil
}

// Path returns the file currently being written, or "" before the first write.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return logPath
}

func logWithLevel(level slog.Level, format string, args ...interface{}) {
	mu.Lock()
	defer mu.Unlock()

	if slogLogger == nil {
		if err := open(DefaultLogPath); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			return
		}
		lazy = true
	}

	if !slogLogger.Enabled(context.Background(), level) {
		return
	}
	slogLogger.Log(context.Background(), level, fmt.Sprintf(format, args...))
}

func Debug(format string, args ...interface{}) {
	logWithLevel(slog.LevelDebug, format, args...)
}

func Info(format string, args ...interface{}) {
	logWithLevel(slog.LevelInfo, format, args...)
}

func Warn(format string, args ...interface{}) {
	logWithLevel(slog.LevelWarn, format, args...)
}

func Error(format string, args ...interface{}) {
	logWithLevel(slog.LevelError, format, args...)
}

// Close closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	slogLogger = nil
	lazy = false
}

// Reset closes the log and restores the default level. Used by tests.
func Reset() {
	Close()
	mu.Lock()
	defer mu.Unlock()
	logPath = ""
	levelVar = new(slog.LevelVar)
}
