// ABOUTME: File-backed slog logger for the TUI session
// ABOUTME: Keeps diagnostics off the alt screen while capturing errors

package debuglog

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	mu      sync.Mutex
	logFile *os.File
	logger  *slog.Logger
)

// Init opens debug.log in the config directory and installs a text handler.
// An empty configDir disables logging entirely.
func Init(configDir, level string) error {
	mu.Lock()
	defer mu.Unlock()

	if configDir == "" {
		logger = nil
		return nil
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		logger = nil
		return err
	}

	path := filepath.Join(configDir, "debug.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
	if err != nil {
		logger = nil
		return err
	}

	logFile = f
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{
		Level: parseLevel(level),
	}))
	return nil
}

// Close closes the log file
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	logger = nil
}

// parseLevel converts a string log level to slog.Level
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// Info logs an informational message
func Info(msg string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Error logs a failure with context
func Error(msg string, err error, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if logger == nil || err == nil {
		return
	}
	logger.Error(msg, append([]any{"error", err}, args...)...)
}
