// Package logging writes structured session logs to a daily file.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

var (
	mu       sync.Mutex
	logger   = slog.New(slog.DiscardHandler)
	file     io.Closer
	filePath string
)

// ParseLevel maps debug, info, warn and error to slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// Initialize opens xx-YYYY-MM-DD.log in dir and routes Logger to it.
func Initialize(dir string, level slog.Level) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("xx-%s.log", time.Now().Format("2006-01-02")))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if file != nil {
		_ = file.Close()
	}
	file = f
	filePath = path
	logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return nil
}

// Logger returns the session logger. It discards records until Initialize
// succeeds.
func Logger() *slog.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Path returns the current log file path, or "" when logging is disabled.
func Path() string {
	mu.Lock()
	defer mu.Unlock()
	return filePath
}

// Close closes the log file and restores the discarding logger.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	logger = slog.New(slog.DiscardHandler)
	filePath = ""
	if file == nil {
		return nil
	}
	err := file.Close()
	file = nil
	return err
}
