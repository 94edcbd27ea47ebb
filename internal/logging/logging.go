// Package logging provides the shared, structured logger for skrib.
//
// It wraps [log/slog] with a single initialization point so every component
// writes through the same handler and level. The level is read once from
// SKRIB_LOG_LEVEL (debug, info, warn, error; default info).
//
// The terminal UI owns stdout and redraws the whole screen, so logs go to
// stderr unless SKRIB_LOG_FILE names a file to append to:
//
//	SKRIB_LOG_FILE=/tmp/skrib.log SKRIB_LOG_LEVEL=debug skrib
//
// Components derive a tagged logger with New:
//
//	log := logging.New("notebook")
//	log.Warn("read directory", "path", dir, "error", err)
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

const (
	levelEnv = "SKRIB_LOG_LEVEL"
	fileEnv  = "SKRIB_LOG_FILE"
)

var (
	initLogger sync.Once
	baseLogger *slog.Logger
)

// New returns a logger tagged with component=<component>. An empty component
// returns the base logger.
func New(component string) *slog.Logger {
	initLogger.Do(func() {
		baseLogger = slog.New(slog.NewTextHandler(openOutput(os.Getenv(fileEnv)), &slog.HandlerOptions{
			Level: parseLevel(os.Getenv(levelEnv)),
		}))
	})
	if component == "" {
		return baseLogger
	}
	return baseLogger.With("component", component)
}

// openOutput returns the log destination. A log file that cannot be opened
// falls back to stderr rather than failing startup.
func openOutput(path string) io.Writer {
	path = strings.TrimSpace(path)
	if path == "" {
		return os.Stderr
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return os.Stderr
	}
	return f
}

// parseLevel maps debug, warn/warning and error (case-insensitive) to their
// slog levels. Anything else is info.
func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
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
