package app

import (
	"log/slog"

	"github.com/treykane/skrib/internal/logging"
)

// appLog is the package-level structured logger for the app package.
//
// Status messages shown to the user are mirrored here with the underlying
// error, so the footer can stay short while the log keeps the detail. Output
// goes to stderr and the level follows SKRIB_LOG_LEVEL (see the logging
// package).
var appLog = logging.New("app")

// setStatusError updates the status bar with a user-facing error message and
// logs a structured error entry with full context.
//
// Usage:
//
//	m.setStatusError("Error saving note", err, "path", notePath)
//	m.setStatusError("Clipboard copy failed", err)
//
// The error itself is always logged under the "error" key.
func (m *Model) setStatusError(status string, err error, attrs ...any) {
	m.status = status
	fields := make([]any, 0, len(attrs)+2)
	fields = append(fields, slog.Any("error", err))
	fields = append(fields, attrs...)
	appLog.Error(status, fields...)
}
