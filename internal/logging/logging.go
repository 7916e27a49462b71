// Package logging configures the process-wide slog logger.
//
// Logs go to stderr so stdout carries only command output. The level comes
// from the --log-level flag, falling back to the LOG_LEVEL environment
// variable and then to the package default.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// EnvLogLevel names the environment variable consulted when no level is given.
const EnvLogLevel = "LOG_LEVEL"

// DefaultLevel is used when neither a flag nor LOG_LEVEL sets the level.
const DefaultLevel = slog.LevelWarn

// ParseLevel converts a level name (debug, info, warn/warning, error) to a
// slog.Level. Unknown or empty names yield DefaultLevel.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return DefaultLevel
	}
}

// NewStructuredLogger returns a text logger writing to w, tagged with the
// module name and version. Debug loggers include the source location.
func NewStructuredLogger(w io.Writer, module, version, level string) *slog.Logger {
	lvl := ParseLevel(level)
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl <= slog.LevelDebug,
	})
	return slog.New(handler).With("module", module, "version", version)
}

// SetDefaultStructuredLoggerWithLevel installs a stderr logger as the slog
// default. An empty level falls back to LOG_LEVEL.
func SetDefaultStructuredLoggerWithLevel(module, version, level string) {
	if level == "" {
		level = os.Getenv(EnvLogLevel)
	}
	slog.SetDefault(NewStructuredLogger(os.Stderr, module, version, level))
}
