// Package logging configures the process-wide slog logger. The level is read
// from PROSPECTOR_LOG_LEVEL, falling back to LOG_LEVEL, defaulting to INFO.
package logging

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Setup installs a text handler on stderr as the default slog logger, with
// the level taken from the environment.
func Setup() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: LevelFromEnv(),
	})
	slog.SetDefault(slog.New(handler))
}

// LevelFromEnv returns the log level configured via environment variables.
// It checks PROSPECTOR_LOG_LEVEL first, then falls back to LOG_LEVEL.
// Supported values: DEBUG, INFO, WARN, WARNING, ERROR. Default: INFO.
func LevelFromEnv() slog.Level {
	level := os.Getenv("PROSPECTOR_LOG_LEVEL")
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	if level == "" {
		return slog.LevelInfo
	}
	return ParseLevel(level)
}

// ParseLevel parses a log level string into slog.Level (case-insensitive).
// Returns INFO for unknown values and prints a warning to stderr.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		fmt.Fprintf(os.Stderr, "Warning: Unknown log level '%s', using INFO\n", level)
		return slog.LevelInfo
	}
}
