// Package logging builds the structured logger used by the command line
// tool and handed to mappers for debug output.
package logging

import (
	"io"
	"log/slog"
	"strings"
)

// LoggerConfig selects the minimum level and output format.
type LoggerConfig struct {
	Level string
	// Format is "json" (default) or "text".
	Format string
}

// NewLogger returns a logger writing to w.
func NewLogger(config LoggerConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource: false,
		Level:     ParseLevel(config.Level),
	}

	var handler slog.Handler
	if strings.EqualFold(config.Format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel maps a level name onto slog levels. Unknown names mean INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
