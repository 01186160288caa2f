package cli

import (
	"io"
	"log/slog"
)

// NewLogger creates a text slog.Logger for CLI diagnostics. It does not set
// the global logger, allowing for isolated instances in tests.
func NewLogger(levelStr string, w io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
