package config

import (
	"io"
	"log/slog"
)

// NewLogger builds a logger for the given level and format ("text" or "json").
// Unknown levels fall back to info.
func NewLogger(levelStr, formatStr string, outW io.Writer) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}

// Logger builds the logger described by c.
func (c *Config) Logger(outW io.Writer) *slog.Logger {
	return NewLogger(c.LogLevel, c.LogFormat, outW)
}
