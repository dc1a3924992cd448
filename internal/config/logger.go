package config

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// parseLevel maps a configured level name onto a slog level.
func parseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, name)
	}
}

// Logger builds a logger writing to w according to the configuration.
//
// The configuration is expected to have passed validation, an unknown level
// falls back to info.
func (c LoggingConfig) Logger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(c.Level)

	handlerOpts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if c.Format == "json" {
		handler = slog.NewJSONHandler(w, handlerOpts)
	} else {
		handler = slog.NewTextHandler(w, handlerOpts)
	}

	return slog.New(handler)
}
