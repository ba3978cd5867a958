package logging

import (
	"io"
	"log/slog"
	"strings"

	"docanalyzer/internal/config"
)

// ParseLevel maps a config level name to a slog level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// New builds a logger writing JSON when format is "json" and text otherwise.
func New(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// Setup builds a logger from cfg and installs it as the slog default.
func Setup(w io.Writer, cfg config.LogConfig) *slog.Logger {
	logger := New(w, cfg)
	slog.SetDefault(logger)
	return logger
}
