package cmd

import (
	"io"
	"log/slog"
	"strings"
)

// InitLogging installs the default logger: text on stderr, at the configured level or debug when -v is
// set.
func InitLogging() *slog.Logger {
	level := parseLevel(config().LogLevel)
	if *Verbose {
		level = slog.LevelDebug
	}
	return initLogger(stderr, level)
}

func initLogger(w io.Writer, level slog.Level) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
