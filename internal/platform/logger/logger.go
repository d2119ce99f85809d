package logger

import (
	"io"
	"log/slog"
	"os"
)

// New writes JSON logs to stdout. LOG_LEVEL (debug, info, warn, error)
// overrides the default of debug in development and info elsewhere.
func New(environment string) *slog.Logger {
	return newLogger(os.Stdout, environment, os.Getenv("LOG_LEVEL"))
}

func newLogger(w io.Writer, environment, override string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level(environment, override)})
	return slog.New(handler).With("service", "ainadeul", "environment", environment)
}

func level(environment, override string) slog.Level {
	var l slog.Level
	if override != "" && l.UnmarshalText([]byte(override)) == nil {
		return l
	}
	if environment == "development" {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}
