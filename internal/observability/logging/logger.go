package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// appName labels every line emitted by the api, worker and mcp binaries so
// their streams stay distinguishable in a shared log pipeline.
const appName = "cv-analysis-engine"

// NewJSONLogger builds the process-wide slog logger: JSON to stdout, level
// from config, app and service attrs on every record.
func NewJSONLogger(service, level string) *slog.Logger {
	return newJSONLogger(os.Stdout, service, level)
}

func newJSONLogger(w io.Writer, service, level string) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: parseLevel(level),
	})
	return slog.New(handler).With("app", appName, "service", service)
}

func parseLevel(level string) slog.Level {
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
