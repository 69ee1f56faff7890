package logger

import (
	"io"
	"log/slog"
	"strings"

	"github.com/go-chi/httplog/v3"
)

const (
	AppName = "payroll-cmlabs"
	Version = "v1.0.0"
)

// New builds the JSON logger shared by the request logger and the
// application. Development output keeps the full ECS field set.
func New(w io.Writer, env, level string) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(env != "development")

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       ParseLevel(level),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", AppName),
		slog.String("version", Version),
		slog.String("env", env),
	)
}

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
