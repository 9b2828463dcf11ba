package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// GetLoggerFromString returns a JSON logger writing to stdout at the given
// level (DEBUG, INFO, WARN, ERROR). Unknown levels fall back to INFO.
func GetLoggerFromString(level string) *slog.Logger {
	return New(os.Stdout, ParseLevel(level))
}

func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
