package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goliatone/go-ui/pkg/element"
)

// NewLogger creates a structured logger. format is "json" or "text"; unknown
// levels fall back to info.
func NewLogger(format string, level string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

// ParseLevel maps a config level name to a slog level.
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

// WithElement returns a logger with the element type attached.
func WithElement(logger *slog.Logger, name string) *slog.Logger {
	return logger.With("element", name)
}

// RenderFallback logs errors swallowed while producing safe HTML.
func RenderFallback(logger *slog.Logger) element.FallbackFunc {
	return func(err error) {
		logger.Warn("render failed, emitting escaped error", "error", err)
	}
}
