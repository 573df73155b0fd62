// Package telemetry builds the structured logger and the Prometheus
// instruments used by the amath command.
package telemetry

import (
	"io"
	"log/slog"
	"strings"
)

const attrService = "service"

// ServiceName is attached to every log record.
const ServiceName = "amath"

// ParseLevel maps a configured level name to an slog level. Unknown names
// select slog.LevelInfo.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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

// NewLogger returns a logger writing to w in the given format ("json" or
// "text") at the given level, with the service name pre-attached.
func NewLogger(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler.WithAttrs([]slog.Attr{slog.String(attrService, ServiceName)}))
}
