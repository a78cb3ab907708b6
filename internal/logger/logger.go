package logger

import (
	"io"
	"log/slog"
)

// New builds the process logger. JSON output gets a JSON handler so the
// stream stays machine-readable.
func New(w io.Writer, level slog.Level, json bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level}
	if json {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
