package config

import (
	"io"
	"log/slog"
	"strings"
)

// NewLogger builds the JSON slog logger used by the binaries. Unknown levels fall back to info.
func NewLogger(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl}))
}
