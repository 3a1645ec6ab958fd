package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// InitLogger builds a text or JSON slog logger at level, writing to w, and
// installs it as the default.
func InitLogger(level, format string, w io.Writer) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		h = slog.NewTextHandler(w, opts)
	case "json":
		h = slog.NewJSONHandler(w, opts)
	default:
		return nil, fmt.Errorf("unknown log format %q (want text or json)", format)
	}

	logger := slog.New(h)
	slog.SetDefault(logger)
	return logger, nil
}
