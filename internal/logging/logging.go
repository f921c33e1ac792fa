package logging

import (
	"io"
	"log/slog"
	"strings"
)

type Config struct {
	Level  string `yaml:"level"`
	IsJSON bool   `yaml:"is_json"`
}

// ParseLevel maps debug, info, warn and error to slog levels; anything else
// is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
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

func New(cfg *Config, w io.Writer, attrs ...slog.Attr) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var h slog.Handler
	if cfg.IsJSON {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}

	return slog.New(h.WithAttrs(attrs))
}
