// Package logger builds the structured logger used by the squaremat CLI.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/katalvlaran/squaremat/internal/config"
)

// Config selects level and handler. Debug forces the debug level and adds source positions.
type Config struct {
	Level  string
	Format string
	Debug  bool
}

// FromEnv maps environment config onto logger Config.
func FromEnv(c config.Config, debug bool) Config {
	return Config{Level: c.LogLevel, Format: c.LogFormat, Debug: debug}
}

// New returns a slog.Logger writing to w.
func New(cfg Config, w io.Writer) (*slog.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	}

	var h slog.Handler
	switch cfg.Format {
	case config.FormatJSON:
		h = slog.NewJSONHandler(w, opts)
	case config.FormatText, "":
		h = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("logger: unknown format %q", cfg.Format)
	}

	return slog.New(h), nil
}

// Discard returns a logger that drops every record.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parseLevel(s string) (slog.Level, error) {
	switch s {
	case config.LevelDebug:
		return slog.LevelDebug, nil
	case config.LevelInfo, "":
		return slog.LevelInfo, nil
	case config.LevelWarn:
		return slog.LevelWarn, nil
	case config.LevelError:
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("logger: unknown level %q", s)
}
