// Package logger configures structured logging for the pi command.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Config selects the level, handler format, and destination of log records.
type Config struct {
	Level     slog.Level
	Format    string
	Output    io.Writer
	AddSource bool
}

// DefaultConfig returns a text logger at info level writing to stderr.
func DefaultConfig() Config {
	return Config{
		Level:     slog.LevelInfo,
		Format:    "text",
		Output:    os.Stderr,
		AddSource: false,
	}
}

// New returns a logger writing to cfg.Output.
// Any format other than "json" selects the text handler.
func New(cfg Config) *slog.Logger {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level:     cfg.Level,
		AddSource: cfg.AddSource,
	}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	} else {
		handler = slog.NewTextHandler(cfg.Output, opts)
	}

	return slog.New(handler)
}

// Init installs a logger built from cfg as the [slog] default.
func Init(cfg Config) {
	slog.SetDefault(New(cfg))
}

// ForComponent returns the default logger with a component attribute.
func ForComponent(component string) *slog.Logger {
	return slog.Default().With("component", component)
}

// ParseLevel accepts the level names of [slog.Level.UnmarshalText],
// such as "debug", "INFO" or "warn+2".
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("parse log level %q: %w", s, err)
	}
	return level, nil
}
