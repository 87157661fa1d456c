// Package config loads the command-line settings from the environment.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings of the pi command.
// Command-line flags take precedence over these values.
type Config struct {
	LogLevel   slog.Level `env:"PI_LOG_LEVEL" envDefault:"info"`
	LogFormat  string     `env:"PI_LOG_FORMAT" envDefault:"text"`
	Iterations int        `env:"PI_ITERATIONS" envDefault:"10000"`
	Precision  int        `env:"PI_PRECISION" envDefault:"32"`
	Digits     int        `env:"PI_DIGITS" envDefault:"100"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment into a Config and validates it.
// Numeric ranges are left to the computation, which reports them
// as invalid arguments.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := ValidateFormat(cfg.LogFormat); err != nil {
		return Config{}, fmt.Errorf("PI_LOG_FORMAT: %w", err)
	}
	return cfg, nil
}

// ValidateFormat checks that format names a supported log handler.
func ValidateFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	}
	return fmt.Errorf("unknown log format %q, want text or json", format)
}
