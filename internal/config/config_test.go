package config

import (
	"log/slog"
	"os"
	"strings"
	"testing"
)

// unsetEnv removes the given variables for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "") // restores the previous value on cleanup
		if err := os.Unsetenv(key); err != nil {
			t.Fatalf("unset %s: %v", key, err)
		}
	}
}

var configKeys = []string{"PI_LOG_LEVEL", "PI_LOG_FORMAT", "PI_ITERATIONS", "PI_PRECISION", "PI_DIGITS"}

type envTestConfig struct {
	Digits int `env:"PI_TEST_DIGITS" envDefault:"123"`
}

func TestParseEnvDefaults(t *testing.T) {
	unsetEnv(t, "PI_TEST_DIGITS")
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Digits != 123 {
		t.Fatalf("expected default digits 123, got %d", cfg.Digits)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("PI_TEST_DIGITS", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, configKeys...)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{
		LogLevel:   slog.LevelInfo,
		LogFormat:  "text",
		Iterations: 10000,
		Precision:  32,
		Digits:     100,
	}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PI_LOG_LEVEL", "debug")
	t.Setenv("PI_LOG_FORMAT", "json")
	t.Setenv("PI_ITERATIONS", "50")
	t.Setenv("PI_PRECISION", "8")
	t.Setenv("PI_DIGITS", "1000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{
		LogLevel:   slog.LevelDebug,
		LogFormat:  "json",
		Iterations: 50,
		Precision:  8,
		Digits:     1000,
	}
	if cfg != want {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]struct {
		key, value string
		want       string
	}{
		"log level":  {"PI_LOG_LEVEL", "loud", "parse env:"},
		"log format": {"PI_LOG_FORMAT", "xml", "PI_LOG_FORMAT:"},
		"digits":     {"PI_DIGITS", "many", "parse env:"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			unsetEnv(t, configKeys...)
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected %q in error, got %v", tt.want, err)
			}
		})
	}
}

func TestValidateFormat(t *testing.T) {
	for _, format := range []string{"text", "json"} {
		if err := ValidateFormat(format); err != nil {
			t.Errorf("ValidateFormat(%q) failed: %v", format, err)
		}
	}
	for _, format := range []string{"", "xml", "JSON"} {
		if err := ValidateFormat(format); err == nil {
			t.Errorf("ValidateFormat(%q) did not fail", format)
		}
	}
}
