package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Level != slog.LevelInfo {
		t.Fatalf("expected info level, got %v", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Fatalf("expected text format, got %q", cfg.Format)
	}
	if cfg.Output == nil {
		t.Fatal("expected output")
	}
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: slog.LevelInfo, Format: "text", Output: &buf})

	log.Debug("hidden")
	log.Info("computed", "digits", 10)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record written at info level: %q", out)
	}
	if !strings.Contains(out, "level=INFO") || !strings.Contains(out, "msg=computed") || !strings.Contains(out, "digits=10") {
		t.Fatalf("unexpected text record: %q", out)
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: slog.LevelDebug, Format: "json", Output: &buf})

	log.Debug("computed", "digits", 10)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode record %q: %v", buf.String(), err)
	}
	if record["level"] != "DEBUG" || record["msg"] != "computed" || record["digits"] != float64(10) {
		t.Fatalf("unexpected json record: %v", record)
	}
}

func TestInitForComponent(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Init(Config{Level: slog.LevelInfo, Format: "text", Output: &buf})
	ForComponent("spigot").Info("done")

	if !strings.Contains(buf.String(), "component=spigot") {
		t.Fatalf("expected component attribute, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":  slog.LevelDebug,
		"INFO":   slog.LevelInfo,
		"warn":   slog.LevelWarn,
		"error":  slog.LevelError,
		"info+2": slog.LevelInfo + 2,
	}
	for s, want := range tests {
		got, err := ParseLevel(s)
		if err != nil {
			t.Errorf("ParseLevel(%q) failed: %v", s, err)
			continue
		}
		if got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", s, got, want)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(\"loud\") did not fail")
	}
}
