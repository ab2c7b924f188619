package logging

import (
	"bytes"
	"io"
	"strings"
	"testing"

	tinylog "github.com/Survive2/Tiny-Interpreter/foundation/core/log"
)

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig("tiny")

	if cfg.Name != "tiny" {
		t.Errorf("Name = %v, want tiny", cfg.Name)
	}
	if cfg.Level != "warn" {
		t.Errorf("Level = %v, want warn", cfg.Level)
	}
	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
}

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		input    string
		expected tinylog.Level
	}{
		{"trace", tinylog.LevelTrace},
		{"debug", tinylog.LevelDebug},
		{"info", tinylog.LevelInfo},
		{"warn", tinylog.LevelWarn},
		{"warning", tinylog.LevelWarn},
		{"error", tinylog.LevelError},
		{"", tinylog.LevelInfo},
		{"invalid", tinylog.LevelInfo}, // defaults to info
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			logger := NewLogger(LoggerConfig{Name: "test", Level: tt.input, Output: &bytes.Buffer{}})
			if !logger.IsLevelEnabled(tt.expected) || logger.IsLevelEnabled(tt.expected-1) {
				t.Errorf("minimum enabled level is not %v", tt.expected)
			}
		})
	}
}

func TestNewLogger_Output(t *testing.T) {
	var primary, extra bytes.Buffer
	logger := NewLogger(LoggerConfig{
		Name:              "tiny-cli",
		Level:             "info",
		Format:            "logfmt",
		Output:            &primary,
		AdditionalOutputs: []io.Writer{&extra},
	})

	logger.Info("config loaded", KV("path", "tiny.toml"))
	logger.Debug("hidden")

	for name, buf := range map[string]*bytes.Buffer{"primary": &primary, "extra": &extra} {
		out := buf.String()
		if !strings.Contains(out, `message="config loaded"`) || !strings.Contains(out, `path="tiny.toml"`) {
			t.Errorf("%s output = %q", name, out)
		}
		if !strings.Contains(out, "logger=tiny-cli") {
			t.Errorf("%s output misses logger name: %q", name, out)
		}
		if strings.Contains(out, "hidden") {
			t.Errorf("%s output contains a debug entry", name)
		}
	}
}

func TestNewLogger_Format(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(LoggerConfig{Level: "warn", Format: "json", Output: &buf})
	logger.Warn("careful")

	if !strings.HasPrefix(strings.TrimSpace(buf.String()), "{") {
		t.Errorf("json output = %q", buf.String())
	}

	buf.Reset()
	logger = NewLogger(LoggerConfig{Level: "warn", Format: "bogus", Output: &buf})
	logger.Warn("careful")
	if !strings.Contains(buf.String(), "[WRN]") {
		t.Errorf("unknown format should fall back to text, got %q", buf.String())
	}
}

func TestKV(t *testing.T) {
	// Empty input
	if fields := KV(); fields != nil {
		t.Error("KV() with no args should return nil")
	}

	// Valid key-value pairs
	fields := KV("key1", "value1", "key2", 42)
	if fields["key1"] != "value1" {
		t.Errorf("fields[key1] = %v, want value1", fields["key1"])
	}
	if fields["key2"] != 42 {
		t.Errorf("fields[key2] = %v, want 42", fields["key2"])
	}

	// Non-string key (should be skipped)
	if fields := KV(123, "value"); len(fields) != 0 {
		t.Errorf("Non-string key should be skipped, got %v fields", len(fields))
	}

	// Odd number of arguments drops the orphan key
	if fields := KV("key1", "value1", "orphan"); len(fields) != 1 {
		t.Errorf("orphan key should be skipped, got %v", fields)
	}
}

func BenchmarkLogger_Info(b *testing.B) {
	logger := NewLogger(LoggerConfig{Name: "benchmark", Level: "info", Output: &bytes.Buffer{}})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message", KV("iteration", i))
	}
}
