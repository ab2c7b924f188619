// File: logger_test.go
// Title: Logger Tests
// Description: Tests for levels, formats, context fields and error fields.
// Author: Survive2
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test coverage

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func newBufferLogger(level Level, format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: level, Format: format, Output: buf, Name: "test"}), buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"json", "text", "console", "logfmt"} {
		f, err := ParseFormat(name)
		if err != nil {
			t.Errorf("ParseFormat(%q) error: %v", name, err)
		}
		if f.String() != name {
			t.Errorf("round trip %q -> %q", name, f.String())
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(LevelWarn, FormatText)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("entries below the minimum level were written: %q", out)
	}
	if !strings.Contains(out, "[WRN] {test} shown") {
		t.Errorf("missing warn entry: %q", out)
	}
	if logger.IsLevelEnabled(LevelInfo) || !logger.IsLevelEnabled(LevelError) {
		t.Error("IsLevelEnabled mismatch")
	}
}

func TestJSONFormat(t *testing.T) {
	logger, buf := newBufferLogger(LevelDebug, FormatJSON)

	logger.WithField("component", "tiny-parser").Debug("parsed", Fields{"kind": "def"})

	var m map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("invalid JSON %q: %v", buf.String(), err)
	}
	want := map[string]string{"level": "debug", "message": "parsed", "logger": "test", "component": "tiny-parser", "kind": "def"}
	for k, v := range want {
		if m[k] != v {
			t.Errorf("%s = %v, want %v", k, m[k], v)
		}
	}
}

func TestLogfmtFieldOrder(t *testing.T) {
	logger, buf := newBufferLogger(LevelInfo, FormatLogfmt)

	logger.Info("ready", Fields{"b": 2, "a": "x"})

	out := buf.String()
	if !strings.Contains(out, `message="ready" logger=test a="x" b=2`) {
		t.Errorf("unexpected logfmt output: %q", out)
	}
}

func TestWithFieldDoesNotLeak(t *testing.T) {
	parent, buf := newBufferLogger(LevelInfo, FormatText)
	child := parent.WithField("session", "abc")

	parent.Info("from parent")
	if strings.Contains(buf.String(), "session=abc") {
		t.Error("child field leaked into parent")
	}
	buf.Reset()
	child.Info("from child")
	if !strings.Contains(buf.String(), "session=abc") {
		t.Error("child field missing")
	}
}

func TestErrorFields(t *testing.T) {
	tests := []struct {
		name      string
		log       func(l *Logger, err error)
		wantLevel string
	}{
		{"error", func(l *Logger, err error) { l.ErrorWithErr("invalid tree", err, Fields{"kind": "def"}) }, "error"},
		{"warn", func(l *Logger, err error) { l.WarnWithErr("input stopped", err) }, "warn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger(LevelTrace, FormatJSON)
			tt.log(logger, errors.New("boom"))

			var m map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
				t.Fatalf("invalid JSON %q: %v", buf.String(), err)
			}
			if m["level"] != tt.wantLevel || m["error"] != "boom" {
				t.Errorf("level/error = %v/%v, want %s/boom", m["level"], m["error"], tt.wantLevel)
			}
		})
	}
}

func TestErrFieldsMerge(t *testing.T) {
	base := Err(errors.New("bad literal"))
	merged := base.Merge(Fields{"pos": "1:3", "error": "override"})

	if len(base) != 1 || base["error"].(error).Error() != "bad literal" {
		t.Errorf("Merge modified the receiver: %v", base)
	}
	if merged["pos"] != "1:3" || merged["error"] != "override" {
		t.Errorf("Merge() = %v", merged)
	}

	logger, buf := newBufferLogger(LevelDebug, FormatLogfmt)
	logger.Debug("lexing stopped", Err(errors.New("bad literal")))
	if !strings.Contains(buf.String(), "error=bad literal") {
		t.Errorf("logfmt output = %q", buf.String())
	}
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	if logger.IsLevelEnabled(LevelFatal) {
		t.Error("Discard logger should drop every level")
	}
	logger.ErrorWithErr("nothing", errors.New("dropped"))
}

func TestDefaultLogger(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	custom, _ := newBufferLogger(LevelDebug, FormatText)
	SetDefault(custom)
	if GetDefault() != custom {
		t.Error("SetDefault did not replace the default logger")
	}
	SetDefault(nil)
	if GetDefault() != custom {
		t.Error("SetDefault(nil) must be ignored")
	}
}

func TestConsoleFormatterColors(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableTimestamp = true
	data, err := f.Format(NewEntry(LevelError, "bad"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), LevelError.Color()) || !strings.HasSuffix(string(data), "\033[0m\n") {
		t.Errorf("console output not colored: %q", data)
	}
}
