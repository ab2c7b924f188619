// ============================================================================
// Tiny-Interpreter - Kaleidoscope front end
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from string settings
// Author:      Survive2
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	tinylog "github.com/Survive2/Tiny-Interpreter/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name shown in every entry
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: json, text, console or logfmt (default: text)
	Format string

	// Output writer (default: stderr, so logs never mix with command output)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer

	// Include caller file and line
	EnableCaller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// NewLogger creates a foundation logger. Unknown levels fall back to info and
// unknown formats to text; Validate on the application config rejects them
// earlier.
func NewLogger(cfg LoggerConfig) *tinylog.Logger {
	level, err := tinylog.ParseLevel(cfg.Level)
	if err != nil {
		level = tinylog.LevelInfo
	}
	format, err := tinylog.ParseFormat(cfg.Format)
	if err != nil {
		format = tinylog.FormatText
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return tinylog.NewWithConfig(tinylog.Config{
		Level:        level,
		Format:       format,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.EnableCaller,
	})
}

// KV converts alternating key-value pairs to Fields. Non-string keys and a
// trailing key without value are skipped.
func KV(keysAndValues ...interface{}) tinylog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(tinylog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
