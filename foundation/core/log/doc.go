// Package log provides structured logging for the Tiny front end and CLI.
//
// Package: log
// Title: Tiny Structured Logging
// Description: Leveled logging with context fields and JSON, text, console,
//              or logfmt output. Loggers are immutable values: the With*
//              methods return derived loggers, so a component can attach its
//              own name and fields without affecting the parent.
// Author: Survive2
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
//
// Usage:
//
//	logger := tinylog.NewWithConfig(tinylog.Config{
//		Level:  tinylog.LevelDebug,
//		Format: tinylog.FormatLogfmt,
//	}).WithField("component", "tiny-parser")
//
//	logger.Debug("parsed definition", tinylog.Fields{"name": "foo"})
//	logger.Debug("lexing stopped", tinylog.Err(err).Merge(tinylog.Fields{"pos": "1:3"}))
package log
