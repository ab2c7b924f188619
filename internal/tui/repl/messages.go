// ============================================================================
// Tiny-Interpreter - Kaleidoscope front end
// ============================================================================
//
// Package:     repl
// Description: Transcript entries and message types for the REPL TUI
// Author:      Survive2
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package repl

import (
	"github.com/Survive2/Tiny-Interpreter/foundation/tiny"
)

// EntryKind classifies a transcript line
type EntryKind int

const (
	EntryInput EntryKind = iota
	EntryBanner
	EntryAST
	EntryError
	EntryInfo
)

// Entry is one line of the transcript
type Entry struct {
	Kind EntryKind
	Text string
}

// Message types for tea.Cmd async operations

// parsedMsg is sent when a submitted line has been parsed
type parsedMsg struct {
	input   string
	results []tiny.Result
	err     error // fatal error, if any
}
