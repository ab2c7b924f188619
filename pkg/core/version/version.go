// ============================================================================
// Tiny-Interpreter - Kaleidoscope front end
// ============================================================================
//
// Package:     version
// Description: Central version management for all components
// Author:      Survive2
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for all components
const (
	// Platform version
	Platform = "0.1.0"

	// Component versions
	Lexer   = "0.1.0"
	Parser  = "0.1.0"
	Session = "0.1.0"
	CLI     = "0.1.0"
	TUI     = "0.1.0"
)

// Build metadata, set with -ldflags "-X .../version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "lexer":
		return Lexer
	case "parser":
		return Parser
	case "session":
		return Session
	case "cli":
		return CLI
	case "tui":
		return TUI
	default:
		return Platform
	}
}

// Components lists the known component names in display order
func Components() []string {
	return []string{"lexer", "parser", "session", "cli", "tui"}
}

// Info returns a one-line summary of the build
func Info() string {
	return fmt.Sprintf("tiny %s (commit %s, built %s, %s %s/%s)",
		Platform, Commit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
