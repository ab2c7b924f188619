// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The front end uses them to
//              separate recoverable syntax errors from fatal lexical failures.
// Author: Survive2
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow is a local, recoverable problem such as a syntax error
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a more specific code
	SeverityMedium

	// SeverityHigh affects the whole run, e.g. an unreadable config file
	SeverityHigh

	// SeverityCritical stops processing; no resynchronization is attempted
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// IsFatal reports whether processing must stop
func (s Severity) IsFatal() bool {
	return s >= SeverityCritical
}

// GetSeverityFromCode determines the default severity for a code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeMalformedNumber, CodeIOError:
		return SeverityCritical
	case CodeConfigError, CodeInvalidConfig, CodeInternal:
		return SeverityHigh
	case CodeSyntax, CodeInvalidInput, CodeNotFound, CodeInvalidAST, CodeCanceled:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
