// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures raised by
//              the Tiny front end, its configuration layer, and the CLI.
// Author: Survive2
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial set of front end and config codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeCanceled     Code = "CANCELED"

	// Input stream
	CodeIOError Code = "IO_ERROR"

	// Front end
	CodeSyntax          Code = "SYNTAX"
	CodeMalformedNumber Code = "MALFORMED_NUMBER"
	CodeInvalidAST      Code = "INVALID_AST"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// Category returns the broad category of the error code
func (c Code) Category() string {
	switch c {
	case CodeSyntax, CodeMalformedNumber, CodeInvalidAST:
		return "frontend"
	case CodeConfigError, CodeInvalidConfig:
		return "config"
	case CodeIOError:
		return "io"
	default:
		return "generic"
	}
}
