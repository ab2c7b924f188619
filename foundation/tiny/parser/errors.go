// File: errors.go
// Title: Parse Error Types
// Description: Defines ParseError, the recoverable syntax failure returned by
//              every parse operation, and helpers to tell it apart from fatal
//              lexer failures.
// Author: Survive2
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package parser

import (
	"errors"
	"fmt"

	"github.com/Survive2/Tiny-Interpreter/foundation/tiny/ast"
)

// Syntax error messages
const (
	MsgExpectedCloseParen   = "expected ')'"
	MsgUnknownToken         = "unknown token when expecting an expression"
	MsgExpectedArgListDelim = "expected ')' or ',' in argument list"
	MsgExpectedFuncName     = "expected function name in prototype"
	MsgExpectedProtoOpen    = "expected '(' in prototype"
	MsgExpectedProtoClose   = "expected ')' in prototype"
)

// ParseError represents a recoverable syntax error
type ParseError struct {
	Message string       // one of the Msg constants
	Pos     ast.Position // position of the offending token
	Token   Token        // the offending token
}

// Error returns the bare message
func (e *ParseError) Error() string {
	return e.Message
}

// Detailed returns the message with its position and the offending token
func (e *ParseError) Detailed() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s (near %s)",
		e.Pos.Line, e.Pos.Column, e.Message, e.Token.String())
}

// IsSyntaxError reports whether err is a recoverable *ParseError
func IsSyntaxError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsFatal reports whether err must stop parsing: any error that is not a
// syntax error
func IsFatal(err error) bool {
	return err != nil && !IsSyntaxError(err)
}
