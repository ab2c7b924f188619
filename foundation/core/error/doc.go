// Package error provides structured, coded errors for the Tiny front end.
//
// Package: error
// Title: Tiny Error Handling
// Description: Errors carry a Code, a Severity, an operation name, and free
//              form details. Severity separates the two failure tiers of the
//              front end: syntax errors are low severity and recoverable,
//              while malformed numeric literals and broken input streams are
//              critical and stop the driving loop.
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
//	err := tinyerror.New("malformed number literal").
//		WithCode(tinyerror.CodeMalformedNumber).
//		WithOperation("lexer.Next").
//		WithDetail("text", "1.2.3")
//
//	if tinyerror.GetSeverity(err).IsFatal() {
//		// stop the loop
//	}
package error
