// File: doc.go
// Title: Tiny Package Documentation
// Description: Package documentation for the tiny session facade
// Author: Survive2
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial documentation

// Package tiny drives the parser over an input stream the way an interactive
// read-parse loop does.
//
// A Session prints a prompt before every top-level construct, dispatches on
// the look-ahead token and reports each parsed construct with a banner:
//
//	ready> def foo(a b) a+b;
//	Parsed a function definition.
//	ready> extern sin(x);
//	Parsed an extern
//	ready> 1+2*3;
//	Parsed a top-level expr
//
// Top-level semicolons are skipped. A syntax error is printed as
// "Error: <message>" and exactly one token is skipped before the loop
// continues; this is best-effort recovery and may itself land on another
// error. A fatal lexer error ends the session and is returned from Run.
//
// Results are also delivered as values so callers can inspect the AST:
//
//	session, err := tiny.NewSession(os.Stdin, tiny.Options{})
//	if err != nil {
//	    return err
//	}
//	err = session.Run(ctx, func(r tiny.Result) {
//	    fmt.Println(r)
//	})
//
// Sessions are independent. Each owns its parser and lexer state; only the
// immutable precedence table may be shared between them.
package tiny
