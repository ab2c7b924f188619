// Package parser implements the Tiny lexer and parser.
//
// Package: parser
// Title: Tiny Lexer and Precedence-Climbing Parser
// Description: The lexer turns a character stream into tokens on demand; the
//              parser pulls one token at a time and builds ast nodes. All
//              state (look-ahead character, current token, precedence table)
//              lives in the Lexer and Parser values, so independent parsers
//              can run side by side.
// Author: Survive2
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation
//
// Grammar:
//
//	toplevel     ::= definition | external | expression | ';'
//	definition   ::= 'def' prototype expression
//	external     ::= 'extern' prototype
//	prototype    ::= identifier '(' identifier* ')'
//	expression   ::= primary (binop primary)*
//	primary      ::= identifier
//	               | identifier '(' (expression (',' expression)*)? ')'
//	               | number
//	               | '(' expression ')'
//
// Errors:
//
// Syntax errors are returned as *ParseError and are recoverable: the caller
// may skip a token and continue. Any other error (a malformed number literal
// under NumberStrict, or a failing reader) is fatal; see IsFatal.
//
// Usage:
//
//	p, err := parser.New(strings.NewReader("def foo(a b) a+b"), parser.Options{})
//	if err != nil {
//		return err
//	}
//	if _, err := p.Advance(); err != nil {
//		return err
//	}
//	fn, err := p.ParseDefinition()
package parser
