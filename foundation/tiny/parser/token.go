// File: token.go
// Title: Tiny Token Definitions
// Description: Defines the token kinds produced by the lexer. A token carries
//              its own payload (identifier text, numeric value or raw
//              character) together with its source position.
// Author: Survive2
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial token set

package parser

import (
	"fmt"

	"github.com/Survive2/Tiny-Interpreter/foundation/tiny/ast"
)

// TokenType represents the kind of a lexical token
type TokenType int

const (
	TokenEOF        TokenType = iota // end of input
	TokenDef                         // def
	TokenExtern                      // extern
	TokenIdentifier                  // foo, x1
	TokenNumber                      // 42, 3.14
	TokenChar                        // any other single character: + ( , ;
)

// String returns a string representation of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenDef:
		return "DEF"
	case TokenExtern:
		return "EXTERN"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenNumber:
		return "NUMBER"
	case TokenChar:
		return "CHAR"
	default:
		return "UNKNOWN"
	}
}

// Token represents a lexical token with position information
type Token struct {
	Type  TokenType
	Ident string       // TokenIdentifier text
	Num   float64      // TokenNumber value
	Char  rune         // TokenChar character
	Pos   ast.Position // position of the first character
}

// Is reports whether the token is the single character ch
func (t Token) Is(ch rune) bool {
	return t.Type == TokenChar && t.Char == ch
}

// Text returns the token as it would appear in source
func (t Token) Text() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenDef:
		return "def"
	case TokenExtern:
		return "extern"
	case TokenIdentifier:
		return t.Ident
	case TokenNumber:
		return ast.FormatNumber(t.Num)
	default:
		return string(t.Char)
	}
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenIdentifier:
		return fmt.Sprintf("identifier(%s)", t.Ident)
	case TokenNumber:
		return fmt.Sprintf("number(%s)", ast.FormatNumber(t.Num))
	case TokenChar:
		return fmt.Sprintf("%q", t.Char)
	default:
		return t.Text()
	}
}
