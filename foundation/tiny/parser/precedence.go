// File: precedence.go
// Title: Binary Operator Precedence Table
// Description: Implements the immutable operator precedence table consulted
//              by the precedence-climbing parser. Tables are built once and
//              injected into parsers; they are safe to share.
// Author: Survive2
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package parser

import (
	"fmt"
	"strings"

	"github.com/Survive2/Tiny-Interpreter/foundation/utils/mapx"
	"github.com/Survive2/Tiny-Interpreter/foundation/utils/slicex"
)

// PrecedenceTable maps single-character binary operators to their
// precedence. Higher values bind tighter.
type PrecedenceTable struct {
	prec map[rune]int
}

var defaultPrecedence = NewPrecedenceTable(map[rune]int{
	'<': 10,
	'+': 20,
	'-': 20,
	'*': 40,
})

// DefaultPrecedence returns the standard table: < 10, + 20, - 20, * 40
func DefaultPrecedence() *PrecedenceTable {
	return defaultPrecedence
}

// NewPrecedenceTable builds a table from a copy of entries
func NewPrecedenceTable(entries map[rune]int) *PrecedenceTable {
	prec := mapx.Clone(entries)
	if prec == nil {
		prec = make(map[rune]int)
	}
	return &PrecedenceTable{prec: prec}
}

// With returns a new table with op set to precedence; the receiver is unchanged
func (t *PrecedenceTable) With(op rune, precedence int) *PrecedenceTable {
	next := NewPrecedenceTable(t.prec)
	next.prec[op] = precedence
	return next
}

// Precedence returns the precedence of op, or -1 when op is not ASCII, not
// registered, or registered with a non-positive value
func (t *PrecedenceTable) Precedence(op rune) int {
	if op < 0 || op > 0x7f {
		return -1
	}
	p, ok := t.prec[op]
	if !ok || p <= 0 {
		return -1
	}
	return p
}

// Lookup returns the precedence of tok as a binary operator, or -1
func (t *PrecedenceTable) Lookup(tok Token) int {
	if tok.Type != TokenChar {
		return -1
	}
	return t.Precedence(tok.Char)
}

// Has reports whether op is a usable binary operator
func (t *PrecedenceTable) Has(op rune) bool {
	return t.Precedence(op) > 0
}

// Operators returns the usable operators sorted by character
func (t *PrecedenceTable) Operators() []rune {
	return slicex.Filter(mapx.SortedKeys(t.prec), t.Has)
}

// String renders the table as "< 10, + 20, ..."
func (t *PrecedenceTable) String() string {
	parts := make([]string, 0, len(t.prec))
	for _, op := range t.Operators() {
		parts = append(parts, fmt.Sprintf("%c %d", op, t.prec[op]))
	}
	return strings.Join(parts, ", ")
}
