// File: nodes.go
// Title: Tiny AST Node Definitions
// Description: Defines the abstract syntax tree produced by the parser. The
//              expression nodes form a closed set: only the four node types
//              declared here implement Expr.
// Author: Survive2
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial node set (number, variable, binary, call,
//                      prototype, function)

package ast

import (
	"fmt"
	"strconv"
	"strings"

	tinyerror "github.com/Survive2/Tiny-Interpreter/foundation/core/error"
	"github.com/Survive2/Tiny-Interpreter/foundation/utils/stringx"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// String returns a compact S-expression form of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the source position of the node
	Position() Position

	// Validate checks the node itself, not its children
	Validate() error
}

// Expr is an expression node. The unexported marker keeps the set closed.
type Expr interface {
	Node
	exprNode()
}

// Position represents a position in the source text
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Rune offset (0-based)
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsValid reports whether the position was set
func (p Position) IsValid() bool {
	return p.Line > 0
}

// NumberExpr is a numeric literal
type NumberExpr struct {
	Val float64
	Pos Position
}

// VariableExpr is a reference to a named value
type VariableExpr struct {
	Name string
	Pos  Position
}

// BinaryExpr applies a binary operator to two operands.
// Pos is the position of the operator.
type BinaryExpr struct {
	Op  rune
	LHS Expr
	RHS Expr
	Pos Position
}

// CallExpr calls a function by name with ordered arguments
type CallExpr struct {
	Callee string
	Args   []Expr
	Pos    Position
}

// Prototype is a function signature. An empty Name marks the wrapper of a
// top-level expression.
type Prototype struct {
	Name   string
	Params []string
	Pos    Position
}

// Function pairs a prototype with a single body expression
type Function struct {
	Proto *Prototype
	Body  Expr
	Pos   Position
}

func (*NumberExpr) exprNode()   {}
func (*VariableExpr) exprNode() {}
func (*BinaryExpr) exprNode()   {}
func (*CallExpr) exprNode()     {}

// FormatNumber renders a literal value the way the printers show it
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func invalid(format string, args ...interface{}) error {
	return tinyerror.Newf(format, args...).
		WithCode(tinyerror.CodeInvalidAST).
		WithOperation("ast.Validate")
}

// NumberExpr

func (n *NumberExpr) String() string {
	return FormatNumber(n.Val)
}

func (n *NumberExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitNumber(n)
}

func (n *NumberExpr) Position() Position {
	return n.Pos
}

func (n *NumberExpr) Validate() error {
	return nil
}

// VariableExpr

func (v *VariableExpr) String() string {
	return v.Name
}

func (v *VariableExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitVariable(v)
}

func (v *VariableExpr) Position() Position {
	return v.Pos
}

func (v *VariableExpr) Validate() error {
	if stringx.IsBlank(v.Name) {
		return invalid("variable name is required")
	}
	return nil
}

// BinaryExpr

func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%c %s %s)", b.Op, exprString(b.LHS), exprString(b.RHS))
}

func (b *BinaryExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinary(b)
}

func (b *BinaryExpr) Position() Position {
	return b.Pos
}

func (b *BinaryExpr) Validate() error {
	if b.Op == 0 {
		return invalid("binary operator is required")
	}
	if b.LHS == nil || b.RHS == nil {
		return invalid("binary operator %q requires two operands", b.Op)
	}
	return nil
}

// CallExpr

func (c *CallExpr) String() string {
	var sb strings.Builder
	sb.WriteString("(call ")
	sb.WriteString(c.Callee)
	for _, arg := range c.Args {
		sb.WriteByte(' ')
		sb.WriteString(exprString(arg))
	}
	sb.WriteByte(')')
	return sb.String()
}

func (c *CallExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitCall(c)
}

func (c *CallExpr) Position() Position {
	return c.Pos
}

func (c *CallExpr) Validate() error {
	if stringx.IsBlank(c.Callee) {
		return invalid("callee name is required")
	}
	for i, arg := range c.Args {
		if arg == nil {
			return invalid("argument %d of call to %s is missing", i, c.Callee)
		}
	}
	return nil
}

// Prototype

func (p *Prototype) String() string {
	return p.Name + "(" + strings.Join(p.Params, " ") + ")"
}

func (p *Prototype) Accept(visitor Visitor) interface{} {
	return visitor.VisitPrototype(p)
}

func (p *Prototype) Position() Position {
	return p.Pos
}

func (p *Prototype) Validate() error {
	if p.Name != "" && stringx.IsBlank(p.Name) {
		return invalid("prototype name must not be blank")
	}
	if p.IsAnonymous() && len(p.Params) > 0 {
		return invalid("anonymous prototype cannot take parameters")
	}
	for i, param := range p.Params {
		if stringx.IsBlank(param) {
			return invalid("parameter %d of %s is blank", i, p.Name)
		}
	}
	return nil
}

// IsAnonymous reports whether the prototype wraps a top-level expression
func (p *Prototype) IsAnonymous() bool {
	return p.Name == ""
}

// Function

func (f *Function) String() string {
	if f.Proto != nil && f.Proto.IsAnonymous() {
		return "(toplevel " + exprString(f.Body) + ")"
	}
	proto := "<nil>"
	if f.Proto != nil {
		proto = f.Proto.String()
	}
	return "(def " + proto + " " + exprString(f.Body) + ")"
}

func (f *Function) Accept(visitor Visitor) interface{} {
	return visitor.VisitFunction(f)
}

func (f *Function) Position() Position {
	return f.Pos
}

func (f *Function) Validate() error {
	if f.Proto == nil {
		return invalid("function prototype is required")
	}
	if f.Body == nil {
		return invalid("function %s has no body", f.Proto.Name)
	}
	return nil
}

// Name returns the prototype name, or "" for top-level expressions
func (f *Function) Name() string {
	if f.Proto == nil {
		return ""
	}
	return f.Proto.Name
}

func exprString(e Expr) string {
	if e == nil {
		return "<nil>"
	}
	return e.String()
}
