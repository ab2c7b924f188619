// File: visitor.go
// Title: Tiny AST Visitor Pattern Implementation
// Description: Implements the visitor pattern for traversing AST nodes and
//              the visitors used by the driver and the CLI: an indented tree
//              printer, a structural validator and a node collector.
// Author: Survive2
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial visitor implementations

package ast

import (
	"fmt"
	"strings"

	"github.com/Survive2/Tiny-Interpreter/foundation/utils/slicex"
)

// Visitor interface for traversing AST nodes using the visitor pattern
type Visitor interface {
	// Expression nodes
	VisitNumber(expr *NumberExpr) interface{}
	VisitVariable(expr *VariableExpr) interface{}
	VisitBinary(expr *BinaryExpr) interface{}
	VisitCall(expr *CallExpr) interface{}

	// Top-level nodes
	VisitPrototype(proto *Prototype) interface{}
	VisitFunction(fn *Function) interface{}
}

// BaseVisitor provides no-op implementations for all visitor methods.
// Embed it and override what is needed; use Walk to descend with the
// embedding visitor.
type BaseVisitor struct{}

func (BaseVisitor) VisitNumber(*NumberExpr) interface{}     { return nil }
func (BaseVisitor) VisitVariable(*VariableExpr) interface{} { return nil }
func (BaseVisitor) VisitBinary(*BinaryExpr) interface{}     { return nil }
func (BaseVisitor) VisitCall(*CallExpr) interface{}         { return nil }
func (BaseVisitor) VisitPrototype(*Prototype) interface{}   { return nil }
func (BaseVisitor) VisitFunction(*Function) interface{}     { return nil }

// Children returns the direct, non-nil children of node in source order
func Children(node Node) []Node {
	switch n := node.(type) {
	case *BinaryExpr:
		return nonNil(n.LHS, n.RHS)
	case *CallExpr:
		children := make([]Node, 0, len(n.Args))
		for _, arg := range n.Args {
			if arg != nil {
				children = append(children, arg)
			}
		}
		return children
	case *Function:
		var children []Node
		if n.Proto != nil {
			children = append(children, n.Proto)
		}
		if n.Body != nil {
			children = append(children, n.Body)
		}
		return children
	default:
		return nil
	}
}

func nonNil(exprs ...Expr) []Node {
	children := make([]Node, 0, len(exprs))
	for _, e := range exprs {
		if e != nil {
			children = append(children, e)
		}
	}
	return children
}

// Walk visits every child of node with v
func Walk(v Visitor, node Node) {
	for _, child := range Children(node) {
		child.Accept(v)
	}
}

// StringVisitor renders an indented, one-node-per-line tree
type StringVisitor struct {
	BaseVisitor
	buffer strings.Builder
	indent int
}

// NewStringVisitor creates a new string visitor
func NewStringVisitor() *StringVisitor {
	return &StringVisitor{}
}

// String returns the rendered tree
func (sv *StringVisitor) String() string {
	return sv.buffer.String()
}

// Reset clears the buffer
func (sv *StringVisitor) Reset() {
	sv.buffer.Reset()
	sv.indent = 0
}

func (sv *StringVisitor) line(format string, args ...interface{}) {
	sv.buffer.WriteString(strings.Repeat("  ", sv.indent))
	fmt.Fprintf(&sv.buffer, format, args...)
	sv.buffer.WriteByte('\n')
}

func (sv *StringVisitor) nested(node Node) {
	sv.indent++
	Walk(sv, node)
	sv.indent--
}

func (sv *StringVisitor) VisitNumber(expr *NumberExpr) interface{} {
	sv.line("Number %s", FormatNumber(expr.Val))
	return nil
}

func (sv *StringVisitor) VisitVariable(expr *VariableExpr) interface{} {
	sv.line("Variable %s", expr.Name)
	return nil
}

func (sv *StringVisitor) VisitBinary(expr *BinaryExpr) interface{} {
	sv.line("Binary %c", expr.Op)
	sv.nested(expr)
	return nil
}

func (sv *StringVisitor) VisitCall(expr *CallExpr) interface{} {
	sv.line("Call %s/%d", expr.Callee, len(expr.Args))
	sv.nested(expr)
	return nil
}

func (sv *StringVisitor) VisitPrototype(proto *Prototype) interface{} {
	if proto.IsAnonymous() {
		sv.line("Prototype <anonymous>")
		return nil
	}
	sv.line("Prototype %s", proto.String())
	return nil
}

func (sv *StringVisitor) VisitFunction(fn *Function) interface{} {
	if fn.Proto != nil && fn.Proto.IsAnonymous() {
		sv.line("TopLevel")
	} else {
		sv.line("Function %s", fn.Name())
	}
	sv.nested(fn)
	return nil
}

// OperatorSet reports which binary operators are registered
type OperatorSet interface {
	Has(op rune) bool
}

// ValidationVisitor validates every node of a tree and collects errors
type ValidationVisitor struct {
	BaseVisitor
	operators OperatorSet
	errors    []error
}

// NewValidationVisitor creates a validation visitor. With a non-nil
// operator set, binary operators must be members of it.
func NewValidationVisitor(operators OperatorSet) *ValidationVisitor {
	return &ValidationVisitor{
		operators: operators,
		errors:    make([]error, 0),
	}
}

// Errors returns all validation errors found
func (vv *ValidationVisitor) Errors() []error {
	return vv.errors
}

func (vv *ValidationVisitor) check(node Node, what string) {
	if err := node.Validate(); err != nil {
		vv.errors = append(vv.errors, fmt.Errorf("%s at %s: %w", what, node.Position(), err))
	}
	Walk(vv, node)
}

func (vv *ValidationVisitor) VisitNumber(expr *NumberExpr) interface{} {
	vv.check(expr, "number")
	return nil
}

func (vv *ValidationVisitor) VisitVariable(expr *VariableExpr) interface{} {
	vv.check(expr, "variable")
	return nil
}

func (vv *ValidationVisitor) VisitBinary(expr *BinaryExpr) interface{} {
	if vv.operators != nil && expr.Op != 0 && !vv.operators.Has(expr.Op) {
		vv.errors = append(vv.errors, fmt.Errorf("binary expression at %s: %w",
			expr.Pos, invalid("operator %q is not registered", expr.Op)))
	}
	vv.check(expr, "binary expression")
	return nil
}

func (vv *ValidationVisitor) VisitCall(expr *CallExpr) interface{} {
	vv.check(expr, "call")
	return nil
}

func (vv *ValidationVisitor) VisitPrototype(proto *Prototype) interface{} {
	vv.check(proto, "prototype")
	return nil
}

func (vv *ValidationVisitor) VisitFunction(fn *Function) interface{} {
	vv.check(fn, "function")
	return nil
}

// CollectorVisitor collects nodes by kind in source order
type CollectorVisitor struct {
	BaseVisitor
	Numbers    []*NumberExpr
	Variables  []*VariableExpr
	Binaries   []*BinaryExpr
	Calls      []*CallExpr
	Prototypes []*Prototype
}

// NewCollectorVisitor creates a new collector visitor
func NewCollectorVisitor() *CollectorVisitor {
	return &CollectorVisitor{}
}

func (cv *CollectorVisitor) VisitNumber(expr *NumberExpr) interface{} {
	cv.Numbers = append(cv.Numbers, expr)
	return nil
}

func (cv *CollectorVisitor) VisitVariable(expr *VariableExpr) interface{} {
	cv.Variables = append(cv.Variables, expr)
	return nil
}

func (cv *CollectorVisitor) VisitBinary(expr *BinaryExpr) interface{} {
	cv.Binaries = append(cv.Binaries, expr)
	Walk(cv, expr)
	return nil
}

func (cv *CollectorVisitor) VisitCall(expr *CallExpr) interface{} {
	cv.Calls = append(cv.Calls, expr)
	Walk(cv, expr)
	return nil
}

func (cv *CollectorVisitor) VisitPrototype(proto *Prototype) interface{} {
	cv.Prototypes = append(cv.Prototypes, proto)
	return nil
}

func (cv *CollectorVisitor) VisitFunction(fn *Function) interface{} {
	Walk(cv, fn)
	return nil
}

// ValidateTree validates node and all its descendants
func ValidateTree(node Node, operators OperatorSet) []error {
	visitor := NewValidationVisitor(operators)
	node.Accept(visitor)
	return visitor.Errors()
}

// TreeString renders node as an indented tree
func TreeString(node Node) string {
	visitor := NewStringVisitor()
	node.Accept(visitor)
	return visitor.String()
}

// Collect gathers all nodes of a tree
func Collect(node Node) *CollectorVisitor {
	visitor := NewCollectorVisitor()
	node.Accept(visitor)
	return visitor
}

// FreeVariables returns the sorted, distinct variable names used in the
// body of fn that are not parameters of fn
func FreeVariables(fn *Function) []string {
	params := make(map[string]bool)
	if fn.Proto != nil {
		for _, p := range fn.Proto.Params {
			params[p] = true
		}
	}
	names := slicex.Map(Collect(fn).Variables, func(v *VariableExpr) string { return v.Name })
	names = slicex.Filter(names, func(name string) bool { return !params[name] })
	return slicex.SortedUnique(names)
}

// Callees returns the sorted, distinct names of functions called in node
func Callees(node Node) []string {
	names := slicex.Map(Collect(node).Calls, func(c *CallExpr) string { return c.Callee })
	return slicex.SortedUnique(names)
}
