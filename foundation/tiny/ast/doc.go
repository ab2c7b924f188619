// Package ast defines the syntax tree of the Tiny language.
//
// Package: ast
// Title: Tiny Abstract Syntax Tree
// Description: Expressions are a closed sum type over NumberExpr,
//              VariableExpr, BinaryExpr and CallExpr; the unexported
//              exprNode marker prevents other packages from adding cases, so
//              a type switch over these four is exhaustive. Prototype and
//              Function are top-level nodes. Nodes are never mutated after
//              the parser builds them; each child belongs to exactly one
//              parent.
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
//	fmt.Println(fn)                  // (def foo(a b) (+ a b))
//	fmt.Print(ast.TreeString(fn))    // indented tree
//	errs := ast.ValidateTree(fn, table)
//	free := ast.FreeVariables(fn)
package ast
