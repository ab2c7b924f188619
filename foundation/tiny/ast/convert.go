// File: convert.go
// Title: AST to Plain Data Conversion
// Description: Converts AST nodes into nested maps and slices so they can be
//              encoded as YAML or JSON by the CLI.
// Author: Survive2
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package ast

// mapVisitor builds the plain representation bottom-up through Accept
type mapVisitor struct {
	BaseVisitor
	positions bool
}

// ToMap converts node into nested map[string]interface{} values. With
// positions set, every node carries a "pos" entry of the form "line:col".
func ToMap(node Node, positions bool) map[string]interface{} {
	if node == nil {
		return nil
	}
	m, _ := node.Accept(&mapVisitor{positions: positions}).(map[string]interface{})
	return m
}

func (mv *mapVisitor) node(kind string, n Node) map[string]interface{} {
	m := map[string]interface{}{"kind": kind}
	if mv.positions && n.Position().IsValid() {
		m["pos"] = n.Position().String()
	}
	return m
}

func (mv *mapVisitor) expr(e Expr) interface{} {
	if e == nil {
		return nil
	}
	return e.Accept(mv)
}

func (mv *mapVisitor) VisitNumber(expr *NumberExpr) interface{} {
	m := mv.node("number", expr)
	m["value"] = expr.Val
	return m
}

func (mv *mapVisitor) VisitVariable(expr *VariableExpr) interface{} {
	m := mv.node("variable", expr)
	m["name"] = expr.Name
	return m
}

func (mv *mapVisitor) VisitBinary(expr *BinaryExpr) interface{} {
	m := mv.node("binary", expr)
	m["op"] = string(expr.Op)
	m["lhs"] = mv.expr(expr.LHS)
	m["rhs"] = mv.expr(expr.RHS)
	return m
}

func (mv *mapVisitor) VisitCall(expr *CallExpr) interface{} {
	m := mv.node("call", expr)
	m["callee"] = expr.Callee
	args := make([]interface{}, 0, len(expr.Args))
	for _, arg := range expr.Args {
		args = append(args, mv.expr(arg))
	}
	m["args"] = args
	return m
}

func (mv *mapVisitor) VisitPrototype(proto *Prototype) interface{} {
	m := mv.node("prototype", proto)
	m["name"] = proto.Name
	params := make([]string, len(proto.Params))
	copy(params, proto.Params)
	m["params"] = params
	return m
}

func (mv *mapVisitor) VisitFunction(fn *Function) interface{} {
	kind := "function"
	if fn.Proto != nil && fn.Proto.IsAnonymous() {
		kind = "toplevel"
	}
	m := mv.node(kind, fn)
	if fn.Proto != nil {
		m["prototype"] = fn.Proto.Accept(mv)
	}
	m["body"] = mv.expr(fn.Body)
	return m
}
