// File: visitor_test.go
// Title: AST Visitor Tests
// Description: Tests for the tree printer, validator, collector and map
//              conversion.
// Author: Survive2
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test coverage

package ast

import (
	"reflect"
	"strings"
	"testing"
)

type opSet string

func (s opSet) Has(op rune) bool { return strings.ContainsRune(string(s), op) }

// def foo(a b) a + bar(b, c) * 2
func sampleFunction() *Function {
	return &Function{
		Proto: &Prototype{Name: "foo", Params: []string{"a", "b"}, Pos: Position{Line: 1, Column: 5}},
		Body: bin('+',
			variable("a"),
			bin('*', &CallExpr{Callee: "bar", Args: []Expr{variable("b"), variable("c")}}, num(2)),
		),
		Pos: Position{Line: 1, Column: 1},
	}
}

func TestTreeString(t *testing.T) {
	want := strings.Join([]string{
		"Function foo",
		"  Prototype foo(a b)",
		"  Binary +",
		"    Variable a",
		"    Binary *",
		"      Call bar/2",
		"        Variable b",
		"        Variable c",
		"      Number 2",
		"",
	}, "\n")

	if got := TreeString(sampleFunction()); got != want {
		t.Errorf("TreeString() =\n%s\nwant\n%s", got, want)
	}

	top := &Function{Proto: &Prototype{}, Body: num(7)}
	if got := TreeString(top); got != "TopLevel\n  Prototype <anonymous>\n  Number 7\n" {
		t.Errorf("TreeString(top) = %q", got)
	}
}

func TestValidateTree(t *testing.T) {
	tests := []struct {
		name      string
		node      Node
		operators OperatorSet
		wantErrs  int
	}{
		{"valid tree", sampleFunction(), opSet("<+-*"), 0},
		{"valid tree without operator check", sampleFunction(), nil, 0},
		{"unregistered operator", bin('/', num(1), num(2)), opSet("<+-*"), 1},
		{"nested defects", bin('+', variable(""), &CallExpr{Callee: "f", Args: []Expr{variable(" ")}}), opSet("+"), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateTree(tt.node, tt.operators)
			if len(errs) != tt.wantErrs {
				t.Errorf("ValidateTree() = %v, want %d errors", errs, tt.wantErrs)
			}
		})
	}
}

func TestCollect(t *testing.T) {
	c := Collect(sampleFunction())

	if len(c.Variables) != 3 || len(c.Calls) != 1 || len(c.Numbers) != 1 || len(c.Binaries) != 2 || len(c.Prototypes) != 1 {
		t.Errorf("unexpected counts: vars=%d calls=%d nums=%d bins=%d protos=%d",
			len(c.Variables), len(c.Calls), len(c.Numbers), len(c.Binaries), len(c.Prototypes))
	}
	if got := FreeVariables(sampleFunction()); !reflect.DeepEqual(got, []string{"c"}) {
		t.Errorf("FreeVariables() = %v", got)
	}
	if got := Callees(sampleFunction()); !reflect.DeepEqual(got, []string{"bar"}) {
		t.Errorf("Callees() = %v", got)
	}
}

func TestToMap(t *testing.T) {
	fn := &Function{
		Proto: &Prototype{Name: "id", Params: []string{"x"}, Pos: Position{Line: 1, Column: 5}},
		Body:  &VariableExpr{Name: "x", Pos: Position{Line: 1, Column: 10}},
	}

	got := ToMap(fn, true)
	want := map[string]interface{}{
		"kind": "function",
		"prototype": map[string]interface{}{
			"kind":   "prototype",
			"name":   "id",
			"params": []string{"x"},
			"pos":    "1:5",
		},
		"body": map[string]interface{}{
			"kind": "variable",
			"name": "x",
			"pos":  "1:10",
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ToMap() = %#v\nwant %#v", got, want)
	}

	call := ToMap(&CallExpr{Callee: "f", Args: []Expr{num(1)}}, false)
	args, ok := call["args"].([]interface{})
	if !ok || len(args) != 1 {
		t.Fatalf("args = %#v", call["args"])
	}
	if arg := args[0].(map[string]interface{}); arg["value"] != 1.0 {
		t.Errorf("arg = %#v", arg)
	}
	if _, has := call["pos"]; has {
		t.Error("positions disabled but pos present")
	}
}
