// File: parser_test.go
// Title: Parser Tests
// Description: Tests for primary expressions, precedence climbing, calls,
//              prototypes, definitions, externs and error reporting.
// Author: Survive2
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial test coverage

package parser

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	tinyerror "github.com/Survive2/Tiny-Interpreter/foundation/core/error"
	tinylog "github.com/Survive2/Tiny-Interpreter/foundation/core/log"
	"github.com/Survive2/Tiny-Interpreter/foundation/tiny/ast"
)

func newTestParser(t *testing.T, input string, opts Options) *Parser {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = tinylog.Discard()
	}
	p, err := New(strings.NewReader(input), opts)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if _, err := p.Advance(); err != nil {
		t.Fatalf("Advance() error: %v", err)
	}
	return p
}

func TestParseTopLevelExpr(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"number", "42", "42"},
		{"variable", "x", "x"},
		{"multiplication binds tighter", "1+2*3", "(+ 1 (* 2 3))"},
		{"tighter operator first", "1*2+3", "(+ (* 1 2) 3)"},
		{"left associative minus", "1-2-3", "(- (- 1 2) 3)"},
		{"left associative mixed", "1+2-3+4", "(+ (- (+ 1 2) 3) 4)"},
		{"parentheses override", "(1+2)*3", "(* (+ 1 2) 3)"},
		{"nested parentheses", "((x))", "x"},
		{"comparison lowest", "a<b+c*d-e", "(< a (- (+ b (* c d)) e))"},
		{"call with arguments", "foo(1, 2)", "(call foo 1 2)"},
		{"call without arguments", "foo()", "(call foo)"},
		{"nested calls", "foo(1+2, bar(x))", "(call foo (+ 1 2) (call bar x))"},
		{"call in expression", "2*f(x)+1", "(+ (* 2 (call f x)) 1)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(t, tt.input, Options{})
			fn, err := p.ParseTopLevelExpr()
			if err != nil {
				t.Fatalf("ParseTopLevelExpr(%q) error: %v", tt.input, err)
			}
			if got := fn.Body.String(); got != tt.want {
				t.Errorf("body = %s, want %s", got, tt.want)
			}
			if fn.Proto == nil || fn.Proto.Name != "" || len(fn.Proto.Params) != 0 {
				t.Errorf("top-level prototype = %#v, want anonymous", fn.Proto)
			}
			if p.Current().Type != TokenEOF {
				t.Errorf("unconsumed input at %v", p.Current())
			}
		})
	}
}

func TestParseCallNode(t *testing.T) {
	p := newTestParser(t, "foo(1, 2)", Options{})
	expr, err := p.ParseExpression()
	if err != nil {
		t.Fatal(err)
	}
	call, ok := expr.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expression is %T, want *ast.CallExpr", expr)
	}
	if call.Callee != "foo" || len(call.Args) != 2 {
		t.Fatalf("call = %s", call)
	}
	for i, want := range []float64{1, 2} {
		n, ok := call.Args[i].(*ast.NumberExpr)
		if !ok || n.Val != want {
			t.Errorf("arg %d = %v, want %v", i, call.Args[i], want)
		}
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		parse   func(p *Parser) error
		wantMsg string
		wantCol int
	}{
		{"missing comma", "foo(1 2)", topLevel, MsgExpectedArgListDelim, 7},
		{"unterminated argument list", "foo(1,", topLevel, MsgUnknownToken, 7},
		{"unclosed paren", "(1+2", topLevel, MsgExpectedCloseParen, 5},
		{"lone plus", "+", topLevel, MsgUnknownToken, 1},
		{"lone open paren", "(", topLevel, MsgUnknownToken, 2},
		{"dangling operator", "1 + )", topLevel, MsgUnknownToken, 5},
		{"keyword in expression", "1 + def", topLevel, MsgUnknownToken, 5},
		{"def without name", "def 1", definition, MsgExpectedFuncName, 5},
		{"def without open paren", "def foo x", definition, MsgExpectedProtoOpen, 9},
		{"comma in prototype", "def foo(a, b) a", definition, MsgExpectedProtoClose, 10},
		{"def without body", "def foo(a)", definition, MsgUnknownToken, 11},
		{"extern without name", "extern", extern, MsgExpectedFuncName, 7},
		{"extern unclosed", "extern sin(x", extern, MsgExpectedProtoClose, 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(t, tt.input, Options{})
			err := tt.parse(p)

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("error = %v (%T), want *ParseError", err, err)
			}
			if pe.Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", pe.Error(), tt.wantMsg)
			}
			if pe.Pos.Line != 1 || pe.Pos.Column != tt.wantCol {
				t.Errorf("position = %s, want 1:%d", pe.Pos, tt.wantCol)
			}
			if IsFatal(err) {
				t.Error("syntax errors must not be fatal")
			}
		})
	}
}

func topLevel(p *Parser) error {
	_, err := p.ParseTopLevelExpr()
	return err
}

func definition(p *Parser) error {
	_, err := p.ParseDefinition()
	return err
}

func extern(p *Parser) error {
	_, err := p.ParseExtern()
	return err
}

func TestParseDefinition(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantName   string
		wantParams []string
		wantBody   string
	}{
		{"two parameters", "def foo(a b) a+b", "foo", []string{"a", "b"}, "(+ a b)"},
		{"no parameters", "def one() 1", "one", []string{}, "1"},
		{"recursive call", "def fib(x) fib(x-1)+fib(x-2)", "fib", []string{"x"}, "(+ (call fib (- x 1)) (call fib (- x 2)))"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(t, tt.input, Options{})
			fn, err := p.ParseDefinition()
			if err != nil {
				t.Fatalf("ParseDefinition(%q) error: %v", tt.input, err)
			}
			if fn.Proto.Name != tt.wantName {
				t.Errorf("name = %q, want %q", fn.Proto.Name, tt.wantName)
			}
			if !reflect.DeepEqual(fn.Proto.Params, tt.wantParams) {
				t.Errorf("params = %q, want %q", fn.Proto.Params, tt.wantParams)
			}
			if got := fn.Body.String(); got != tt.wantBody {
				t.Errorf("body = %s, want %s", got, tt.wantBody)
			}
		})
	}
}

func TestParseDefinitionStructure(t *testing.T) {
	p := newTestParser(t, "def foo(a b) a+b", Options{})
	fn, err := p.ParseDefinition()
	if err != nil {
		t.Fatal(err)
	}

	want := &ast.Function{
		Proto: &ast.Prototype{Name: "foo", Params: []string{"a", "b"}, Pos: ast.Position{Line: 1, Column: 5, Offset: 4}},
		Body: &ast.BinaryExpr{
			Op:  '+',
			LHS: &ast.VariableExpr{Name: "a", Pos: ast.Position{Line: 1, Column: 14, Offset: 13}},
			RHS: &ast.VariableExpr{Name: "b", Pos: ast.Position{Line: 1, Column: 16, Offset: 15}},
			Pos: ast.Position{Line: 1, Column: 15, Offset: 14},
		},
		Pos: ast.Position{Line: 1, Column: 1, Offset: 0},
	}
	if !reflect.DeepEqual(fn, want) {
		t.Errorf("ParseDefinition() = %s, want %s", fn, want)
	}
	if errs := ast.ValidateTree(fn, p.Precedence()); len(errs) != 0 {
		t.Errorf("parsed tree is invalid: %v", errs)
	}
}

func TestParseExtern(t *testing.T) {
	p := newTestParser(t, "extern atan2(y x); 1", Options{})
	proto, err := p.ParseExtern()
	if err != nil {
		t.Fatal(err)
	}
	if proto.Name != "atan2" || !reflect.DeepEqual(proto.Params, []string{"y", "x"}) {
		t.Errorf("prototype = %s", proto)
	}
	if !p.Current().Is(';') {
		t.Errorf("current = %v, want ';'", p.Current())
	}
}

func TestParseNoTerminatorConsumed(t *testing.T) {
	p := newTestParser(t, "def f(x) x 1", Options{})
	if _, err := p.ParseDefinition(); err != nil {
		t.Fatal(err)
	}
	if tok := p.Current(); tok.Type != TokenNumber || tok.Num != 1 {
		t.Errorf("current = %v, want number(1)", tok)
	}
}

func TestParseCustomPrecedence(t *testing.T) {
	tests := []struct {
		name  string
		table *PrecedenceTable
		input string
		want  string
	}{
		{
			name:  "inverted precedence",
			table: NewPrecedenceTable(map[rune]int{'+': 40, '*': 20}),
			input: "1+2*3",
			want:  "(* (+ 1 2) 3)",
		},
		{
			name:  "extra operator",
			table: DefaultPrecedence().With('/', 40),
			input: "8/4-1",
			want:  "(- (/ 8 4) 1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestParser(t, tt.input, Options{Precedence: tt.table})
			fn, err := p.ParseTopLevelExpr()
			if err != nil {
				t.Fatal(err)
			}
			if got := fn.Body.String(); got != tt.want {
				t.Errorf("body = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestParseStopsAtNonOperator(t *testing.T) {
	p := newTestParser(t, "1+2", Options{Precedence: NewPrecedenceTable(map[rune]int{'+': 0})})
	fn, err := p.ParseTopLevelExpr()
	if err != nil {
		t.Fatal(err)
	}
	if fn.Body.String() != "1" || !p.Current().Is('+') {
		t.Errorf("body = %s, current = %v", fn.Body, p.Current())
	}
}

func TestParseFatalLexerError(t *testing.T) {
	p := newTestParser(t, "1 + 1.2.3", Options{})
	_, err := p.ParseTopLevelExpr()
	if !IsFatal(err) {
		t.Fatalf("error = %v, want fatal", err)
	}
	if IsSyntaxError(err) {
		t.Error("fatal error reported as syntax error")
	}
	if !tinyerror.HasCode(err, tinyerror.CodeMalformedNumber) {
		t.Errorf("code = %v", tinyerror.GetCode(err))
	}

	permissive := newTestParser(t, "1 + 1.2.3", Options{NumberPolicy: NumberPermissive})
	fn, err := permissive.ParseTopLevelExpr()
	if err != nil {
		t.Fatal(err)
	}
	if fn.Body.String() != "(+ 1 1.2)" {
		t.Errorf("body = %s", fn.Body)
	}
}

func TestIndependentParsers(t *testing.T) {
	a := newTestParser(t, "1+2*3", Options{})
	b := newTestParser(t, "foo(x, y)", Options{})

	// Interleave token consumption between the two parsers.
	aExpr, err := a.ParsePrimary()
	if err != nil {
		t.Fatal(err)
	}
	bExpr, err := b.ParseExpression()
	if err != nil {
		t.Fatal(err)
	}
	aFull, err := a.parseBinOpRHS(0, aExpr)
	if err != nil {
		t.Fatal(err)
	}

	if aFull.String() != "(+ 1 (* 2 3))" || bExpr.String() != "(call foo x y)" {
		t.Errorf("a = %s, b = %s", aFull, bExpr)
	}
}

func TestNewRejectsNilReader(t *testing.T) {
	if _, err := New(nil, Options{}); !tinyerror.HasCode(err, tinyerror.CodeInvalidInput) {
		t.Errorf("New(nil) error = %v", err)
	}
}

func TestParseErrorDetailed(t *testing.T) {
	p := newTestParser(t, "foo(1 2)", Options{})
	_, err := p.ParseExpression()

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v", err)
	}
	want := "parse error at line 1, column 7: expected ')' or ',' in argument list (near number(2))"
	if pe.Detailed() != want {
		t.Errorf("Detailed() = %q, want %q", pe.Detailed(), want)
	}
}

func TestParserDebugLogging(t *testing.T) {
	var buf strings.Builder
	logger := tinylog.NewWithConfig(tinylog.Config{Level: tinylog.LevelDebug, Format: tinylog.FormatLogfmt, Output: &buf})

	p := newTestParser(t, "def f(x) x", Options{Logger: logger})
	if _, err := p.ParseDefinition(); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `message="parsed definition"`) || !strings.Contains(out, `component="tiny-parser"`) {
		t.Errorf("unexpected debug output: %q", out)
	}
}
