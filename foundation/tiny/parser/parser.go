// File: parser.go
// Title: Tiny Recursive-Descent Parser
// Description: Implements the parser. Primary expressions and prototypes are
//              parsed by recursive descent; binary operator chains by
//              precedence climbing over an injected precedence table. The
//              parser keeps exactly one look-ahead token.
// Author: Survive2
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial parser implementation

package parser

import (
	"io"

	tinyerror "github.com/Survive2/Tiny-Interpreter/foundation/core/error"
	tinylog "github.com/Survive2/Tiny-Interpreter/foundation/core/log"
	"github.com/Survive2/Tiny-Interpreter/foundation/tiny/ast"
)

// Options configures parser behavior
type Options struct {
	// Logger for debug output (default: process default logger)
	Logger *tinylog.Logger

	// Precedence is the binary operator table (default: DefaultPrecedence)
	Precedence *PrecedenceTable

	// NumberPolicy is passed to the lexer
	NumberPolicy NumberPolicy
}

// Parser builds AST nodes from a token stream
type Parser struct {
	lexer   *Lexer
	current Token
	table   *PrecedenceTable
	logger  *tinylog.Logger
}

// New creates a parser reading from r. The parser starts without a current
// token: call Advance once before the first parse operation.
func New(r io.Reader, opts Options) (*Parser, error) {
	if r == nil {
		return nil, tinyerror.New("parser input cannot be nil").
			WithCode(tinyerror.CodeInvalidInput).
			WithOperation("parser.New")
	}

	logger := opts.Logger
	if logger == nil {
		logger = tinylog.GetDefault()
	}
	table := opts.Precedence
	if table == nil {
		table = DefaultPrecedence()
	}

	return &Parser{
		lexer: NewLexer(r, LexerOptions{
			NumberPolicy: opts.NumberPolicy,
			Logger:       logger,
		}),
		table:  table,
		logger: logger.WithField("component", "tiny-parser"),
	}, nil
}

// Advance discards the current token and reads the next one
func (p *Parser) Advance() (Token, error) {
	tok, err := p.lexer.Next()
	p.current = tok
	return tok, err
}

// Current returns the look-ahead token
func (p *Parser) Current() Token {
	return p.current
}

// Precedence returns the operator table in use
func (p *Parser) Precedence() *PrecedenceTable {
	return p.table
}

// ParsePrimary parses an identifier, call, number or parenthesized expression
func (p *Parser) ParsePrimary() (ast.Expr, error) {
	switch {
	case p.current.Type == TokenIdentifier:
		return p.parseIdentifierExpr()
	case p.current.Type == TokenNumber:
		return p.parseNumberExpr()
	case p.current.Is('('):
		return p.parseParenExpr()
	default:
		return nil, p.syntaxError(MsgUnknownToken)
	}
}

// parseNumberExpr
//
//	numberexpr ::= number
func (p *Parser) parseNumberExpr() (ast.Expr, error) {
	node := &ast.NumberExpr{Val: p.current.Num, Pos: p.current.Pos}
	if _, err := p.Advance(); err != nil {
		return nil, err
	}
	return node, nil
}

// parseParenExpr
//
//	parenexpr ::= '(' expression ')'
func (p *Parser) parseParenExpr() (ast.Expr, error) {
	if _, err := p.Advance(); err != nil {
		return nil, err
	}
	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}
	if !p.current.Is(')') {
		return nil, p.syntaxError(MsgExpectedCloseParen)
	}
	if _, err := p.Advance(); err != nil {
		return nil, err
	}
	return expr, nil
}

// parseIdentifierExpr
//
//	identifierexpr ::= identifier
//	               ::= identifier '(' (expression (',' expression)*)? ')'
func (p *Parser) parseIdentifierExpr() (ast.Expr, error) {
	name, pos := p.current.Ident, p.current.Pos
	if _, err := p.Advance(); err != nil {
		return nil, err
	}

	if !p.current.Is('(') {
		return &ast.VariableExpr{Name: name, Pos: pos}, nil
	}

	if _, err := p.Advance(); err != nil {
		return nil, err
	}
	var args []ast.Expr
	if !p.current.Is(')') {
		for {
			arg, err := p.ParseExpression()
			if err != nil {
				return nil, err
			}
			args = append(args, arg)

			if p.current.Is(')') {
				break
			}
			if !p.current.Is(',') {
				return nil, p.syntaxError(MsgExpectedArgListDelim)
			}
			if _, err := p.Advance(); err != nil {
				return nil, err
			}
		}
	}
	if _, err := p.Advance(); err != nil {
		return nil, err
	}

	return &ast.CallExpr{Callee: name, Args: args, Pos: pos}, nil
}

// ParseExpression parses a primary expression followed by any chain of
// binary operators
//
//	expression ::= primary binoprhs
func (p *Parser) ParseExpression() (ast.Expr, error) {
	lhs, err := p.ParsePrimary()
	if err != nil {
		return nil, err
	}
	return p.parseBinOpRHS(0, lhs)
}

// parseBinOpRHS extends lhs with operators binding at least minPrec
//
//	binoprhs ::= (binop primary)*
func (p *Parser) parseBinOpRHS(minPrec int, lhs ast.Expr) (ast.Expr, error) {
	for {
		tokPrec := p.table.Lookup(p.current)
		if tokPrec < minPrec {
			return lhs, nil
		}

		op := p.current
		if _, err := p.Advance(); err != nil {
			return nil, err
		}

		rhs, err := p.ParsePrimary()
		if err != nil {
			return nil, err
		}

		// A tighter operator after rhs takes rhs as its own left operand.
		if nextPrec := p.table.Lookup(p.current); tokPrec < nextPrec {
			rhs, err = p.parseBinOpRHS(tokPrec+1, rhs)
			if err != nil {
				return nil, err
			}
		}

		lhs = &ast.BinaryExpr{Op: op.Char, LHS: lhs, RHS: rhs, Pos: op.Pos}
	}
}

// ParsePrototype parses a function signature
//
//	prototype ::= identifier '(' identifier* ')'
func (p *Parser) ParsePrototype() (*ast.Prototype, error) {
	if p.current.Type != TokenIdentifier {
		return nil, p.syntaxError(MsgExpectedFuncName)
	}
	name, pos := p.current.Ident, p.current.Pos

	if _, err := p.Advance(); err != nil {
		return nil, err
	}
	if !p.current.Is('(') {
		return nil, p.syntaxError(MsgExpectedProtoOpen)
	}

	params := []string{}
	for {
		if _, err := p.Advance(); err != nil {
			return nil, err
		}
		if p.current.Type != TokenIdentifier {
			break
		}
		params = append(params, p.current.Ident)
	}

	if !p.current.Is(')') {
		return nil, p.syntaxError(MsgExpectedProtoClose)
	}
	if _, err := p.Advance(); err != nil {
		return nil, err
	}

	return &ast.Prototype{Name: name, Params: params, Pos: pos}, nil
}

// ParseDefinition parses a function definition
//
//	definition ::= 'def' prototype expression
func (p *Parser) ParseDefinition() (*ast.Function, error) {
	pos := p.current.Pos
	if _, err := p.Advance(); err != nil {
		return nil, err
	}

	proto, err := p.ParsePrototype()
	if err != nil {
		return nil, err
	}
	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	p.logger.Debug("parsed definition", tinylog.Fields{
		"name":   proto.Name,
		"params": len(proto.Params),
	})
	return &ast.Function{Proto: proto, Body: body, Pos: pos}, nil
}

// ParseExtern parses an external declaration
//
//	external ::= 'extern' prototype
func (p *Parser) ParseExtern() (*ast.Prototype, error) {
	if _, err := p.Advance(); err != nil {
		return nil, err
	}
	proto, err := p.ParsePrototype()
	if err != nil {
		return nil, err
	}

	p.logger.Debug("parsed extern", tinylog.Fields{"name": proto.Name})
	return proto, nil
}

// ParseTopLevelExpr parses a bare expression and wraps it in a function with
// an anonymous, parameterless prototype
//
//	toplevelexpr ::= expression
func (p *Parser) ParseTopLevelExpr() (*ast.Function, error) {
	pos := p.current.Pos
	body, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	p.logger.Debug("parsed top-level expression", tinylog.Fields{"expr": body.String()})
	return &ast.Function{
		Proto: &ast.Prototype{Name: "", Params: []string{}, Pos: pos},
		Body:  body,
		Pos:   pos,
	}, nil
}

func (p *Parser) syntaxError(message string) error {
	err := &ParseError{
		Message: message,
		Pos:     p.current.Pos,
		Token:   p.current,
	}
	p.logger.Debug("syntax error", tinylog.Fields{
		"reason": message,
		"pos":    p.current.Pos.String(),
		"token":  p.current.String(),
	})
	return err
}
