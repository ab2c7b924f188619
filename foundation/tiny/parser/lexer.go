// File: lexer.go
// Title: Tiny Lexical Analyzer
// Description: Implements the lexer. It pulls runes from an io.Reader one at
//              a time and keeps the last read, not yet classified character
//              between calls; that character is the only look-ahead.
// Author: Survive2
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial lexer implementation

package parser

import (
	"bufio"
	"errors"
	"io"
	"strconv"
	"strings"

	tinyerror "github.com/Survive2/Tiny-Interpreter/foundation/core/error"
	tinylog "github.com/Survive2/Tiny-Interpreter/foundation/core/log"
	"github.com/Survive2/Tiny-Interpreter/foundation/tiny/ast"
)

// eof marks the end of input in the look-ahead slot
const eof rune = -1

// NumberPolicy decides how runs of digits and decimal points are converted
type NumberPolicy int

const (
	// NumberStrict rejects a second decimal point, or a run that is not a
	// valid number, as a fatal lexical error
	NumberStrict NumberPolicy = iota

	// NumberPermissive accepts any run and converts its longest valid
	// prefix: "1.2.3" is 1.2 and "." is 0
	NumberPermissive
)

// String returns the configuration name of the policy
func (p NumberPolicy) String() string {
	switch p {
	case NumberStrict:
		return "strict"
	case NumberPermissive:
		return "permissive"
	default:
		return "unknown"
	}
}

// ParseNumberPolicy parses "strict" or "permissive"; empty means strict
func ParseNumberPolicy(s string) (NumberPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return NumberStrict, nil
	case "permissive":
		return NumberPermissive, nil
	default:
		return NumberStrict, tinyerror.Newf("unknown number policy %q", s).
			WithCode(tinyerror.CodeInvalidConfig).
			WithOperation("parser.ParseNumberPolicy")
	}
}

// LexerOptions configures a Lexer
type LexerOptions struct {
	NumberPolicy NumberPolicy
	Logger       *tinylog.Logger
}

// Lexer converts a character stream into tokens
type Lexer struct {
	reader *bufio.Reader
	policy NumberPolicy
	logger *tinylog.Logger

	last rune         // last read, not yet classified character
	pos  ast.Position // position of last
	next ast.Position // position of the next character to read

	err error // sticky fatal error
}

// NewLexer creates a lexer reading from r
func NewLexer(r io.Reader, opts LexerOptions) *Lexer {
	logger := opts.Logger
	if logger == nil {
		logger = tinylog.GetDefault()
	}
	return &Lexer{
		reader: bufio.NewReader(r),
		policy: opts.NumberPolicy,
		logger: logger.WithField("component", "tiny-lexer"),
		last:   ' ',
		next:   ast.Position{Line: 1, Column: 1},
	}
}

// Next returns the next token. A non-nil error is fatal: the input cannot
// be read or a number literal is malformed. Once failed, every further
// call returns the same error.
func (l *Lexer) Next() (Token, error) {
	if l.err != nil {
		return Token{Type: TokenEOF, Pos: l.pos}, l.err
	}

	tok, err := l.scan()
	if err != nil {
		l.err = err
		code := tinyerror.GetCode(err)
		l.logger.Debug("lexing stopped", tinylog.Err(err).Merge(tinylog.Fields{
			"error_code":     code.String(),
			"error_category": code.Category(),
			"pos":            l.pos.String(),
		}))
		return Token{Type: TokenEOF, Pos: l.pos}, err
	}

	if l.logger.IsLevelEnabled(tinylog.LevelTrace) {
		l.logger.Trace("token", tinylog.Fields{
			"token": tok.String(),
			"pos":   tok.Pos.String(),
		})
	}
	return tok, nil
}

// Err returns the fatal error that stopped the lexer, if any
func (l *Lexer) Err() error {
	return l.err
}

func (l *Lexer) scan() (Token, error) {
	for {
		for isSpace(l.last) {
			if err := l.readChar(); err != nil {
				return Token{}, err
			}
		}

		start := l.pos

		switch {
		case isAlpha(l.last):
			return l.scanIdentifier(start)

		case isDigit(l.last) || l.last == '.':
			return l.scanNumber(start)

		case l.last == '#':
			for {
				if err := l.readChar(); err != nil {
					return Token{}, err
				}
				if l.last == eof || l.last == '\n' || l.last == '\r' {
					break
				}
			}
			if l.last != eof {
				continue
			}
			return Token{Type: TokenEOF, Pos: l.pos}, nil

		case l.last == eof:
			return Token{Type: TokenEOF, Pos: start}, nil
		}

		ch := l.last
		if err := l.readChar(); err != nil {
			return Token{}, err
		}
		return Token{Type: TokenChar, Char: ch, Pos: start}, nil
	}
}

func (l *Lexer) scanIdentifier(start ast.Position) (Token, error) {
	var sb strings.Builder
	for {
		sb.WriteRune(l.last)
		if err := l.readChar(); err != nil {
			return Token{}, err
		}
		if !isAlnum(l.last) {
			break
		}
	}

	switch text := sb.String(); text {
	case "def":
		return Token{Type: TokenDef, Pos: start}, nil
	case "extern":
		return Token{Type: TokenExtern, Pos: start}, nil
	default:
		return Token{Type: TokenIdentifier, Ident: text, Pos: start}, nil
	}
}

func (l *Lexer) scanNumber(start ast.Position) (Token, error) {
	var sb strings.Builder
	points := 0
	for {
		if l.last == '.' {
			points++
			if points > 1 && l.policy == NumberStrict {
				sb.WriteRune(l.last)
				return Token{}, l.malformed(sb.String(), start, "more than one decimal point")
			}
		}
		sb.WriteRune(l.last)
		if err := l.readChar(); err != nil {
			return Token{}, err
		}
		if !isDigit(l.last) && l.last != '.' {
			break
		}
	}

	text := sb.String()
	if l.policy == NumberPermissive {
		return Token{Type: TokenNumber, Num: prefixFloat(text), Pos: start}, nil
	}

	// a run with at most one point is always a number; a lone "." is 0
	val, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		val = prefixFloat(text)
	}
	return Token{Type: TokenNumber, Num: val, Pos: start}, nil
}

func (l *Lexer) malformed(text string, start ast.Position, reason string) error {
	return tinyerror.Newf("malformed number literal %q", text).
		WithCode(tinyerror.CodeMalformedNumber).
		WithOperation("lexer.Next").
		WithDetail("reason", reason).
		WithDetail("line", start.Line).
		WithDetail("column", start.Column)
}

// prefixFloat converts the longest prefix of a digits-and-points run that
// forms a number; a run without digits before its second point is 0
func prefixFloat(text string) float64 {
	if first := strings.IndexByte(text, '.'); first >= 0 {
		if second := strings.IndexByte(text[first+1:], '.'); second >= 0 {
			text = text[:first+1+second]
		}
	}
	if text == "." {
		return 0
	}
	val, _ := strconv.ParseFloat(text, 64)
	return val
}

// readChar moves the next rune of input into the look-ahead slot
func (l *Lexer) readChar() error {
	l.pos = l.next

	r, _, err := l.reader.ReadRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			l.last = eof
			return nil
		}
		return tinyerror.Wrap(err, "failed to read input").
			WithCode(tinyerror.CodeIOError).
			WithOperation("lexer.readChar").
			WithDetail("line", l.pos.Line).
			WithDetail("column", l.pos.Column)
	}

	l.last = r
	l.next.Offset++
	if r == '\n' {
		l.next.Line++
		l.next.Column = 1
	} else {
		l.next.Column++
	}
	return nil
}

// Tokenize reads r to the end and returns every token including the final
// EOF token. On a fatal error the tokens read so far are returned with it.
func Tokenize(r io.Reader, opts LexerOptions) ([]Token, error) {
	lexer := NewLexer(r, opts)
	var tokens []Token
	for {
		tok, err := lexer.Next()
		if err != nil {
			return tokens, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens, nil
		}
	}
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isAlpha(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isAlnum(r rune) bool {
	return isAlpha(r) || isDigit(r)
}
