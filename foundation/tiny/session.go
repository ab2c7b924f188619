// File: session.go
// Title: Tiny Parse Session
// Description: Implements the driving loop over a parser: prompt, dispatch
//              on the look-ahead token, banners for parsed constructs, and
//              one-token error recovery after syntax errors. Fatal lexer
//              failures stop the session and are returned to the caller.
// Author: Survive2
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16
//
// Change History:
// - 2026-10-16 v0.1.0: Initial implementation

package tiny

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	tinyerror "github.com/Survive2/Tiny-Interpreter/foundation/core/error"
	tinylog "github.com/Survive2/Tiny-Interpreter/foundation/core/log"
	"github.com/Survive2/Tiny-Interpreter/foundation/tiny/ast"
	"github.com/Survive2/Tiny-Interpreter/foundation/tiny/parser"
)

// DefaultPrompt is printed before every top-level construct
const DefaultPrompt = "ready> "

// ResultKind classifies a top-level construct handled by the session
type ResultKind int

const (
	ResultDefinition ResultKind = iota
	ResultExtern
	ResultTopLevel
	ResultError
)

// String returns the kind name
func (k ResultKind) String() string {
	switch k {
	case ResultDefinition:
		return "definition"
	case ResultExtern:
		return "extern"
	case ResultTopLevel:
		return "toplevel"
	case ResultError:
		return "error"
	default:
		return fmt.Sprintf("ResultKind(%d)", int(k))
	}
}

// Banner returns the line printed after a construct of this kind was parsed.
// ResultError has no banner.
func (k ResultKind) Banner() string {
	switch k {
	case ResultDefinition:
		return "Parsed a function definition."
	case ResultExtern:
		return "Parsed an extern"
	case ResultTopLevel:
		return "Parsed a top-level expr"
	default:
		return ""
	}
}

// Result is one handled top-level construct
type Result struct {
	Kind      ResultKind
	Function  *ast.Function  // set for ResultDefinition and ResultTopLevel
	Prototype *ast.Prototype // set for ResultExtern
	Err       error          // the *parser.ParseError for ResultError
	Pos       ast.Position   // start of the construct, or the error position
}

// Node returns the parsed node, or nil for errors
func (r Result) Node() ast.Node {
	switch r.Kind {
	case ResultDefinition, ResultTopLevel:
		if r.Function != nil {
			return r.Function
		}
	case ResultExtern:
		if r.Prototype != nil {
			return r.Prototype
		}
	}
	return nil
}

// String renders the result as a single line
func (r Result) String() string {
	switch r.Kind {
	case ResultExtern:
		return "(extern " + r.Prototype.String() + ")"
	case ResultError:
		return "Error: " + r.Err.Error()
	default:
		if node := r.Node(); node != nil {
			return node.String()
		}
		return "<nil>"
	}
}

// Options configures a session
type Options struct {
	// Prompt printed before each construct (default: "ready> ")
	Prompt string

	// Diagnostics receives prompts, banners and error lines (default: stderr)
	Diagnostics io.Writer

	// Logger for structured output (default: process default logger)
	Logger *tinylog.Logger

	// Precedence is the binary operator table (default: parser.DefaultPrecedence)
	Precedence *parser.PrecedenceTable

	// NumberPolicy selects how malformed numeric literals are handled
	NumberPolicy parser.NumberPolicy

	// Quiet suppresses prompts
	Quiet bool
}

// Stats counts the constructs handled by a session
type Stats struct {
	Definitions int
	Externs     int
	TopLevel    int
	Errors      int
}

// Total returns the number of handled constructs including errors
func (s Stats) Total() int {
	return s.Definitions + s.Externs + s.TopLevel + s.Errors
}

// Session drives a parser over one input stream. A Session is not safe for
// concurrent use; independent sessions share nothing but the precedence table.
type Session struct {
	id      string
	parser  *parser.Parser
	diag    io.Writer
	prompt  string
	quiet   bool
	logger  *tinylog.Logger
	stats   Stats
	started bool
	done    bool
	err     error
}

// NewSession creates a session reading from r
func NewSession(r io.Reader, opts Options) (*Session, error) {
	if r == nil {
		return nil, tinyerror.New("session input cannot be nil").
			WithCode(tinyerror.CodeInvalidInput).
			WithOperation("tiny.NewSession")
	}

	id := uuid.NewString()
	logger := opts.Logger
	if logger == nil {
		logger = tinylog.GetDefault()
	}
	logger = logger.WithFields(tinylog.Fields{"session": id})

	p, err := parser.New(r, parser.Options{
		Logger:       logger,
		Precedence:   opts.Precedence,
		NumberPolicy: opts.NumberPolicy,
	})
	if err != nil {
		return nil, err
	}

	diag := opts.Diagnostics
	if diag == nil {
		diag = os.Stderr
	}
	prompt := opts.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	return &Session{
		id:     id,
		parser: p,
		diag:   diag,
		prompt: prompt,
		quiet:  opts.Quiet,
		logger: logger.WithField("component", "tiny-session"),
	}, nil
}

// ID returns the session identifier attached to its log entries
func (s *Session) ID() string {
	return s.id
}

// Stats returns a snapshot of the session counters
func (s *Session) Stats() Stats {
	return s.stats
}

// Precedence returns the operator table used by the session parser
func (s *Session) Precedence() *parser.PrecedenceTable {
	return s.parser.Precedence()
}

// Run handles constructs until end of input, a fatal error, or ctx is done.
// handler, when not nil, receives every result including syntax errors.
// Reaching end of input returns nil.
func (s *Session) Run(ctx context.Context, handler func(Result)) error {
	s.logger.Debug("session started")
	for {
		if err := ctx.Err(); err != nil {
			s.logger.Debug("session canceled", tinylog.Fields{"handled": s.stats.Total()})
			return tinyerror.Wrap(err, "session canceled").
				WithCode(tinyerror.CodeCanceled).
				WithOperation("tiny.Session.Run")
		}

		result, ok, err := s.Next()
		if err != nil {
			return err
		}
		if !ok {
			s.logger.Info("session finished", tinylog.Fields{
				"definitions": s.stats.Definitions,
				"externs":     s.stats.Externs,
				"toplevel":    s.stats.TopLevel,
				"errors":      s.stats.Errors,
			})
			return nil
		}
		if handler != nil {
			handler(result)
		}
	}
}

// Next handles the next top-level construct. It returns ok == false at end
// of input. Syntax errors are reported as a ResultError with a nil error;
// the returned error is always fatal and sticky.
func (s *Session) Next() (Result, bool, error) {
	if s.err != nil {
		return Result{}, false, s.err
	}
	if s.done {
		return Result{}, false, nil
	}

	if !s.started {
		s.started = true
		s.printPrompt()
		if _, err := s.parser.Advance(); err != nil {
			return s.fail(err)
		}
	}

	for {
		s.printPrompt()
		tok := s.parser.Current()

		switch {
		case tok.Type == parser.TokenEOF:
			s.done = true
			return Result{}, false, nil
		case tok.Is(';'):
			// top-level semicolons are ignored
			if _, err := s.parser.Advance(); err != nil {
				return s.fail(err)
			}
		case tok.Type == parser.TokenDef:
			fn, err := s.parser.ParseDefinition()
			if err != nil {
				return s.recoverSyntax(err)
			}
			s.stats.Definitions++
			return s.succeed(Result{Kind: ResultDefinition, Function: fn, Pos: tok.Pos})
		case tok.Type == parser.TokenExtern:
			proto, err := s.parser.ParseExtern()
			if err != nil {
				return s.recoverSyntax(err)
			}
			s.stats.Externs++
			return s.succeed(Result{Kind: ResultExtern, Prototype: proto, Pos: tok.Pos})
		default:
			fn, err := s.parser.ParseTopLevelExpr()
			if err != nil {
				return s.recoverSyntax(err)
			}
			s.stats.TopLevel++
			return s.succeed(Result{Kind: ResultTopLevel, Function: fn, Pos: tok.Pos})
		}
	}
}

func (s *Session) succeed(result Result) (Result, bool, error) {
	if errs := ast.ValidateTree(result.Node(), s.parser.Precedence()); len(errs) > 0 {
		s.logger.ErrorWithErr("parser produced an invalid tree", errors.Join(errs...), tinylog.Fields{
			"kind": result.Kind.String(),
			"pos":  result.Pos.String(),
		})
	}
	fmt.Fprintln(s.diag, result.Kind.Banner())
	return result, true, nil
}

// recoverSyntax reports a syntax error and skips exactly one token. A fatal error
// raised by the skip is kept for the next call so the syntax error is still
// delivered.
func (s *Session) recoverSyntax(err error) (Result, bool, error) {
	var pe *parser.ParseError
	if !errors.As(err, &pe) {
		return s.fail(err)
	}

	s.stats.Errors++
	fmt.Fprintf(s.diag, "Error: %s\n", pe.Message)
	s.logger.Debug("recovering from syntax error", tinylog.Fields{
		"pos":   pe.Pos.String(),
		"token": pe.Token.String(),
	})

	if _, skipErr := s.parser.Advance(); skipErr != nil {
		s.err = skipErr
	}
	return Result{Kind: ResultError, Err: pe, Pos: pe.Pos}, true, nil
}

func (s *Session) fail(err error) (Result, bool, error) {
	s.err = err
	s.logger.Debug("session stopped by fatal error", tinylog.Fields{
		"error_code": tinyerror.GetCode(err).String(),
		"severity":   tinyerror.GetSeverity(err).String(),
	})
	return Result{}, false, err
}

func (s *Session) printPrompt() {
	if !s.quiet {
		fmt.Fprint(s.diag, s.prompt)
	}
}

// ParseString runs a quiet session over src and collects every result.
// Diagnostics are discarded unless opts.Diagnostics is set. Results parsed
// before a fatal error are returned together with it.
func ParseString(src string, opts Options) ([]Result, error) {
	if opts.Diagnostics == nil {
		opts.Diagnostics = io.Discard
	}
	opts.Quiet = true

	session, err := NewSession(strings.NewReader(src), opts)
	if err != nil {
		return nil, err
	}

	var results []Result
	err = session.Run(context.Background(), func(r Result) {
		results = append(results, r)
	})
	return results, err
}
