package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	tinyerror "github.com/Survive2/Tiny-Interpreter/foundation/core/error"
	"github.com/Survive2/Tiny-Interpreter/foundation/tiny"
	"github.com/Survive2/Tiny-Interpreter/foundation/tiny/ast"
)

var (
	parseFormat    string
	parseAnalyze   bool
	parsePositions bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse input and print the AST",
	Long: `Parses every top-level construct and prints the resulting ASTs.

Formats:
  text   one S-expression per construct
  tree   indented node tree
  yaml   nested maps (kind, name, op, lhs, rhs, args, ...)
  json   same structure as yaml

Syntax errors are reported on stderr with line and column; the command
then exits with status 1 after printing everything that did parse.

Examples:
  tiny parse examples/fib.tiny
  echo '1+2*3' | tiny parse --format tree
  tiny parse --format yaml --analyze --positions lib.tiny`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "text", "output format: text, tree, yaml, json")
	parseCmd.Flags().BoolVarP(&parseAnalyze, "analyze", "a", false, "report free variables and called functions")
	parseCmd.Flags().BoolVar(&parsePositions, "positions", false, "include line:column positions in yaml/json output")
}

func runParse(cmd *cobra.Command, args []string) error {
	render, err := renderer(parseFormat)
	if err != nil {
		return err
	}

	in, closeInput, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeInput()

	opts, err := sessionOptions(cmd)
	if err != nil {
		return err
	}
	opts.Quiet = true
	opts.Diagnostics = io.Discard

	session, err := tiny.NewSession(in, opts)
	if err != nil {
		return err
	}

	errOut := cmd.ErrOrStderr()
	var results []tiny.Result
	fatal := session.Run(cmd.Context(), func(r tiny.Result) {
		if r.Kind == tiny.ResultError {
			printError(errOut, r.Err)
			return
		}
		results = append(results, r)
	})

	if err := render(cmd.OutOrStdout(), results); err != nil {
		return err
	}
	if fatal != nil {
		return fatal
	}
	if n := session.Stats().Errors; n > 0 {
		return tinyerror.Newf("%d syntax error(s)", n).
			WithCode(tinyerror.CodeSyntax).
			WithOperation("cmd.parse")
	}
	return nil
}

type renderFunc func(w io.Writer, results []tiny.Result) error

func renderer(format string) (renderFunc, error) {
	switch strings.ToLower(format) {
	case "text", "":
		return renderText, nil
	case "tree":
		return renderTree, nil
	case "yaml", "yml":
		return renderYAML, nil
	case "json":
		return renderJSON, nil
	default:
		return nil, tinyerror.Newf("unknown output format %q", format).
			WithCode(tinyerror.CodeInvalidInput).
			WithOperation("cmd.parse").
			WithDetail("format", format)
	}
}

func renderText(w io.Writer, results []tiny.Result) error {
	for _, r := range results {
		fmt.Fprintln(w, r)
		if parseAnalyze && r.Function != nil {
			fmt.Fprintf(w, "  free: %s\n", listOrDash(ast.FreeVariables(r.Function)))
			fmt.Fprintf(w, "  calls: %s\n", listOrDash(ast.Callees(r.Function)))
		}
	}
	return nil
}

func renderTree(w io.Writer, results []tiny.Result) error {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if r.Kind == tiny.ResultExtern {
			fmt.Fprintln(w, "Extern")
			fmt.Fprint(w, indent(ast.TreeString(r.Prototype)))
			continue
		}
		fmt.Fprint(w, ast.TreeString(r.Node()))
	}
	return nil
}

func renderYAML(w io.Writer, results []tiny.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(documents(results)); err != nil {
		return tinyerror.Wrap(err, "failed to encode yaml").WithCode(tinyerror.CodeIOError)
	}
	return enc.Close()
}

func renderJSON(w io.Writer, results []tiny.Result) error {
	data, err := json.MarshalIndent(documents(results), "", "  ")
	if err != nil {
		return tinyerror.Wrap(err, "failed to encode json").WithCode(tinyerror.CodeIOError)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// documents converts results to plain maps for yaml and json
func documents(results []tiny.Result) []map[string]interface{} {
	docs := make([]map[string]interface{}, 0, len(results))
	for _, r := range results {
		doc := ast.ToMap(r.Node(), parsePositions)
		if r.Kind == tiny.ResultExtern {
			doc["kind"] = "extern"
		}
		if parseAnalyze && r.Function != nil {
			doc["free_variables"] = nonNil(ast.FreeVariables(r.Function))
			doc["callees"] = nonNil(ast.Callees(r.Function))
		}
		docs = append(docs, doc)
	}
	return docs
}

func nonNil(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}

func listOrDash(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

func indent(s string) string {
	lines := strings.SplitAfter(s, "\n")
	var b strings.Builder
	for _, line := range lines {
		if line != "" {
			b.WriteString("  " + line)
		}
	}
	return b.String()
}
