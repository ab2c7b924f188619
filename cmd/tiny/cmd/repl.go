package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Survive2/Tiny-Interpreter/foundation/tiny"
	"github.com/Survive2/Tiny-Interpreter/pkg/core/logging"
)

var (
	replQuiet bool
	replPrint bool
)

var replCmd = &cobra.Command{
	Use:   "repl [file]",
	Short: "Run the read-parse loop",
	Long: `Reads top-level constructs from a file or stdin and reports each one.

Prompts, banners and syntax errors are written to stderr. After a syntax
error exactly one token is skipped and parsing continues. A malformed
number stops the loop with exit status 1.

Examples:
  tiny repl
  tiny repl examples/fib.tiny
  echo 'def f(x) x*x; f(2)' | tiny repl --quiet --print`,
	Args: cobra.MaximumNArgs(1),
	RunE: runREPL,
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVarP(&replQuiet, "quiet", "q", false, "do not print prompts")
	replCmd.Flags().BoolVarP(&replPrint, "print", "p", false, "print each parsed construct to stdout")
}

func runREPL(cmd *cobra.Command, args []string) error {
	in, closeInput, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeInput()

	opts, err := sessionOptions(cmd)
	if err != nil {
		return err
	}
	if replQuiet {
		opts.Quiet = true
	}

	session, err := tiny.NewSession(in, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	err = session.Run(cmd.Context(), func(r tiny.Result) {
		if replPrint && r.Kind != tiny.ResultError {
			fmt.Fprintln(out, r)
		}
	})

	stats := session.Stats()
	logger.Debug("repl finished", logging.KV(
		"session", session.ID(),
		"definitions", stats.Definitions,
		"externs", stats.Externs,
		"toplevel", stats.TopLevel,
		"errors", stats.Errors,
	))

	if err == nil && !opts.Quiet {
		// end the last prompt line
		fmt.Fprintln(opts.Diagnostics)
	}
	return err
}
