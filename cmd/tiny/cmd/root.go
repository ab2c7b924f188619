package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	tinyerror "github.com/Survive2/Tiny-Interpreter/foundation/core/error"
	tinylog "github.com/Survive2/Tiny-Interpreter/foundation/core/log"
	"github.com/Survive2/Tiny-Interpreter/foundation/tiny"
	"github.com/Survive2/Tiny-Interpreter/foundation/tiny/parser"
	"github.com/Survive2/Tiny-Interpreter/pkg/core/config"
	"github.com/Survive2/Tiny-Interpreter/pkg/core/logging"
)

var (
	cfgFile   string
	verbose   bool
	logLevel  string
	logFormat string
)

// Prepared by setup before every command
var (
	appConfig *config.Config
	logger    *tinylog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "tiny",
	Short: "Tiny - lexer, parser and REPL for a small expression language",
	Long: `Tiny reads a small expression language with function definitions,
extern declarations and top-level expressions, and turns it into an AST.

Grammar:
  def name(a b) expression     function definition
  extern name(a b)             external declaration
  expression                   top-level expression

Binary operators: < + - * (configurable in tiny.toml [precedence]).
Comments start with # and run to the end of the line.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command. Errors are printed before returning.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $TINY_CONFIG or ./tiny.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error, fatal")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format: text, console, logfmt, json")
}

// setup loads the configuration, applies flag overrides and installs the logger
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	switch {
	case logLevel != "":
		appConfig.Log.Level = logLevel
	case verbose:
		appConfig.Log.Level = "debug"
	}
	ignoredVerbose := verbose && logLevel != ""
	if logFormat != "" {
		appConfig.Log.Format = logFormat
	}
	if err := appConfig.Validate(); err != nil {
		return err
	}

	logCfg := logging.DefaultLoggerConfig("tiny")
	logCfg.Level = appConfig.Log.Level
	logCfg.Format = appConfig.Log.Format
	logCfg.Output = cmd.ErrOrStderr()
	logger = logging.NewLogger(logCfg)
	tinylog.SetDefault(logger)

	if ignoredVerbose {
		logger.Warn("--verbose ignored in favor of --log-level", tinylog.Fields{"level": logLevel})
	}

	logger.Debug("configuration loaded", logging.KV(
		"path", appConfig.Path(),
		"command", cmd.Name(),
		"number_policy", appConfig.Lexer.NumberPolicy,
	))
	return nil
}

// sessionOptions builds session options from the loaded configuration
func sessionOptions(cmd *cobra.Command) (tiny.Options, error) {
	table, err := appConfig.PrecedenceTable()
	if err != nil {
		return tiny.Options{}, err
	}
	policy, err := appConfig.NumberPolicy()
	if err != nil {
		return tiny.Options{}, err
	}
	return tiny.Options{
		Prompt:       appConfig.REPL.Prompt,
		Quiet:        appConfig.REPL.Quiet,
		Diagnostics:  cmd.ErrOrStderr(),
		Logger:       logger,
		Precedence:   table,
		NumberPolicy: policy,
	}, nil
}

// openInput returns the named file, or stdin when no file or "-" is given
func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		code := tinyerror.CodeIOError
		if os.IsNotExist(err) {
			code = tinyerror.CodeNotFound
		}
		return nil, nil, tinyerror.Wrap(err, "cannot open input").
			WithCode(code).
			WithOperation("cmd.openInput").
			WithDetail("path", args[0])
	}
	return f, func() { f.Close() }, nil
}

// ExitCode maps an error returned by Execute to a process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case tinyerror.HasCode(err, tinyerror.CodeCanceled):
		return 130
	default:
		return 1
	}
}

func printError(w io.Writer, err error) {
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		fmt.Fprintf(w, "Error: %s\n", pe.Detailed())
		return
	}
	var te *tinyerror.Error
	if verbose && errors.As(err, &te) {
		fmt.Fprintln(w, te.String())
		return
	}
	fmt.Fprintf(w, "Error: %v\n", err)
}
