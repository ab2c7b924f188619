package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Survive2/Tiny-Interpreter/foundation/tiny/parser"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Print the token stream",
	Long: `Runs only the lexer and prints one token per line with its position.

Example:
  echo 'def f(x) x+1' | tiny tokens`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	in, closeInput, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer closeInput()

	policy, err := appConfig.NumberPolicy()
	if err != nil {
		return err
	}

	tokens, err := parser.Tokenize(in, parser.LexerOptions{NumberPolicy: policy, Logger: logger})
	out := cmd.OutOrStdout()
	for _, tok := range tokens {
		fmt.Fprintf(out, "%s\t%s\n", tok.Pos, tok)
	}
	return err
}
