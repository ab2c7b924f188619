package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Survive2/Tiny-Interpreter/internal/tui/repl"
)

var tuiTree bool

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the interactive terminal REPL",
	Long: `Starts a full-screen REPL with input history and an AST view.

Keys:
  Enter      parse the input line
  Up/Down    browse history
  Ctrl+T     toggle S-expression / tree output
  Ctrl+L     clear the transcript
  Esc        quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	tuiCmd.Flags().BoolVarP(&tuiTree, "tree", "t", false, "start with the tree view")
}

func runTUI(cmd *cobra.Command, args []string) error {
	table, err := appConfig.PrecedenceTable()
	if err != nil {
		return err
	}
	policy, err := appConfig.NumberPolicy()
	if err != nil {
		return err
	}

	cfg := repl.DefaultConfig()
	cfg.Prompt = appConfig.REPL.Prompt
	cfg.Precedence = table
	cfg.NumberPolicy = policy
	cfg.ShowTree = tuiTree

	logger.Debug("starting tui")
	return repl.Run(cfg)
}
