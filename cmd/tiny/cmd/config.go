package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	fconfig "github.com/Survive2/Tiny-Interpreter/foundation/core/config"
	tinyerror "github.com/Survive2/Tiny-Interpreter/foundation/core/error"
)

var configFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration after defaults, the config file, environment
variables (TINY_*) and command line flags have been applied.

Examples:
  tiny config
  tiny config --format yaml > tiny.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)

	configCmd.Flags().StringVarP(&configFormat, "format", "f", "toml", "output format: toml, yaml")
}

func runConfig(cmd *cobra.Command, args []string) error {
	var format fconfig.Format
	switch strings.ToLower(configFormat) {
	case "toml":
		format = fconfig.FormatTOML
	case "yaml", "yml":
		format = fconfig.FormatYAML
	default:
		return tinyerror.Newf("unknown config format %q", configFormat).
			WithCode(tinyerror.CodeInvalidInput).
			WithOperation("cmd.config")
	}

	if path := appConfig.Path(); path != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "# loaded from %s\n", path)
	}
	return appConfig.Encode(cmd.OutOrStdout(), format)
}
