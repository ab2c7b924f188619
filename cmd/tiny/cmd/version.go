package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Survive2/Tiny-Interpreter/pkg/core/version"
)

var versionComponents bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, version.Info())
		if versionComponents {
			for _, name := range version.Components() {
				fmt.Fprintf(out, "  %-8s %s\n", name, version.ComponentVersion(name))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)

	versionCmd.Flags().BoolVar(&versionComponents, "components", false, "list component versions")
}
