package main

import (
	"os"

	"github.com/Survive2/Tiny-Interpreter/cmd/tiny/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
