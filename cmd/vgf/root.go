package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vgf",
	Short: "Build and run a parsing-with-derivatives grammar",
	Long: `vgf provides four features:
- Compiles a .vgf grammar source into a portable description.
- Prints a compiled description in readable form.
- Parses a token stream against a .vgf grammar.
- Runs golden-file tests against a grammar.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
