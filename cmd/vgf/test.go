package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/nihei9/vgf/tester"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "test <fixture directory path>",
		Short:   "Run golden-file tests against grammars under a directory",
		Example: `  vgf test testdata`,
		Args:    cobra.ExactArgs(1),
		RunE:    runTest,
	}
	rootCmd.AddCommand(cmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	fixtures, err := tester.Discover(args[0])
	if err != nil {
		return fmt.Errorf("cannot discover fixtures under %s: %w", args[0], err)
	}
	if len(fixtures) == 0 {
		return fmt.Errorf("no .vgf/.tok fixture pairs found under %s", args[0])
	}

	results := tester.Run(fixtures)
	failed := false
	for _, r := range results {
		fmt.Fprintln(os.Stdout, r)
		if r.Error != nil {
			failed = true
		}
	}
	if failed {
		return errors.New("test failed")
	}
	return nil
}
