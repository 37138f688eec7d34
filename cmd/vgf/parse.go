package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nihei9/vgf/driver"
	"github.com/spf13/cobra"
)

var parseFlags = struct {
	source  *string
	compact *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "parse <grammar file path> [token...]",
		Short:   "Parse a token stream against a .vgf grammar",
		Example: `  vgf parse arith.vgf D + D '*' D`,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runParse,
	}
	parseFlags.source = cmd.Flags().StringP("source", "s", "", "token source file path (default: trailing args, or stdin if none given)")
	parseFlags.compact = cmd.Flags().Bool("compact", true, "compact the derivative graph after every token")
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	g, err := readVGFGrammar(args[0])
	if err != nil {
		return err
	}
	start, err := g.Start()
	if err != nil {
		return err
	}

	tokens, err := readTokens(args[1:])
	if err != nil {
		return err
	}

	var result *driver.Result
	if *parseFlags.compact {
		result = driver.ParseCompact(tokens, start)
	} else {
		result = driver.Parse(tokens, start)
	}

	if len(result.Trees) == 0 {
		return &driver.NoParseError{TokenCount: len(tokens)}
	}
	if result.Ambiguous {
		fmt.Fprintf(os.Stderr, "%d parse trees found (ambiguous)\n", len(result.Trees))
	}
	for _, t := range result.Trees {
		driver.PrintTree(os.Stdout, t)
	}
	return nil
}

func readTokens(trailing []string) ([]string, error) {
	switch {
	case *parseFlags.source != "":
		b, err := os.ReadFile(*parseFlags.source)
		if err != nil {
			return nil, fmt.Errorf("cannot read source file %s: %w", *parseFlags.source, err)
		}
		return driver.Tokenize(string(b)), nil
	case len(trailing) > 0:
		return trailing, nil
	default:
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return driver.Tokenize(string(b)), nil
	}
}
