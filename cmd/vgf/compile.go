package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nihei9/vgf/vgf"
	"github.com/spf13/cobra"
)

var compileFlags = struct {
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "compile <grammar file path>",
		Short:   "Compile a .vgf grammar source into a portable description",
		Example: `  vgf compile grammar.vgf -o grammar.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runCompile,
	}
	compileFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	g, err := readVGFGrammar(args[0])
	if err != nil {
		return err
	}

	if unused := vgf.Unused(g); len(unused) > 0 {
		fmt.Fprintf(os.Stderr, "warning: unused rule(s): %v\n", unused)
	}

	desc := vgf.Describe(g)

	var w io.Writer = os.Stdout
	if *compileFlags.output != "" {
		f, err := os.Create(*compileFlags.output)
		if err != nil {
			return fmt.Errorf("cannot create output file %s: %w", *compileFlags.output, err)
		}
		defer f.Close()
		w = f
	}

	b, err := json.MarshalIndent(desc, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n", b)
	return nil
}

// readVGFGrammar parses and checks the .vgf source at path, the entry point
// shared by compile and parse, mirroring the teacher's own readGrammar
// helper in cmd/vartan/compile.go.
func readVGFGrammar(path string) (*vgf.Grammar, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read grammar file %s: %w", path, err)
	}
	g, err := vgf.Parse(string(src))
	if err != nil {
		return nil, err
	}
	if err := vgf.Check(g); err != nil {
		return nil, err
	}
	return g, nil
}
