package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/nihei9/vgf/vgf"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "show <description file path>",
		Short:   "Print a compiled grammar description in readable form",
		Example: `  vgf show grammar.json`,
		Args:    cobra.ExactArgs(1),
		RunE:    runShow,
	}
	rootCmd.AddCommand(cmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	desc, err := readDescription(args[0])
	if err != nil {
		return err
	}
	return writeDescription(os.Stdout, desc)
}

func readDescription(path string) (*vgf.Description, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open the description file %s: %w", path, err)
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	desc := &vgf.Description{}
	if err := json.Unmarshal(b, desc); err != nil {
		return nil, err
	}
	return desc, nil
}

const descTemplate = `# Build

{{ .BuildID }}

# Start rules
{{ range .Start }}
{{ . }}{{ end }}

{{ if .Unused -}}
# Unused rules
{{ range .Unused }}
{{ . }}{{ end }}

{{ end -}}
# Rules
{{ range $name, $id := .Rules }}
{{ $name }} -> #{{ $id }}{{ end }}

# Nodes
{{ range .Nodes }}
{{ printNode . }}{{ end }}
`

func writeDescription(w io.Writer, desc *vgf.Description) error {
	fns := template.FuncMap{
		"printNode": func(n vgf.Node) string {
			var b strings.Builder
			fmt.Fprintf(&b, "#%-4d %v", n.ID, n.Kind)
			if n.Token != "" {
				fmt.Fprintf(&b, " %q", n.Token)
			}
			if n.Ref != "" {
				fmt.Fprintf(&b, " %v", n.Ref)
			}
			if n.Trees > 0 {
				fmt.Fprintf(&b, " (%d trees)", n.Trees)
			}
			for _, c := range n.Children {
				fmt.Fprintf(&b, " #%d", c)
			}
			return b.String()
		},
	}

	tmpl, err := template.New("").Funcs(fns).Parse(descTemplate)
	if err != nil {
		return err
	}
	return tmpl.Execute(w, desc)
}
