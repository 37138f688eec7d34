// Package driver wraps the pwd engine with the pieces a command-line tool
// needs around it: tokenizing a source, running a grammar over the token
// stream, and rendering the resulting parse forest. It mirrors the
// responsibilities of the teacher's own driver package, adapted from a
// generated-table LALR driver to the derivative engine's direct
// interpretation model.
package driver

import (
	"fmt"
	"strings"

	"github.com/nihei9/vgf/pwd"
)

// Result is the outcome of parsing one token stream against one grammar.
type Result struct {
	Trees      []pwd.Tree[string]
	Ambiguous  bool
}

// Parse runs tokens through g using a fresh engine, without node-graph
// compaction between steps. It is the direct analogue of pwd.Parse, kept
// here so callers that also want tree rendering or test-case running don't
// need to import pwd directly.
func Parse(tokens []string, g pwd.Grammar[string]) *Result {
	e := pwd.NewEngine[string]()
	trees := e.Parse(tokens, g)
	return &Result{Trees: trees, Ambiguous: len(trees) > 1}
}

// ParseCompact is Parse, but compacts the derivative graph after each token
// (pwd.Engine.ParseCompact), the mode a CLI should default to on any
// grammar large enough that node growth matters.
func ParseCompact(tokens []string, g pwd.Grammar[string]) *Result {
	e := pwd.NewEngine[string]()
	trees := e.ParseCompact(tokens, g)
	return &Result{Trees: trees, Ambiguous: len(trees) > 1}
}

// Tokenize splits src on whitespace into a token stream. The core engine's
// token domain is opaque (spec.md §6.3); this whitespace tokenizer is the
// default the vgf command line uses when a grammar doesn't supply its own
// lexical layer ahead of parsing.
func Tokenize(src string) []string {
	return strings.Fields(src)
}

// NoParseError reports that a grammar rejected a token stream outright: no
// trees survived to ε.
type NoParseError struct {
	TokenCount int
}

func (e *NoParseError) Error() string {
	return fmt.Sprintf("no parse: input rejected after %d tokens", e.TokenCount)
}
