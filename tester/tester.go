// Package tester is the golden-file test runner: it discovers *.vgf/*.tok
// fixture pairs under a directory, parses each grammar, runs its declared
// input tokens through the pwd engine, and diffs the resulting parse forest
// against an expected tree written alongside the fixture. It is adapted
// from the teacher's own tester package, which plays the identical role for
// compiled LALR grammars.
package tester

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mb0/glob"

	"github.com/nihei9/vgf/driver"
	"github.com/nihei9/vgf/pwd"
	"github.com/nihei9/vgf/vgf"
)

// TestResult is one fixture's outcome. Its String method matches the
// teacher's own tester.TestResult.String() shape: "Passed <path>" or
// "Failed <path>: <reason>".
type TestResult struct {
	FixturePath string
	Error       error
}

func (r *TestResult) String() string {
	if r.Error != nil {
		return fmt.Sprintf("Failed %v: %v", r.FixturePath, r.Error)
	}
	return fmt.Sprintf("Passed %v", r.FixturePath)
}

// Fixture is a discovered <name>.vgf + <name>.tok pair under a test
// directory. <name>.tok holds whitespace-separated input tokens on its
// first line and the expected tree's S-expression form on the remaining
// lines.
type Fixture struct {
	Name        string
	GrammarPath string
	CasePath    string
}

// Discover walks dir for *.vgf files and pairs each with its sibling *.tok
// file, glob-matching the way the teacher's own fixture layout is walked,
// using github.com/mb0/glob instead of a hand-rolled filepath.Match loop.
func Discover(dir string) ([]*Fixture, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var fixtures []*Fixture
	for _, e := range entries {
		if e.IsDir() {
			sub, err := Discover(filepath.Join(dir, e.Name()))
			if err != nil {
				return nil, err
			}
			fixtures = append(fixtures, sub...)
			continue
		}
		matched, err := glob.Match("*.vgf", e.Name())
		if err != nil {
			return nil, err
		}
		if !matched {
			continue
		}
		name := strings.TrimSuffix(e.Name(), ".vgf")
		casePath := filepath.Join(dir, name+".tok")
		if _, err := os.Stat(casePath); err != nil {
			continue
		}
		fixtures = append(fixtures, &Fixture{
			Name:        name,
			GrammarPath: filepath.Join(dir, e.Name()),
			CasePath:    casePath,
		})
	}
	return fixtures, nil
}

// Run executes every fixture in fixtures and returns one TestResult per
// fixture, in the same order.
func Run(fixtures []*Fixture) []*TestResult {
	results := make([]*TestResult, len(fixtures))
	for i, f := range fixtures {
		results[i] = runFixture(f)
	}
	return results
}

func runFixture(f *Fixture) *TestResult {
	grammarSrc, err := os.ReadFile(f.GrammarPath)
	if err != nil {
		return &TestResult{FixturePath: f.GrammarPath, Error: err}
	}
	caseSrc, err := os.ReadFile(f.CasePath)
	if err != nil {
		return &TestResult{FixturePath: f.CasePath, Error: err}
	}

	g, err := vgf.Parse(string(grammarSrc))
	if err != nil {
		return &TestResult{FixturePath: f.GrammarPath, Error: err}
	}
	if err := vgf.Check(g); err != nil {
		return &TestResult{FixturePath: f.GrammarPath, Error: err}
	}
	start, err := g.Start()
	if err != nil {
		return &TestResult{FixturePath: f.GrammarPath, Error: err}
	}

	lines := strings.SplitN(string(caseSrc), "\n", 2)
	tokens := driver.Tokenize(lines[0])
	var expected string
	if len(lines) > 1 {
		expected = strings.TrimSpace(lines[1])
	}

	result := driver.ParseCompact(tokens, start)
	if len(result.Trees) == 0 {
		return &TestResult{FixturePath: f.CasePath, Error: &driver.NoParseError{TokenCount: len(tokens)}}
	}

	got := FormatTree(result.Trees[0])
	if got != expected {
		return &TestResult{
			FixturePath: f.CasePath,
			Error:       fmt.Errorf("output mismatch\n    expected: %v\n    actual:   %v", expected, got),
		}
	}
	return &TestResult{FixturePath: f.CasePath}
}

// FormatTree renders a parse tree as a compact S-expression, the form
// golden-file fixtures record their expected output in: a leaf prints as
// its quoted value, an empty node as "_", and a branch as "(left right)".
func FormatTree(t pwd.Tree[string]) string {
	switch n := t.(type) {
	case pwd.Empty[string]:
		return "_"
	case pwd.Leaf[string]:
		return fmt.Sprintf("%q", n.Value)
	case pwd.Branch[string]:
		return fmt.Sprintf("(%v %v)", FormatTree(n.Left), FormatTree(n.Right))
	default:
		return fmt.Sprintf("<unknown %T>", t)
	}
}
