package tester

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixture(t *testing.T, dir, name, grammarSrc, caseSrc string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name+".vgf"), []byte(grammarSrc), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, name+".tok"), []byte(caseSrc), 0644); err != nil {
		t.Fatal(err)
	}
}

const singleTokenGrammar = `
#start expr;
<expr> ::= 'D'
         ;
`

const additionGrammar = `
#start expr;
<expr> ::= <expr> '+' 'D'
         | 'D'
         ;
`

func TestTester_Run(t *testing.T) {
	tests := []struct {
		caption    string
		grammarSrc string
		caseSrc    string
		error      bool
	}{
		{
			caption:    "matching output passes",
			grammarSrc: singleTokenGrammar,
			caseSrc:    "D\n\"D\"",
		},
		{
			caption:    "mismatched output fails",
			grammarSrc: singleTokenGrammar,
			caseSrc:    "D\n\"WRONG\"",
			error:      true,
		},
		{
			caption:    "rejected input fails",
			grammarSrc: additionGrammar,
			caseSrc:    "D + +\n(\"D\" (\"+\" \"D\"))",
			error:      true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			dir := t.TempDir()
			writeFixture(t, dir, "add", tt.grammarSrc, tt.caseSrc)

			fixtures, err := Discover(dir)
			if err != nil {
				t.Fatal(err)
			}
			if len(fixtures) != 1 {
				t.Fatalf("want 1 fixture, got %d", len(fixtures))
			}

			results := Run(fixtures)
			if len(results) != 1 {
				t.Fatalf("want 1 result, got %d", len(results))
			}

			if tt.error {
				if results[0].Error == nil {
					t.Fatalf("want an error, got %v", results[0])
				}
			} else if results[0].Error != nil {
				t.Fatalf("unexpected error: %v", results[0].Error)
			}
		})
	}
}

func TestDiscover_PairsOnlyCompleteFixtures(t *testing.T) {
	dir := t.TempDir()
	writeFixture(t, dir, "add", additionGrammar, "D\n\"D\"")
	if err := os.WriteFile(filepath.Join(dir, "orphan.vgf"), []byte(additionGrammar), 0644); err != nil {
		t.Fatal(err)
	}

	fixtures, err := Discover(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(fixtures) != 1 || fixtures[0].Name != "add" {
		t.Fatalf("want exactly the paired fixture 'add', got %v", fixtures)
	}
}
