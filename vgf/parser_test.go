package vgf

import (
	"testing"

	"github.com/nihei9/vgf/pwd"
)

func TestParse_BuildsAParseableGrammar(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		tokens  []string
		want    int // want len(trees)
	}{
		{
			caption: "a single literal",
			src: `
#start expr;
<expr> ::= 'D' ;
`,
			tokens: []string{"D"},
			want:   1,
		},
		{
			caption: "alternatives and left recursion",
			src: `
#start expr;
<expr> ::= <expr> '+' 'D'
         | 'D'
         ;
`,
			tokens: []string{"D", "+", "D", "+", "D"},
			want:   1,
		},
		{
			caption: "optional modifier accepts the omitted form",
			src: `
#start expr;
<expr> ::= 'a' 'b'? 'c' ;
`,
			tokens: []string{"a", "c"},
			want:   1,
		},
		{
			caption: "list modifier",
			src: `
#start xs;
<xs> ::= 'a'* ;
`,
			tokens: []string{"a", "a", "a"},
			want:   1,
		},
		{
			caption: "separated list with a braced separator",
			src: `
#start xs;
<xs> ::= 'a'&*{,} ;
`,
			tokens: []string{"a", ",", "a", ",", "a"},
			want:   1,
		},
		{
			caption: "a special (ALL_CAPS) token",
			src: `
#start expr;
<expr> ::= NUMBER ;
`,
			tokens: []string{"42"},
			want:   1,
		},
		{
			caption: "a user-declared token overrides the built-in pattern",
			src: `
#start expr;
#token NUMBER [0-9]{2};
<expr> ::= NUMBER ;
`,
			tokens: []string{"123"},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g, err := Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if err := Check(g); err != nil {
				t.Fatalf("Check: %v", err)
			}
			start, ok := g.Dict.Lookup(g.StartRules[0])
			if !ok {
				t.Fatalf("start rule %q not defined", g.StartRules[0])
			}

			e := pwd.NewEngine[string]()
			trees := e.ParseCompact(tt.tokens, start)
			if len(trees) != tt.want {
				t.Fatalf("want %d tree(s), got %d", tt.want, len(trees))
			}
		})
	}
}

func TestParse_RejectsMalformedSource(t *testing.T) {
	tests := []struct {
		caption string
		src     string
	}{
		{caption: "missing semicolon", src: `<expr> ::= 'D'`},
		{caption: "missing ::=", src: `<expr> 'D' ;`},
		{caption: "empty alternative", src: `<expr> ::= 'D' | ;`},
		{caption: "undefined special token", src: `<expr> ::= NOT_A_BUILTIN ;`},
		{caption: "#token directive missing a pattern", src: "#token NUM;\n<expr> ::= 'D' ;"},
		{caption: "duplicate #token declaration", src: "#token NUM [0-9]+;\n#token NUM [0-9]+;\n<expr> ::= NUM ;"},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			if _, err := Parse(tt.src); err == nil {
				t.Fatalf("want a syntax error, got none")
			}
		})
	}
}

func TestGrammarStart_FoldsEveryDeclaredStartRuleIntoOneAlt(t *testing.T) {
	src := `
#start expr;
#start stmt;
<expr> ::= 'D' ;
<stmt> ::= 'S' ;
`
	g, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := Check(g); err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(g.StartRules) != 2 {
		t.Fatalf("want 2 start rules, got %v", g.StartRules)
	}

	start, err := g.Start()
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	for _, tokens := range [][]string{{"D"}, {"S"}} {
		e := pwd.NewEngine[string]()
		trees := e.ParseCompact(tokens, start)
		if len(trees) != 1 {
			t.Fatalf("want 1 tree for %v (second start rule must not be dropped), got %d", tokens, len(trees))
		}
	}
}

func TestGrammarStart_ErrorsWithNoStartRuleDeclared(t *testing.T) {
	g, err := Parse(`<expr> ::= 'D' ;`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := g.Start(); err == nil {
		t.Fatalf("want an error when no start rule is declared")
	}
}

func TestParse_DuplicateProductionIsRejected(t *testing.T) {
	src := `
<expr> ::= 'D' ;
<expr> ::= 'E' ;
`
	if _, err := Parse(src); err == nil {
		t.Fatalf("want a duplicate-production error, got none")
	}
}
