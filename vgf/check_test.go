package vgf

import "testing"

func TestCheck(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		wantErr bool
	}{
		{
			caption: "a well-formed grammar with a start rule passes",
			src: `
#start expr;
<expr> ::= 'D' ;
`,
		},
		{
			caption: "a reference to an undefined rule fails",
			src: `
#start expr;
<expr> ::= <missing> ;
`,
			wantErr: true,
		},
		{
			caption: "a declared start rule that is never defined fails",
			src: `
#start missing;
<expr> ::= 'D' ;
`,
			wantErr: true,
		},
		{
			caption: "no start directive at all fails",
			src:     `<expr> ::= 'D' ;`,
			wantErr: true,
		},
		{
			caption: "a declared token that is referenced passes",
			src: `
#start expr;
#token NUM [0-9]+;
<expr> ::= NUM ;
`,
		},
		{
			caption: "a declared token that no production references fails",
			src: `
#start expr;
#token NUM [0-9]+;
<expr> ::= 'D' ;
`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g, err := Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			err = Check(g)
			if tt.wantErr && err == nil {
				t.Fatalf("want an error, got none")
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestUnused(t *testing.T) {
	src := `
#start expr;
<expr> ::= 'D' ;
<dead> ::= 'X' ;
`
	g, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := Check(g); err != nil {
		t.Fatalf("Check: %v", err)
	}
	unused := Unused(g)
	if len(unused) != 1 || unused[0] != "dead" {
		t.Fatalf("want unused = [dead], got %v", unused)
	}
}

func TestUnusedTokens(t *testing.T) {
	src := `
#start expr;
#token NUM [0-9]+;
#token WORD [a-z]+;
<expr> ::= NUM ;
`
	g, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	unused := UnusedTokens(g)
	if len(unused) != 1 || unused[0] != "WORD" {
		t.Fatalf("want unused tokens = [WORD], got %v", unused)
	}
	if err := Check(g); err == nil {
		t.Fatalf("want Check to reject a declared but unused token")
	}
}
