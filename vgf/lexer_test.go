package vgf

import "testing"

func TestLexer(t *testing.T) {
	tests := []struct {
		caption string
		src     string
		kinds   []tokenKind
	}{
		{
			caption: "a minimal rule",
			src:     `<expr> ::= 'D' ;`,
			kinds: []tokenKind{
				tokenKindRuleName, tokenKindDefine, tokenKindString, tokenKindSemicolon, tokenKindEOF,
			},
		},
		{
			caption: "alternatives and a rule reference",
			src:     `<expr> ::= <term> | <expr> '+' <term> ;`,
			kinds: []tokenKind{
				tokenKindRuleName, tokenKindDefine, tokenKindRuleName, tokenKindOr,
				tokenKindRuleName, tokenKindString, tokenKindRuleName, tokenKindSemicolon, tokenKindEOF,
			},
		},
		{
			caption: "every modifier suffix",
			src:     `<xs> ::= 'a'? 'b'* 'c'+ 'd'&*{,} 'e'&+{,} ;`,
			kinds: []tokenKind{
				tokenKindRuleName, tokenKindDefine,
				tokenKindString, tokenKindOptional,
				tokenKindString, tokenKindList,
				tokenKindString, tokenKindNonEmpty,
				tokenKindString, tokenKindSepList, tokenKindBraced,
				tokenKindString, tokenKindNonEmptySep, tokenKindBraced,
				tokenKindSemicolon, tokenKindEOF,
			},
		},
		{
			caption: "a special (ALL_CAPS) token and a directive",
			src: `
#start expr;
<expr> ::= NUMBER ;
`,
			kinds: []tokenKind{
				tokenKindDirective,
				tokenKindRuleName, tokenKindDefine, tokenKindSpecial, tokenKindSemicolon, tokenKindEOF,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			lex := newLexer(tt.src)
			for i, want := range tt.kinds {
				tok, err := lex.next()
				if err != nil {
					t.Fatalf("token %d: unexpected error: %v", i, err)
				}
				if tok.kind != want {
					t.Fatalf("token %d: want kind %v, got %v (%q)", i, want, tok.kind, tok.text)
				}
			}
		})
	}
}

func TestLexer_UnterminatedLiteralsReportRow(t *testing.T) {
	tests := []struct {
		caption string
		src     string
	}{
		{caption: "unterminated string", src: `<expr> ::= 'D ;`},
		{caption: "unterminated rule name", src: `<expr ::= 'D' ;`},
		{caption: "unterminated braced text", src: `<xs> ::= 'a'&*{, ;`},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			lex := newLexer(tt.src)
			var err error
			for err == nil {
				var tok *token
				tok, err = lex.next()
				if err == nil && tok.kind == tokenKindEOF {
					t.Fatalf("want a lexer error, reached EOF instead")
				}
			}
		})
	}
}
