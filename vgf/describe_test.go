package vgf

import "testing"

func TestDescribe(t *testing.T) {
	src := `
#start expr;
<expr> ::= <expr> '+' 'D'
         | 'D'
         ;
<dead> ::= 'X' ;
`
	g, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := Check(g); err != nil {
		t.Fatalf("Check: %v", err)
	}

	desc := Describe(g)
	if desc.BuildID == "" {
		t.Fatalf("want a non-empty BuildID")
	}
	if len(desc.Start) != 1 || desc.Start[0] != "expr" {
		t.Fatalf("want Start = [expr], got %v", desc.Start)
	}
	if len(desc.Unused) != 1 || desc.Unused[0] != "dead" {
		t.Fatalf("want Unused = [dead], got %v", desc.Unused)
	}
	if _, ok := desc.Rules["expr"]; !ok {
		t.Fatalf("want a root node id for rule expr")
	}
	if _, ok := desc.Rules["dead"]; !ok {
		t.Fatalf("want a root node id for rule dead")
	}
	if len(desc.Nodes) == 0 {
		t.Fatalf("want a non-empty node listing")
	}

	var sawRef, sawTok bool
	for _, n := range desc.Nodes {
		switch n.Kind {
		case "Ref":
			sawRef = true
			if n.Ref != "expr" {
				t.Fatalf("want the only Ref in this grammar to name expr, got %v", n.Ref)
			}
		case "Tok":
			sawTok = true
		}
	}
	if !sawRef {
		t.Fatalf("want at least one Ref node (the left-recursive rule)")
	}
	if !sawTok {
		t.Fatalf("want at least one Tok node")
	}
}
