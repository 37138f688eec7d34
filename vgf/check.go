package vgf

import (
	"fmt"
	"sort"

	"github.com/nihei9/vgf/pwd"
	"github.com/nihei9/vgf/vgferr"
)

// collectRefs walks g's graph (bounded by a visited set, since Ref makes it
// cyclic) and returns every rule name it refers to.
func collectRefs(g pwd.Grammar[string]) []string {
	visited := map[pwd.Grammar[string]]bool{}
	var refs []string
	var walk func(pwd.Grammar[string])
	walk = func(n pwd.Grammar[string]) {
		if visited[n] {
			return
		}
		visited[n] = true
		pwd.Dispatch(pwd.Table[string, struct{}]{
			Nil: func() struct{} { return struct{}{} },
			Eps: func(ts []pwd.Tree[string]) struct{} { return struct{}{} },
			Tok: func(t string) struct{} { return struct{}{} },
			Pat: func() struct{} { return struct{}{} },
			Rep: func(inner pwd.Grammar[string]) struct{} { walk(inner); return struct{}{} },
			Alt: func(g1, g2 pwd.Grammar[string]) struct{} { walk(g1); walk(g2); return struct{}{} },
			Seq: func(g1, g2 pwd.Grammar[string]) struct{} { walk(g1); walk(g2); return struct{}{} },
			Red: func(inner pwd.Grammar[string]) struct{} { walk(inner); return struct{}{} },
			Ref: func(name string) struct{} { refs = append(refs, name); return struct{}{} },
		}, n)
	}
	walk(g)
	return refs
}

// Check validates a parsed Grammar before it reaches the core engine: every
// rule reference it names here is defined, every declared start rule
// exists, and every "#token" declaration was actually referenced by some
// production. The core engine itself only detects an undefined Ref lazily,
// the first time an analysis walks into it (pwd.Ref's doc comment); running
// this check up front turns that into an ordinary reported error instead of
// a panic surfacing out of pwd. The unused-token check mirrors
// original_source/derpgen/grammar/check.py's pass over token_matchers.
func Check(g *Grammar) error {
	names := g.Dict.Names()
	defined := make(map[string]bool, len(names))
	for _, n := range names {
		defined[n] = true
	}
	sort.Strings(names)

	var missing []string
	seen := map[string]bool{}
	for _, n := range names {
		rule, _ := g.Dict.Lookup(n)
		for _, ref := range collectRefs(rule) {
			if !defined[ref] && !seen[ref] {
				seen[ref] = true
				missing = append(missing, ref)
			}
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return &vgferr.SpecError{Cause: fmt.Errorf("undefined rule(s) referenced: %v", missing)}
	}

	for _, start := range g.StartRules {
		if !defined[start] {
			return &vgferr.SpecError{Cause: fmt.Errorf("start rule %q is not defined", start)}
		}
	}
	if len(g.StartRules) == 0 && len(names) > 0 {
		return &vgferr.SpecError{Cause: fmt.Errorf("no start rule declared; add a \"#start <rule>\" directive")}
	}

	if unused := UnusedTokens(g); len(unused) > 0 {
		return &vgferr.SpecError{Cause: fmt.Errorf("declared but unused token(s): %v", unused)}
	}
	return nil
}

// UnusedTokens returns the names of tokens declared via "#token" directives
// that no production ever referenced. Unlike Unused (rule reachability),
// this is a hard Check failure: a declared token that nothing uses is the
// same defect a mistyped or abandoned lexical entry would be.
func UnusedTokens(g *Grammar) []string {
	names := make([]string, 0, len(g.Tokens))
	for name := range g.Tokens {
		names = append(names, name)
	}
	sort.Strings(names)

	var unused []string
	for _, name := range names {
		if !g.UsedTokens[name] {
			unused = append(unused, name)
		}
	}
	return unused
}

// Unused returns the names of rules that are defined but unreachable from
// any declared start rule. Unlike Check, this is advisory: an unused rule
// does not prevent compilation, it is reported to the caller as a warning.
func Unused(g *Grammar) []string {
	reachable := map[string]bool{}
	var visit func(name string)
	visit = func(name string) {
		if reachable[name] {
			return
		}
		rule, ok := g.Dict.Lookup(name)
		if !ok {
			return
		}
		reachable[name] = true
		for _, ref := range collectRefs(rule) {
			visit(ref)
		}
	}
	for _, start := range g.StartRules {
		visit(start)
	}

	names := g.Dict.Names()
	sort.Strings(names)
	var unused []string
	for _, n := range names {
		if !reachable[n] {
			unused = append(unused, n)
		}
	}
	return unused
}
