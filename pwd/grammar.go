package pwd

import (
	"fmt"
	"regexp"
)

// Grammar is a node in the grammar algebra. It is one of Nil, Eps, Tok, Pat,
// Rep, Alt, Seq, Red, or Ref. Nodes form a potentially cyclic directed graph
// through Ref and a RuleDict; they are constructed once and never mutated.
//
// Concrete variants are unexported: callers build grammars exclusively
// through the smart constructors below, and the pwd package's own analyses
// type-switch over them internally.
type Grammar[V comparable] interface {
	isGrammar()
}

type nilNode[V comparable] struct{}

func (*nilNode[V]) isGrammar() {}

type epsNode[V comparable] struct {
	ts []Tree[V]
}

func (*epsNode[V]) isGrammar() {}

type tokNode[V comparable] struct {
	t V
}

func (*tokNode[V]) isGrammar() {}

type patNode[V comparable] struct {
	re *regexp.Regexp
}

func (*patNode[V]) isGrammar() {}

type repNode[V comparable] struct {
	g Grammar[V]
}

func (*repNode[V]) isGrammar() {}

type altNode[V comparable] struct {
	g1, g2 Grammar[V]
}

func (*altNode[V]) isGrammar() {}

type seqNode[V comparable] struct {
	g1, g2 Grammar[V]
}

func (*seqNode[V]) isGrammar() {}

type redNode[V comparable] struct {
	g Grammar[V]
	f func(Tree[V]) Tree[V]
}

func (*redNode[V]) isGrammar() {}

type refNode[V comparable] struct {
	name string
	dict *RuleDict[V]
}

func (*refNode[V]) isGrammar() {}

// RuleDict is a mapping from rule name to Grammar. It is mutable during
// construction of a grammar and should be treated as frozen once analyses or
// parsing begin: Ref nodes hold the rule name, not a direct pointer, so that
// mutually recursive rules can be wired up in any order.
type RuleDict[V comparable] struct {
	rules map[string]Grammar[V]
}

// NewRuleDict returns an empty rule dictionary.
func NewRuleDict[V comparable]() *RuleDict[V] {
	return &RuleDict[V]{rules: map[string]Grammar[V]{}}
}

// Define adds or replaces the production for name.
func (d *RuleDict[V]) Define(name string, g Grammar[V]) {
	d.rules[name] = g
}

// Lookup returns the grammar registered for name, if any.
func (d *RuleDict[V]) Lookup(name string) (Grammar[V], bool) {
	g, ok := d.rules[name]
	return g, ok
}

// Names returns the rule names currently defined, in no particular order.
func (d *RuleDict[V]) Names() []string {
	names := make([]string, 0, len(d.rules))
	for n := range d.rules {
		names = append(names, n)
	}
	return names
}

////////////////////////////////////////////////////////////////////////////
// Smart constructors
////////////////////////////////////////////////////////////////////////////

// NilGrammar returns the empty language, ∅.
func NilGrammar[V comparable]() Grammar[V] {
	return &nilNode[V]{}
}

// Eps returns the language {ε}, emitting the given pre-computed trees. An
// Eps with no trees yields no parse trees, like NilGrammar, but IsEmpty
// reports it as non-empty and MakeCompact leaves it unchanged.
func Eps[V comparable](ts []Tree[V]) Grammar[V] {
	return &epsNode[V]{ts: ts}
}

// Tok returns a grammar matching exactly one token equal to t.
func Tok[V comparable](t V) Grammar[V] {
	return &tokNode[V]{t: t}
}

// Pat returns a grammar matching one token whose string form (fmt.Sprint)
// fully matches the given regular expression, anchored at both ends. It
// panics if pattern fails to compile, the same fail-fast treatment the
// core gives any other construction error (§7.1).
func Pat[V comparable](pattern string) Grammar[V] {
	re := regexp.MustCompile(`^(?:` + pattern + `)$`)
	return &patNode[V]{re: re}
}

// Rep returns the Kleene star of g. Rep(Rep(g)) collapses to Rep(g).
func Rep[V comparable](g Grammar[V]) Grammar[V] {
	if r, ok := g.(*repNode[V]); ok {
		return r
	}
	return &repNode[V]{g: g}
}

// Alt returns the union of the given grammars. n-ary calls fold right into
// binary Alt nodes. It panics when called with no arguments.
func Alt[V comparable](gs ...Grammar[V]) Grammar[V] {
	switch len(gs) {
	case 0:
		panic("pwd: Alt called with no arguments")
	case 1:
		return gs[0]
	}
	res := Grammar[V](&altNode[V]{g1: gs[len(gs)-2], g2: gs[len(gs)-1]})
	for i := len(gs) - 3; i >= 0; i-- {
		res = &altNode[V]{g1: gs[i], g2: res}
	}
	return res
}

// Seq returns the concatenation of the given grammars. n-ary calls fold
// right into binary Seq nodes. It panics when called with no arguments.
func Seq[V comparable](gs ...Grammar[V]) Grammar[V] {
	switch len(gs) {
	case 0:
		panic("pwd: Seq called with no arguments")
	case 1:
		return gs[0]
	}
	res := Grammar[V](&seqNode[V]{g1: gs[len(gs)-2], g2: gs[len(gs)-1]})
	for i := len(gs) - 3; i >= 0; i-- {
		res = &seqNode[V]{g1: gs[i], g2: res}
	}
	return res
}

// Red returns g with its parse trees remapped through f.
func Red[V comparable](g Grammar[V], f func(Tree[V]) Tree[V]) Grammar[V] {
	return &redNode[V]{g: g, f: f}
}

// Ref returns a named back-edge into dict. It is the only source of cycles
// in the grammar graph. A Ref whose name is absent from dict is a
// construction error detected lazily the first time an analysis reaches it
// (§7.1); this function itself never validates the name, since dict may
// still be under construction (mutually recursive rules).
func Ref[V comparable](name string, dict *RuleDict[V]) Grammar[V] {
	return &refNode[V]{name: name, dict: dict}
}

func resolveRef[V comparable](r *refNode[V]) Grammar[V] {
	g, ok := r.dict.Lookup(r.name)
	if !ok {
		panic(fmt.Sprintf("pwd: undefined rule %q referenced", r.name))
	}
	return g
}
