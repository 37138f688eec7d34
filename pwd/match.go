package pwd

// Table is the match-dispatcher utility from §4.7: a variant-tag-to-handler
// table. The analyses in this package use Go's native type switches instead
// (the design notes explicitly allow this substitution for a host language
// with built-in sum-type matching), but Table is still exposed for callers
// outside this package — the vgf frontend's checker and Describe use it, as
// does Dump here, to walk a grammar node's variant without reaching into
// unexported fields.
//
// Table must be exhaustive over the nine Grammar variants; Dispatch panics,
// naming the offending type, if g's variant has no entry, matching the
// match-dispatch-failure error category (§7.3).
type Table[V comparable, R any] struct {
	Nil  func() R
	Eps  func(ts []Tree[V]) R
	Tok  func(t V) R
	Pat  func() R
	Rep  func(g Grammar[V]) R
	Alt  func(g1, g2 Grammar[V]) R
	Seq  func(g1, g2 Grammar[V]) R
	Red  func(g Grammar[V]) R
	Ref  func(name string) R
}

// Dispatch applies the matching handler in t to g.
func Dispatch[V comparable, R any](t Table[V, R], g Grammar[V]) R {
	switch n := force(g).(type) {
	case *nilNode[V]:
		if t.Nil == nil {
			panic(unknownVariant(g))
		}
		return t.Nil()
	case *epsNode[V]:
		if t.Eps == nil {
			panic(unknownVariant(g))
		}
		return t.Eps(n.ts)
	case *tokNode[V]:
		if t.Tok == nil {
			panic(unknownVariant(g))
		}
		return t.Tok(n.t)
	case *patNode[V]:
		if t.Pat == nil {
			panic(unknownVariant(g))
		}
		return t.Pat()
	case *repNode[V]:
		if t.Rep == nil {
			panic(unknownVariant(g))
		}
		return t.Rep(n.g)
	case *altNode[V]:
		if t.Alt == nil {
			panic(unknownVariant(g))
		}
		return t.Alt(n.g1, n.g2)
	case *seqNode[V]:
		if t.Seq == nil {
			panic(unknownVariant(g))
		}
		return t.Seq(n.g1, n.g2)
	case *redNode[V]:
		if t.Red == nil {
			panic(unknownVariant(g))
		}
		return t.Red(n.g)
	case *refNode[V]:
		if t.Ref == nil {
			panic(unknownVariant(g))
		}
		return t.Ref(n.name)
	default:
		panic(unknownVariant(g))
	}
}

// VariantName returns a short diagnostic name for g's variant, e.g. "Seq".
func VariantName[V comparable](g Grammar[V]) string {
	return Dispatch(Table[V, string]{
		Nil: func() string { return "Nil" },
		Eps: func(ts []Tree[V]) string { return "Eps" },
		Tok: func(t V) string { return "Tok" },
		Pat: func() string { return "Pat" },
		Rep: func(g Grammar[V]) string { return "Rep" },
		Alt: func(g1, g2 Grammar[V]) string { return "Alt" },
		Seq: func(g1, g2 Grammar[V]) string { return "Seq" },
		Red: func(g Grammar[V]) string { return "Red" },
		Ref: func(name string) string { return "Ref(" + name + ")" },
	}, g)
}
