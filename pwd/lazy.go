package pwd

// lazyNode is the mutable placeholder that makes derive and make_compact
// terminate on recursive (cyclic) grammars, per the "thunked construction"
// design note (§9): before recursively computing the derivative (or
// compaction) of a grammar node, the memoizing wrapper stores a lazyNode in
// the cache under that node's key, then fills in its resolved field once
// the real result is known. A reentrant call for the same key — which
// happens exactly when a grammar rule refers back to itself through a Ref —
// finds the placeholder already cached and returns it immediately without
// recursing further; by the time anything actually inspects that
// placeholder (the next token, or a later compaction pass), the outermost
// call that created it has already finished and resolved it.
//
// This stands in for the source's delay/force laziness: Go has no implicit
// thunks, so the indirection is modeled as an explicit, once-written node.
type lazyNode[V comparable] struct {
	resolved Grammar[V]
}

func (*lazyNode[V]) isGrammar() {}

// force follows lazyNode indirections until it reaches a concrete grammar
// node. It panics if it finds an unresolved placeholder, which would mean a
// grammar rule's derivative or compaction depends on itself synchronously
// (a genuinely ill-formed recursive definition, not an ordinary left/right
// recursive one) — an invariant violation, per §7.3.
func force[V comparable](g Grammar[V]) Grammar[V] {
	for {
		lz, ok := g.(*lazyNode[V])
		if !ok {
			return g
		}
		if lz.resolved == nil {
			panic("pwd: grammar node depends on its own derivative or compaction before it is computed")
		}
		g = lz.resolved
	}
}
