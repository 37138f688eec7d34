package pwd

// MakeCompact rewrites g into a smaller grammar with the same language and a
// parse forest in bijection with g's, modulo the Red functions folded in
// (§4.5). It is memoized by grammar identity; like Derive, a lazyNode
// placeholder is stored before recursing so that compaction terminates on
// recursive grammars reached through Ref.
func (e *Engine[V]) MakeCompact(g Grammar[V]) Grammar[V] {
	g = force(g)
	if v, ok := e.compactCache.get(g); ok {
		return v
	}
	placeholder := &lazyNode[V]{}
	e.compactCache.set(g, placeholder)
	result := e.compactOnce(g)
	placeholder.resolved = result
	return result
}

// nullWitness reports whether g is null (L(g) = {ε}) and, if so, the unique
// tree that witnesses it. This replaces the source's scoped `nullp_t`
// global with an explicit return value, per the design notes' resolution.
func (e *Engine[V]) nullWitness(g Grammar[V]) (Tree[V], bool) {
	if !e.IsNull(g) {
		var zero Tree[V]
		return zero, false
	}
	ts := e.ParseNull(g)
	if len(ts) == 1 {
		return ts[0], true
	}
	var zero Tree[V]
	return zero, false
}

func (e *Engine[V]) compactOnce(g Grammar[V]) Grammar[V] {
	switch n := g.(type) {
	case *nilNode[V]:
		return n
	case *epsNode[V]:
		return n
	case *tokNode[V]:
		if e.IsEmpty(n) {
			return NilGrammar[V]()
		}
		return n
	case *patNode[V]:
		if e.IsEmpty(n) {
			return NilGrammar[V]()
		}
		return n
	case *repNode[V]:
		if e.IsEmpty(n.g) {
			return Eps[V]([]Tree[V]{Empty[V]{}})
		}
		return Rep(e.MakeCompact(n.g))
	case *altNode[V]:
		if e.IsEmpty(n.g1) {
			return e.MakeCompact(n.g2)
		}
		if e.IsEmpty(n.g2) {
			return e.MakeCompact(n.g1)
		}
		return Alt(e.MakeCompact(n.g1), e.MakeCompact(n.g2))
	case *seqNode[V]:
		if e.IsEmpty(n.g1) || e.IsEmpty(n.g2) {
			return NilGrammar[V]()
		}
		if t, ok := e.nullWitness(n.g1); ok {
			return Red(e.MakeCompact(n.g2), func(w Tree[V]) Tree[V] {
				return Branch[V]{Left: t, Right: w}
			})
		}
		if t, ok := e.nullWitness(n.g2); ok {
			return Red(e.MakeCompact(n.g1), func(w Tree[V]) Tree[V] {
				return Branch[V]{Left: w, Right: t}
			})
		}
		return Seq(e.MakeCompact(n.g1), e.MakeCompact(n.g2))
	case *redNode[V]:
		return e.compactRed(n)
	case *refNode[V]:
		return e.MakeCompact(resolveRef(n))
	default:
		panic(unknownVariant(g))
	}
}

func (e *Engine[V]) compactRed(n *redNode[V]) Grammar[V] {
	f := n.f
	switch child := force(n.g).(type) {
	case *epsNode[V]:
		out := make([]Tree[V], len(child.ts))
		for i, t := range child.ts {
			out[i] = f(t)
		}
		return Eps[V](out)
	case *seqNode[V]:
		if t, ok := e.nullWitness(child.g1); ok {
			return Red(e.MakeCompact(child.g2), func(w Tree[V]) Tree[V] {
				return f(Branch[V]{Left: t, Right: w})
			})
		}
	case *redNode[V]:
		inner := child.f
		return Red(e.MakeCompact(child.g), func(t Tree[V]) Tree[V] {
			return f(inner(t))
		})
	}
	return Red(e.MakeCompact(n.g), f)
}
