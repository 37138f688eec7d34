package pwd

import "fmt"

type deriveKey[V comparable] struct {
	g Grammar[V]
	c V
}

// Derive returns the grammar whose language is { w | c·w ∈ L(g) } (§4.4).
// It is memoized on (g by identity, c by value); that memoization, combined
// with the lazyNode placeholder described in lazy.go, is what makes
// recursive references terminate.
func (e *Engine[V]) Derive(g Grammar[V], c V) Grammar[V] {
	g = force(g)
	key := deriveKey[V]{g: g, c: c}
	if v, ok := e.deriveCache.get(key); ok {
		return v
	}
	placeholder := &lazyNode[V]{}
	e.deriveCache.set(key, placeholder)
	result := e.deriveOnce(g, c)
	placeholder.resolved = result
	return result
}

func (e *Engine[V]) deriveOnce(g Grammar[V], c V) Grammar[V] {
	switch n := g.(type) {
	case *nilNode[V]:
		return NilGrammar[V]()
	case *epsNode[V]:
		return NilGrammar[V]()
	case *tokNode[V]:
		if c == n.t {
			return Eps[V]([]Tree[V]{Leaf[V]{Value: c}})
		}
		return NilGrammar[V]()
	case *patNode[V]:
		if n.re.MatchString(fmt.Sprint(c)) {
			return Eps[V]([]Tree[V]{Leaf[V]{Value: c}})
		}
		return NilGrammar[V]()
	case *repNode[V]:
		// derive(g*, c) = derive(g,c) · g*, where g* is this very node:
		// no recursive Derive call on the Rep itself is needed.
		return Seq(e.Derive(n.g, c), n)
	case *altNode[V]:
		return Alt(e.Derive(n.g1, c), e.Derive(n.g2, c))
	case *seqNode[V]:
		return e.deriveSeq(n.g1, n.g2, c)
	case *redNode[V]:
		return Red(e.Derive(n.g, c), n.f)
	case *refNode[V]:
		return e.Derive(resolveRef(n), c)
	default:
		panic(unknownVariant(g))
	}
}

func (e *Engine[V]) deriveSeq(g1, g2 Grammar[V], c V) Grammar[V] {
	left := Seq(e.Derive(g1, c), g2)
	if !e.IsNullable(g1) {
		return left
	}
	return Alt(left, Seq(Eps[V](e.ParseNull(g1)), e.Derive(g2, c)))
}
