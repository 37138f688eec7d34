package pwd

import "fmt"

// Engine owns the caches for one grammar's analyses, derivatives, and
// compactions. §5 requires that caches persist across parse calls within a
// single grammar but are not safe for concurrent use; an Engine is that unit
// of cache ownership — callers who want isolated, thread-safe-by-separation
// parses construct one Engine per parse.
type Engine[V comparable] struct {
	emptyFix     *fixState[Grammar[V], bool]
	nullableFix  *fixState[Grammar[V], bool]
	nullFix      *fixState[Grammar[V], bool]
	parseNullFix *fixState[Grammar[V], []Tree[V]]
	deriveCache  *memo[deriveKey[V], Grammar[V]]
	compactCache *memo[Grammar[V], Grammar[V]]
}

// NewEngine returns an Engine with empty caches.
func NewEngine[V comparable]() *Engine[V] {
	return &Engine[V]{
		emptyFix:     newFixState[Grammar[V]](false, boolEq),
		nullableFix:  newFixState[Grammar[V]](true, boolEq),
		nullFix:      newFixState[Grammar[V]](true, boolEq),
		parseNullFix: newFixState[Grammar[V]]([]Tree[V](nil), treesEq[V]),
		deriveCache:  newMemo[deriveKey[V], Grammar[V]](),
		compactCache: newMemo[Grammar[V], Grammar[V]](),
	}
}

// ClearCaches drops every cached analysis, derivative, and compaction,
// releasing memory or resetting state between unrelated parses (§5).
func (e *Engine[V]) ClearCaches() {
	e.emptyFix.clear()
	e.nullableFix.clear()
	e.nullFix.clear()
	e.parseNullFix.clear()
	e.deriveCache.clear()
	e.compactCache.clear()
}

func boolEq(a, b bool) bool { return a == b }

func treesEq[V comparable](a, b []Tree[V]) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// IsEmpty reports whether g's language is ∅ (§4.3, bottom = false).
func (e *Engine[V]) IsEmpty(g Grammar[V]) bool {
	g = force(g)
	return e.emptyFix.run(g, func() bool {
		switch n := g.(type) {
		case *nilNode[V]:
			return true
		case *epsNode[V]:
			return false
		case *tokNode[V]:
			return false
		case *patNode[V]:
			return false
		case *repNode[V]:
			return false
		case *altNode[V]:
			return e.IsEmpty(n.g1) && e.IsEmpty(n.g2)
		case *seqNode[V]:
			return e.IsEmpty(n.g1) || e.IsEmpty(n.g2)
		case *redNode[V]:
			return e.IsEmpty(n.g)
		case *refNode[V]:
			return e.IsEmpty(resolveRef(n))
		default:
			panic(unknownVariant(g))
		}
	})
}

// IsNullable reports whether ε is in g's language (§4.3, bottom = true).
func (e *Engine[V]) IsNullable(g Grammar[V]) bool {
	g = force(g)
	return e.nullableFix.run(g, func() bool {
		switch n := g.(type) {
		case *nilNode[V]:
			return false
		case *epsNode[V]:
			return true
		case *tokNode[V]:
			return false
		case *patNode[V]:
			return false
		case *repNode[V]:
			return true
		case *altNode[V]:
			return e.IsNullable(n.g1) || e.IsNullable(n.g2)
		case *seqNode[V]:
			return e.IsNullable(n.g1) && e.IsNullable(n.g2)
		case *redNode[V]:
			return e.IsNullable(n.g)
		case *refNode[V]:
			return e.IsNullable(resolveRef(n))
		default:
			panic(unknownVariant(g))
		}
	})
}

// IsNull reports whether g's language is exactly {ε} (§4.5, bottom = true).
// It is the auxiliary analysis the compactor uses to decide when a Seq
// child can be folded away entirely.
func (e *Engine[V]) IsNull(g Grammar[V]) bool {
	g = force(g)
	return e.nullFix.run(g, func() bool {
		switch n := g.(type) {
		case *nilNode[V]:
			return false
		case *epsNode[V]:
			return true
		case *tokNode[V]:
			return false
		case *patNode[V]:
			return false
		case *repNode[V]:
			return e.IsEmpty(n.g)
		case *altNode[V]:
			return e.IsNull(n.g1) && e.IsNull(n.g2)
		case *seqNode[V]:
			return e.IsNull(n.g1) && e.IsNull(n.g2)
		case *redNode[V]:
			return e.IsNull(n.g)
		case *refNode[V]:
			return e.IsNull(resolveRef(n))
		default:
			panic(unknownVariant(g))
		}
	})
}

// ParseNull returns every tree g recognizes from ε (§4.3, bottom = nil).
func (e *Engine[V]) ParseNull(g Grammar[V]) []Tree[V] {
	g = force(g)
	return e.parseNullFix.run(g, func() []Tree[V] {
		switch n := g.(type) {
		case *nilNode[V]:
			return nil
		case *epsNode[V]:
			return n.ts
		case *tokNode[V]:
			return nil
		case *patNode[V]:
			return nil
		case *repNode[V]:
			return []Tree[V]{Empty[V]{}}
		case *altNode[V]:
			return append(append([]Tree[V]{}, e.ParseNull(n.g1)...), e.ParseNull(n.g2)...)
		case *seqNode[V]:
			var out []Tree[V]
			t1s := e.ParseNull(n.g1)
			t2s := e.ParseNull(n.g2)
			for _, t1 := range t1s {
				for _, t2 := range t2s {
					out = append(out, Branch[V]{Left: t1, Right: t2})
				}
			}
			return out
		case *redNode[V]:
			ts := e.ParseNull(n.g)
			out := make([]Tree[V], len(ts))
			for i, t := range ts {
				out[i] = n.f(t)
			}
			return out
		case *refNode[V]:
			return e.ParseNull(resolveRef(n))
		default:
			panic(unknownVariant(g))
		}
	})
}

func unknownVariant[V comparable](g Grammar[V]) string {
	return fmt.Sprintf("pwd: match-dispatch failure: unhandled grammar variant %T", g)
}
