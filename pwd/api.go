package pwd

// The functions below give the flat API surface named in §6.1. Each
// constructs a throwaway Engine, so repeated calls do not share caches with
// each other — fine for the analyses (each call converges to a correct
// fixed point regardless of prior calls) but wasteful for a multi-token
// parse. Code driving more than one step against the same grammar — the
// driver package, and Engine.Parse/Engine.ParseCompact themselves — should
// hold one Engine for the whole run instead of calling these repeatedly.

// IsEmpty reports whether g's language is ∅.
func IsEmpty[V comparable](g Grammar[V]) bool {
	return NewEngine[V]().IsEmpty(g)
}

// IsNullable reports whether ε is in g's language.
func IsNullable[V comparable](g Grammar[V]) bool {
	return NewEngine[V]().IsNullable(g)
}

// IsNull reports whether g's language is exactly {ε}.
func IsNull[V comparable](g Grammar[V]) bool {
	return NewEngine[V]().IsNull(g)
}

// ParseNull returns every tree g recognizes from ε.
func ParseNull[V comparable](g Grammar[V]) []Tree[V] {
	return NewEngine[V]().ParseNull(g)
}

// Derive returns the token derivative of g with respect to c.
func Derive[V comparable](g Grammar[V], c V) Grammar[V] {
	return NewEngine[V]().Derive(g, c)
}

// MakeCompact returns g algebraically simplified to a language-preserving
// equivalent.
func MakeCompact[V comparable](g Grammar[V]) Grammar[V] {
	return NewEngine[V]().MakeCompact(g)
}

// Parse folds tokens through g and returns the resulting parse forest.
func Parse[V comparable](tokens []V, g Grammar[V]) []Tree[V] {
	return NewEngine[V]().Parse(tokens, g)
}

// ParseCompact is Parse with make_compact applied after every step.
func ParseCompact[V comparable](tokens []V, g Grammar[V]) []Tree[V] {
	return NewEngine[V]().ParseCompact(tokens, g)
}
