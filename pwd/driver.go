package pwd

// Parse folds tokens through Derive and extracts the parse forest from the
// residual grammar via ParseNull (§4.6). It never fails: an unparseable
// input simply yields a residual grammar whose ParseNull is empty.
func (e *Engine[V]) Parse(tokens []V, g Grammar[V]) []Tree[V] {
	for _, c := range tokens {
		g = e.Derive(g, c)
	}
	return e.ParseNull(g)
}

// ParseCompact is Parse, but make_compact is applied to every intermediate
// grammar. This is the driver that terminates practically on recursive
// grammars; Parse is provided for debugging (§4.6).
func (e *Engine[V]) ParseCompact(tokens []V, g Grammar[V]) []Tree[V] {
	for _, c := range tokens {
		g = e.MakeCompact(e.Derive(g, c))
	}
	return e.ParseNull(g)
}
