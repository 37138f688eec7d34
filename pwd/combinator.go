package pwd

// Derived transformers (§4.2). These are expressed purely in terms of the
// core combinators; the VGF frontend's `?`, `*`, `+`, and separated-list
// sugar expand into calls to these.

// Optional returns g?, i.e. Alt(g, Eps([Empty])).
func Optional[V comparable](g Grammar[V]) Grammar[V] {
	return Alt(g, Eps[V]([]Tree[V]{Empty[V]{}}))
}

// List returns g*, i.e. Rep(g).
func List[V comparable](g Grammar[V]) Grammar[V] {
	return Rep(g)
}

// NonEmptyList returns g+, constructed as Seq(g, Rep(g)).
func NonEmptyList[V comparable](g Grammar[V]) Grammar[V] {
	return Seq(g, Rep(g))
}

// SepList returns a possibly-empty list of g separated by sep.
func SepList[V comparable](sep, g Grammar[V]) Grammar[V] {
	return Alt(Eps[V]([]Tree[V]{Empty[V]{}}), Seq(g, Rep(Seq(sep, g))))
}

// NonEmptySepList returns a nonempty list of g separated by sep.
func NonEmptySepList[V comparable](sep, g Grammar[V]) Grammar[V] {
	return Seq(g, Rep(Seq(sep, g)))
}
