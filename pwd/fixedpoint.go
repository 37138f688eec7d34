package pwd

// fixState is the generic least-fixed-point driver described in §4.3.1. It
// backs is_empty, is_nullable, is_null, and parse_null. Each outermost call
// runs a round: clear the visited set and the changed flag, then evaluate.
// Within a round a recursive call on an already-visited key returns the
// cached value (or bottom, if this is the key's first visit ever). Rounds
// repeat until one produces no change.
type fixState[K comparable, T any] struct {
	bottom  T
	eq      func(a, b T) bool
	cache   map[K]T
	visited map[K]bool
	changed bool
	running bool
}

func newFixState[K comparable, T any](bottom T, eq func(a, b T) bool) *fixState[K, T] {
	return &fixState[K, T]{
		bottom:  bottom,
		eq:      eq,
		cache:   map[K]T{},
		visited: map[K]bool{},
	}
}

// clear releases the cache and resets round state, mirroring the
// clear_cache maintenance operation the fix driver must expose (§4.3.1, §5).
func (s *fixState[K, T]) clear() {
	s.cache = map[K]T{}
	s.visited = map[K]bool{}
	s.changed = false
	s.running = false
}

func (s *fixState[K, T]) cachedOrBottom(key K) T {
	if v, ok := s.cache[key]; ok {
		return v
	}
	return s.bottom
}

// step evaluates fn for key once per round, honoring reentrant visits.
func (s *fixState[K, T]) step(key K, fn func() T) T {
	if s.visited[key] {
		return s.cachedOrBottom(key)
	}
	s.visited[key] = true
	val := fn()
	if old, ok := s.cache[key]; !ok || !s.eq(old, val) {
		s.changed = true
		s.cache[key] = val
	}
	return val
}

// run is the outermost entry point: if a round is already in progress
// (reentrant, non-outermost call) it just participates via step; otherwise
// it drives rounds to convergence.
func (s *fixState[K, T]) run(key K, fn func() T) T {
	if s.running {
		return s.step(key, fn)
	}
	s.running = true
	s.changed = true
	var val T
	for s.changed {
		s.changed = false
		s.visited = map[K]bool{}
		val = s.step(key, fn)
	}
	s.running = false
	return val
}
