package pwd

// EqKind names the two equality/hashing modes the analyses and memoizers
// key on (§3.3): physical identity or structural (value) equality. Go gives
// every pointer-backed type native identity comparison and every comparable
// type native value comparison, so unlike the source this implementation
// never computes an explicit hash: a Grammar[V] value already compares by
// pointer identity (it is always backed by one of the unexported *xxxNode
// pointer types), and a token value V compares structurally because it is
// constrained to comparable. EqKind exists as documentation of which mode a
// given cache key component uses, not as a runtime dispatch value.
type EqKind int

const (
	// EqIdentity keys on address/pointer identity. Grammar nodes use this
	// mode: is_empty, is_nullable, parse_null and make_compact all key
	// solely on grammar identity, and derive keys on it for its grammar
	// argument.
	EqIdentity EqKind = iota
	// EqStructural keys on value equality. derive keys on this mode for
	// its token argument.
	EqStructural
)
