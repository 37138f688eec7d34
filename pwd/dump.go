package pwd

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump renders g's node graph as a flat, numbered listing, one line per
// distinct node in first-visited order, with child nodes referenced by
// number instead of being re-printed. It is a diagnostic text form of a
// (possibly compacted) grammar; `vgf show` prints vgf.Description, the
// JSON counterpart of this listing, instead. Cyclic graphs can't be dumped
// as a tree, so each node gets a stable id.
func Dump[V comparable](g Grammar[V]) string {
	ids := map[Grammar[V]]uint64{}
	var lines []string

	var walk func(Grammar[V]) uint64
	walk = func(n Grammar[V]) uint64 {
		if id, ok := ids[n]; ok {
			return id
		}
		id := uint64(len(lines))
		ids[n] = id
		lines = append(lines, "")

		lines[id] = Dispatch(Table[V, string]{
			Nil: func() string { return "nil" },
			Eps: func(ts []Tree[V]) string { return fmt.Sprintf("eps(%d trees)", len(ts)) },
			Tok: func(t V) string { return fmt.Sprintf("tok(%v)", t) },
			Pat: func() string { return "pat(...)" },
			Rep: func(inner Grammar[V]) string { return fmt.Sprintf("rep(#%d)", walk(inner)) },
			Alt: func(g1, g2 Grammar[V]) string {
				return fmt.Sprintf("alt(#%d, #%d)", walk(g1), walk(g2))
			},
			Seq: func(g1, g2 Grammar[V]) string {
				return fmt.Sprintf("seq(#%d, #%d)", walk(g1), walk(g2))
			},
			Red: func(inner Grammar[V]) string { return fmt.Sprintf("red(#%d)", walk(inner)) },
			Ref: func(name string) string { return fmt.Sprintf("ref(%s)", name) },
		}, n)
		return id
	}
	walk(g)

	var b strings.Builder
	for id, line := range lines {
		fmt.Fprintf(&b, "#%s %s\n", strconv.FormatUint(uint64(id), 10), line)
	}
	return b.String()
}
