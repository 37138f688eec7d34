package vgf

import (
	"sort"

	"github.com/nihei9/vgf/pwd"
)

// Node is one entry in a Description's flat, numbered node listing: the
// JSON-serializable counterpart of pwd.Dump's text form, keyed by node id
// so Ref and shared-subgraph edges survive a round trip through disk.
type Node struct {
	ID       int    `json:"id"`
	Kind     string `json:"kind"`
	Token    string `json:"token,omitempty"`
	Trees    int    `json:"trees,omitempty"`
	Ref      string `json:"ref,omitempty"`
	Children []int  `json:"children,omitempty"`
}

// Description is the portable form `vgf compile` writes and `vgf show`
// reads back, the counterpart of the teacher's spec.Description. Unlike the
// teacher's compiled parsing table, a Description is diagnostic rather than
// executable: Red nodes carry Go closures that cannot round-trip through
// JSON, so `vgf parse` and `vgf test` recompile a .vgf source directly
// instead of consuming a Description (see DESIGN.md).
type Description struct {
	BuildID string         `json:"buildId"`
	Start   []string       `json:"start"`
	Unused  []string       `json:"unused,omitempty"`
	Rules   map[string]int `json:"rules"`
	Nodes   []Node         `json:"nodes"`
}

// Describe walks every rule in g's dictionary and produces a Description:
// one Node per distinct grammar node reachable from a rule, numbered in
// first-visit order and deduplicated by identity so a rule referenced from
// several productions, or a cyclic Ref, appears once.
func Describe(g *Grammar) *Description {
	ids := map[pwd.Grammar[string]]int{}
	var nodes []Node

	var walk func(pwd.Grammar[string]) int
	walk = func(n pwd.Grammar[string]) int {
		if id, ok := ids[n]; ok {
			return id
		}
		id := len(nodes)
		ids[n] = id
		nodes = append(nodes, Node{ID: id})

		nodes[id] = pwd.Dispatch(pwd.Table[string, Node]{
			Nil: func() Node { return Node{ID: id, Kind: "Nil"} },
			Eps: func(ts []pwd.Tree[string]) Node { return Node{ID: id, Kind: "Eps", Trees: len(ts)} },
			Tok: func(t string) Node { return Node{ID: id, Kind: "Tok", Token: t} },
			Pat: func() Node { return Node{ID: id, Kind: "Pat"} },
			Rep: func(inner pwd.Grammar[string]) Node {
				return Node{ID: id, Kind: "Rep", Children: []int{walk(inner)}}
			},
			Alt: func(g1, g2 pwd.Grammar[string]) Node {
				return Node{ID: id, Kind: "Alt", Children: []int{walk(g1), walk(g2)}}
			},
			Seq: func(g1, g2 pwd.Grammar[string]) Node {
				return Node{ID: id, Kind: "Seq", Children: []int{walk(g1), walk(g2)}}
			},
			Red: func(inner pwd.Grammar[string]) Node {
				return Node{ID: id, Kind: "Red", Children: []int{walk(inner)}}
			},
			Ref: func(name string) Node { return Node{ID: id, Kind: "Ref", Ref: name} },
		}, n)
		return id
	}

	names := g.Dict.Names()
	sort.Strings(names)
	rules := make(map[string]int, len(names))
	for _, name := range names {
		rule, _ := g.Dict.Lookup(name)
		rules[name] = walk(rule)
	}

	return &Description{
		BuildID: BuildID(),
		Start:   g.StartRules,
		Unused:  Unused(g),
		Rules:   rules,
		Nodes:   nodes,
	}
}
