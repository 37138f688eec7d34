package vgf

import "github.com/nihei9/vgf/pwd"

// builtinSpecials maps the ALL_CAPS terminal names a .vgf source can
// reference (spec.md §6.3's token domain) to the regular expression that
// recognizes them, for the lexical categories a grammar source doesn't
// declare itself via a "#token NAME pattern;" directive (parser.go's
// resolveSpecial consults a source's own declarations first).
var builtinSpecials = map[string]string{
	"NUMBER":  `[0-9]+(\.[0-9]+)?`,
	"INT":     `[0-9]+`,
	"IDENT":   `[A-Za-z_][A-Za-z0-9_]*`,
	"ALPHA":   `[A-Za-z]+`,
	"STRING":  `"(?:[^"\\]|\\.)*"`,
	"NEWLINE": `\n`,
	"ANY":     `.`,
}

var specialCache = map[string]pwd.Grammar[string]{}

func lookupSpecial(name string) (pwd.Grammar[string], bool) {
	if g, ok := specialCache[name]; ok {
		return g, true
	}
	pattern, ok := builtinSpecials[name]
	if !ok {
		return nil, false
	}
	g := pwd.Pat[string](pattern)
	specialCache[name] = g
	return g, true
}

// RegisterSpecial lets a caller extend the set of recognized ALL_CAPS
// terminal names before parsing, for grammars that need lexical categories
// beyond the built-in set.
func RegisterSpecial(name, pattern string) {
	delete(specialCache, name)
	builtinSpecials[name] = pattern
}
