package vgf

import (
	"fmt"
	"strings"

	"github.com/nihei9/vgf/pwd"
	"github.com/nihei9/vgf/vgferr"
)

// Grammar is the parsed form of a .vgf source: the rule dictionary, the
// names declared as start symbols via a "#start <rule>" directive, the
// tokens declared via "#token <NAME> <pattern>" directives, and which of
// those declared tokens were actually referenced by some production.
type Grammar struct {
	Dict       *pwd.RuleDict[string]
	StartRules []string
	Tokens     map[string]string
	UsedTokens map[string]bool
}

// Start builds the top-level grammar spec.md §6.2 names:
// alt(dict[s] for s in starts). It folds every declared start rule into one
// Alt, rather than just the first, so a source with more than one #start
// directive parses the union of all of them instead of silently dropping
// the rest.
func (g *Grammar) Start() (pwd.Grammar[string], error) {
	if len(g.StartRules) == 0 {
		return nil, fmt.Errorf("no start rule declared; add a \"#start <rule>\" directive")
	}
	starts := make([]pwd.Grammar[string], 0, len(g.StartRules))
	for _, name := range g.StartRules {
		rule, ok := g.Dict.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("start rule %q is not defined", name)
		}
		starts = append(starts, rule)
	}
	return pwd.Alt(starts...), nil
}

// Parse reads a .vgf grammar source and builds its rule dictionary. It
// mirrors the teacher's own spec/parser.go: a hand-written recursive
// descent parser driven by a hand-written lexer, reporting a *vgferr.SpecError
// on the first syntax problem encountered.
func Parse(src string) (*Grammar, error) {
	p := &parser{
		lex:       newLexer(src),
		dict:      pwd.NewRuleDict[string](),
		defined:   map[string]bool{},
		tokens:    map[string]string{},
		used:      map[string]bool{},
		tokenRefs: map[string]pwd.Grammar[string]{},
	}
	if err := p.advance(); err != nil {
		return nil, err
	}
	g := &Grammar{Dict: p.dict, Tokens: p.tokens, UsedTokens: p.used}
	for p.tok.kind != tokenKindEOF {
		switch p.tok.kind {
		case tokenKindDirective:
			name, args, err := parseDirective(p.tok.text, p.tok.row)
			if err != nil {
				return nil, err
			}
			switch name {
			case "start":
				g.StartRules = append(g.StartRules, args...)
			case "token":
				if len(args) < 2 {
					return nil, &vgferr.SpecError{Row: p.tok.row, Cause: fmt.Errorf("#token directive requires a name and a pattern")}
				}
				tname, pattern := args[0], strings.Join(args[1:], " ")
				if _, exists := p.tokens[tname]; exists {
					return nil, &vgferr.SpecError{Row: p.tok.row, Cause: fmt.Errorf("duplicate #token declaration for %q", tname)}
				}
				p.tokens[tname] = pattern
			}
			if err := p.advance(); err != nil {
				return nil, err
			}
		case tokenKindRuleName:
			if err := p.parseRule(); err != nil {
				return nil, err
			}
		default:
			return nil, p.errorf("expected a rule definition or directive, found %s", p.tok.kind)
		}
	}
	return g, nil
}

func parseDirective(text string, row int) (string, []string, error) {
	fields := strings.Fields(strings.TrimSuffix(strings.TrimSpace(text), ";"))
	if len(fields) == 0 {
		return "", nil, &vgferr.SpecError{Row: row, Cause: fmt.Errorf("empty directive")}
	}
	return fields[0], fields[1:], nil
}

type parser struct {
	lex       *lexer
	tok       *token
	dict      *pwd.RuleDict[string]
	defined   map[string]bool
	tokens    map[string]string              // declared via "#token NAME pattern;"
	used      map[string]bool                // names, declared or built-in, referenced by a production
	tokenRefs map[string]pwd.Grammar[string] // cache of compiled user-declared token patterns
}

// resolveSpecial compiles the grammar for an ALL_CAPS special token name,
// preferring a user-declared "#token" pattern over the built-in table
// (vgf/builtins.go), and records the reference so Check can later tell
// whether a declared token ever went unused (vgf/check.go).
func (p *parser) resolveSpecial(name string) (pwd.Grammar[string], error) {
	if g, ok := p.tokenRefs[name]; ok {
		p.used[name] = true
		return g, nil
	}
	if pattern, ok := p.tokens[name]; ok {
		g := pwd.Pat[string](pattern)
		p.tokenRefs[name] = g
		p.used[name] = true
		return g, nil
	}
	if g, ok := lookupSpecial(name); ok {
		p.used[name] = true
		return g, nil
	}
	return nil, p.errorf("undefined special token %q", name)
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *parser) errorf(format string, args ...any) error {
	return &vgferr.SpecError{Row: p.tok.row, Cause: fmt.Errorf(format, args...)}
}

func (p *parser) expect(k tokenKind) (*token, error) {
	if p.tok.kind != k {
		return nil, p.errorf("expected %s, found %s", k, p.tok.kind)
	}
	t := p.tok
	if err := p.advance(); err != nil {
		return nil, err
	}
	return t, nil
}

// parseRule parses "<name> ::= alt ('|' alt)* ';'" and defines it in the
// dictionary as Alt(alt1, alt2, ...).
func (p *parser) parseRule() error {
	nameTok, err := p.expect(tokenKindRuleName)
	if err != nil {
		return err
	}
	if _, err := p.expect(tokenKindDefine); err != nil {
		return err
	}
	var alts []pwd.Grammar[string]
	alt, err := p.parseAlt()
	if err != nil {
		return err
	}
	alts = append(alts, alt)
	for p.tok.kind == tokenKindOr {
		if err := p.advance(); err != nil {
			return err
		}
		alt, err := p.parseAlt()
		if err != nil {
			return err
		}
		alts = append(alts, alt)
	}
	if _, err := p.expect(tokenKindSemicolon); err != nil {
		return err
	}
	if p.defined[nameTok.text] {
		return &vgferr.SpecError{Row: nameTok.row, Cause: fmt.Errorf("duplicate production for rule %q", nameTok.text)}
	}
	p.defined[nameTok.text] = true
	if len(alts) == 1 {
		p.dict.Define(nameTok.text, alts[0])
	} else {
		p.dict.Define(nameTok.text, pwd.Alt(alts...))
	}
	return nil
}

// parseAlt parses a sequence of one or more modified parts, stopping at '|'
// or ';'.
func (p *parser) parseAlt() (pwd.Grammar[string], error) {
	var parts []pwd.Grammar[string]
	for {
		switch p.tok.kind {
		case tokenKindOr, tokenKindSemicolon, tokenKindEOF:
			if len(parts) == 0 {
				return nil, p.errorf("expected at least one production part")
			}
			if len(parts) == 1 {
				return parts[0], nil
			}
			return pwd.Seq(parts...), nil
		default:
			part, err := p.parsePart()
			if err != nil {
				return nil, err
			}
			parts = append(parts, part)
		}
	}
}

// parsePart parses a single base part (literal, special, or rule reference)
// followed by an optional modifier suffix (? * + &* &+), expanding the
// suffix into the matching pwd combinator.
func (p *parser) parsePart() (pwd.Grammar[string], error) {
	var base pwd.Grammar[string]
	switch p.tok.kind {
	case tokenKindString:
		base = pwd.Tok[string](p.tok.text)
		if err := p.advance(); err != nil {
			return nil, err
		}
	case tokenKindSpecial:
		pat, err := p.resolveSpecial(p.tok.text)
		if err != nil {
			return nil, err
		}
		base = pat
		if err := p.advance(); err != nil {
			return nil, err
		}
	case tokenKindRuleName:
		base = pwd.Ref[string](p.tok.text, p.dict)
		if err := p.advance(); err != nil {
			return nil, err
		}
	default:
		return nil, p.errorf("expected a literal, special token, or rule reference, found %s", p.tok.kind)
	}

	switch p.tok.kind {
	case tokenKindOptional:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return pwd.Optional(base), nil
	case tokenKindList:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return pwd.List(base), nil
	case tokenKindNonEmpty:
		if err := p.advance(); err != nil {
			return nil, err
		}
		return pwd.NonEmptyList(base), nil
	case tokenKindSepList:
		if err := p.advance(); err != nil {
			return nil, err
		}
		sepTok, err := p.expect(tokenKindBraced)
		if err != nil {
			return nil, err
		}
		return pwd.SepList(pwd.Tok[string](sepTok.text), base), nil
	case tokenKindNonEmptySep:
		if err := p.advance(); err != nil {
			return nil, err
		}
		sepTok, err := p.expect(tokenKindBraced)
		if err != nil {
			return nil, err
		}
		return pwd.NonEmptySepList(pwd.Tok[string](sepTok.text), base), nil
	default:
		return base, nil
	}
}
