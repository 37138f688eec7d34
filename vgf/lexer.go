// Package vgf is the VGF frontend: it tokenizes and parses the small
// EBNF-style grammar source format named in spec.md §6.2 and builds the
// *pwd.RuleDict[string] the core engine consumes. It is deliberately out of
// scope for the PWD engine itself (spec.md §1); this package supplements
// that dropped scope, grounded in original_source/vgf_parser's own token
// vocabulary and the teacher's hand-written spec/lexer.go shape.
package vgf

import (
	"fmt"
	"strings"

	"github.com/nihei9/vgf/vgferr"
)

type tokenKind string

const (
	tokenKindRuleName   = tokenKind("rule name")   // <name>
	tokenKindDefine     = tokenKind("::=")
	tokenKindOr         = tokenKind("|")
	tokenKindSemicolon  = tokenKind(";")
	tokenKindString     = tokenKind("string")      // 'text' or "text"
	tokenKindSpecial    = tokenKind("special")     // ALLCAPS
	tokenKindBraced     = tokenKind("braced text") // {sep}
	tokenKindOptional   = tokenKind("?")
	tokenKindList       = tokenKind("*")
	tokenKindNonEmpty   = tokenKind("+")
	tokenKindSepList    = tokenKind("&*")
	tokenKindNonEmptySep = tokenKind("&+")
	tokenKindDirective  = tokenKind("#directive")
	tokenKindEOF        = tokenKind("eof")
)

type token struct {
	kind tokenKind
	text string
	row  int
}

type lexer struct {
	lines []string
	row   int
	col   int
}

func newLexer(src string) *lexer {
	return &lexer{lines: strings.Split(src, "\n"), row: 0, col: 0}
}

func (l *lexer) next() (*token, error) {
	for {
		if l.row >= len(l.lines) {
			return &token{kind: tokenKindEOF, row: l.row + 1}, nil
		}
		line := l.lines[l.row]
		if l.col >= len(line) {
			l.row++
			l.col = 0
			continue
		}
		c := line[l.col]
		if c == ' ' || c == '\t' || c == '\r' {
			l.col++
			continue
		}
		if c == '#' {
			rest := strings.TrimSpace(line[l.col+1:])
			l.row++
			l.col = 0
			if rest != "" {
				return &token{kind: tokenKindDirective, text: rest, row: l.row}, nil
			}
			continue
		}
		row := l.row + 1
		switch {
		case c == '<':
			end := strings.IndexByte(line[l.col:], '>')
			if end < 0 {
				return nil, &vgferr.SpecError{Row: row, Cause: fmt.Errorf("unterminated rule name starting at column %d", l.col+1)}
			}
			text := line[l.col+1 : l.col+end]
			l.col += end + 1
			return &token{kind: tokenKindRuleName, text: text, row: row}, nil
		case c == '{':
			end := strings.IndexByte(line[l.col:], '}')
			if end < 0 {
				return nil, &vgferr.SpecError{Row: row, Cause: fmt.Errorf("unterminated braced text starting at column %d", l.col+1)}
			}
			text := line[l.col+1 : l.col+end]
			l.col += end + 1
			return &token{kind: tokenKindBraced, text: text, row: row}, nil
		case c == '\'' || c == '"':
			quote := c
			end := -1
			for i := l.col + 1; i < len(line); i++ {
				if line[i] == '\\' {
					i++
					continue
				}
				if line[i] == quote {
					end = i
					break
				}
			}
			if end < 0 {
				return nil, &vgferr.SpecError{Row: row, Cause: fmt.Errorf("unterminated string literal starting at column %d", l.col+1)}
			}
			text := line[l.col+1 : end]
			l.col = end + 1
			return &token{kind: tokenKindString, text: text, row: row}, nil
		case strings.HasPrefix(line[l.col:], "::="):
			l.col += 3
			return &token{kind: tokenKindDefine, row: row}, nil
		case strings.HasPrefix(line[l.col:], "&*"):
			l.col += 2
			return &token{kind: tokenKindSepList, row: row}, nil
		case strings.HasPrefix(line[l.col:], "&+"):
			l.col += 2
			return &token{kind: tokenKindNonEmptySep, row: row}, nil
		case c == '|':
			l.col++
			return &token{kind: tokenKindOr, row: row}, nil
		case c == ';':
			l.col++
			return &token{kind: tokenKindSemicolon, row: row}, nil
		case c == '?':
			l.col++
			return &token{kind: tokenKindOptional, row: row}, nil
		case c == '*':
			l.col++
			return &token{kind: tokenKindList, row: row}, nil
		case c == '+':
			l.col++
			return &token{kind: tokenKindNonEmpty, row: row}, nil
		case isAllCapsStart(c):
			end := l.col
			for end < len(line) && isAllCapsWord(line[end]) {
				end++
			}
			text := line[l.col:end]
			l.col = end
			return &token{kind: tokenKindSpecial, text: text, row: row}, nil
		default:
			return nil, &vgferr.SpecError{Row: row, Cause: fmt.Errorf("unexpected character %q at column %d", c, l.col+1)}
		}
	}
}

func isAllCapsStart(c byte) bool {
	return c >= 'A' && c <= 'Z'
}

func isAllCapsWord(c byte) bool {
	return (c >= 'A' && c <= 'Z') || c == '_' || (c >= '0' && c <= '9')
}
