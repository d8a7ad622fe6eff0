package query

import (
	"strings"
	"unicode/utf8"

	"github.com/Konsultn-Engineering/sqltpl/specifier"
)

type TokenKind uint8

const (
	TokenPlaceholder TokenKind = iota
	TokenBlock
)

func (k TokenKind) String() string {
	if k == TokenBlock {
		return "block"
	}
	return "placeholder"
}

// Token is one placeholder or conditional block found in a template.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int // byte offset of Text in the scanned template
}

// End returns the offset just past the token.
func (t Token) End() int {
	return t.Pos + len(t.Text)
}

// Symbol returns the specifier symbol of a placeholder, without the marker.
func (t Token) Symbol() string {
	if t.Kind != TokenPlaceholder {
		return ""
	}
	return t.Text[1:]
}

// Scan finds every placeholder and conditional block in template, left to right.
//
// A placeholder is the marker optionally followed by one rune that is neither a
// bracket nor ASCII whitespace. A block runs from '{' to the first '}', so blocks
// cannot nest: "{a {b} c}" yields the block "{a {b}". An unterminated '{' is
// plain text.
func Scan(template string) []Token {
	var tokens []Token

	for i := 0; i < len(template); {
		switch template[i] {
		case specifier.Marker:
			end := i + 1
			if end < len(template) {
				r, size := utf8.DecodeRuneInString(template[end:])
				if !stopsSpecifier(r) {
					end += size
				}
			}
			tokens = append(tokens, Token{Kind: TokenPlaceholder, Text: template[i:end], Pos: i})
			i = end
		case '{':
			n := strings.IndexByte(template[i+1:], '}')
			if n < 0 {
				i++
				continue
			}
			end := i + n + 2
			tokens = append(tokens, Token{Kind: TokenBlock, Text: template[i:end], Pos: i})
			i = end
		default:
			i++
		}
	}

	return tokens
}

func stopsSpecifier(r rune) bool {
	switch r {
	case '(', ')', '{', '}', ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
