package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name     string
		template string
		expected []Token
	}{
		{
			name:     "NoTokens",
			template: "SELECT 1",
			expected: nil,
		},
		{
			name:     "BareAtEnd",
			template: "x = ?",
			expected: []Token{{Kind: TokenPlaceholder, Text: "?", Pos: 4}},
		},
		{
			name:     "Specifiers",
			template: "?d ?f ?a ?# ?",
			expected: []Token{
				{Kind: TokenPlaceholder, Text: "?d", Pos: 0},
				{Kind: TokenPlaceholder, Text: "?f", Pos: 3},
				{Kind: TokenPlaceholder, Text: "?a", Pos: 6},
				{Kind: TokenPlaceholder, Text: "?#", Pos: 9},
				{Kind: TokenPlaceholder, Text: "?", Pos: 12},
			},
		},
		{
			name:     "BracketStopsSpecifier",
			template: "IN (?a)",
			expected: []Token{{Kind: TokenPlaceholder, Text: "?a", Pos: 4}},
		},
		{
			name:     "CommaIsConsumedAsSymbol",
			template: "(?, ?)",
			expected: []Token{
				{Kind: TokenPlaceholder, Text: "?,", Pos: 1},
				{Kind: TokenPlaceholder, Text: "?", Pos: 4},
			},
		},
		{
			name:     "MultiByteSymbol",
			template: "?é",
			expected: []Token{{Kind: TokenPlaceholder, Text: "?é", Pos: 0}},
		},
		{
			name:     "Block",
			template: "SELECT * FROM t{ WHERE id = ?d}",
			expected: []Token{{Kind: TokenBlock, Text: "{ WHERE id = ?d}", Pos: 15}},
		},
		{
			name:     "MarkerBeforeBlock",
			template: "?{a}",
			expected: []Token{
				{Kind: TokenPlaceholder, Text: "?", Pos: 0},
				{Kind: TokenBlock, Text: "{a}", Pos: 1},
			},
		},
		{
			name:     "FirstClosingBraceWins",
			template: "a{b{c}d}e",
			expected: []Token{{Kind: TokenBlock, Text: "{b{c}", Pos: 1}},
		},
		{
			name:     "UnterminatedBrace",
			template: "a { b ?d",
			expected: []Token{{Kind: TokenPlaceholder, Text: "?d", Pos: 6}},
		},
		{
			name:     "MultiLineBlock",
			template: "{a\nb}",
			expected: []Token{{Kind: TokenBlock, Text: "{a\nb}", Pos: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Scan(tt.template))
		})
	}
}

func TestTokenAccessors(t *testing.T) {
	tokens := Scan("a ?# {b}")
	if assert.Len(t, tokens, 2) {
		assert.Equal(t, "#", tokens[0].Symbol())
		assert.Equal(t, 4, tokens[0].End())
		assert.Equal(t, "placeholder", tokens[0].Kind.String())

		assert.Equal(t, "", tokens[1].Symbol())
		assert.Equal(t, 8, tokens[1].End())
		assert.Equal(t, "block", tokens[1].Kind.String())
	}
}
