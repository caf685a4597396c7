package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowCow/llspecparse-go/patterns"
)

func mustLoad(t *testing.T, spec string) *patterns.Store {
	t.Helper()
	store, err := patterns.Load(spec)
	require.NoError(t, err)
	return store
}

// S1 — Lex only.
func Test_Tokenize_S1_LexOnly(t *testing.T) {
	store := mustLoad(t, "WS = \\s+\nID = [A-Za-z]+\nEQ = =\n")
	tok := New(store)

	tokens, err := tok.Tokenize("foo = bar")
	require.NoError(t, err)

	var nonWS []Token
	for _, tk := range tokens {
		if tk.Name != "WS" {
			nonWS = append(nonWS, tk)
		}
	}

	require.Len(t, nonWS, 3)
	assert.Equal(t, Token{Name: "ID", Lexeme: "foo", Line: 1, Column: 1}, nonWS[0])
	assert.Equal(t, Token{Name: "EQ", Lexeme: "=", Line: 1, Column: 4}, nonWS[1])
	assert.Equal(t, Token{Name: "ID", Lexeme: "bar", Line: 1, Column: 6}, nonWS[2])
}

// S4 — Unknown token.
func Test_Tokenize_S4_UnknownToken(t *testing.T) {
	store := mustLoad(t, "WS = \\s+\nID = [A-Za-z]+\n")
	tok := New(store)

	_, err := tok.Tokenize("foo @ bar")
	require.Error(t, err)
	assert.Equal(t, "Unknown token @.", err.Error())
}

// S6 — Multi-line tracking.
func Test_Tokenize_S6_MultiLineTracking(t *testing.T) {
	store := mustLoad(t, "WS = \\s+\nID = [A-Za-z]+\n")
	tok := New(store)

	tokens, err := tok.Tokenize("a\nb\n  c")
	require.NoError(t, err)

	var nonWS []Token
	for _, tk := range tokens {
		if tk.Name != "WS" {
			nonWS = append(nonWS, tk)
		}
	}

	require.Len(t, nonWS, 3)
	c := nonWS[2]
	assert.Equal(t, "c", c.Lexeme)
	assert.Equal(t, 3, c.Line)
	assert.Equal(t, 3, c.Column)
}

func Test_Tokenize_GreedyAcceptOverAtoms(t *testing.T) {
	// "ab" is a single alphanumeric atom, so it is matched whole: A is
	// declared first but only matches a prefix of it, so AB wins.
	store := mustLoad(t, "A = a\nAB = ab\n")
	tok := New(store)

	tokens, err := tok.Tokenize("ab")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, "AB", tokens[0].Name)
	assert.Equal(t, "ab", tokens[0].Lexeme)
}
