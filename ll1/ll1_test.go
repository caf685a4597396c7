package ll1

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowCow/llspecparse-go/grammar"
	"github.com/shadowCow/llspecparse-go/lexer"
	"github.com/shadowCow/llspecparse-go/parsetree"
	"github.com/shadowCow/llspecparse-go/patterns"
)

func build(t *testing.T, lexSpec, grammarSpec string) (*grammar.Grammar, *Table, *lexer.Tokenizer) {
	t.Helper()
	store, err := patterns.Load(lexSpec)
	require.NoError(t, err)
	g, err := grammar.LoadGrammar(grammarSpec, store)
	require.NoError(t, err)

	first := ComputeFirst(g)
	follow := ComputeFollow(g, first)
	table := BuildTable(g, first, follow)
	return g, table, lexer.New(store)
}

// S3 — empty alternative.
func Test_Parse_S3_EpsilonAlternative(t *testing.T) {
	g, table, tok := build(t, "a = a\nb = b\n", "S -> A b\nA -> a | epsilon\n")
	p := NewParser(g, table)

	tree, root, err := p.Parse(tok, "b")
	require.NoError(t, err)
	assert.Equal(t, "S[A[], b]", tree.Sexpr(root))

	tree, root, err = p.Parse(tok, "a b")
	require.NoError(t, err)
	assert.Equal(t, "S[A[a], b]", tree.Sexpr(root))

	_, _, err = p.Parse(tok, "a a b")
	require.Error(t, err)
	assert.Equal(t, "Unexpected token a on line 1, column 3.", err.Error())
}

// S5 — unexpected EOF.
func Test_Parse_S5_UnexpectedEOF(t *testing.T) {
	g, table, tok := build(t, "a = a\nb = b\n", "S -> a b\n")
	p := NewParser(g, table)

	_, _, err := p.Parse(tok, "a")
	require.Error(t, err)
	assert.Equal(t, "Unexpected end of stream.", err.Error())
}

func Test_Parse_EmptyGrammar(t *testing.T) {
	store, err := patterns.Load("a = a\n")
	require.NoError(t, err)
	g, err := grammar.LoadGrammar("", store)
	require.NoError(t, err)

	first := ComputeFirst(g)
	follow := ComputeFollow(g, first)
	table := BuildTable(g, first, follow)
	p := NewParser(g, table)

	_, _, err = p.Parse(lexer.New(store), "a")
	require.Error(t, err)
	assert.Equal(t, "Parser doesn't have any grammars.", err.Error())
}

// Invariant 1 — leaves equal tokens.
func Test_Invariant_LeavesEqualTokens(t *testing.T) {
	g, table, tok := build(t, "a = a\nb = b\n", "S -> a b\n")
	p := NewParser(g, table)

	tree, root, err := p.Parse(tok, "a b")
	require.NoError(t, err)

	var lexemes []string
	var collect func(id parsetree.NodeID)
	collect = func(id parsetree.NodeID) {
		n := tree.Get(id)
		if n.Kind == parsetree.Leaf {
			lexemes = append(lexemes, n.Lexeme)
			return
		}
		for _, c := range n.Children {
			collect(c)
		}
	}
	collect(root)

	assert.Equal(t, []string{"a", "b"}, lexemes)
}

// Invariant 2 — table determinism: last write wins, never more than one
// alternative surviving per cell, even when conflicts exist.
func Test_Invariant_TableDeterminism_LastWriteWins(t *testing.T) {
	store, err := patterns.Load("a = a\n")
	require.NoError(t, err)
	g, err := grammar.LoadGrammar("S -> a\nS -> a\n", store)
	require.NoError(t, err)

	first := ComputeFirst(g)
	follow := ComputeFollow(g, first)
	table := BuildTable(g, first, follow)

	alt, ok := table.Lookup("S", "a")
	require.True(t, ok)
	assert.Len(t, alt, 1)

	conflicts := DetectConflicts(g, first, follow)
	require.Len(t, conflicts, 1)
	assert.Equal(t, "S", conflicts[0].Nonterminal)
	assert.Equal(t, "a", conflicts[0].Terminal)
}

// Invariant 3 — epsilon never in FOLLOW; "$" only in __ROOT's FIRST.
func Test_Invariant_FirstFollowPurity(t *testing.T) {
	store, err := patterns.Load("a = a\nb = b\n")
	require.NoError(t, err)
	g, err := grammar.LoadGrammar("S -> A b\nA -> a | epsilon\n", store)
	require.NoError(t, err)

	first := ComputeFirst(g)
	follow := ComputeFollow(g, first)

	for _, name := range g.Names() {
		if fw, ok := follow.Lookup(name); ok {
			assert.False(t, fw.Contains(grammar.EpsilonName), "FOLLOW(%s) must not contain epsilon", name)
		}
		if fs, ok := first.Lookup(name); ok && name != grammar.RootName {
			assert.False(t, fs.Contains(grammar.EOFName), "FIRST(%s) must not contain $", name)
		}
	}
}
