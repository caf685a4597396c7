package parsetree

import "strings"

// Sexpr renders the subtree rooted at id as a compact bracketed form,
// e.g. "S[A[a], b]" for an Internal "S" with children Internal "A" (itself
// wrapping a Leaf "a") and Leaf "b". Leaves render as their lexeme;
// epsilon-expansions (Internal nodes with zero children) render as
// "Name[]". Useful for test assertions and debug rendering.
func (t *Tree) Sexpr(id NodeID) string {
	var b strings.Builder
	t.writeSexpr(&b, id)
	return b.String()
}

func (t *Tree) writeSexpr(b *strings.Builder, id NodeID) {
	n := t.Get(id)
	if n.Kind == Leaf {
		b.WriteString(n.Lexeme)
		return
	}
	b.WriteString(n.Name)
	b.WriteByte('[')
	for i, c := range n.Children {
		if i > 0 {
			b.WriteString(", ")
		}
		t.writeSexpr(b, c)
	}
	b.WriteByte(']')
}
