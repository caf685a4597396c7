package ll1

import (
	"github.com/shadowCow/llspecparse-go/grammar"
	"github.com/shadowCow/llspecparse-go/lexer"
	"github.com/shadowCow/llspecparse-go/parsetree"
)

// Parser drives a built table over a token stream, constructing a parse
// tree.
type Parser struct {
	g     *grammar.Grammar
	table *Table
}

// NewParser binds a grammar to its parse table.
func NewParser(g *grammar.Grammar, table *Table) *Parser {
	return &Parser{g: g, table: table}
}

// Parse tokenizes text with tok and runs the work-stack automaton over
// the resulting stream.
//
// Every tree node is allocated up front in the returned arena and pushed
// onto the work stack by id: an Internal node's children are written in
// once its alternative is chosen, and a Leaf node's token is written in
// only after it is popped and matched against the current lookahead —
// both after the id has already been referenced elsewhere on the stack
// or in a parent's children slice.
//
// The stack is seeded with the synthetic __ROOT internal node on top and
// an EOF leaf beneath it, so the bottom of the stack always lines up
// with the trailing synthetic "$" token appended to the real stream. The
// returned tree is rooted at that synthetic node; Parse itself returns
// the id of its sole child, the user's actual start symbol.
func (p *Parser) Parse(tok *lexer.Tokenizer, text string) (*parsetree.Tree, parsetree.NodeID, error) {
	if p.g.Len() == 0 {
		return nil, 0, &EmptyGrammarError{}
	}

	tokens, err := tok.Tokenize(text)
	if err != nil {
		return nil, 0, err
	}
	tokens = append(tokens, lexer.Token{
		Name:   grammar.EOFName,
		Lexeme: grammar.EOFName,
	})

	tree := parsetree.New()
	rootID := tree.NewInternal(grammar.RootName)
	eofLeafID := tree.NewLeaf(grammar.EOFName)
	stack := []parsetree.NodeID{eofLeafID, rootID}

	cursor := 0

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := tree.Get(id)
		current := tokens[cursor]

		if node.Kind == parsetree.Internal {
			alt, ok := p.table.Lookup(node.Name, current.Name)
			if !ok {
				return nil, 0, unexpectedToken(current)
			}
			if alt.IsEpsilon() {
				continue
			}

			children := make([]parsetree.NodeID, len(alt))
			for i := len(alt) - 1; i >= 0; i-- {
				sym := alt[i]
				var childID parsetree.NodeID
				if sym.IsTerminal() {
					childID = tree.NewLeaf(sym.Name)
				} else {
					childID = tree.NewInternal(sym.Name)
				}
				children[i] = childID
				stack = append(stack, childID)
			}
			tree.SetChildren(id, children)
			continue
		}

		if node.Name != current.Name {
			if current.Name == grammar.EOFName {
				return nil, 0, &UnexpectedEOFError{}
			}
			return nil, 0, unexpectedToken(current)
		}
		if node.Name == grammar.EOFName {
			root := tree.Get(rootID)
			return tree, root.Children[0], nil
		}

		tree.SetLeafToken(id, current.Lexeme, current.Line, current.Column)
		cursor++
	}

	return nil, 0, unexpectedToken(tokens[cursor])
}

func unexpectedToken(tok lexer.Token) error {
	return &UnexpectedTokenError{Lexeme: tok.Lexeme, Line: tok.Line, Column: tok.Column}
}
