package engine

import (
	"github.com/pkg/errors"

	"github.com/shadowCow/llspecparse-go/grammar"
	"github.com/shadowCow/llspecparse-go/ll1"
	"github.com/shadowCow/llspecparse-go/parsetree"
	"github.com/shadowCow/llspecparse-go/patterns"
)

// Parse tokenizes input against the compiled lexspec and runs it through
// the compiled predictive parser, returning the tree rooted at the
// user's start symbol.
func (g *Grammar) Parse(input string) (*parsetree.Tree, parsetree.NodeID, error) {
	tree, root, err := g.parser.Parse(g.tok, input)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}
	return tree, root, nil
}

// StartSymbol returns the user's declared start nonterminal.
func (g *Grammar) StartSymbol() string {
	return g.grammar.StartSymbol()
}

// Nonterminals returns every declared nonterminal name in declaration
// order, including the synthetic root.
func (g *Grammar) Nonterminals() []string {
	return g.grammar.Names()
}

// PatternNames returns every declared pattern name in declaration order,
// excluding the synthetic epsilon pattern Load appends.
func (g *Grammar) PatternNames() []string {
	var names []string
	for _, p := range g.patterns.Patterns() {
		if p.Name == patterns.Epsilon {
			continue
		}
		names = append(names, p.Name)
	}
	return names
}

// First returns FIRST(name) as an ordered slice of terminal names, for
// debugging and pretty-printing.
func (g *Grammar) First(name string) []string {
	if s, ok := g.first.Lookup(name); ok {
		return s.Items()
	}
	return nil
}

// Follow returns FOLLOW(name) as an ordered slice of terminal names.
func (g *Grammar) Follow(name string) []string {
	if s, ok := g.follow.Lookup(name); ok {
		return s.Items()
	}
	return nil
}

// TableCell returns the alternative chosen for (nonterminal, terminal),
// if the table has an entry for it.
func (g *Grammar) TableCell(nonterminal, terminal string) ([]string, bool) {
	alt, ok := g.table.Lookup(nonterminal, terminal)
	if !ok {
		return nil, false
	}
	return symbolNames(alt), true
}

// TableCells returns every populated (nonterminal, terminal) cell in the
// parse table, for debug rendering. Order is unspecified; callers that
// need stable output should sort the result themselves.
func (g *Grammar) TableCells() []TableCellView {
	cells := g.table.Cells()
	views := make([]TableCellView, len(cells))
	for i, c := range cells {
		views[i] = TableCellView{
			Nonterminal: c.Nonterminal,
			Terminal:    c.Terminal,
			Alternative: symbolNames(c.Alternative),
		}
	}
	return views
}

// Conflicts returns every parse table cell that had more than one
// competing alternative during construction (last write wins; see
// DESIGN.md).
func (g *Grammar) Conflicts() []ConflictView {
	var views []ConflictView
	for _, c := range ll1.DetectConflicts(g.grammar, g.first, g.follow) {
		alts := make([][]string, len(c.Alternatives))
		for i, alt := range c.Alternatives {
			alts[i] = symbolNames(alt)
		}
		views = append(views, ConflictView{
			Nonterminal:  c.Nonterminal,
			Terminal:     c.Terminal,
			Alternatives: alts,
		})
	}
	return views
}

// TableCellView is one populated parse table cell, exposed as plain data
// for rendering.
type TableCellView struct {
	Nonterminal string
	Terminal    string
	Alternative []string
}

// ConflictView is one parse table cell that had competing alternatives
// during construction, exposed as plain data for rendering.
type ConflictView struct {
	Nonterminal  string
	Terminal     string
	Alternatives [][]string
}

func symbolNames(alt grammar.Alternative) []string {
	names := make([]string, len(alt))
	for i, sym := range alt {
		names[i] = sym.Name
	}
	return names
}
