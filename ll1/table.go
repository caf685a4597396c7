package ll1

import "github.com/shadowCow/llspecparse-go/grammar"

// cellKey identifies one parse table cell.
type cellKey struct {
	nonterminal string
	terminal    string
}

// Table maps (nonterminal, terminal) pairs to the alternative to expand.
// Building the table does not guard against LL(1) conflicts: a later
// write silently overwrites an earlier one at the same cell (see
// DetectConflicts for a non-authoritative debug view of that situation).
type Table struct {
	cells map[cellKey]grammar.Alternative
}

// Lookup returns the alternative to expand nonterminal into when the
// current lookahead terminal is terminal.
func (t *Table) Lookup(nonterminal, terminal string) (grammar.Alternative, bool) {
	alt, ok := t.cells[cellKey{nonterminal, terminal}]
	return alt, ok
}

// Cell is one populated (nonterminal, terminal) entry, for debug
// rendering. Order is unspecified.
type Cell struct {
	Nonterminal string
	Terminal    string
	Alternative grammar.Alternative
}

// Cells returns every populated cell in the table.
func (t *Table) Cells() []Cell {
	cells := make([]Cell, 0, len(t.cells))
	for k, alt := range t.cells {
		cells = append(cells, Cell{Nonterminal: k.nonterminal, Terminal: k.terminal, Alternative: alt})
	}
	return cells
}

func (t *Table) set(nonterminal, terminal string, alt grammar.Alternative) {
	t.cells[cellKey{nonterminal, terminal}] = alt
}

// BuildTable constructs the LL(1) parse table for g from its FIRST and
// FOLLOW sets.
//
// For each production H -> α:
//   - α is the epsilon alternative: write table[(H, t)] = α for every t
//     in FOLLOW(H).
//   - α begins with a Terminal t0: write table[(H, t0)] = α.
//   - α begins with a Nonterminal: write table[(H, t)] = α for every t in
//     FIRST(H) (excluding epsilon).
//
// Later writes to the same cell overwrite earlier ones.
func BuildTable(g *grammar.Grammar, first *FirstSets, follow *FollowSets) *Table {
	t := &Table{cells: make(map[cellKey]grammar.Alternative)}

	for _, name := range g.Names() {
		prod, _ := g.Get(name)
		firstSet, _ := first.Lookup(name)
		followSet, _ := follow.Lookup(name)

		for _, alt := range prod.Alternatives {
			switch {
			case alt.IsEpsilon():
				if followSet != nil {
					for _, term := range followSet.Items() {
						t.set(name, term, alt)
					}
				}
			case alt[0].IsTerminal():
				t.set(name, alt[0].Name, alt)
			default:
				if firstSet != nil {
					for _, term := range firstSet.Items() {
						if term != grammar.EpsilonName {
							t.set(name, term, alt)
						}
					}
				}
			}
		}
	}

	return t
}

// Conflict records a cell that more than one alternative competed for
// during table construction.
type Conflict struct {
	Nonterminal  string
	Terminal     string
	Alternatives []grammar.Alternative
}

// DetectConflicts re-derives which cells would have received more than
// one alternative during BuildTable, for diagnostic purposes. It does not
// affect parsing: the spec treats last-write-wins as acceptable grammar
// behavior, not an error (see DESIGN.md).
func DetectConflicts(g *grammar.Grammar, first *FirstSets, follow *FollowSets) []Conflict {
	writes := make(map[cellKey][]grammar.Alternative)
	var order []cellKey

	record := func(nonterminal, terminal string, alt grammar.Alternative) {
		k := cellKey{nonterminal, terminal}
		if _, ok := writes[k]; !ok {
			order = append(order, k)
		}
		writes[k] = append(writes[k], alt)
	}

	for _, name := range g.Names() {
		prod, _ := g.Get(name)
		firstSet, _ := first.Lookup(name)
		followSet, _ := follow.Lookup(name)

		for _, alt := range prod.Alternatives {
			switch {
			case alt.IsEpsilon():
				if followSet != nil {
					for _, term := range followSet.Items() {
						record(name, term, alt)
					}
				}
			case alt[0].IsTerminal():
				record(name, alt[0].Name, alt)
			default:
				if firstSet != nil {
					for _, term := range firstSet.Items() {
						if term != grammar.EpsilonName {
							record(name, term, alt)
						}
					}
				}
			}
		}
	}

	var conflicts []Conflict
	for _, k := range order {
		if len(writes[k]) > 1 {
			conflicts = append(conflicts, Conflict{
				Nonterminal:  k.nonterminal,
				Terminal:     k.terminal,
				Alternatives: writes[k],
			})
		}
	}
	return conflicts
}
