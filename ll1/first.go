package ll1

import "github.com/shadowCow/llspecparse-go/grammar"

// ComputeFirst computes FIRST(A) for every nonterminal A in g.
//
// FIRST(A) is the union, over each of A's alternatives, of that
// alternative's FIRST set: scan its symbols left to right, adding each
// symbol's FIRST (a Terminal contributes itself) until a symbol is
// reached whose FIRST does not contain epsilon. If every symbol in the
// alternative is nullable, epsilon itself is added.
//
// This resolves nullable leading nonterminals by walking past them into
// the next symbol — the general LL(1) rule, not the single-first-symbol
// shortcut §4.D of the written contract describes. The shortcut is
// flagged there as insufficient for exactly this shape of grammar (a
// nullable nonterminal in leading position), and the required S -> A b /
// A -> a | epsilon scenario only parses correctly under the general
// rule, so that is what this computes (see DESIGN.md).
func ComputeFirst(g *grammar.Grammar) *FirstSets {
	first := NewSetMap()
	done := make(map[string]bool)
	visiting := make(map[string]bool)

	var computeSymbol func(name string) *StringSet
	computeSymbol = func(name string) *StringSet {
		s := first.Get(name)
		if done[name] || visiting[name] {
			return s
		}
		visiting[name] = true

		if prod, ok := g.Get(name); ok {
			for _, alt := range prod.Alternatives {
				nullable := true
				for _, sym := range alt {
					if sym.IsTerminal() {
						if sym.IsEpsilon() {
							s.Add(grammar.EpsilonName)
							nullable = true
						} else {
							s.Add(sym.Name)
							nullable = false
						}
						break
					}

					if visiting[sym.Name] {
						// Direct or indirect left recursion through a
						// nullable chain: stop chasing this branch.
						nullable = false
						break
					}

					symFirst := computeSymbol(sym.Name)
					symNullable := false
					for _, t := range symFirst.Items() {
						if t == grammar.EpsilonName {
							symNullable = true
							continue
						}
						s.Add(t)
					}
					if !symNullable {
						nullable = false
						break
					}
				}
				if nullable {
					s.Add(grammar.EpsilonName)
				}
			}
		}

		delete(visiting, name)
		done[name] = true
		return s
	}

	for _, name := range g.Names() {
		computeSymbol(name)
	}
	return first
}
