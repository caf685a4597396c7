package ll1

import "github.com/shadowCow/llspecparse-go/grammar"

// ComputeFollow computes FOLLOW(A) for every nonterminal A in g, given its
// already-computed FIRST sets.
//
// Each nonterminal is resolved once, memoized by presence in the result.
// For nonterminal A, every production H -> α is scanned left to right
// while tracking two flags: found, set once A itself is seen in α, and
// resolved, set once something has actually been recorded on A's behalf
// because of this occurrence. A trailing, unresolved occurrence of A in
// some other alternative (H != A) falls back to adding FOLLOW(H) — which
// may not yet be populated if H has not been resolved earlier in
// g.Names() order. This mirrors the reference algorithm exactly: it is a
// single left-to-right pass per nonterminal, not a repeated fixpoint, so
// completeness depends on declaration order (see DESIGN.md).
func ComputeFollow(g *grammar.Grammar, first *FirstSets) *FollowSets {
	follow := NewSetMap()
	for _, name := range g.Names() {
		buildFollow(name, g, first, follow)
	}
	return follow
}

func buildFollow(name string, g *grammar.Grammar, first *FirstSets, follow *FollowSets) {
	if _, ok := follow.Lookup(name); ok {
		return
	}

	nodes := NewStringSet()

	for _, h := range g.Names() {
		prod, _ := g.Get(h)
		for _, alt := range prod.Alternatives {
			found := false
			resolved := false

			for i, sym := range alt {
				if sym.IsTerminal() {
					if sym.Name == grammar.EpsilonName {
						continue
					}

					foundAfterA := found && sym.Name != grammar.EOFName
					foundAsLastOfOwnAlt := h == name && i == len(alt)-1 && len(alt) != 1

					if foundAfterA || foundAsLastOfOwnAlt {
						nodes.Add(sym.Name)
						resolved = true
						break
					}
					continue
				}

				if sym.Name == name {
					found = true
					continue
				}
				if found {
					resolved = true
					if fs, ok := first.Lookup(sym.Name); ok {
						for _, t := range fs.Items() {
							if t != grammar.EpsilonName {
								nodes.Add(t)
							}
						}
					}
					if hasEpsilonAlternative(g, sym.Name) {
						if fw, ok := follow.Lookup(h); ok {
							for _, t := range fw.Items() {
								nodes.Add(t)
							}
						}
					}
				}
			}

			if found && !resolved && h != name {
				if fw, ok := follow.Lookup(h); ok {
					for _, t := range fw.Items() {
						nodes.Add(t)
					}
				}
			}
		}
	}

	dst := follow.Get(name)
	for _, t := range nodes.Items() {
		dst.Add(t)
	}
}

func hasEpsilonAlternative(g *grammar.Grammar, name string) bool {
	prod, ok := g.Get(name)
	if !ok {
		return false
	}
	for _, alt := range prod.Alternatives {
		if alt.IsEpsilon() {
			return true
		}
	}
	return false
}
