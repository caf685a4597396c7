package grammar

import (
	"os"
	"regexp"
	"strings"

	"github.com/shadowCow/llspecparse-go/patterns"
)

// productionLine matches "HEAD -> BODY". Unlike patterns.declarationLine, a
// line that does not match is silently skipped rather than treated as an
// error: the grammar spec format tolerates blank lines and comments this
// way.
var productionLine = regexp.MustCompile(`^(\S+)\s*->\s*(.*)$`)

// LoadGrammar parses a grammar spec into a Grammar. Each nonblank line
// matching "HEAD -> BODY" becomes one alternative of HEAD's production;
// BODY is split on "|" for multiple alternatives declared on the same
// line, and each alternative is split on whitespace into symbol names.
// Every symbol name is classified against store: a name the Pattern Store
// recognizes is a Terminal, anything else is a Nonterminal.
//
// The first production parsed determines the grammar's start symbol.
// LoadGrammar injects a synthetic RootName production
//
//	__ROOT -> <start> $
//
// ahead of it, so the predictive parser always has a single, unambiguous
// entry point with an explicit end-of-input marker.
func LoadGrammar(text string, store *patterns.Store) (*Grammar, error) {
	g := New()

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSuffix(rawLine, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		m := productionLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		head := strings.TrimSpace(m[1])
		body := m[2]

		var alternatives []Alternative
		for _, part := range strings.Split(body, "|") {
			alternatives = append(alternatives, parseAlternative(part, store))
		}

		if g.startSymbol == "" && head != RootName {
			g.startSymbol = head
			g.Add(Production{
				Head: RootName,
				Alternatives: []Alternative{
					{
						{Kind: Nonterminal, Name: head},
						{Kind: Terminal, Name: EOFName},
					},
				},
			})
		}

		if existing, ok := g.Get(head); ok {
			existing.Alternatives = append(existing.Alternatives, alternatives...)
			g.Add(existing)
		} else {
			g.Add(Production{Head: head, Alternatives: alternatives})
		}
	}

	return g, nil
}

// parseAlternative splits one "|"-delimited alternative into its symbol
// names and classifies each against store.
func parseAlternative(part string, store *patterns.Store) Alternative {
	fields := strings.Fields(part)
	alt := make(Alternative, 0, len(fields))
	for _, name := range fields {
		kind := Nonterminal
		if store.Has(name) {
			kind = Terminal
		}
		alt = append(alt, Symbol{Kind: kind, Name: name})
	}
	return alt
}

// LoadGrammarFile reads path and parses it with LoadGrammar.
func LoadGrammarFile(path string, store *patterns.Store) (*Grammar, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FileOpenError{Detail: err.Error()}
	}
	return LoadGrammar(string(data), store)
}
