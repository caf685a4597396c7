package grammar

// SymbolKind distinguishes a Terminal (matches a lexspec pattern) from a
// Nonterminal (defined by a production).
type SymbolKind int

const (
	Terminal SymbolKind = iota
	Nonterminal
)

// Symbol is one element of a production's alternative. Classification
// happens once at load time: a symbol name present in the Pattern Store is
// a Terminal, anything else is a Nonterminal.
type Symbol struct {
	Kind SymbolKind
	Name string
}

// IsTerminal reports whether s is a Terminal symbol.
func (s Symbol) IsTerminal() bool {
	return s.Kind == Terminal
}

// IsEpsilon reports whether s is the reserved "epsilon" terminal.
func (s Symbol) IsEpsilon() bool {
	return s.Kind == Terminal && s.Name == EpsilonName
}

// EpsilonName and EOFName are the two reserved terminal names used by the
// grammar loader and predictive parser. EpsilonName denotes the empty
// production; EOFName denotes the synthetic end-of-input marker appended
// only to the injected root production.
const (
	EpsilonName = "epsilon"
	EOFName     = "$"
)

// Alternative is one right-hand side of a production: an ordered sequence
// of symbols. An empty-producing alternative is the single-element slice
// [Terminal(epsilon)].
type Alternative []Symbol

// IsEpsilon reports whether alt is the single-element epsilon alternative.
func (alt Alternative) IsEpsilon() bool {
	return len(alt) == 1 && alt[0].IsEpsilon()
}
