// Package patterns implements the Pattern Store: a collection of named,
// anchored regular expressions scanned in declaration order to tokenize
// input text.
package patterns

import "regexp"

// Epsilon is the reserved pattern name denoting the empty production. Its
// regex never matches during tokenization; it exists purely so grammar
// symbols can reference it by name.
const Epsilon = "epsilon"

// EOF is the reserved pattern name for the synthetic end-of-input terminal.
// It is never produced by Load or by the Tokenizer; the predictive parser
// manufactures it directly.
const EOF = "$"

// Pattern is a named, anchored regular expression.
type Pattern struct {
	Name  string
	Regex *regexp.Regexp
}

// Store holds patterns in declaration order. Order matters: the Tokenizer
// scans patterns in this order, which is the priority order on ambiguity.
type Store struct {
	patterns []Pattern
	index    map[string]int
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{index: make(map[string]int)}
}

// Add appends a pattern, or overwrites in place if the name already exists
// (duplicate names are assumed unique by the caller; last write wins).
func (s *Store) Add(p Pattern) {
	if i, ok := s.index[p.Name]; ok {
		s.patterns[i] = p
		return
	}
	s.index[p.Name] = len(s.patterns)
	s.patterns = append(s.patterns, p)
}

// Get returns the pattern with the given name, if any.
func (s *Store) Get(name string) (Pattern, bool) {
	i, ok := s.index[name]
	if !ok {
		return Pattern{}, false
	}
	return s.patterns[i], true
}

// Has reports whether a pattern with the given name exists in the store.
func (s *Store) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Patterns returns all patterns in declaration order, including the
// synthetic epsilon pattern appended by Load.
func (s *Store) Patterns() []Pattern {
	return s.patterns
}

// epsilonPattern returns the synthetic pattern that represents the empty
// production. The tokenizer only ever queries patterns against a nonempty
// buffer, so this regex is never evaluated in practice.
func epsilonPattern() Pattern {
	return Pattern{Name: Epsilon, Regex: regexp.MustCompile(`^$`)}
}
