// Package lexer implements the longest-prefix tokenizer: it decomposes
// input text into atoms and greedily accepts the growing atom buffer
// against the Pattern Store as soon as any pattern fully matches it.
package lexer

import (
	"github.com/shadowCow/llspecparse-go/patterns"
)

// Token is a single recognized lexeme, tagged with the pattern name that
// matched it and the line/column of its first atom. Line is 1-based; Column
// follows splitAtoms' bookkeeping, so a punctuation atom's column is its
// offset from the start of the line (on line 1, "=" in "foo = bar" gets
// column 4, and the "bar" after it column 6).
type Token struct {
	Name   string
	Lexeme string
	Line   int
	Column int
}

// Tokenizer drives pattern matching over a Pattern Store.
type Tokenizer struct {
	store *patterns.Store
}

// New returns a Tokenizer backed by the given Pattern Store.
func New(store *patterns.Store) *Tokenizer {
	return &Tokenizer{store: store}
}

// Tokenize splits text into tokens, or returns an UnknownTokenError naming
// the first substring that never joined a legal token.
//
// This is not maximal-munch over characters; it is greedy-accept over
// atoms. A token commits the instant the growing buffer matches any
// pattern, scanning patterns in their declared order, so the lexspec must
// order shorter matches to commit at the intended point.
func (t *Tokenizer) Tokenize(text string) ([]Token, error) {
	var result []Token

	var lookup *atom
	unmatched := ""

	for _, a := range splitAtoms(text) {
		current := a
		if lookup != nil {
			current = atom{
				value:  lookup.value + a.value,
				line:   lookup.line,
				column: lookup.column,
			}
		}

		var matched *Token
		for _, p := range t.store.Patterns() {
			if p.Regex.MatchString(current.value) {
				matched = &Token{
					Name:   p.Name,
					Lexeme: current.value,
					Line:   current.line,
					Column: current.column,
				}
				break
			}
		}

		if matched != nil {
			result = append(result, *matched)
			lookup = nil
			unmatched = ""
		} else {
			buffered := current
			lookup = &buffered
			if unmatched == "" {
				unmatched = a.value
			}
		}
	}

	if unmatched != "" {
		return nil, &UnknownTokenError{Lexeme: unmatched}
	}
	return result, nil
}
