package ll1

import "fmt"

// UnexpectedTokenError is raised whenever the current lookahead token
// cannot continue the derivation: no table cell matches it, or it fails
// to equal the terminal a Leaf node expects.
type UnexpectedTokenError struct {
	Lexeme string
	Line   int
	Column int
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("Unexpected token %s on line %d, column %d.", e.Lexeme, e.Line, e.Column)
}

// UnexpectedEOFError is raised when a Leaf node still expects a terminal
// but the current token is already the synthetic "$" marker, i.e. the real
// input ran out early.
type UnexpectedEOFError struct{}

func (e *UnexpectedEOFError) Error() string {
	return "Unexpected end of stream."
}

// EmptyGrammarError is raised when a parse is attempted against a grammar
// with no declared productions.
type EmptyGrammarError struct{}

func (e *EmptyGrammarError) Error() string {
	return "Parser doesn't have any grammars."
}
