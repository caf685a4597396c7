package lexer

import (
	"fmt"
	"strings"
	"unicode"
)

// UnknownTokenError is returned when Tokenize reaches end of input with an
// unmatched atom buffer still pending.
type UnknownTokenError struct {
	Lexeme string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("Unknown token %s.", escapeLexeme(e.Lexeme))
}

// escapeLexeme makes control characters legible in diagnostics without
// quoting ordinary printable text (spec scenario S4 expects the bare
// character, e.g. "Unknown token @.").
func escapeLexeme(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if unicode.IsControl(r) {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	return b.String()
}
