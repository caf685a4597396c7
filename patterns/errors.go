package patterns

import "fmt"

// FileOpenError is returned when the lexical specification file cannot be
// read.
type FileOpenError struct {
	Detail string
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("Unable to open the specified file: %s", e.Detail)
}

// BadLineError is returned when a nonblank line of the lexical
// specification does not match the `NAME = PATTERN` declaration shape.
type BadLineError struct{}

func (e *BadLineError) Error() string {
	return "The file must contain token declarations with NAME = PATTERN format."
}

// BadRegexError is returned when a declared pattern fails to compile as a
// regular expression.
type BadRegexError struct {
	Name    string
	Pattern string
}

func (e *BadRegexError) Error() string {
	return fmt.Sprintf("Unable to parse %s token - %s is an incorrect regular expression.", e.Name, e.Pattern)
}
