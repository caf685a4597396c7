package grammar

import "fmt"

// FileOpenError mirrors patterns.FileOpenError for the grammar spec file.
type FileOpenError struct {
	Detail string
}

func (e *FileOpenError) Error() string {
	return fmt.Sprintf("Unable to open the specified file: %s", e.Detail)
}
