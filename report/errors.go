package report

import "fmt"

// LocalError is an error that occurs in a context in which the file is known
// by the error handler and thus doesn't need to be passed along with the
// error.  The lexer and parser use it to bubble the first syntax failure up
// to the check driver, which converts it into a parse diagnostic.
type LocalError struct {
	// The error message.
	Message string

	// The position at which the error occurs.
	Position *TextPosition
}

func (le *LocalError) Error() string {
	return le.Message
}

// Raise creates a new local error.
func Raise(pos *TextPosition, msg string, args ...interface{}) *LocalError {
	return &LocalError{Message: fmt.Sprintf(msg, args...), Position: pos}
}
