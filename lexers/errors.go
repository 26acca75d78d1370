package lexers

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedEndOfInput = errors.New("unexpected end of input")
	ErrInvalidToken         = errors.New("invalid token")
	ErrInvalidEncoding      = errors.New("invalid UTF-8 encoding")
)

// Error is a lexical failure anchored at a line.
// Err is ErrUnexpectedEndOfInput or ErrInvalidToken.
type Error struct {
	Err  error
	Line int
	Near string
	// Cause is set when a literal failed to convert or the input is not UTF-8.
	Cause error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s at line %d near '%s'", e.Err.Error(), e.Line, e.Near)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Err, e.Cause}
	}
	return []error{e.Err}
}

func (e *Error) ErrorLine() int {
	return e.Line
}
