package prim

import (
	"errors"
	"strconv"
)

// ErrInvalidFormat is the sentinel wrapped by every parse error.
var ErrInvalidFormat = errors.New("prim: invalid format")

// FormatError reports text that could not be parsed into a value of the
// named type. It unwraps to ErrInvalidFormat.
type FormatError struct {
	Type  string // target type, e.g. "color" or "rect"
	Input string // the rejected text, untrimmed
}

func (e *FormatError) Error() string {
	return "prim: invalid " + e.Type + " format: " + strconv.Quote(e.Input)
}

// Unwrap returns ErrInvalidFormat.
func (e *FormatError) Unwrap() error { return ErrInvalidFormat }

// formatError logs the failure and builds the error returned by ParseX.
func formatError(typ, input string) error {
	logParseFailure(typ, input)
	return &FormatError{Type: typ, Input: input}
}
