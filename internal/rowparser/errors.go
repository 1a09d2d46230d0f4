package rowparser

import (
	"errors"
	"fmt"
)

// ErrBareQuote is returned when a quote character appears past the first
// position of a field that was not opened by a quote.
var ErrBareQuote = errors.New("bare quote in unquoted field")

// ParseError reports where a record failed to parse.
// Line and Column are 1-based; Column counts runes within the physical line
// on which the offending character was found.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

// Error formats the error with its position.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying error so ParseError works with errors.Is.
func (e *ParseError) Unwrap() error {
	return e.Err
}
