// Package dsv error surface. The parsing core lives in internal/rowparser;
// its error types are re-exported here so callers match against this
// package only.
package dsv

import (
	"github.com/shapestone/shape-dsv/internal/rowparser"
)

// ErrBareQuote is the single invalid-data condition: a quote character
// past the first position of a field that was not opened by a quote.
// Match with errors.Is.
var ErrBareQuote = rowparser.ErrBareQuote

// ParseError carries the 1-based physical line and rune column of a failed
// record, wrapping ErrBareQuote. Match with errors.As.
type ParseError = rowparser.ParseError
