// Package rowparser implements the per-record tokenizing state machine for
// delimiter-separated text.
//
// The parser consumes one physical line at a time from a buffered source and
// emits the ordered field values for one logical record. A logical record is
// usually one physical line, but a quoted field may contain literal newlines,
// in which case the parser pulls further physical lines until the quoted span
// ends or the source runs dry.
//
// Scanning is driven by an explicit four-state machine rather than a bundle
// of booleans, so the quoting and escaping rules stay auditable:
//
//	fieldStart  -> no character of the current field consumed yet
//	plainField  -> inside an unquoted field
//	quotedField -> inside an active quoted span
//	quoteSeen   -> a quote was seen inside a quoted field; the span is
//	               currently inactive (closing quote, or the first half of
//	               a doubled quote)
package rowparser

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// state is the scanner position within the current field.
type state uint8

const (
	stateFieldStart state = iota
	statePlainField
	stateQuotedField
	stateQuoteSeen
)

const quote = '"'

// Parser reads logical records from a line-oriented byte source.
//
// A Parser owns its source: it is the only reader of the underlying stream
// and is not safe for concurrent use.
type Parser struct {
	src   *bufio.Reader
	comma rune
	line  int
}

// New creates a Parser over r using comma as the field separator.
// The separator is taken as given; callers validate it (see dsv.Options).
func New(r io.Reader, comma rune) *Parser {
	return &Parser{
		src:   bufio.NewReader(r),
		comma: comma,
	}
}

// Line returns the 1-based number of the last physical line read.
// It is 0 before the first call to Next.
func (p *Parser) Line() int {
	return p.line
}

// Next returns the field values of the next logical record.
//
// It returns io.EOF when the source is exhausted. A record consisting of a
// bare line terminator yields a zero-field (non-nil, empty) slice, which is
// distinct from io.EOF.
//
// A quote character appearing past the first position of an unquoted field
// makes Next fail with a *ParseError wrapping ErrBareQuote. The failure does
// not poison the parser: every physical line touched by the failed call has
// been consumed, so a subsequent Next resumes at the first unconsumed line.
//
// An unterminated quoted span at end of input is not an error; the buffered
// field content up to the last character read is emitted as-is.
func (p *Parser) Next() ([]string, error) {
	buf, err := p.src.ReadString('\n')
	if len(buf) == 0 {
		if err == nil || err == io.EOF {
			return nil, io.EOF
		}
		return nil, err
	}
	if err != nil && err != io.EOF {
		return nil, err
	}
	p.line++

	fields := make([]string, 0, 8)
	var value strings.Builder
	st := stateFieldStart
	trailingSep := false
	pos := 0
	col := 0

scan:
	for pos < len(buf) {
		r, size := utf8.DecodeRuneInString(buf[pos:])
		pos += size
		col++
		sep := false

		switch st {
		case stateFieldStart:
			switch {
			case r == quote:
				st = stateQuotedField
			case r == '\n':
				break scan
			case r == p.comma:
				fields = append(fields, "")
				sep = true
			default:
				value.WriteRune(r)
				st = statePlainField
			}

		case statePlainField:
			switch {
			case r == quote:
				return nil, &ParseError{Line: p.line, Column: col, Err: ErrBareQuote}
			case r == '\n':
				break scan
			case r == p.comma:
				fields = append(fields, value.String())
				value.Reset()
				st = stateFieldStart
				sep = true
			default:
				value.WriteRune(r)
			}

		case stateQuotedField:
			switch {
			case r == quote:
				st = stateQuoteSeen
			case r == '\n':
				// The newline is field content; the record continues on
				// the next physical line.
				value.WriteByte('\n')
				next, rerr := p.src.ReadString('\n')
				if rerr != nil && rerr != io.EOF {
					return nil, rerr
				}
				if len(next) > 0 {
					p.line++
					col = 0
				}
				buf = next
				pos = 0
			default:
				// Separators are literal inside an active quoted span.
				value.WriteRune(r)
			}

		case stateQuoteSeen:
			switch {
			case r == quote:
				// Doubled quote: one literal quote, span active again.
				value.WriteByte(quote)
				st = stateQuotedField
			case r == '\n':
				break scan
			case r == p.comma:
				fields = append(fields, value.String())
				value.Reset()
				st = stateFieldStart
				sep = true
			default:
				// Content after a closing quote is taken verbatim; a later
				// quote re-enters the quoted span.
				value.WriteRune(r)
			}
		}

		trailingSep = sep
	}

	// A non-empty buffered value, or a record ending right after a
	// separator, contributes one final field. A line that is only a
	// terminator therefore produces zero fields.
	if value.Len() > 0 || trailingSep {
		fields = append(fields, value.String())
	}
	return fields, nil
}
