// Package dsv reads delimiter-separated tabular text one record at a time.
//
// The package is built around two pull-based scanners over an io.Reader:
//
//   - Scanner yields positional records.
//   - NamedScanner consumes the first record as a header and yields records
//     whose fields can also be looked up by column name.
//
// # Supported format subset
//
// This is deliberately not a full RFC 4180 implementation. The rules are:
//
//   - Configurable single-character field separator (default comma).
//   - A field is quoted only when a double quote is its first character.
//   - Inside a quoted span, separators and newlines are literal content; a
//     quoted field may therefore span several physical lines.
//   - A doubled quote ("") inside a quoted field is one literal quote.
//   - Records end at a bare \n. A preceding \r is not stripped and stays in
//     the last field's value.
//   - A quote past the first position of an unquoted field is the only
//     input error (ErrBareQuote). Everything else - ragged rows, duplicate
//     header names, unterminated quotes at end of input, empty sources - is
//     accepted permissively.
//
// # Example usage
//
//	scanner, err := dsv.NewNamedScanner(file)
//	if err != nil {
//	    // handle error
//	}
//	for scanner.Scan() {
//	    record := scanner.Record()
//	    name, _ := record.Get("name")
//	    fmt.Println(name)
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
package dsv

import (
	"io"
	"strings"

	"github.com/shapestone/shape-dsv/internal/rowparser"
)

// ReadAll drains r and returns the field values of every record, using the
// default options. It stops at the first parse error.
//
// Zero-field records (bare line terminators) are included; callers that
// want to skip blank lines can filter on len(record) == 0.
func ReadAll(r io.Reader) ([][]string, error) {
	return ReadAllWithOptions(r, DefaultOptions())
}

// ReadAllWithOptions is ReadAll with a custom separator configuration.
//
// Example:
//
//	opts := dsv.DefaultOptions()
//	opts.Comma = '\t'
//	records, err := dsv.ReadAllWithOptions(file, opts)
func ReadAllWithOptions(r io.Reader, opts Options) ([][]string, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	p := rowparser.New(r, opts.Comma)
	var records [][]string
	for {
		fields, err := p.Next()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, fields)
	}
}

// Validate checks whether input parses under the default options.
//
// Returns nil if the input is valid.
//
//	if err := dsv.Validate(input); err != nil {
//	    fmt.Println("invalid input:", err)
//	}
func Validate(input string) error {
	_, err := ReadAll(strings.NewReader(input))
	return err
}
