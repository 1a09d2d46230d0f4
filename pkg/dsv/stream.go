package dsv

import (
	"io"

	"github.com/shapestone/shape-dsv/internal/rowparser"
)

// Scanner reads positional records from an io.Reader one at a time.
//
// A Scanner owns exclusive access to its source; concurrent calls to Scan
// from multiple goroutines require external locking.
//
// Example usage:
//
//	scanner := dsv.NewScanner(file)
//	for scanner.Scan() {
//	    record := scanner.Record()
//	    first, _ := record.Field(0)
//	    fmt.Println(first)
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
type Scanner struct {
	parser *rowparser.Parser
	record Record
	err    error
	done   bool
}

// NewScanner creates a Scanner over r with the default comma separator.
func NewScanner(r io.Reader) *Scanner {
	s, _ := NewScannerWithOptions(r, DefaultOptions())
	return s
}

// NewScannerWithOptions creates a Scanner with a custom separator.
// It returns an error when the options are invalid.
func NewScannerWithOptions(r io.Reader, opts Options) (*Scanner, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Scanner{parser: rowparser.New(r, opts.Comma)}, nil
}

// Scan advances to the next record. It returns false at end of input or
// when the current pull failed; Err tells the two apart.
//
// A parse failure does not terminate the scanner: the next call to Scan
// clears the error and resumes at the first physical line the failed pull
// did not consume.
func (s *Scanner) Scan() bool {
	fields, ok := scanNext(s.parser, &s.done, &s.err)
	if !ok {
		return false
	}
	s.record = Record{fields: fields}
	return true
}

// Record returns the current record. It is only valid after a call to
// Scan that returned true.
func (s *Scanner) Record() Record {
	return s.record
}

// Err returns the error of the most recent pull, or nil at end of input.
func (s *Scanner) Err() error {
	return s.err
}

// NamedScanner reads records with header-based field access.
//
// The header is built exactly once, from the source's first record, when
// the scanner is constructed; it is immutable afterwards and shared by
// reference among all records the scanner produces.
//
// Example usage:
//
//	scanner, err := dsv.NewNamedScanner(file)
//	if err != nil {
//	    // handle error
//	}
//	for scanner.Scan() {
//	    record := scanner.Record()
//	    email, ok := record.Get("email")
//	    _ = email
//	    _ = ok
//	}
//	if err := scanner.Err(); err != nil {
//	    // handle error
//	}
type NamedScanner struct {
	parser *rowparser.Parser
	header *Header
	record NamedRecord
	err    error
	done   bool
}

// NewNamedScanner creates a NamedScanner over r with the default comma
// separator, consuming the first record as the header.
func NewNamedScanner(r io.Reader) (*NamedScanner, error) {
	return NewNamedScannerWithOptions(r, DefaultOptions())
}

// NewNamedScannerWithOptions creates a NamedScanner with a custom
// separator, consuming the first record as the header.
//
// When the source is already exhausted the scanner gets an empty header
// (width 0) and terminates on the first Scan; this is not an error. A
// parse failure on the header record fails construction.
func NewNamedScannerWithOptions(r io.Reader, opts Options) (*NamedScanner, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	parser := rowparser.New(r, opts.Comma)
	fields, err := parser.Next()
	switch {
	case err == io.EOF:
		return &NamedScanner{parser: parser, header: &Header{}}, nil
	case err != nil:
		return nil, err
	}
	return &NamedScanner{parser: parser, header: NewHeader(fields)}, nil
}

// Header returns the shared header index.
func (s *NamedScanner) Header() *Header {
	return s.header
}

// Width returns the number of distinct column names in the header.
func (s *NamedScanner) Width() int {
	return s.header.Width()
}

// Scan advances to the next record. It returns false at end of input or
// when the current pull failed; Err tells the two apart.
//
// Like Scanner.Scan, a parse failure does not terminate the scanner.
func (s *NamedScanner) Scan() bool {
	fields, ok := scanNext(s.parser, &s.done, &s.err)
	if !ok {
		return false
	}
	s.record = NamedRecord{Record: Record{fields: fields}, header: s.header}
	return true
}

// Record returns the current record. It is only valid after a call to
// Scan that returned true.
func (s *NamedScanner) Record() NamedRecord {
	return s.record
}

// Err returns the error of the most recent pull, or nil at end of input.
func (s *NamedScanner) Err() error {
	return s.err
}

// scanNext performs one pull, mapping io.EOF to permanent termination and
// recording any other failure in *err for a single Scan round.
func scanNext(parser *rowparser.Parser, done *bool, err *error) ([]string, bool) {
	if *done {
		return nil, false
	}
	*err = nil

	fields, perr := parser.Next()
	if perr == io.EOF {
		*done = true
		return nil, false
	}
	if perr != nil {
		*err = perr
		return nil, false
	}
	return fields, true
}
