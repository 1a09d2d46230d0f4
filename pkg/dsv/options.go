package dsv

import "unicode/utf8"

// Options configures scanning behavior.
type Options struct {
	// Comma is the field separator.
	// It must be a valid rune other than '"', '\r', '\n', and the Unicode
	// replacement character (0xFFFD). Default: ','
	Comma rune
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Comma: ',',
	}
}

// Validate checks whether the options are usable.
func (o Options) Validate() error {
	if !validComma(o.Comma) {
		return &OptionsError{Field: "Comma", Message: "invalid separator"}
	}
	return nil
}

// validComma reports whether r can serve as the field separator.
func validComma(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}

// OptionsError represents an invalid option configuration.
type OptionsError struct {
	Field   string
	Message string
}

func (e *OptionsError) Error() string {
	return "dsv: invalid " + e.Field + ": " + e.Message
}
