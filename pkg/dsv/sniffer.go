// Package dsv separator and header sniffing.
package dsv

import (
	"strings"
	"unicode"
)

// Sniffer guesses the field separator and header presence from a sample of
// input text. For best results, provide at least 2-3 lines of data.
//
// The detected separator feeds Options.Comma; HasHeader picks between
// NewScanner and NewNamedScanner.
type Sniffer struct {
	sample    string
	comma     rune
	hasHeader bool
	analyzed  bool
}

// NewSniffer creates a Sniffer over a sample of input text.
func NewSniffer(sample string) *Sniffer {
	return &Sniffer{sample: sample}
}

// analyze performs detection on the sample once.
func (s *Sniffer) analyze() {
	if s.analyzed {
		return
	}
	s.comma = s.detectComma()
	s.hasHeader = s.detectHeader()
	s.analyzed = true
}

// DetectComma returns the most plausible field separator.
// Candidates checked: comma, tab, semicolon, pipe.
func (s *Sniffer) DetectComma() rune {
	s.analyze()
	return s.comma
}

// detectComma scores each candidate separator by its per-line occurrence
// count, with a bonus for a count that is consistent across lines.
func (s *Sniffer) detectComma() rune {
	if s.sample == "" {
		return ','
	}

	candidates := []rune{',', '\t', ';', '|'}
	scores := make(map[rune]int)

	lines := strings.Split(s.sample, "\n")
	for _, comma := range candidates {
		counts := make([]int, 0, len(lines))
		for _, line := range lines {
			if line == "" {
				continue
			}
			counts = append(counts, countSeparator(line, comma))
		}

		if len(counts) > 0 && counts[0] > 0 {
			consistent := true
			for i := 1; i < len(counts); i++ {
				if counts[i] != counts[0] {
					consistent = false
					break
				}
			}
			if consistent {
				scores[comma] = counts[0] * 10
			} else {
				scores[comma] = counts[0]
			}
		}
	}

	best := ','
	bestScore := 0
	for comma, score := range scores {
		if score > bestScore {
			best = comma
			bestScore = score
		}
	}
	return best
}

// countSeparator counts occurrences of a separator, ignoring quoted spans.
func countSeparator(line string, comma rune) int {
	count := 0
	inQuotes := false

	for _, ch := range line {
		if ch == '"' {
			inQuotes = !inQuotes
		} else if ch == comma && !inQuotes {
			count++
		}
	}
	return count
}

// HasHeader reports whether the first row of the sample looks like a
// header rather than data.
func (s *Sniffer) HasHeader() bool {
	s.analyze()
	return s.hasHeader
}

// detectHeader compares the first row against the first non-empty data row.
// Header fields tend to be short non-numeric identifiers; data fields tend
// to be numeric.
func (s *Sniffer) detectHeader() bool {
	lines := strings.Split(s.sample, "\n")
	if len(lines) < 2 {
		return false
	}

	secondLine := ""
	for _, line := range lines[1:] {
		if line != "" {
			secondLine = line
			break
		}
	}
	if lines[0] == "" || secondLine == "" {
		return false
	}

	comma := s.detectComma()
	firstFields := splitBySeparator(lines[0], comma)
	secondFields := splitBySeparator(secondLine, comma)
	if len(firstFields) == 0 || len(secondFields) == 0 {
		return false
	}

	// The first row is a header when none of its fields is numeric but at
	// least one field of the data row is.
	for _, field := range firstFields {
		if isNumeric(strings.TrimSpace(field)) {
			return false
		}
	}
	for _, field := range secondFields {
		if isNumeric(strings.TrimSpace(field)) {
			return true
		}
	}
	return false
}

// isNumeric reports whether s looks like a (possibly signed, possibly
// decimal) number.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' {
		s = s[1:]
	}

	hasDot := false
	for _, ch := range s {
		if ch == '.' {
			if hasDot {
				return false
			}
			hasDot = true
		} else if !unicode.IsDigit(ch) {
			return false
		}
	}
	return len(s) > 0
}

// splitBySeparator splits a line on the separator, respecting quotes.
// It is a rough split for sniffing only; real parsing goes through the
// scanners.
func splitBySeparator(line string, comma rune) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false

	for _, ch := range line {
		if ch == '"' {
			inQuotes = !inQuotes
		} else if ch == comma && !inQuotes {
			fields = append(fields, current.String())
			current.Reset()
		} else {
			current.WriteRune(ch)
		}
	}
	fields = append(fields, current.String())
	return fields
}
