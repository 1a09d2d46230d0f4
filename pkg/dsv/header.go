package dsv

// Header is an immutable index from column name to zero-based position,
// built once from a stream's first record.
//
// A Header is never mutated after construction, so any number of records
// (and goroutines) may share one by reference without coordination. The
// zero value is the empty header: width 0, every lookup absent.
type Header struct {
	positions map[string]int
}

// NewHeader builds a Header from an ordered list of column names.
// When the same name appears more than once, the later position wins.
func NewHeader(names []string) *Header {
	positions := make(map[string]int, len(names))
	for i, name := range names {
		positions[name] = i
	}
	return &Header{positions: positions}
}

// Position returns the zero-based position of the named column.
// The second result is false when the name is unknown.
func (h *Header) Position(name string) (int, bool) {
	i, ok := h.positions[name]
	return i, ok
}

// Width returns the number of distinct column names retained.
func (h *Header) Width() int {
	return len(h.positions)
}

// Names returns the column names in unspecified order.
func (h *Header) Names() []string {
	names := make([]string, 0, len(h.positions))
	for name := range h.positions {
		names = append(names, name)
	}
	return names
}
