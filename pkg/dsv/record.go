package dsv

// Record is one parsed record's ordered field values with positional access.
// It is a read-only view; the zero value is an empty record.
//
// Record widths are not guaranteed equal across records from the same
// stream - ragged input is accepted, not rejected.
type Record struct {
	fields []string
}

// Field returns the value at the given zero-based position.
// The second result is false when the position is outside this record's
// actual width.
func (r Record) Field(i int) (string, bool) {
	if i < 0 || i >= len(r.fields) {
		return "", false
	}
	return r.fields[i], true
}

// Len returns the number of fields in this record.
func (r Record) Len() int {
	return len(r.fields)
}

// Fields returns a copy of all field values.
func (r Record) Fields() []string {
	fields := make([]string, len(r.fields))
	copy(fields, r.fields)
	return fields
}

// NamedRecord is a Record produced by a NamedScanner. In addition to
// positional access it resolves fields by column name through the header
// shared by every record of its stream.
type NamedRecord struct {
	Record
	header *Header
}

// Get returns the value of the named column.
//
// The second result is false both when the name is unknown to the header
// and when the header's position lies beyond this record's actual width
// (the ragged-row safety net); Get never panics.
func (r NamedRecord) Get(name string) (string, bool) {
	if r.header == nil {
		return "", false
	}
	i, ok := r.header.Position(name)
	if !ok {
		return "", false
	}
	return r.Field(i)
}

// Header returns the header shared by every record of the originating
// stream.
func (r NamedRecord) Header() *Header {
	return r.header
}

// Map returns the record as a name-to-value map. Columns beyond this
// record's width map to the empty string; fields beyond the header's width
// are dropped.
func (r NamedRecord) Map() map[string]string {
	if r.header == nil {
		return map[string]string{}
	}
	m := make(map[string]string, r.header.Width())
	for name, i := range r.header.positions {
		value, _ := r.Field(i)
		m[name] = value
	}
	return m
}
