package domain

// DisplayList is one rendered list of records. It assigns the 1-based
// ordinals shown to a user and resolves them against its own rows, so an
// ordinal from an older render never resolves through a newer one.
type DisplayList struct {
	rows []Record
}

// NewDisplayList numbers records 1..n in the given order.
func NewDisplayList(records []Record) *DisplayList {
	rows := copyRecords(records)
	for i, r := range rows {
		r.SetDisplayID(i + 1)
	}
	return &DisplayList{rows: rows}
}

// Lookup returns the record shown as ordinal n.
func (d *DisplayList) Lookup(n int) (Record, bool) {
	if n < 1 || n > len(d.rows) {
		return nil, false
	}
	return d.rows[n-1], true
}

// Rows returns the rendered records in display order.
func (d *DisplayList) Rows() []Record { return copyRecords(d.rows) }

// Len returns the number of rows.
func (d *DisplayList) Len() int { return len(d.rows) }
