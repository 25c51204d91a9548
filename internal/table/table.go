package table

// Table is a raw tabular result: a header and string-valued records, one
// slice per row. It is the common shape every source backend produces before
// typed decoding.
type Table struct {
	Header  []string
	Records [][]string
}

// Empty returns a table with zero rows and no columns.
func Empty() Table {
	return Table{}
}

func (t Table) NumRows() int {
	return len(t.Records)
}

func (t Table) IsEmpty() bool {
	return len(t.Records) == 0
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t Table) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

func (t Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Column returns the values of the named column, one per row. Rows shorter
// than the header yield "" for the missing cells. An absent column yields a
// slice of empty strings so callers never index out of range.
func (t Table) Column(name string) []string {
	idx := t.ColumnIndex(name)
	out := make([]string, len(t.Records))
	if idx < 0 {
		return out
	}
	for i, rec := range t.Records {
		if idx < len(rec) {
			out[i] = rec[idx]
		}
	}
	return out
}

// EnsureColumn guarantees the named column exists, appending one filled with
// def for every row when absent. Calling it again with the same arguments is
// a no-op, so load-time schema normalization can be applied blindly.
func (t Table) EnsureColumn(name, def string) Table {
	if t.HasColumn(name) {
		return t
	}
	out := Table{Header: append(append([]string{}, t.Header...), name)}
	out.Records = make([][]string, len(t.Records))
	for i, rec := range t.Records {
		row := make([]string, len(t.Header)+1)
		copy(row, rec)
		row[len(t.Header)] = def
		out.Records[i] = row
	}
	return out
}
