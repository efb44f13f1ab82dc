package models

// Row maps column names to cell values. Columns absent from the map
// are missing; the Table column list is authoritative for which
// columns exist.
type Row map[string]Value

// Get returns the cell for a column, missing if unset.
func (r Row) Get(col string) Value {
	return r[col]
}

// Set stores a cell value. Setting a missing value removes the key so
// rows stay sparse.
func (r Row) Set(col string, v Value) {
	if v.Missing() {
		delete(r, col)
		return
	}

	r[col] = v
}

// Table is an ordered sequence of rows sharing one column set.
// Column order is first-seen order until Reorder is applied.
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable creates an empty table with the given columns.
func NewTable(columns ...string) *Table {
	return &Table{Columns: columns}
}

// HasColumn reports whether the table defines a column.
func (t *Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}

	return false
}

// AddColumn appends a column if it is not already defined. Existing
// rows are left untouched; their cells for the new column read as
// missing.
func (t *Table) AddColumn(name string) {
	if !t.HasColumn(name) {
		t.Columns = append(t.Columns, name)
	}
}

// Append concatenates another table onto this one. The column set
// becomes the union of both, preserving first-seen order; rows keep
// their original order (this is an append, not a join).
func (t *Table) Append(other *Table) {
	for _, c := range other.Columns {
		t.AddColumn(c)
	}

	t.Rows = append(t.Rows, other.Rows...)
}

// Len returns the row count.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Reorder rearranges the column list so that the preferred columns
// (those actually present) come first in the given order, followed by
// the remaining columns in their original relative order.
func (t *Table) Reorder(preferred []string) {
	var ordered []string

	seen := make(map[string]bool)

	for _, c := range preferred {
		if t.HasColumn(c) && !seen[c] {
			ordered = append(ordered, c)
			seen[c] = true
		}
	}

	for _, c := range t.Columns {
		if !seen[c] {
			ordered = append(ordered, c)
			seen[c] = true
		}
	}

	t.Columns = ordered
}

// Restrict drops every column not in keep, preserving keep's order.
// Row cells for dropped columns are removed.
func (t *Table) Restrict(keep []string) {
	keepSet := make(map[string]bool, len(keep))
	for _, c := range keep {
		keepSet[c] = true
	}

	for _, row := range t.Rows {
		for col := range row {
			if !keepSet[col] {
				delete(row, col)
			}
		}
	}

	t.Columns = append([]string(nil), keep...)
}
