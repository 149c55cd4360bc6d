// Package table implements the in-memory row table every backing store
// loads into and persists from. Cells are plain strings; typed validation
// happens in the services that own each collection.
package table

import "strings"

// Table is an ordered set of named columns over rows of text cells.
// Rows always have exactly len(Columns) cells.
type Table struct {
	Columns []string
	Rows    [][]string
}

// New returns an empty table with the given columns.
func New(columns ...string) Table {
	return Table{Columns: append([]string(nil), columns...)}
}

// Len returns the number of rows.
func (t Table) Len() int {
	return len(t.Rows)
}

// Index returns the position of a column, or -1.
func (t Table) Index(column string) int {
	for i, c := range t.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

// Get returns the cell at (row, column), or "" when either is missing.
func (t Table) Get(row int, column string) string {
	i := t.Index(column)
	if i < 0 || row < 0 || row >= len(t.Rows) {
		return ""
	}
	return t.Rows[row][i]
}

// Set overwrites the cell at (row, column). Unknown columns are ignored.
func (t *Table) Set(row int, column, value string) {
	i := t.Index(column)
	if i < 0 || row < 0 || row >= len(t.Rows) {
		return
	}
	t.Rows[row][i] = value
}

// Clone returns a deep copy.
func (t Table) Clone() Table {
	out := New(t.Columns...)
	out.Rows = make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		out.Rows[i] = append([]string(nil), r...)
	}
	return out
}

// Conform returns a table with exactly the expected columns in the expected
// order. Values are carried over by column name, missing columns come back
// empty for every row, and columns outside the expected set are dropped.
// Cell values are normalized at this boundary.
func (t Table) Conform(expected []string) Table {
	out := New(expected...)
	out.Rows = make([][]string, len(t.Rows))
	for r := range t.Rows {
		row := make([]string, len(expected))
		for c, name := range expected {
			row[c] = NormalizeCell(t.Get(r, name))
		}
		out.Rows[r] = row
	}
	return out
}

// Append adds a row from named cells. Cells for unknown columns are
// ignored, unnamed columns come back empty.
func (t *Table) Append(cells map[string]string) {
	row := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		row[i] = NormalizeCell(cells[c])
	}
	t.Rows = append(t.Rows, row)
}

// UpdateFirst overwrites the given cells on the first row whose key column
// equals key. It reports whether a row matched.
func (t *Table) UpdateFirst(keyColumn, key string, cells map[string]string) bool {
	ki := t.Index(keyColumn)
	if ki < 0 {
		return false
	}
	for r, row := range t.Rows {
		if row[ki] != key {
			continue
		}
		for c, v := range cells {
			t.Set(r, c, NormalizeCell(v))
		}
		return true
	}
	return false
}

// DeleteAt removes the row at the given position, keeping the remaining
// rows contiguous. It reports whether the index was in range.
func (t *Table) DeleteAt(row int) bool {
	if row < 0 || row >= len(t.Rows) {
		return false
	}
	t.Rows = append(t.Rows[:row], t.Rows[row+1:]...)
	return true
}

// DeleteWhere removes every row the predicate matches and returns how many
// were dropped.
func (t *Table) DeleteWhere(match func(get func(column string) string) bool) int {
	kept := t.Rows[:0]
	deleted := 0
	for r := range t.Rows {
		row := t.Rows[r]
		get := func(column string) string {
			i := t.Index(column)
			if i < 0 {
				return ""
			}
			return row[i]
		}
		if match(get) {
			deleted++
			continue
		}
		kept = append(kept, row)
	}
	t.Rows = kept
	return deleted
}

// Count returns how many rows the predicate matches.
func (t Table) Count(match func(get func(column string) string) bool) int {
	n := 0
	for r := range t.Rows {
		row := t.Rows[r]
		get := func(column string) string {
			i := t.Index(column)
			if i < 0 {
				return ""
			}
			return row[i]
		}
		if match(get) {
			n++
		}
	}
	return n
}

// Tail returns the last n rows (all rows when n is larger than the table).
func (t Table) Tail(n int) Table {
	if n < 0 {
		n = 0
	}
	start := len(t.Rows) - n
	if start < 0 {
		start = 0
	}
	out := New(t.Columns...)
	for _, r := range t.Rows[start:] {
		out.Rows = append(out.Rows, append([]string(nil), r...))
	}
	return out
}

// NormalizeCell trims whitespace and maps the float-NaN artifacts the old
// spreadsheets accumulated to the empty string.
func NormalizeCell(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "nan") {
		return ""
	}
	return v
}
