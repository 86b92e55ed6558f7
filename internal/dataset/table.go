package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell is a single table value. A zero Cell is missing.
type Cell struct {
	Value string
	Valid bool
}

// Text returns a present cell holding s.
func Text(s string) Cell {
	return Cell{Value: s, Valid: true}
}

// Missing returns an absent cell.
func Missing() Cell {
	return Cell{}
}

// Float parses the cell as a float64.
// The second return value is false when the cell is missing or not numeric.
func (c Cell) Float() (float64, bool) {
	if !c.Valid {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(c.Value), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// String renders the cell for output. Missing cells render as "".
func (c Cell) String() string {
	if !c.Valid {
		return ""
	}
	return c.Value
}

// Row is an ordered list of cells aligned with a Table's columns.
type Row []Cell

// Table is an ordered set of named columns and rows.
type Table struct {
	columns []string
	index   map[string]int
	rows    []Row
}

// New builds a Table from columns and rows. Rows shorter than the header are
// padded with missing cells. It returns an error if a row is longer than the
// header or a column name repeats.
func New(columns []string, rows []Row) (*Table, error) {
	t := &Table{
		columns: append([]string(nil), columns...),
		index:   make(map[string]int, len(columns)),
		rows:    make([]Row, 0, len(rows)),
	}
	for i, name := range t.columns {
		if _, dup := t.index[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		t.index[name] = i
	}
	for i, r := range rows {
		if len(r) > len(t.columns) {
			return nil, fmt.Errorf("row %d has %d fields, header has %d", i, len(r), len(t.columns))
		}
		t.rows = append(t.rows, pad(r, len(t.columns)))
	}
	return t, nil
}

// MustNew is like New but panics on error. It is intended for tests and
// literals known to be well formed.
func MustNew(columns []string, rows []Row) *Table {
	t, err := New(columns, rows)
	if err != nil {
		panic(err)
	}
	return t
}

// pad returns a copy of r extended with missing cells up to width.
func pad(r Row, width int) Row {
	out := make(Row, width)
	copy(out, r)
	return out
}

// Columns returns a copy of the column names.
func (t *Table) Columns() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.columns...)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Empty reports whether the table has no rows or no columns.
func (t *Table) Empty() bool {
	return t == nil || len(t.rows) == 0 || len(t.columns) == 0
}

// HasColumn reports whether name is one of the table's columns.
func (t *Table) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.index[name]
	return ok
}

// Row returns a copy of row i.
func (t *Table) Row(i int) Row {
	return append(Row(nil), t.rows[i]...)
}

// Get returns the cell at row i in the named column, or a missing cell when
// the column does not exist.
func (t *Table) Get(i int, column string) Cell {
	j, ok := t.index[column]
	if !ok {
		return Missing()
	}
	return t.rows[i][j]
}

// Column returns a copy of the named column's cells.
func (t *Table) Column(name string) ([]Cell, bool) {
	j, ok := t.index[name]
	if !ok {
		return nil, false
	}
	out := make([]Cell, len(t.rows))
	for i, r := range t.rows {
		out[i] = r[j]
	}
	return out, true
}

// WithColumn returns a new table with cells set as the named column.
// An existing column is replaced in place; a new column is appended.
func (t *Table) WithColumn(name string, cells []Cell) (*Table, error) {
	if len(cells) != t.Len() {
		return nil, fmt.Errorf("column %q has %d cells, table has %d rows", name, len(cells), t.Len())
	}

	columns := t.Columns()
	j, exists := t.index[name]
	if !exists {
		columns = append(columns, name)
		j = len(columns) - 1
	}

	rows := make([]Row, len(t.rows))
	for i, r := range t.rows {
		nr := pad(r, len(columns))
		nr[j] = cells[i]
		rows[i] = nr
	}
	return New(columns, rows)
}

// Select returns the values of the named columns for every row, rendered as
// strings. It fails if any column is absent.
func (t *Table) Select(columns []string) ([][]string, error) {
	var missing []string
	for _, c := range columns {
		if !t.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnsError{Columns: missing}
	}

	out := make([][]string, len(t.rows))
	for i := range t.rows {
		rec := make([]string, len(columns))
		for k, c := range columns {
			rec[k] = t.Get(i, c).String()
		}
		out[i] = rec
	}
	return out, nil
}

// MissingColumnsError reports columns absent from a table.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return "missing columns: " + strings.Join(e.Columns, ", ")
}
