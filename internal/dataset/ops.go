package dataset

import (
	"strconv"
	"strings"
)

// Concat stacks tables row-wise.
//
// The result's columns are the union of the inputs' columns in first-seen
// order. Rows keep their table order, then their order within each table.
// Cells for columns a source table lacks are missing. Nil tables are skipped.
func Concat(tables ...*Table) *Table {
	var columns []string
	seen := make(map[string]bool)
	for _, t := range tables {
		if t == nil {
			continue
		}
		for _, c := range t.columns {
			if !seen[c] {
				seen[c] = true
				columns = append(columns, c)
			}
		}
	}

	var rows []Row
	for _, t := range tables {
		if t == nil {
			continue
		}
		for i := range t.rows {
			r := make(Row, len(columns))
			for j, c := range columns {
				r[j] = t.Get(i, c)
			}
			rows = append(rows, r)
		}
	}

	return MustNew(columns, rows)
}

// DropDuplicates removes rows identical in every column to an earlier row.
// Missing cells compare equal to each other and unequal to any present value.
// In a numeric column, one where every present cell parses as a number, cells
// compare by value, so "1000" and "1000.0" are equal. Other columns compare
// by text. The first occurrence of each row is kept and order is preserved.
func DropDuplicates(t *Table) *Table {
	if t == nil {
		return MustNew(nil, nil)
	}

	numeric := numericColumns(t)
	seen := make(map[string]struct{}, len(t.rows))
	rows := make([]Row, 0, len(t.rows))
	for _, r := range t.rows {
		k := rowKey(r, numeric)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		rows = append(rows, r)
	}
	return MustNew(t.columns, rows)
}

// numericColumns reports, per column, whether every present cell is a number.
// A column with no present cells is not numeric.
func numericColumns(t *Table) []bool {
	numeric := make([]bool, len(t.columns))
	for j := range t.columns {
		present := false
		ok := true
		for _, r := range t.rows {
			if !r[j].Valid {
				continue
			}
			present = true
			if _, isNum := r[j].Float(); !isNum {
				ok = false
				break
			}
		}
		numeric[j] = present && ok
	}
	return numeric
}

// rowKey encodes a row so that distinct rows never collide: each cell is
// tagged as missing, numeric or text, and text is length-prefixed.
func rowKey(r Row, numeric []bool) string {
	var b strings.Builder
	for j, c := range r {
		if !c.Valid {
			b.WriteString("-|")
			continue
		}
		if numeric[j] {
			f, _ := c.Float()
			b.WriteString("#")
			b.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
			b.WriteString("|")
			continue
		}
		b.WriteString("+")
		b.WriteString(strconv.Itoa(len(c.Value)))
		b.WriteString(":")
		b.WriteString(c.Value)
		b.WriteString("|")
	}
	return b.String()
}

// Head returns the first n rows of t, or all rows when t has fewer.
func Head(t *Table, n int) *Table {
	if t == nil {
		return MustNew(nil, nil)
	}
	if n < 0 {
		n = 0
	}
	if n > len(t.rows) {
		n = len(t.rows)
	}
	return MustNew(t.columns, t.rows[:n])
}
