package engine

import (
	"github.com/rshade/paybatch/internal/dataset"
)

// Payroll column names.
const (
	ColumnID          = "id"
	ColumnFirstName   = "first_name"
	ColumnLastName    = "last_name"
	ColumnEmail       = "email"
	ColumnJobTitle    = "job_title"
	ColumnBasicSalary = "basic_salary"
	ColumnAllowances  = "allowances"
	ColumnGrossSalary = "gross_salary"
)

// ReportColumns is the column order of the written report.
//
//nolint:gochecknoglobals // Fixed report layout.
var ReportColumns = []string{
	ColumnID,
	ColumnFirstName,
	ColumnLastName,
	ColumnEmail,
	ColumnJobTitle,
	ColumnBasicSalary,
	ColumnAllowances,
	ColumnGrossSalary,
}

// ComputeGross returns a copy of t with gross_salary set to
// basic_salary + allowances on every row.
//
// The check for the two source columns is table-wide: if either is absent a
// *MissingColumnError is returned. Rows where either value is missing or not
// numeric get a missing gross_salary.
func ComputeGross(t *dataset.Table) (*dataset.Table, error) {
	if t == nil {
		return nil, ErrNilTable
	}

	var missing []string
	for _, c := range []string{ColumnBasicSalary, ColumnAllowances} {
		if !t.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingColumnError{Columns: missing}
	}

	gross := make([]dataset.Cell, t.Len())
	for i := range t.Len() {
		basic, okBasic := t.Get(i, ColumnBasicSalary).Float()
		allow, okAllow := t.Get(i, ColumnAllowances).Float()
		if !okBasic || !okAllow {
			gross[i] = dataset.Missing()
			continue
		}
		gross[i] = dataset.Text(FormatAmount(basic + allow))
	}

	return t.WithColumn(ColumnGrossSalary, gross)
}

// GrossValues returns the numeric gross_salary values of t in row order,
// skipping missing or non-numeric cells.
func GrossValues(t *dataset.Table) []float64 {
	cells, ok := t.Column(ColumnGrossSalary)
	if !ok {
		return nil
	}
	values := make([]float64, 0, len(cells))
	for _, c := range cells {
		if v, okFloat := c.Float(); okFloat {
			values = append(values, v)
		}
	}
	return values
}
