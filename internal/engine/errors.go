package engine

import (
	"errors"
	"strings"
)

// ErrNilTable is returned when a pipeline stage receives no table.
var ErrNilTable = errors.New("table cannot be nil")

// MissingColumnError reports required columns absent from the merged table.
// It is a table-wide failure and aborts the run before anything is written.
type MissingColumnError struct {
	Columns []string
}

func (e *MissingColumnError) Error() string {
	return "missing required columns: " + strings.Join(e.Columns, ", ")
}
