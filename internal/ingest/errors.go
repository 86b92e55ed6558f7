package ingest

import (
	"errors"
	"fmt"
)

var (
	// ErrInputDirNotFound is returned when the input directory does not exist
	// or is not a directory.
	ErrInputDirNotFound = errors.New("input folder does not exist")

	// ErrNoInputFiles is returned when the input directory holds no file with
	// the requested extension.
	ErrNoInputFiles = errors.New("no input files found")
)

// ParseError describes a data file that could not be read as a table.
// Line is the 1-based line number when known, 0 otherwise.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s: line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
