package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rshade/paybatch/internal/dataset"
)

// utf8BOM is stripped from the first header name. Spreadsheet exports often
// start with one.
const utf8BOM = "\ufeff"

// errNoColumns is wrapped in a ParseError when a file has no header row.
var errNoColumns = errors.New("no columns to parse from file")

// ReadDatFile parses a tab-separated file whose first line is the header.
//
// Empty fields become missing cells, short rows are padded with missing
// cells, and blank lines are skipped. A row with more fields than the header
// fails the whole file. Repeated header names are renamed name.1, name.2,
// and blank ones become "Unnamed: <index>". A leading byte-order mark is
// ignored.
// Every failure is returned as a *ParseError.
func ReadDatFile(path string) (*dataset.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	return ReadDat(path, f)
}

// ReadDat parses tab-separated data from r. name is used in error messages.
func ReadDat(name string, r io.Reader) (*dataset.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &ParseError{Path: name, Err: errNoColumns}
	}
	if err != nil {
		return nil, wrapCSVError(name, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	columns := dedupeHeader(header)

	var rows []dataset.Row
	for {
		rec, readErr := cr.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, wrapCSVError(name, readErr)
		}
		if len(rec) > len(columns) {
			line, _ := cr.FieldPos(0)
			return nil, &ParseError{
				Path: name,
				Line: line,
				Err:  fmt.Errorf("expected %d fields, saw %d", len(columns), len(rec)),
			}
		}
		rows = append(rows, toRow(rec))
	}

	tbl, err := dataset.New(columns, rows)
	if err != nil {
		return nil, &ParseError{Path: name, Err: err}
	}
	return tbl, nil
}

func toRow(rec []string) dataset.Row {
	row := make(dataset.Row, len(rec))
	for i, v := range rec {
		if v == "" {
			row[i] = dataset.Missing()
			continue
		}
		row[i] = dataset.Text(v)
	}
	return row
}

// dedupeHeader names blank header cells "Unnamed: <index>" and renames
// repeated column names so every column is addressable.
func dedupeHeader(header []string) []string {
	out := make([]string, len(header))
	used := make(map[string]bool, len(header))
	counts := make(map[string]int, len(header))
	for i, name := range header {
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		candidate := name
		for used[candidate] {
			counts[name]++
			candidate = name + "." + strconv.Itoa(counts[name])
		}
		used[candidate] = true
		out[i] = candidate
	}
	return out
}

func wrapCSVError(name string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Path: name, Line: pe.Line, Err: pe.Err}
	}
	return &ParseError{Path: name, Err: err}
}
