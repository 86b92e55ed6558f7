package engine

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rshade/paybatch/internal/dataset"
)

// DefaultReportFile is the name of the report written into the output folder.
const DefaultReportFile = "result.csv"

// Footer labels.
const (
	SecondHighestLabel = "Second Highest Salary"
	AverageLabel       = "Average Salary"
)

// RenderReport writes the report body for t followed by the summary footer.
//
// The body is CSV with ReportColumns as the header. The footer is a blank
// line and two "label: value" lines. Every report column must exist in t.
func RenderReport(w io.Writer, t *dataset.Table, summary Summary) error {
	if t == nil {
		return ErrNilTable
	}

	records, err := t.Select(ReportColumns)
	if err != nil {
		return asMissingColumn(err)
	}

	cw := csv.NewWriter(w)
	if err = cw.Write(ReportColumns); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, rec := range records {
		if err = cw.Write(rec); err != nil {
			return fmt.Errorf("writing record %d: %w", i, err)
		}
	}
	cw.Flush()
	if err = cw.Error(); err != nil {
		return fmt.Errorf("flushing report: %w", err)
	}

	if _, err = fmt.Fprintf(w, "\n%s: %s\n%s: %s\n",
		SecondHighestLabel, summary.SecondHighest,
		AverageLabel, summary.Average,
	); err != nil {
		return fmt.Errorf("writing footer: %w", err)
	}
	return nil
}

// WriteReport creates outputDir if needed and writes the report to
// outputDir/fileName, replacing any existing file. It returns the path
// written.
func WriteReport(outputDir, fileName string, t *dataset.Table, summary Summary) (string, error) {
	if fileName == "" {
		fileName = DefaultReportFile
	}

	// Validate before touching the filesystem so a bad table leaves no file.
	if err := CheckReportColumns(t); err != nil {
		return "", err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output folder: %w", err)
	}

	path := filepath.Join(outputDir, fileName)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("opening report file: %w", err)
	}

	if err = RenderReport(f, t, summary); err != nil {
		_ = f.Close()
		return "", err
	}
	if err = f.Close(); err != nil {
		return "", fmt.Errorf("closing report file: %w", err)
	}
	return path, nil
}

// CheckReportColumns returns a *MissingColumnError naming every report
// column absent from t.
func CheckReportColumns(t *dataset.Table) error {
	if t == nil {
		return ErrNilTable
	}
	var missing []string
	for _, c := range ReportColumns {
		if !t.HasColumn(c) {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnError{Columns: missing}
	}
	return nil
}

func asMissingColumn(err error) error {
	var mc *dataset.MissingColumnsError
	if errors.As(err, &mc) {
		return &MissingColumnError{Columns: mc.Columns}
	}
	return err
}
