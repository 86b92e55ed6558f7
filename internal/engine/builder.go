package engine

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rshade/paybatch/internal/dataset"
	"github.com/rshade/paybatch/internal/ingest"
	"github.com/rshade/paybatch/internal/logging"
)

// DefaultRowLimit is the maximum number of rows written to the report.
const DefaultRowLimit = 10

// Options tunes a BatchReportBuilder. Zero values select the defaults.
type Options struct {
	// Extension selects input files by suffix. Defaults to ".dat".
	Extension string
	// ReportFile is the report's file name inside the output folder.
	ReportFile string
	// RowLimit caps the number of rows kept after deduplication.
	RowLimit int
}

func (o Options) withDefaults() Options {
	if o.Extension == "" {
		o.Extension = ingest.DefaultExtension
	}
	if o.ReportFile == "" {
		o.ReportFile = DefaultReportFile
	}
	if o.RowLimit <= 0 {
		o.RowLimit = DefaultRowLimit
	}
	return o
}

// Result describes a completed run.
type Result struct {
	// Files are the input files discovered, in processing order.
	Files []string
	// Skipped holds the files that could not be parsed.
	Skipped []*ingest.ParseError
	// DistinctRows is the row count after merging and deduplication.
	DistinctRows int
	// Report is the table written, including gross_salary. Nil when nothing
	// was written.
	Report *dataset.Table
	// Summary holds the footer statistics.
	Summary Summary
	// OutputPath is the report path. Empty when nothing was written.
	OutputPath string
	// Written is false when no valid data was found.
	Written bool
}

// BatchReportBuilder turns a folder of payroll data files into a single
// capped CSV report with a statistics footer. Status lines go to the status
// writer; structured logs go to the logger carried by the run's context.
type BatchReportBuilder struct {
	opts   Options
	status io.Writer
}

// NewBatchReportBuilder returns a builder writing status lines to status.
// A nil status writer discards them.
func NewBatchReportBuilder(opts Options, status io.Writer) *BatchReportBuilder {
	if status == nil {
		status = io.Discard
	}
	return &BatchReportBuilder{opts: opts.withDefaults(), status: status}
}

// Run executes the pipeline: discover, parse and merge, deduplicate, limit,
// compute gross salary, summarize and write.
//
// A file that fails to parse is reported and skipped. Discovery failures
// (ingest.ErrInputDirNotFound, ingest.ErrNoInputFiles) and missing columns
// (*MissingColumnError) abort the run before anything is written. When the
// merged data is empty the run writes nothing and returns a Result with
// Written set to false and a nil error.
func (b *BatchReportBuilder) Run(ctx context.Context, inputDir, outputDir string) (*Result, error) {
	log := logging.FromContext(ctx).With().
		Str("component", "engine").
		Str("operation", "BatchReportBuilder.Run").
		Logger()

	files, err := ingest.DiscoverDatFiles(inputDir, b.opts.Extension)
	if err != nil {
		log.Error().Err(err).Str("input_dir", inputDir).Msg("input discovery failed")
		return nil, err
	}
	log.Debug().Int("file_count", len(files)).Msg("input files discovered")

	result := &Result{Files: files}

	merged := b.load(ctx, files, result)
	if err = ctx.Err(); err != nil {
		return nil, err
	}

	distinct := dataset.DropDuplicates(merged)
	result.DistinctRows = distinct.Len()
	log.Debug().
		Int("merged_rows", merged.Len()).
		Int("distinct_rows", distinct.Len()).
		Msg("rows merged")

	if distinct.Empty() {
		log.Warn().Int("skipped_files", len(result.Skipped)).Msg("no valid data found")
		b.printf("No valid data found to process.\n")
		return result, nil
	}

	limited := dataset.Head(distinct, b.opts.RowLimit)

	report, err := ComputeGross(limited)
	if err != nil {
		log.Error().Err(err).Msg("gross salary computation failed")
		return nil, err
	}

	values := GrossValues(report)
	result.Summary = Summarize(values)
	if dropped := report.Len() - len(values); dropped > 0 {
		log.Warn().Int("rows", dropped).Msg("rows without a numeric gross salary excluded from statistics")
	}

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	path, err := WriteReport(outputDir, b.opts.ReportFile, report, result.Summary)
	if err != nil {
		log.Error().Err(err).Str("output_dir", outputDir).Msg("writing report failed")
		return nil, err
	}

	result.Report = report
	result.OutputPath = path
	result.Written = true

	log.Info().
		Str("output_path", path).
		Int("rows", report.Len()).
		Str("second_highest", result.Summary.SecondHighest.String()).
		Str("average", result.Summary.Average.String()).
		Msg("report written")
	b.printf("Processed data saved to: %s\n", path)

	return result, nil
}

// load parses every file and concatenates the tables that parsed, recording
// the failures on result.
func (b *BatchReportBuilder) load(ctx context.Context, files []string, result *Result) *dataset.Table {
	log := logging.FromContext(ctx)

	tables := make([]*dataset.Table, 0, len(files))
	for _, path := range files {
		if ctx.Err() != nil {
			break
		}

		tbl, err := ingest.ReadDatFile(path)
		if err != nil {
			var pe *ingest.ParseError
			if !errors.As(err, &pe) {
				pe = &ingest.ParseError{Path: path, Err: err}
			}
			result.Skipped = append(result.Skipped, pe)
			log.Warn().Err(err).Str("file", path).Msg("skipping unreadable file")
			b.printf("Error reading file %v\n", pe)
			continue
		}

		log.Debug().Str("file", path).Int("rows", tbl.Len()).Msg("file parsed")
		tables = append(tables, tbl)
	}

	return dataset.Concat(tables...)
}

func (b *BatchReportBuilder) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(b.status, format, args...)
}
