package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/paybatch/internal/engine"
	"github.com/rshade/paybatch/internal/ingest"
)

// runReport builds the report with the prepared configuration and prints the
// outcome. Aborted runs return an *ExitError after printing a diagnostic.
func runReport(cmd *cobra.Command, opts *rootOptions) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	cfg := opts.cfg

	inputDir, err := filepath.Abs(cfg.Input.Dir)
	if err != nil {
		return reportRunError(cmd, fmt.Errorf("resolving input folder: %w", err))
	}
	outputDir, err := filepath.Abs(cfg.Output.Dir)
	if err != nil {
		return reportRunError(cmd, fmt.Errorf("resolving output folder: %w", err))
	}

	logger.Debug().Ctx(ctx).
		Str("input_dir", inputDir).
		Str("output_dir", outputDir).
		Int("row_limit", cfg.Report.RowLimit).
		Msg("starting report run")

	builder := engine.NewBatchReportBuilder(engine.Options{
		Extension:  cfg.Input.Extension,
		ReportFile: cfg.Output.File,
		RowLimit:   cfg.Report.RowLimit,
	}, out)

	result, err := builder.Run(ctx, inputDir, outputDir)
	if err != nil {
		return reportRunError(cmd, err)
	}
	if !result.Written {
		return nil
	}

	if err = RenderRunSummary(out, result); err != nil {
		return reportRunError(cmd, err)
	}

	if opts.preview {
		if !isWriterTerminal(out) {
			cmd.PrintErrln("Warning: --preview needs an interactive terminal, skipping preview")
			return nil
		}
		if err = runPreview(ctx, result); err != nil {
			return reportRunError(cmd, err)
		}
	}

	return nil
}

// reportRunError prints the diagnostic line for err and wraps it with the
// matching exit code.
func reportRunError(cmd *cobra.Command, err error) error {
	code, msg := classifyRunError(err)
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), msg)
	logger.Error().Ctx(cmd.Context()).Err(err).Int("exit_code", code).Msg("report run aborted")
	return &ExitError{Code: code, Err: err}
}

// classifyRunError maps a run failure to its exit code and user-facing line.
func classifyRunError(err error) (int, string) {
	var missing *engine.MissingColumnError
	switch {
	case errors.Is(err, ingest.ErrInputDirNotFound), errors.Is(err, ingest.ErrNoInputFiles):
		return ExitCodeNotFound, "File not found error: " + err.Error()
	case errors.As(err, &missing):
		return ExitCodeMissingColumn, "Missing column error: " + err.Error()
	default:
		return ExitCodeUnexpected, "An unexpected error occurred: " + err.Error()
	}
}
