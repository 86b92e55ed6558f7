package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/paybatch/internal/config"
	"github.com/rshade/paybatch/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// skipConfigAnnotation marks commands that must run even when the config file
// cannot be loaded, such as config init --force.
const skipConfigAnnotation = "paybatch/skip-config"

// errConfigNotFound is reported when --config or PAYBATCH_CONFIG names a file
// that does not exist.
var errConfigNotFound = errors.New("config file not found")

// rootOptions holds flag values and the state prepared before a command runs.
type rootOptions struct {
	configPath string
	inputDir   string
	outputDir  string
	debug      bool
	preview    bool

	cfg       *config.Config
	cfgPath   string
	logResult *logging.LogPathResult
}

// NewRootCmd creates the root Cobra command for the paybatch CLI.
// Running it without a subcommand builds the report.
func NewRootCmd(ver string) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "paybatch",
		Short: "Merge payroll data files into a single CSV report",
		Long: `paybatch reads every tab-separated .dat file in the input folder, merges
and deduplicates the records, keeps the first rows up to the row limit,
adds gross_salary = basic_salary + allowances, and writes result.csv to the
output folder with the second highest and average gross salary appended.`,
		Version:       ver,
		Example:       rootCmdExample,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.prepare(cmd)
		},
		RunE: opts.withLogCleanup(func(cmd *cobra.Command, _ []string) error {
			return runReport(cmd, opts)
		}),
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "",
		"config file (default $HOME/.paybatch/config.yaml, or $PAYBATCH_CONFIG)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	cmd.Flags().StringVarP(&opts.inputDir, "input-dir", "i", "",
		"folder holding the .dat files (default ./employee_info)")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "",
		"folder receiving result.csv (default ./employee_result)")
	cmd.Flags().BoolVar(&opts.preview, "preview", false,
		"open an interactive preview of the written report when attached to a terminal")

	cmd.AddCommand(newConfigCmd(opts))

	return cmd
}

// prepare loads configuration, applies flag overrides and sets up logging.
func (o *rootOptions) prepare(cmd *cobra.Command) error {
	path, explicit := config.ResolveConfigPath(o.configPath)
	o.cfgPath = path
	if o.cfgPath == "" {
		o.cfgPath = config.DefaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil && explicit && errors.Is(err, fs.ErrNotExist) {
		err = fmt.Errorf("%w: %s (set by --config or %s, create it with 'paybatch config init')",
			errConfigNotFound, path, config.EnvConfigPath)
	}
	if err != nil {
		if cmd.Annotations[skipConfigAnnotation] != "true" {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration error: %v\n", err)
			return &ExitError{Code: ExitCodeConfig, Err: err}
		}
		cfg = config.New()
	}

	if o.inputDir != "" {
		cfg.Input.Dir = o.inputDir
	}
	if o.outputDir != "" {
		cfg.Output.Dir = o.outputDir
	}
	o.cfg = cfg

	result := setupLogging(cmd, cfg, o.debug)
	o.logResult = &result
	if path != "" {
		logger.Debug().Ctx(cmd.Context()).Str("config_path", path).Msg("configuration loaded")
	}
	return nil
}

// withLogCleanup closes the log file once run returns. Post-run hooks are
// skipped when RunE fails, so every RunE is wrapped instead.
func (o *rootOptions) withLogCleanup(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		defer func() { _ = cleanupLogging(o.logResult) }()
		return run(cmd, args)
	}
}

const rootCmdExample = `  # Build the report from ./employee_info into ./employee_result
  paybatch

  # Use explicit folders
  paybatch --input-dir /data/payroll/today --output-dir /data/reports

  # Open an interactive preview after writing the report
  paybatch --preview

  # Write a config file with the defaults
  paybatch config init

  # Show the effective configuration
  paybatch config show`
