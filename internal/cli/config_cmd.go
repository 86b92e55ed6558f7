package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/paybatch/internal/config"
)

// newConfigCmd creates the config command group.
func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		newConfigInitCmd(opts),
		newConfigShowCmd(opts),
		newConfigValidateCmd(opts),
	)
	return cmd
}

// newConfigInitCmd creates the config init command, which writes the default
// configuration to the resolved config path.
func newConfigInitCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Example: `  # Create $HOME/.paybatch/config.yaml
  paybatch config init

  # Create the file somewhere else, overwriting it if present
  paybatch config init --config ./paybatch.yaml --force`,
		Annotations: map[string]string{skipConfigAnnotation: "true"},
		Args:        cobra.NoArgs,
		RunE: opts.withLogCleanup(func(cmd *cobra.Command, _ []string) error {
			path := opts.cfgPath
			if path == "" {
				return errors.New("cannot determine config path, pass --config")
			}

			if err := config.New().WriteFile(path, force); err != nil {
				if errors.Is(err, config.ErrConfigExists) {
					return fmt.Errorf("%w, use --force to overwrite", err)
				}
				return err
			}

			logger.Info().Ctx(cmd.Context()).Str("config_path", path).Msg("configuration initialized")
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to: %s\n", path)
			return nil
		}),
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	return cmd
}

// newConfigShowCmd prints the effective configuration as YAML.
func newConfigShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: opts.withLogCleanup(func(cmd *cobra.Command, _ []string) error {
			data, err := opts.cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}),
	}
}

// newConfigValidateCmd reports whether the effective configuration is valid.
// An invalid file or environment already fails in the root pre-run.
func newConfigValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the effective configuration",
		Args:  cobra.NoArgs,
		RunE: opts.withLogCleanup(func(cmd *cobra.Command, _ []string) error {
			if err := opts.cfg.Validate(); err != nil {
				return &ExitError{Code: ExitCodeConfig, Err: err}
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Configuration is valid")
			return nil
		}),
	}
}
