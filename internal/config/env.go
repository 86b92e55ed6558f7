package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "PAYBATCH"

// envOverrides mirrors the overridable settings. Pointer fields stay nil when
// the variable is unset, so only variables that are present replace values.
type envOverrides struct {
	InputDir       *string `envconfig:"INPUT_DIR"`
	InputExtension *string `envconfig:"INPUT_EXTENSION"`
	OutputDir      *string `envconfig:"OUTPUT_DIR"`
	OutputFile     *string `envconfig:"OUTPUT_FILE"`
	RowLimit       *int    `envconfig:"ROW_LIMIT"`
	LogLevel       *string `envconfig:"LOG_LEVEL"`
	LogFormat      *string `envconfig:"LOG_FORMAT"`
	LogFile        *string `envconfig:"LOG_FILE"`
}

// ApplyEnv overlays PAYBATCH_* environment variables onto cfg.
func ApplyEnv(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Process(EnvPrefix, &env); err != nil {
		return fmt.Errorf("loading config from environment: %w", err)
	}

	setString(&cfg.Input.Dir, env.InputDir)
	setString(&cfg.Input.Extension, env.InputExtension)
	setString(&cfg.Output.Dir, env.OutputDir)
	setString(&cfg.Output.File, env.OutputFile)
	if env.RowLimit != nil {
		cfg.Report.RowLimit = *env.RowLimit
	}
	setString(&cfg.Logging.Level, env.LogLevel)
	setString(&cfg.Logging.Format, env.LogFormat)
	setString(&cfg.Logging.File, env.LogFile)

	return nil
}

func setString(dst, src *string) {
	if src != nil {
		*dst = *src
	}
}
