package config

import (
	"github.com/rshade/paybatch/internal/logging"
)

// LoggingConfig controls structured log output.
type LoggingConfig struct {
	Level  string `yaml:"level"          validate:"oneof=trace debug info warn error"`
	Format string `yaml:"format"         validate:"oneof=console json"`
	File   string `yaml:"file,omitempty"`
}

// ToLoggingConfig converts config.LoggingConfig to logging.Config for use with
// the internal/logging package.
//
// The conversion applies these rules:
//   - Level, Format are copied directly
//   - If File is set, Output becomes "file" and File is passed through
//   - If File is empty, Output defaults to "stderr"
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
		Caller: false,
	}
}
