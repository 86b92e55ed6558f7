// Package config loads paybatch settings from defaults, an optional YAML
// file and PAYBATCH_* environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default values.
const (
	DefaultInputDir   = "employee_info"
	DefaultOutputDir  = "employee_result"
	DefaultExtension  = ".dat"
	DefaultReportFile = "result.csv"
	DefaultRowLimit   = 10
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "console"

	// EnvConfigPath names an explicit config file.
	EnvConfigPath = "PAYBATCH_CONFIG"

	configDirName  = ".paybatch"
	configFileName = "config.yaml"
)

// Config is the complete paybatch configuration.
type Config struct {
	Input   InputConfig   `yaml:"input"`
	Output  OutputConfig  `yaml:"output"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`
}

// InputConfig selects the data files to read.
type InputConfig struct {
	Dir       string `yaml:"dir"       validate:"required"`
	Extension string `yaml:"extension" validate:"required,startswith=."`
}

// OutputConfig locates the written report.
type OutputConfig struct {
	Dir  string `yaml:"dir"  validate:"required"`
	File string `yaml:"file" validate:"required,excludesall=/\\"`
}

// ReportConfig shapes the report contents.
type ReportConfig struct {
	RowLimit int `yaml:"row_limit" validate:"min=1,max=1000"`
}

// New returns a Config holding the defaults. Relative directories resolve
// against the process working directory at run time.
func New() *Config {
	return &Config{
		Input: InputConfig{
			Dir:       DefaultInputDir,
			Extension: DefaultExtension,
		},
		Output: OutputConfig{
			Dir:  DefaultOutputDir,
			File: DefaultReportFile,
		},
		Report: ReportConfig{
			RowLimit: DefaultRowLimit,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

// DefaultConfigPath returns $HOME/.paybatch/config.yaml, or "" when the home
// directory cannot be determined.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDirName, configFileName)
}

// ResolveConfigPath picks the config file to load. It checks, in order:
//  1. flagValue (--config)
//  2. PAYBATCH_CONFIG
//  3. DefaultConfigPath, only if the file exists
//
// explicit reports whether the path came from the flag or the environment,
// in which case a missing file is an error.
func ResolveConfigPath(flagValue string) (path string, explicit bool) {
	if flagValue != "" {
		return flagValue, true
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env, true
	}
	def := DefaultConfigPath()
	if def == "" {
		return "", false
	}
	if _, err := os.Stat(def); err != nil {
		return "", false
	}
	return def, false
}

// Load builds the effective configuration: defaults, then the YAML file at
// path (skipped when path is empty), then environment overrides. The result
// is validated.
func Load(path string) (*Config, error) {
	cfg := New()

	if path != "" {
		if err := ShallowMergeYAML(cfg, path); err != nil {
			return nil, err
		}
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Marshal renders cfg as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshalling config: %w", err)
	}
	return data, nil
}

// ErrConfigExists is returned by WriteFile when the target exists and
// overwrite is false.
var ErrConfigExists = errors.New("config file already exists")

// WriteFile writes cfg to path as YAML, creating parent directories.
func (c *Config) WriteFile(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrConfigExists, path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking config file %s: %w", path, err)
		}
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err = os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}
