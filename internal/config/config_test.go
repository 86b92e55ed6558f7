package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/paybatch/internal/config"
	"github.com/rshade/paybatch/internal/logging"
)

// writeConfig is a test helper that writes YAML content to a temp file
// and returns its path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNew_Defaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, "employee_info", cfg.Input.Dir)
	assert.Equal(t, ".dat", cfg.Input.Extension)
	assert.Equal(t, "employee_result", cfg.Output.Dir)
	assert.Equal(t, "result.csv", cfg.Output.File)
	assert.Equal(t, 10, cfg.Report.RowLimit)
	assert.Equal(t, "info", cfg.Logging.Level)
	require.NoError(t, cfg.Validate())
}

func TestShallowMergeYAML_PartialSection(t *testing.T) {
	cfg := config.New()
	path := writeConfig(t, `
input:
  dir: /data/in
report:
  row_limit: 25
unknown_section:
  anything: true
`)

	require.NoError(t, config.ShallowMergeYAML(cfg, path))
	assert.Equal(t, "/data/in", cfg.Input.Dir)
	assert.Equal(t, ".dat", cfg.Input.Extension, "omitted field keeps its value")
	assert.Equal(t, 25, cfg.Report.RowLimit)
	assert.Equal(t, "employee_result", cfg.Output.Dir, "absent section is unchanged")
}

func TestShallowMergeYAML_EmptyFile(t *testing.T) {
	cfg := config.New()
	require.NoError(t, config.ShallowMergeYAML(cfg, writeConfig(t, "# nothing here\n")))
	assert.Equal(t, config.New(), cfg)
}

func TestShallowMergeYAML_Errors(t *testing.T) {
	t.Run("nil target", func(t *testing.T) {
		assert.Error(t, config.ShallowMergeYAML(nil, "x.yaml"))
	})

	t.Run("missing file", func(t *testing.T) {
		err := config.ShallowMergeYAML(config.New(), filepath.Join(t.TempDir(), "none.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		err := config.ShallowMergeYAML(config.New(), writeConfig(t, "input: [unclosed"))
		assert.Error(t, err)
	})

	t.Run("wrong type", func(t *testing.T) {
		err := config.ShallowMergeYAML(config.New(), writeConfig(t, "report:\n  row_limit: lots\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"report"`)
	})
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("PAYBATCH_INPUT_DIR", "/env/in")
	t.Setenv("PAYBATCH_ROW_LIMIT", "3")
	t.Setenv("PAYBATCH_LOG_LEVEL", "debug")

	cfg := config.New()
	cfg.Output.Dir = "/from/file"
	require.NoError(t, config.ApplyEnv(cfg))

	assert.Equal(t, "/env/in", cfg.Input.Dir)
	assert.Equal(t, 3, cfg.Report.RowLimit)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "/from/file", cfg.Output.Dir, "unset variables leave values alone")
}

func TestApplyEnv_BadValue(t *testing.T) {
	t.Setenv("PAYBATCH_ROW_LIMIT", "ten")
	assert.Error(t, config.ApplyEnv(config.New()))
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, `
output:
  dir: /file/out
logging:
  level: warn
`)
	t.Setenv("PAYBATCH_LOG_LEVEL", "error")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/file/out", cfg.Output.Dir)
	assert.Equal(t, "error", cfg.Logging.Level, "env beats file")
	assert.Equal(t, "employee_info", cfg.Input.Dir, "defaults fill the rest")
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.New(), cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantMsg string
	}{
		{name: "row limit zero", mutate: func(c *config.Config) { c.Report.RowLimit = 0 }, wantMsg: "report.row_limit must be at least 1"},
		{name: "row limit huge", mutate: func(c *config.Config) { c.Report.RowLimit = 5000 }, wantMsg: "report.row_limit must be at most 1000"},
		{name: "no input dir", mutate: func(c *config.Config) { c.Input.Dir = "" }, wantMsg: "input.dir is required"},
		{name: "extension without dot", mutate: func(c *config.Config) { c.Input.Extension = "dat" }, wantMsg: "input.extension must start with"},
		{name: "file with path", mutate: func(c *config.Config) { c.Output.File = "sub/result.csv" }, wantMsg: "output.file must be a plain file name"},
		{name: "bad level", mutate: func(c *config.Config) { c.Logging.Level = "loud" }, wantMsg: "logging.level must be one of"},
		{name: "bad format", mutate: func(c *config.Config) { c.Logging.Format = "xml" }, wantMsg: "logging.format must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.New()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestResolveConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(config.EnvConfigPath, "")

	path, explicit := config.ResolveConfigPath("")
	assert.Empty(t, path, "default path is used only when the file exists")
	assert.False(t, explicit)

	def := filepath.Join(home, ".paybatch", "config.yaml")
	require.NoError(t, config.New().WriteFile(def, false))
	path, explicit = config.ResolveConfigPath("")
	assert.Equal(t, def, path)
	assert.False(t, explicit)

	t.Setenv(config.EnvConfigPath, "/env/config.yaml")
	path, explicit = config.ResolveConfigPath("")
	assert.Equal(t, "/env/config.yaml", path)
	assert.True(t, explicit)

	path, explicit = config.ResolveConfigPath("/flag/config.yaml")
	assert.Equal(t, "/flag/config.yaml", path)
	assert.True(t, explicit)
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	cfg := config.New()
	cfg.Report.RowLimit = 7

	require.NoError(t, cfg.WriteFile(path, false))
	assert.ErrorIs(t, cfg.WriteFile(path, false), config.ErrConfigExists)
	require.NoError(t, cfg.WriteFile(path, true))

	loaded := config.New()
	require.NoError(t, config.ShallowMergeYAML(loaded, path))
	assert.Equal(t, 7, loaded.Report.RowLimit)
}

func TestToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "debug", Format: "json"}
	got := lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputStderr, got.Output)

	lc.File = "/var/log/paybatch.log"
	got = lc.ToLoggingConfig()
	assert.Equal(t, logging.OutputFile, got.Output)
	assert.Equal(t, "/var/log/paybatch.log", got.File)
	assert.Equal(t, "debug", got.Level)
}
