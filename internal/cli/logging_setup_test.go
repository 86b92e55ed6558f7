package cli

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/paybatch/internal/logging"
)

func TestWithLogCleanup_ClosesLogFileOnError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "paybatch.log")
	result := logging.NewLoggerWithPath(logging.Config{
		Level:  "info",
		Output: logging.OutputFile,
		File:   path,
	})
	require.True(t, result.UsingFile)

	opts := &rootOptions{logResult: &result}
	runErr := errors.New("run failed")
	run := opts.withLogCleanup(func(_ *cobra.Command, _ []string) error {
		result.Logger.Info().Msg("during run")
		return runErr
	})

	require.ErrorIs(t, run(&cobra.Command{}, nil), runErr)

	result.Logger.Info().Msg("after cleanup")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "during run")
	assert.NotContains(t, string(data), "after cleanup", "log file must be closed")
	assert.NoError(t, cleanupLogging(&result), "closing twice is harmless")
}

func TestWithLogCleanup_NoLogger(t *testing.T) {
	t.Parallel()

	opts := &rootOptions{}
	run := opts.withLogCleanup(func(_ *cobra.Command, _ []string) error { return nil })
	assert.NoError(t, run(&cobra.Command{}, nil))
}
