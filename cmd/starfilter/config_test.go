package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// parsedRootCmd returns a root command whose flags have been parsed from args
// without running it.
func parsedRootCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()

	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := loadConfig(parsedRootCmd(t))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Empty(t, cfg.File)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	path := writeConfig(t, dir, "custom.yaml", "logging:\n  level: debug\n  format: json\n")

	cfg, err := loadConfig(parsedRootCmd(t, "--config", path))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, path, cfg.File)
}

func TestLoadConfigAutoDiscovery(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeConfig(t, dir, ".starfilter.yaml", "logging:\n  level: warn\n")

	cfg, err := loadConfig(parsedRootCmd(t))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	writeConfig(t, dir, ".starfilter.yaml", "logging:\n  level: warn\n  format: json\n")
	t.Setenv("STARFILTER_LOGGING_LEVEL", "error")

	cfg, err := loadConfig(parsedRootCmd(t))
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level, "environment overrides file")
	assert.Equal(t, "json", cfg.Logging.Format)

	cfg, err = loadConfig(parsedRootCmd(t, "--log-level", "trace"))
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.Logging.Level, "flag overrides environment")
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	_, err := loadConfig(parsedRootCmd(t, "--config", filepath.Join(dir, "missing.yaml")))
	assert.Error(t, err)

	writeConfig(t, dir, ".starfilter.yaml", "logging: [unclosed\n")
	_, err = loadConfig(parsedRootCmd(t))
	assert.Error(t, err)
}

func TestSetLogLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	tests := []struct {
		input    string
		expected zerolog.Level
	}{
		{input: "trace", expected: zerolog.TraceLevel},
		{input: "debug", expected: zerolog.DebugLevel},
		{input: "INFO", expected: zerolog.InfoLevel},
		{input: "warning", expected: zerolog.WarnLevel},
		{input: "error", expected: zerolog.ErrorLevel},
		{input: "loud", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			setLogLevel(tt.input)
			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}
