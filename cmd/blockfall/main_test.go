package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blockfall/internal/config"
)

func TestPortOf(t *testing.T) {
	assert.Equal(t, "23234", portOf(":23234"))
	assert.Equal(t, "2222", portOf("0.0.0.0:2222"))
	assert.Equal(t, "nonsense", portOf("nonsense"))
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "x", "y.log"), expandHome("~/x/y.log"))
	assert.Equal(t, "/tmp/y.log", expandHome("/tmp/y.log"))
}

func TestNewLoggerRejectsUnknownLevel(t *testing.T) {
	flagLogLevel, flagLogFile = "loud", ""
	t.Cleanup(func() { flagLogLevel = "info" })

	_, _, err := newLogger(&bytes.Buffer{})
	assert.Error(t, err)
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "blockfall.log")
	flagLogLevel, flagLogFile = "debug", path
	t.Cleanup(func() { flagLogLevel, flagLogFile = "info", "" })

	logger, closeLog, err := newLogger(&bytes.Buffer{})
	require.NoError(t, err)
	logger.Debug("hello", "k", 1)
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestConfigCommandPrintsEffectiveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blockfall.yaml")
	require.NoError(t, os.WriteFile(path, []byte("field:\n  width: 12\n"), 0o600))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "--config", path})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		flagConfig = ""
	})
	require.NoError(t, rootCmd.Execute())

	var got config.BlockfallConfig
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 12, got.Field.Width)
	assert.Equal(t, config.DefaultBlockfallConfig().Field.Height, got.Field.Height)
	assert.Equal(t, config.DefaultBlockfallConfig().Controls, got.Controls)
}
