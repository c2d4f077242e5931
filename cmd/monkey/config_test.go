package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "monkey.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaultsWhenFileAbsent(t *testing.T) {
	t.Chdir(t.TempDir())
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultCLIConfig(), cfg)
}

func TestLoadConfigReadsFields(t *testing.T) {
	path := writeConfig(t, `
step_quota: 5000
recursion_limit: 64
log_level: debug
prompt: "monkey> "
history_file: /tmp/monkey_history
`)
	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cliConfig{
		StepQuota:      5000,
		RecursionLimit: 64,
		LogLevel:       "debug",
		Prompt:         "monkey> ",
		HistoryFile:    "/tmp/monkey_history",
	}, cfg)
	assert.Equal(t, "/tmp/monkey_history", cfg.historyPath())
}

func TestLoadConfigEmptyFileKeepsDefaults(t *testing.T) {
	cfg, err := loadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, defaultCLIConfig(), cfg)
}

func TestLoadConfigRejectsUnknownFields(t *testing.T) {
	_, err := loadConfig(writeConfig(t, "step_qouta: 10\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field step_qouta not found")
}

func TestLoadConfigRejectsNegativeLimits(t *testing.T) {
	_, err := loadConfig(writeConfig(t, "recursion_limit: -1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "recursion_limit must not be negative")
}

func TestNewLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger("warn", &buf)
	require.NoError(t, err)
	logger.Info("hidden")
	logger.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestConfigEngineUsesLimits(t *testing.T) {
	cfg := cliConfig{StepQuota: 10, RecursionLimit: 3}
	engine, err := cfg.engine(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "steps=10 recursion=3", engine.ConfigSummary())
}
