package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultLogAppName, cfg.LogAppName)
	assert.Equal(t, DefaultHistoryFile, cfg.HistoryFile)
	assert.Equal(t, []string{"opencode", "stats"}, cfg.StatsCommand)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvLogAppName, "preflight-test")
	t.Setenv(EnvHistoryFile, "/tmp/history.json")
	t.Setenv(EnvStatsCommand, "mytool usage --json")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "preflight-test", cfg.LogAppName)
	assert.Equal(t, "/tmp/history.json", cfg.HistoryFile)
	assert.Equal(t, []string{"mytool", "usage", "--json"}, cfg.StatsCommand)
}

func TestLoad_BlankStatsCommandFallsBackToDefault(t *testing.T) {
	t.Setenv(EnvStatsCommand, "   ")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"opencode", "stats"}, cfg.StatsCommand)
}
