// Package config provides configuration loading for the git-preflight
// application. All settings come from environment variables with sensible
// defaults; the tool must work in any checkout with zero setup.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable names.
const (
	// EnvLogLevel is the log level (debug, info, error).
	EnvLogLevel = "LOG_LEVEL"

	// EnvLogAppName is the application name for log context.
	EnvLogAppName = "LOG_APP_NAME"

	// EnvHistoryFile is the path of the usage-history JSON file.
	EnvHistoryFile = "STATS_HISTORY_FILE"

	// EnvStatsCommand is the command line that prints the usage report.
	EnvStatsCommand = "STATS_COMMAND"
)

// Default values.
const (
	DefaultLogLevel     = "info"
	DefaultLogAppName   = "git-preflight"
	DefaultHistoryFile  = ".stats-history.json"
	DefaultStatsCommand = "opencode stats"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (debug, info, error).
	LogLevel string

	// LogAppName is the application name for log context.
	LogAppName string

	// HistoryFile is the usage-history JSON file path.
	HistoryFile string

	// StatsCommand is the argv of the external usage-report command.
	StatsCommand []string
}

// Load loads the application configuration from environment variables,
// falling back to defaults for anything unset.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("log_level", DefaultLogLevel)
	v.SetDefault("log_app_name", DefaultLogAppName)
	v.SetDefault("history_file", DefaultHistoryFile)
	v.SetDefault("stats_command", DefaultStatsCommand)

	for key, env := range map[string]string{
		"log_level":     EnvLogLevel,
		"log_app_name":  EnvLogAppName,
		"history_file":  EnvHistoryFile,
		"stats_command": EnvStatsCommand,
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	statsCommand := strings.Fields(v.GetString("stats_command"))
	if len(statsCommand) == 0 {
		statsCommand = strings.Fields(DefaultStatsCommand)
	}

	return &Config{
		LogLevel:     v.GetString("log_level"),
		LogAppName:   v.GetString("log_app_name"),
		HistoryFile:  v.GetString("history_file"),
		StatsCommand: statsCommand,
	}, nil
}
