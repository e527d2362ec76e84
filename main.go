// Package main is the entry point for the git-preflight CLI application.
// git-preflight prepares a local Git repository for a signed commit: it
// verifies signing configuration, moves work off protected branches onto a
// semantic feature branch, and reports whether there is anything to commit.
package main

import (
	"io"
	"os"
	"time"

	"github.com/MyCarrier-DevOps/goLibMyCarrier/logger"

	"github.com/MyCarrier-DevOps/git-preflight/cmd"
	"github.com/MyCarrier-DevOps/git-preflight/internal/adapters/git"
	logadapter "github.com/MyCarrier-DevOps/git-preflight/internal/adapters/logger"
	"github.com/MyCarrier-DevOps/git-preflight/internal/adapters/output"
	"github.com/MyCarrier-DevOps/git-preflight/internal/adapters/stats"
	"github.com/MyCarrier-DevOps/git-preflight/internal/adapters/store"
	"github.com/MyCarrier-DevOps/git-preflight/internal/domain"
	"github.com/MyCarrier-DevOps/git-preflight/internal/infrastructure/config"
	"github.com/MyCarrier-DevOps/git-preflight/internal/usecases"
)

func main() {
	// Create a single shared logger instance for the application
	zapLog := logger.NewZapLoggerFromConfig()
	adapter := logadapter.NewZapAdapter(zapLog)

	// Wire up production dependencies
	deps := &cmd.Dependencies{
		LoggerFactory: func() cmd.Logger {
			return adapter
		},

		ConfigLoader: func() (*cmd.AppConfig, error) {
			cfg, err := config.Load()
			if err != nil {
				return nil, err
			}
			return &cmd.AppConfig{
				LogLevel:     cfg.LogLevel,
				LogAppName:   cfg.LogAppName,
				HistoryFile:  cfg.HistoryFile,
				StatsCommand: cfg.StatsCommand,
			}, nil
		},

		InspectorFactory: func(path string, _ cmd.Logger) domain.RepositoryInspector {
			return git.NewInspector(path, adapter)
		},

		PrinterFactory: func(out io.Writer) domain.ConsolePrinter {
			return output.NewWriterWithOutput(out)
		},

		UsageSourceFactory: func(cfg *cmd.AppConfig, _ cmd.Logger) domain.UsageSource {
			return stats.NewExecSource(cfg.StatsCommand, adapter)
		},

		UsageParserFactory: func() usecases.Parser {
			return stats.NewParser()
		},

		HistoryStoreFactory: func(cfg *cmd.AppConfig) domain.HistoryStore {
			return store.NewFileHistory(cfg.HistoryFile)
		},

		Clock: time.Now,

		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}

	cmd.SetDefaultDependencies(deps)
	cmd.Execute()
}
