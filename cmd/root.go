// Package cmd provides the CLI commands for git-preflight.
package cmd

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/MyCarrier-DevOps/git-preflight/internal/domain"
	"github.com/MyCarrier-DevOps/git-preflight/internal/usecases"
)

// Logger defines the logging interface used by the commands.
type Logger interface {
	Info(ctx context.Context, msg string, fields map[string]interface{})
	Debug(ctx context.Context, msg string, fields map[string]interface{})
	Warn(ctx context.Context, msg string, fields map[string]interface{})
	Error(ctx context.Context, msg string, err error, fields map[string]interface{})
}

// Dependencies holds all injectable dependencies for the commands.
// This enables testing by allowing mock implementations to be injected.
type Dependencies struct {
	// LoggerFactory creates a logger instance.
	LoggerFactory func() Logger

	// ConfigLoader loads application configuration.
	ConfigLoader func() (*AppConfig, error)

	// InspectorFactory creates a RepositoryInspector for the given path.
	// An empty path means the current process directory.
	InspectorFactory func(path string, log Logger) domain.RepositoryInspector

	// PrinterFactory creates a ConsolePrinter writing to the given writer.
	PrinterFactory func(out io.Writer) domain.ConsolePrinter

	// UsageSourceFactory creates the usage-report source for the cost command.
	UsageSourceFactory func(cfg *AppConfig, log Logger) domain.UsageSource

	// UsageParserFactory creates the usage-report parser.
	UsageParserFactory func() usecases.Parser

	// HistoryStoreFactory creates the usage-history store.
	HistoryStoreFactory func(cfg *AppConfig) domain.HistoryStore

	// Clock supplies the current time; nil means time.Now.
	Clock func() time.Time

	// Stdout is the writer for all user-facing output. The preflight
	// workflow writes its diagnostics here too, not to stderr.
	Stdout io.Writer

	// Stderr is the writer reserved for cobra's own error reporting.
	Stderr io.Writer
}

// AppConfig holds application configuration loaded by ConfigLoader.
type AppConfig struct {
	// LogLevel is the log level setting.
	LogLevel string

	// LogAppName is the application name for logging.
	LogAppName string

	// HistoryFile is the usage-history JSON file path.
	HistoryFile string

	// StatsCommand is the argv of the external usage-report command.
	StatsCommand []string
}

// Command-line flags.
var (
	repoPath string
	verbose  bool
)

// defaultDeps holds the production dependencies.
// This is set by the production wiring in main or via SetDefaultDependencies.
var defaultDeps *Dependencies

// SetDefaultDependencies sets the default dependencies for production use.
// This should be called from main() before Execute().
func SetDefaultDependencies(deps *Dependencies) {
	defaultDeps = deps
}

// NewRootCmd creates the root command for git-preflight.
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithDeps(defaultDeps)
}

// NewRootCmdWithDeps creates the root command with explicit dependencies.
// This is the primary constructor that enables testing via dependency injection.
func NewRootCmdWithDeps(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "git-preflight [branch-name]",
		Short: "Prepare a repository for a signed commit",
		Long: `git-preflight runs the deterministic pre-commit checks:

1. Verifies GPG signing is configured (user.email and user.signingkey)
2. Checks the current branch
3. Creates and switches to a semantic feature branch when on main/master
   or in a detached HEAD state
4. Reports whether there is anything to commit

The optional positional argument overrides the generated branch name and
is used verbatim.

Examples:
  # Run the preflight checks in the current directory
  git-preflight

  # Force a specific branch name
  git-preflight feature/my-change

  # Run against another repository
  git-preflight -C /path/to/repo

  # Enable verbose logging
  git-preflight -v`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreflight(cmd, args, deps)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&repoPath, "path", "C", "",
		"Repository working directory (default: current directory)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose/debug logging")

	rootCmd.AddCommand(newChangesCmd(deps))
	rootCmd.AddCommand(newCostCmd(deps))

	return rootCmd
}

// setup performs the initialization shared by every command: the verbose
// override, the logger and the user-facing printer.
func setup(cmd *cobra.Command, deps *Dependencies) (context.Context, Logger, domain.ConsolePrinter, error) {
	if deps == nil || deps.PrinterFactory == nil || deps.InspectorFactory == nil {
		return nil, nil, nil, errors.New("dependencies not configured")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Raise the log level before the logger factory reads it (best-effort).
	if verbose {
		_ = os.Setenv("LOG_LEVEL", "debug")
	}

	log := loggerFrom(deps)

	stdout := deps.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	printer := deps.PrinterFactory(stdout)

	return ctx, log, printer, nil
}

// loggerFrom returns the configured logger, or a no-op one when the wiring
// left the factory unset.
func loggerFrom(deps *Dependencies) Logger {
	if deps.LoggerFactory == nil {
		return nopLogger{}
	}
	return deps.LoggerFactory()
}

// nopLogger discards all log output.
type nopLogger struct{}

func (nopLogger) Info(_ context.Context, _ string, _ map[string]interface{})           {}
func (nopLogger) Debug(_ context.Context, _ string, _ map[string]interface{})          {}
func (nopLogger) Warn(_ context.Context, _ string, _ map[string]interface{})           {}
func (nopLogger) Error(_ context.Context, _ string, _ error, _ map[string]interface{}) {}

// runPreflight executes the commit-readiness workflow with injected dependencies.
func runPreflight(cmd *cobra.Command, args []string, deps *Dependencies) error {
	ctx, log, printer, err := setup(cmd, deps)
	if err != nil {
		return err
	}

	override := ""
	if len(args) > 0 {
		override = args[0]
	}

	log.Info(ctx, "starting preflight", map[string]interface{}{
		"path":     repoPath,
		"override": override,
		"verbose":  verbose,
	})

	inspector := deps.InspectorFactory(repoPath, log)
	workflow := usecases.NewPreflight(inspector, printer, log, deps.Clock)

	result, err := workflow.Run(ctx, domain.PreflightInput{BranchOverride: override})
	if err != nil {
		log.Error(ctx, "preflight failed", err, nil)
		return err
	}

	log.Info(ctx, "preflight complete", map[string]interface{}{
		"state":          string(result.State),
		"branch":         result.Branch,
		"branch_created": result.BranchCreated,
	})
	return nil
}

// Execute runs the root command.
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
