package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MyCarrier-DevOps/git-preflight/internal/domain"
	"github.com/MyCarrier-DevOps/git-preflight/internal/usecases"
)

// costName is the snapshot name flag for the cost subcommand.
var costName string

// newCostCmd creates the `cost` subcommand: parse the configured usage
// report, track history and print current numbers plus the delta as JSON.
func newCostCmd(deps *Dependencies) *cobra.Command {
	costCmd := &cobra.Command{
		Use:   "cost",
		Short: "Parse usage stats and track cost history",
		Long: `cost runs the configured usage-report command (STATS_COMMAND, default
"opencode stats"), parses its output into numeric fields, appends a snapshot
to the history file when the numbers changed, and prints JSON with "current"
and "delta" fields.

Deltas are computed against the most recent history entry with the same
--name.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCost(cmd, deps)
		},
	}

	costCmd.Flags().StringVar(&costName, "name", "default",
		"Name for this stats snapshot")

	return costCmd
}

// runCost executes the cost tracker with injected dependencies. All output,
// including the error object, is JSON on stdout.
func runCost(cmd *cobra.Command, deps *Dependencies) error {
	ctx, log, _, err := setup(cmd, deps)
	if err != nil {
		return err
	}

	stdout := deps.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	cfg, err := deps.ConfigLoader()
	if err != nil {
		log.Error(ctx, "failed to load configuration", err, nil)
		return fmt.Errorf("configuration error: %w", err)
	}

	tracker := usecases.NewCostTracker(
		deps.UsageSourceFactory(cfg, log),
		deps.UsageParserFactory(),
		deps.HistoryStoreFactory(cfg),
		log,
		deps.Clock,
	)

	report, err := tracker.Run(ctx, costName)
	if err != nil {
		if errors.Is(err, domain.ErrUsageUnavailable) {
			writeJSON(stdout, map[string]string{"error": "Failed to get usage stats"})
		}
		log.Error(ctx, "cost tracking failed", err, map[string]interface{}{
			"name": costName,
		})
		return err
	}

	writeJSON(stdout, report)

	log.Info(ctx, "cost tracking complete", map[string]interface{}{
		"name":             costName,
		"total_cost_cents": report.Current.TotalCostCents,
	})
	return nil
}

// writeJSON prints v as indented JSON. Encoding the report types cannot
// fail, so the error is intentionally ignored.
func writeJSON(out io.Writer, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return
	}
	_, _ = fmt.Fprintln(out, string(data))
}
