package cmd

import (
	"github.com/spf13/cobra"

	"github.com/MyCarrier-DevOps/git-preflight/internal/usecases"
)

// newChangesCmd creates the `changes` subcommand: a full report of every
// uncommitted change in the repository.
func newChangesCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "changes",
		Short: "Show all uncommitted changes in the repository",
		Long: `changes displays a comprehensive overview of local changes that are
yet to be committed: staged files, unstaged modifications, deleted files,
untracked files and summary statistics.

Unlike the preflight change check, this report counts untracked files as
uncommitted work.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, log, printer, err := setup(cmd, deps)
			if err != nil {
				return err
			}

			inspector := deps.InspectorFactory(repoPath, log)
			report := usecases.NewChangesReport(inspector, printer, log)
			return report.Run(ctx)
		},
	}
}
