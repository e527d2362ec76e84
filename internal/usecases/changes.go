package usecases

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/MyCarrier-DevOps/git-preflight/internal/domain"
)

const sectionRule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// ChangesReport renders an overview of every uncommitted change in the
// repository: staged, unstaged and untracked files with per-kind
// breakdowns, diff-stat summaries and next-step hints.
//
// Unlike the preflight workflow's HasAnyChange, this view counts untracked
// files as uncommitted work.
type ChangesReport struct {
	inspector domain.RepositoryInspector
	printer   domain.ConsolePrinter
	logger    Logger
}

// NewChangesReport creates a ChangesReport with the given dependencies.
func NewChangesReport(inspector domain.RepositoryInspector, printer domain.ConsolePrinter, log Logger) *ChangesReport {
	return &ChangesReport{
		inspector: inspector,
		printer:   printer,
		logger:    log,
	}
}

// Run prints the report. Returns domain.ErrNotARepository when the working
// directory is not inside a git repository.
func (r *ChangesReport) Run(ctx context.Context) error {
	if r.inspector.GitDir(ctx) == "" {
		r.printer.Errorf("Error: Not a git repository")
		return domain.ErrNotARepository
	}

	r.printHeader()
	r.printRepoInfo(ctx)

	if !r.inspector.HasUncommittedWork(ctx) {
		r.printer.Successf("✓ Working directory clean - no uncommitted changes")
		return nil
	}

	r.printStaged(ctx)
	r.printUnstaged(ctx)
	r.printUntracked(ctx)
	r.printSummary(ctx)
	return nil
}

func (r *ChangesReport) printHeader() {
	r.printer.Headerf("========================================")
	r.printer.Headerf("   Uncommitted Changes Report")
	r.printer.Headerf("========================================")
	r.printer.Plainf("")
}

func (r *ChangesReport) printRepoInfo(ctx context.Context) {
	branch := r.inspector.CurrentBranch(ctx)
	if branch == "" {
		branch = "detached HEAD"
	}
	r.printer.Infof("Repository: %s", filepath.Base(r.inspector.Toplevel(ctx)))
	r.printer.Infof("Branch: %s", branch)
	r.printer.Plainf("")
}

// printFiles lists paths under a section, one per line with a kind marker.
func (r *ChangesReport) printFiles(paths []string, marker string) {
	for _, p := range paths {
		r.printer.Plainf("  %s %s", marker, p)
	}
	r.printer.Plainf("")
}

func (r *ChangesReport) printStaged(ctx context.Context) {
	total := r.inspector.ChangedPaths(ctx, domain.ScopeStaged, domain.KindAny)
	if len(total) == 0 {
		return
	}

	r.printer.Successf("STAGED CHANGES (ready to commit):")
	r.printer.Plainf(sectionRule)

	if added := r.inspector.ChangedPaths(ctx, domain.ScopeStaged, domain.KindAdded); len(added) > 0 {
		r.printer.Successf("Added (%d files):", len(added))
		r.printFiles(added, "+")
	}
	if modified := r.inspector.ChangedPaths(ctx, domain.ScopeStaged, domain.KindModified); len(modified) > 0 {
		r.printer.Noticef("Modified (%d files):", len(modified))
		r.printFiles(modified, "~")
	}
	if deleted := r.inspector.ChangedPaths(ctx, domain.ScopeStaged, domain.KindDeleted); len(deleted) > 0 {
		r.printer.Errorf("Deleted (%d files):", len(deleted))
		r.printFiles(deleted, "-")
	}

	r.printer.Headerf("Staged Changes Summary:")
	r.printStatLine(ctx, domain.ScopeStaged)
	r.printer.Plainf("")
}

func (r *ChangesReport) printUnstaged(ctx context.Context) {
	total := r.inspector.ChangedPaths(ctx, domain.ScopeUnstaged, domain.KindAny)
	if len(total) == 0 {
		return
	}

	r.printer.Noticef("UNSTAGED CHANGES (not ready to commit):")
	r.printer.Plainf(sectionRule)

	if modified := r.inspector.ChangedPaths(ctx, domain.ScopeUnstaged, domain.KindModified); len(modified) > 0 {
		r.printer.Noticef("Modified (%d files):", len(modified))
		r.printFiles(modified, "~")
	}
	if deleted := r.inspector.ChangedPaths(ctx, domain.ScopeUnstaged, domain.KindDeleted); len(deleted) > 0 {
		r.printer.Errorf("Deleted (%d files):", len(deleted))
		r.printFiles(deleted, "-")
	}

	r.printer.Headerf("Unstaged Changes Summary:")
	r.printStatLine(ctx, domain.ScopeUnstaged)
	r.printer.Plainf("")
}

// printStatLine prints the last line of the diff --stat output, which
// carries the files-changed/insertions/deletions totals.
func (r *ChangesReport) printStatLine(ctx context.Context, scope domain.ChangeScope) {
	stat := r.inspector.DiffStat(ctx, scope)
	if stat == "" {
		return
	}
	statLines := strings.Split(stat, "\n")
	r.printer.Plainf("  %s", strings.TrimSpace(statLines[len(statLines)-1]))
}

func (r *ChangesReport) printUntracked(ctx context.Context) {
	untracked := r.inspector.UntrackedPaths(ctx)
	if len(untracked) == 0 {
		return
	}

	r.printer.Infof("UNTRACKED FILES:")
	r.printer.Plainf(sectionRule)
	r.printFiles(untracked, "?")
	r.printer.Plainf("")
}

func (r *ChangesReport) printSummary(ctx context.Context) {
	staged := r.inspector.ChangedPaths(ctx, domain.ScopeStaged, domain.KindAny)
	unstaged := r.inspector.ChangedPaths(ctx, domain.ScopeUnstaged, domain.KindAny)
	untracked := r.inspector.UntrackedPaths(ctx)

	r.printer.Headerf("========================================")
	r.printer.Headerf("   Summary")
	r.printer.Headerf("========================================")
	r.printer.Plainf("  Staged files:     %d", len(staged))
	r.printer.Plainf("  Unstaged files:   %d", len(unstaged))
	r.printer.Plainf("  Untracked files:  %d", len(untracked))
	r.printer.Plainf("  Total changes:    %d", len(staged)+len(unstaged)+len(untracked))
	r.printer.Plainf("")

	if len(staged) > 0 {
		r.printer.Successf("Run 'git commit' to commit staged changes")
	}
	if len(unstaged) > 0 {
		r.printer.Noticef("Run 'git add <file>' to stage unstaged changes")
	}
	if len(untracked) > 0 {
		r.printer.Infof("Run 'git add <file>' to track untracked files")
	}
}
