package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/MyCarrier-DevOps/git-preflight/internal/domain"
)

// Logger defines the logging interface for the git adapter.
// This interface enables dependency injection and testability.
type Logger interface {
	Debug(ctx context.Context, msg string, fields map[string]interface{})
	Warn(ctx context.Context, msg string, fields map[string]interface{})
}

// detachedMarker appears in `git branch` output when HEAD is detached.
const detachedMarker = "(HEAD detached"

// Inspector implements domain.RepositoryInspector over a domain.Runner.
// Every read absorbs the runner's failure and substitutes a safe default;
// the three mutations (CreateAndSwitchBranch, Add, Commit) propagate errors.
type Inspector struct {
	runner domain.Runner
	path   string
	logger Logger
}

// NewInspector creates an Inspector for the repository at path. An empty
// path means the current process directory; in that case git config reads
// fall through to global configuration (no --local), matching the behavior
// callers rely on for identity lookups.
func NewInspector(path string, log Logger) *Inspector {
	return NewInspectorWithRunner(NewExecRunner(path), path, log)
}

// NewInspectorWithRunner creates an Inspector with an explicit runner.
// This is the primary constructor that enables testing via dependency injection.
func NewInspectorWithRunner(runner domain.Runner, path string, log Logger) *Inspector {
	return &Inspector{
		runner: runner,
		path:   path,
		logger: log,
	}
}

// output runs the given git query and returns its trimmed stdout. Failures
// degrade to "" — reads in this adapter never surface errors.
func (i *Inspector) output(ctx context.Context, args ...string) string {
	result, err := i.runner.Run(ctx, args...)
	if err != nil {
		i.logger.Debug(ctx, "git query degraded to default", map[string]interface{}{
			"args":      args,
			"exit_code": result.ExitCode,
			"error":     err.Error(),
		})
		return ""
	}
	return strings.TrimSpace(result.Stdout)
}

// lines splits trimmed command output into path entries. Empty output must
// normalize to an empty slice, never [""], so the empty case returns early
// before splitting.
func lines(out string) []string {
	if out == "" {
		return []string{}
	}
	parts := strings.Split(out, "\n")
	paths := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

// CurrentBranch returns the current branch name, or "" when there is none.
func (i *Inspector) CurrentBranch(ctx context.Context) string {
	return i.output(ctx, "branch", "--show-current")
}

// IsDetachedHead reports a detached HEAD. A repository with no branches yet
// (empty `git branch` output, e.g. before the first commit) is deliberately
// reported as detached too; the workflow falls back to the short-revision
// label in both cases.
func (i *Inspector) IsDetachedHead(ctx context.Context) bool {
	out := i.output(ctx, "branch")
	if out == "" {
		return true
	}
	return strings.Contains(out, detachedMarker)
}

// ShortHeadRevision returns the abbreviated HEAD revision, or "initial"
// when the repository has no commits.
func (i *Inspector) ShortHeadRevision(ctx context.Context) string {
	out := i.output(ctx, "rev-parse", "--short", "HEAD")
	if out == "" {
		return "initial"
	}
	return out
}

// ChangedPaths returns the changed paths for the given scope, optionally
// narrowed by kind. Order is preserved as returned by git diff.
func (i *Inspector) ChangedPaths(ctx context.Context, scope domain.ChangeScope, kind domain.ChangeKind) []string {
	args := []string{"diff"}
	if scope == domain.ScopeStaged {
		args = append(args, "--cached")
	}
	args = append(args, "--name-only")
	if kind != domain.KindAny {
		args = append(args, "--diff-filter", string(kind))
	}
	return lines(i.output(ctx, args...))
}

// UntrackedPaths returns paths not under version control and not excluded
// by ignore rules.
func (i *Inspector) UntrackedPaths(ctx context.Context) []string {
	return lines(i.output(ctx, "ls-files", "--others", "--exclude-standard"))
}

// diffQuiet reports whether the diff for the given scope is quiet (no
// differences). git diff --quiet exits 1 on differences, so a runner error
// means changes exist.
func (i *Inspector) diffQuiet(ctx context.Context, scope domain.ChangeScope) bool {
	args := []string{"diff"}
	if scope == domain.ScopeStaged {
		args = append(args, "--cached")
	}
	args = append(args, "--quiet")
	_, err := i.runner.Run(ctx, args...)
	return err == nil
}

// HasAnyChange reports whether the staged or unstaged diff is non-quiet.
// Untracked files do not count; HasUncommittedWork is the view that counts
// them. The two predicates diverge on purpose.
func (i *Inspector) HasAnyChange(ctx context.Context) bool {
	return !(i.diffQuiet(ctx, domain.ScopeUnstaged) && i.diffQuiet(ctx, domain.ScopeStaged))
}

// HasUncommittedWork is the reporting view of "has changes": tracked diffs
// or untracked files.
func (i *Inspector) HasUncommittedWork(ctx context.Context) bool {
	return i.HasAnyChange(ctx) || len(i.UntrackedPaths(ctx)) > 0
}

// DiffStat returns the diff --stat summary for the given scope.
func (i *Inspector) DiffStat(ctx context.Context, scope domain.ChangeScope) string {
	args := []string{"diff"}
	if scope == domain.ScopeStaged {
		args = append(args, "--cached")
	}
	args = append(args, "--stat")
	return i.output(ctx, args...)
}

// config reads one git config key. When the inspector was bound to an
// explicit path the read is restricted to the repository's local config;
// otherwise it follows git's normal local-then-global resolution.
func (i *Inspector) config(ctx context.Context, key string) string {
	args := []string{"config"}
	if i.path != "" {
		args = append(args, "--local")
	}
	args = append(args, key)
	return i.output(ctx, args...)
}

// SigningConfig reads the configured commit identity. Either key failing to
// resolve yields an empty field.
func (i *Inspector) SigningConfig(ctx context.Context) domain.SigningConfig {
	return domain.SigningConfig{
		UserEmail:  i.config(ctx, "user.email"),
		SigningKey: i.config(ctx, "user.signingkey"),
	}
}

// Toplevel returns the repository root path, or "".
func (i *Inspector) Toplevel(ctx context.Context) string {
	return i.output(ctx, "rev-parse", "--show-toplevel")
}

// GitDir returns the .git directory path, or "" outside a repository.
func (i *Inspector) GitDir(ctx context.Context) string {
	return i.output(ctx, "rev-parse", "--git-dir")
}

// CreateAndSwitchBranch creates the named branch and switches to it. A name
// collision or an invalid name fails with the underlying error intact.
func (i *Inspector) CreateAndSwitchBranch(ctx context.Context, name string) error {
	result, err := i.runner.Run(ctx, "checkout", "-b", name)
	if err != nil {
		i.logger.Warn(ctx, "branch creation failed", map[string]interface{}{
			"branch":    name,
			"exit_code": result.ExitCode,
			"stderr":    strings.TrimSpace(result.Stderr),
		})
		return fmt.Errorf("%w %q: %w", domain.ErrBranchCreateFailed, name, err)
	}
	return nil
}

// Add stages the given paths.
func (i *Inspector) Add(ctx context.Context, paths ...string) error {
	args := append([]string{"add"}, paths...)
	if _, err := i.runner.Run(ctx, args...); err != nil {
		return fmt.Errorf("failed to stage files: %w", err)
	}
	return nil
}

// Commit records a commit, GPG-signed when sign is true.
func (i *Inspector) Commit(ctx context.Context, message string, sign bool) error {
	args := []string{"commit"}
	if sign {
		args = append(args, "-S")
	}
	args = append(args, "-m", message)
	if _, err := i.runner.Run(ctx, args...); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}
