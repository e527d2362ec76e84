// Package domain defines the core business entities and interfaces for git-preflight.
// This package contains no external dependencies and represents the innermost layer
// of the CLEAN architecture.
package domain

import (
	"context"
	"errors"
)

// Domain errors for the preflight workflow and its companion commands.
var (
	// ErrSigningNotConfigured indicates user.email or user.signingkey is unset.
	ErrSigningNotConfigured = errors.New("GPG signing is not configured")

	// ErrBranchCreateFailed indicates the create-and-switch mutation failed
	// (name collision or invalid name). Never absorbed.
	ErrBranchCreateFailed = errors.New("failed to create branch")

	// ErrNotARepository indicates the working directory is not inside a
	// git repository.
	ErrNotARepository = errors.New("not a git repository")

	// ErrUsageUnavailable indicates the usage-report command produced no
	// output (missing binary or non-zero exit).
	ErrUsageUnavailable = errors.New("failed to get usage stats")
)

// RunResult carries the outcome of one external command invocation.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Runner executes an external command and returns its captured output.
// A non-zero exit code is surfaced as a non-nil error alongside the result,
// so callers can distinguish failure without parsing output.
type Runner interface {
	Run(ctx context.Context, args ...string) (RunResult, error)
}

// RepositoryInspector queries the state of one version-controlled working
// tree. Every read degrades to a safe default (empty string, empty slice,
// true for "detached") instead of propagating the underlying command's
// failure. The only mutations are CreateAndSwitchBranch, Add and Commit,
// whose errors are never absorbed.
type RepositoryInspector interface {
	// CurrentBranch returns the current branch name, or "" when none
	// exists (no commits yet) or HEAD is detached.
	CurrentBranch(ctx context.Context) string

	// IsDetachedHead reports a detached HEAD. An empty branch listing
	// (no branches exist yet) is deliberately treated the same as
	// detached; callers fall back to the short-revision label for both.
	IsDetachedHead(ctx context.Context) bool

	// ShortHeadRevision returns the abbreviated HEAD revision, or the
	// literal "initial" when the repository has no commits.
	ShortHeadRevision(ctx context.Context) string

	// ChangedPaths returns the changed paths for the given scope,
	// optionally narrowed to one change kind. Order follows the
	// underlying diff output; empty output yields an empty slice.
	ChangedPaths(ctx context.Context, scope ChangeScope, kind ChangeKind) []string

	// UntrackedPaths returns paths not under version control and not
	// excluded by ignore rules.
	UntrackedPaths(ctx context.Context) []string

	// HasAnyChange reports whether the staged or unstaged diff is
	// non-quiet. Untracked files do NOT count here; see
	// HasUncommittedWork for the reporting view that counts them.
	HasAnyChange(ctx context.Context) bool

	// HasUncommittedWork is the reporting view of "has changes": true
	// when HasAnyChange is true or untracked files exist. Kept distinct
	// from HasAnyChange on purpose; merging them would change the
	// workflow's observable exit behavior.
	HasUncommittedWork(ctx context.Context) bool

	// DiffStat returns the diff --stat summary text for the given scope.
	DiffStat(ctx context.Context, scope ChangeScope) string

	// SigningConfig reads the configured commit identity. A failed read
	// of either key yields an empty field, never an error.
	SigningConfig(ctx context.Context) SigningConfig

	// Toplevel returns the repository root path, or "".
	Toplevel(ctx context.Context) string

	// GitDir returns the repository's .git directory path, or "".
	GitDir(ctx context.Context) string

	// CreateAndSwitchBranch creates the named branch and switches to it.
	// Fails when the name collides or is invalid; the failure propagates.
	CreateAndSwitchBranch(ctx context.Context, name string) error

	// Add stages the given paths.
	Add(ctx context.Context, paths ...string) error

	// Commit records a commit with the given message, GPG-signed when
	// sign is true.
	Commit(ctx context.Context, message string, sign bool) error
}

// ConsolePrinter writes user-facing report lines. Implementations decide
// styling; callers pick the semantic role of each line.
type ConsolePrinter interface {
	// Plainf writes an unstyled line.
	Plainf(format string, args ...any)

	// Successf writes a success line (green).
	Successf(format string, args ...any)

	// Noticef writes an advisory line (yellow).
	Noticef(format string, args ...any)

	// Errorf writes an error line (red).
	Errorf(format string, args ...any)

	// Infof writes an informational label line (blue).
	Infof(format string, args ...any)

	// Headerf writes a section header line (cyan).
	Headerf(format string, args ...any)
}

// UsageSource produces the raw text of a usage/cost report.
type UsageSource interface {
	// Fetch returns the raw report text, or "" when the source is
	// unavailable.
	Fetch(ctx context.Context) string
}

// HistoryStore persists the time-ordered usage history.
type HistoryStore interface {
	// Load returns all history entries in insertion order. A missing or
	// unreadable file loads as an empty history.
	Load() ([]HistoryEntry, error)

	// Save writes the full history, replacing the previous contents.
	Save(entries []HistoryEntry) error
}

// LastEntryForName returns the most recent history entry with the given
// name, or nil when none exists.
func LastEntryForName(entries []HistoryEntry, name string) *HistoryEntry {
	for i := len(entries) - 1; i >= 0; i-- {
		if entries[i].Name == name {
			return &entries[i]
		}
	}
	return nil
}
