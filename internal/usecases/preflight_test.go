package usecases

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MyCarrier-DevOps/git-preflight/internal/domain"
)

// nopLogger implements the Logger interface for testing.
type nopLogger struct{}

func (l *nopLogger) Info(_ context.Context, _ string, _ map[string]interface{})           {}
func (l *nopLogger) Debug(_ context.Context, _ string, _ map[string]interface{})          {}
func (l *nopLogger) Warn(_ context.Context, _ string, _ map[string]interface{})           {}
func (l *nopLogger) Error(_ context.Context, _ string, _ error, _ map[string]interface{}) {}

// recordingPrinter captures every printed line for assertions.
type recordingPrinter struct {
	lines []string
}

func (p *recordingPrinter) record(format string, args ...any) {
	p.lines = append(p.lines, fmt.Sprintf(format, args...))
}

func (p *recordingPrinter) Plainf(format string, args ...any)   { p.record(format, args...) }
func (p *recordingPrinter) Successf(format string, args ...any) { p.record(format, args...) }
func (p *recordingPrinter) Noticef(format string, args ...any)  { p.record(format, args...) }
func (p *recordingPrinter) Errorf(format string, args ...any)   { p.record(format, args...) }
func (p *recordingPrinter) Infof(format string, args ...any)    { p.record(format, args...) }
func (p *recordingPrinter) Headerf(format string, args ...any)  { p.record(format, args...) }

func (p *recordingPrinter) output() string {
	return strings.Join(p.lines, "\n")
}

// fakeInspector implements domain.RepositoryInspector for testing.
type fakeInspector struct {
	branch         string
	detached       bool
	shortRev       string
	unstaged       []string
	staged         []string
	untracked      []string
	hasChange      bool
	signing        domain.SigningConfig
	toplevel       string
	gitDir         string
	diffStat       map[domain.ChangeScope]string
	createErr      error
	createdBranch  string
	createCalls    int
	committedMsgs  []string
	stagedOnCommit []string
}

func (f *fakeInspector) CurrentBranch(_ context.Context) string { return f.branch }
func (f *fakeInspector) IsDetachedHead(_ context.Context) bool  { return f.detached }

func (f *fakeInspector) ShortHeadRevision(_ context.Context) string {
	if f.shortRev == "" {
		return "initial"
	}
	return f.shortRev
}

func (f *fakeInspector) ChangedPaths(_ context.Context, scope domain.ChangeScope, kind domain.ChangeKind) []string {
	paths := f.unstaged
	if scope == domain.ScopeStaged {
		paths = f.staged
	}
	if kind == domain.KindAny {
		return paths
	}
	// Kind filtering is exercised through the integration tests; the fake
	// returns the unfiltered set.
	return paths
}

func (f *fakeInspector) UntrackedPaths(_ context.Context) []string { return f.untracked }
func (f *fakeInspector) HasAnyChange(_ context.Context) bool       { return f.hasChange }

func (f *fakeInspector) HasUncommittedWork(_ context.Context) bool {
	return f.hasChange || len(f.untracked) > 0
}

func (f *fakeInspector) DiffStat(_ context.Context, scope domain.ChangeScope) string {
	return f.diffStat[scope]
}

func (f *fakeInspector) SigningConfig(_ context.Context) domain.SigningConfig { return f.signing }
func (f *fakeInspector) Toplevel(_ context.Context) string                    { return f.toplevel }
func (f *fakeInspector) GitDir(_ context.Context) string                      { return f.gitDir }

func (f *fakeInspector) CreateAndSwitchBranch(_ context.Context, name string) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	f.createdBranch = name
	f.branch = name
	f.detached = false
	return nil
}

func (f *fakeInspector) Add(_ context.Context, paths ...string) error {
	f.stagedOnCommit = append(f.stagedOnCommit, paths...)
	return nil
}

func (f *fakeInspector) Commit(_ context.Context, message string, _ bool) error {
	f.committedMsgs = append(f.committedMsgs, message)
	return nil
}

var configuredSigning = domain.SigningConfig{
	UserEmail:  "dev@example.com",
	SigningKey: "ABC123",
}

func TestPreflight_SigningNotConfigured(t *testing.T) {
	insp := &fakeInspector{signing: domain.SigningConfig{UserEmail: "dev@example.com"}}
	printer := &recordingPrinter{}
	wf := NewPreflight(insp, printer, &nopLogger{}, nil)

	result, err := wf.Run(context.Background(), domain.PreflightInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSigningNotConfigured)
	assert.Nil(t, result)
	assert.Contains(t, printer.output(), "Error: GPG signing is not configured.")
	assert.Contains(t, printer.output(), "git config user.email")
	assert.Contains(t, printer.output(), "git config user.signingkey")
	// Fatal before any branch work.
	assert.Zero(t, insp.createCalls)
}

func TestPreflight_EmptyRepoWithoutSigning_NoBranchOperations(t *testing.T) {
	// Empty repository, no commits, nothing configured: exit before any
	// branch operation is attempted.
	insp := &fakeInspector{detached: true}
	printer := &recordingPrinter{}
	wf := NewPreflight(insp, printer, &nopLogger{}, nil)

	_, err := wf.Run(context.Background(), domain.PreflightInput{})

	require.ErrorIs(t, err, domain.ErrSigningNotConfigured)
	assert.Zero(t, insp.createCalls)
}

func TestPreflight_OnMainCreatesCategorizedBranch(t *testing.T) {
	insp := &fakeInspector{
		branch:    "main",
		signing:   configuredSigning,
		unstaged:  []string{"skills/foo/bar.txt"},
		hasChange: true,
	}
	printer := &recordingPrinter{}
	wf := NewPreflight(insp, printer, &nopLogger{}, func() time.Time { return fixedNow })

	result, err := wf.Run(context.Background(), domain.PreflightInput{})

	require.NoError(t, err)
	assert.Equal(t, domain.StateReady, result.State)
	assert.True(t, result.BranchCreated)
	assert.Equal(t, domain.CategorySkill, result.Category)
	assert.Equal(t, "skill/20250615-bar", result.Branch)
	assert.Equal(t, "skill/20250615-bar", insp.createdBranch)
	assert.Contains(t, printer.output(), "Created and switched to branch: skill/20250615-bar")
	assert.Contains(t, printer.output(), "Detected change type: skill")
}

func TestPreflight_OverrideUsedVerbatim(t *testing.T) {
	insp := &fakeInspector{
		branch:    "master",
		signing:   configuredSigning,
		unstaged:  []string{"docs/guide.md"},
		hasChange: true,
	}
	printer := &recordingPrinter{}
	wf := NewPreflight(insp, printer, &nopLogger{}, nil)

	result, err := wf.Run(context.Background(), domain.PreflightInput{BranchOverride: "feature/x"})

	require.NoError(t, err)
	assert.Equal(t, "feature/x", result.Branch)
	assert.Equal(t, "feature/x", insp.createdBranch)
}

func TestPreflight_DetachedHeadForcesBranchCreation(t *testing.T) {
	insp := &fakeInspector{
		detached:  true,
		shortRev:  "1a2b3c4",
		signing:   configuredSigning,
		unstaged:  []string{"random.txt"},
		hasChange: true,
	}
	printer := &recordingPrinter{}
	wf := NewPreflight(insp, printer, &nopLogger{}, func() time.Time { return fixedNow })

	result, err := wf.Run(context.Background(), domain.PreflightInput{})

	require.NoError(t, err)
	assert.True(t, result.BranchCreated)
	// The label shown is the short revision, not a branch name.
	assert.Contains(t, printer.output(), "Detached HEAD state detected. Using ref: 1a2b3c4")
	assert.Contains(t, printer.output(), "Current branch: 1a2b3c4")
	assert.Equal(t, "update/20250615-random", insp.createdBranch)
}

func TestPreflight_FeatureBranchSkipsCreation(t *testing.T) {
	insp := &fakeInspector{
		branch:    "feature/existing",
		signing:   configuredSigning,
		hasChange: true,
	}
	printer := &recordingPrinter{}
	wf := NewPreflight(insp, printer, &nopLogger{}, nil)

	result, err := wf.Run(context.Background(), domain.PreflightInput{})

	require.NoError(t, err)
	assert.Equal(t, domain.StateReady, result.State)
	assert.False(t, result.BranchCreated)
	assert.Equal(t, "feature/existing", result.Branch)
	assert.Zero(t, insp.createCalls)
	assert.Contains(t, printer.output(), "Changes detected. Repository is ready for commit.")
	assert.Contains(t, printer.output(), "git commit -S")
}

func TestPreflight_ProtectedMatchIsExactAndCaseSensitive(t *testing.T) {
	for _, branch := range []string{"Main", "MASTER", "main2", "mainline", "master-backup"} {
		t.Run(branch, func(t *testing.T) {
			insp := &fakeInspector{branch: branch, signing: configuredSigning, hasChange: true}
			wf := NewPreflight(insp, &recordingPrinter{}, &nopLogger{}, nil)

			result, err := wf.Run(context.Background(), domain.PreflightInput{})

			require.NoError(t, err)
			assert.False(t, result.BranchCreated)
		})
	}
}

func TestPreflight_NothingToCommit(t *testing.T) {
	insp := &fakeInspector{branch: "feature/existing", signing: configuredSigning}
	printer := &recordingPrinter{}
	wf := NewPreflight(insp, printer, &nopLogger{}, nil)

	result, err := wf.Run(context.Background(), domain.PreflightInput{})

	require.NoError(t, err)
	assert.Equal(t, domain.StateNothingToCommit, result.State)
	assert.Contains(t, printer.output(), "No changes to commit.")
	assert.NotContains(t, printer.output(), "Next steps:")
}

func TestPreflight_UntrackedOnlyIsNothingToCommit(t *testing.T) {
	// Untracked files do not count toward HasAnyChange.
	insp := &fakeInspector{
		branch:    "feature/existing",
		signing:   configuredSigning,
		untracked: []string{"new.txt"},
	}
	wf := NewPreflight(insp, &recordingPrinter{}, &nopLogger{}, nil)

	result, err := wf.Run(context.Background(), domain.PreflightInput{})

	require.NoError(t, err)
	assert.Equal(t, domain.StateNothingToCommit, result.State)
}

func TestPreflight_Idempotent(t *testing.T) {
	// Re-running on a non-protected branch with no changes yields
	// NothingToCommit both times and never creates a branch.
	insp := &fakeInspector{branch: "feature/existing", signing: configuredSigning}
	wf := NewPreflight(insp, &recordingPrinter{}, &nopLogger{}, nil)

	for range 2 {
		result, err := wf.Run(context.Background(), domain.PreflightInput{})
		require.NoError(t, err)
		assert.Equal(t, domain.StateNothingToCommit, result.State)
	}
	assert.Zero(t, insp.createCalls)
}

func TestPreflight_BranchCreationFailureIsFatal(t *testing.T) {
	insp := &fakeInspector{
		branch:    "main",
		signing:   configuredSigning,
		unstaged:  []string{"random.txt"},
		hasChange: true,
		createErr: fmt.Errorf("%w %q: already exists", domain.ErrBranchCreateFailed, "update/x"),
	}
	printer := &recordingPrinter{}
	wf := NewPreflight(insp, printer, &nopLogger{}, nil)

	result, err := wf.Run(context.Background(), domain.PreflightInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBranchCreateFailed)
	assert.Nil(t, result)
	// Attempted exactly once, never retried.
	assert.Equal(t, 1, insp.createCalls)
}

func TestPreflight_StagedPathsExcludedFromClassification(t *testing.T) {
	// Only unstaged diffs drive categorization.
	insp := &fakeInspector{
		branch:    "main",
		signing:   configuredSigning,
		staged:    []string{"skills/foo/bar.txt"},
		unstaged:  []string{"random.txt"},
		hasChange: true,
	}
	printer := &recordingPrinter{}
	wf := NewPreflight(insp, printer, &nopLogger{}, func() time.Time { return fixedNow })

	result, err := wf.Run(context.Background(), domain.PreflightInput{})

	require.NoError(t, err)
	assert.Equal(t, domain.CategoryUpdate, result.Category)
	assert.Equal(t, "update/20250615-random", result.Branch)
}
