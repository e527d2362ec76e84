package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/MyCarrier-DevOps/git-preflight/internal/domain"
)

// Logger defines the logging interface required by the use cases.
// This abstracts the logger dependency to avoid coupling to a specific implementation.
type Logger interface {
	Info(ctx context.Context, msg string, fields map[string]interface{})
	Debug(ctx context.Context, msg string, fields map[string]interface{})
	Warn(ctx context.Context, msg string, fields map[string]interface{})
	Error(ctx context.Context, msg string, err error, fields map[string]interface{})
}

// Preflight sequences the commit-readiness checks: verify signing
// configuration, move off a protected (or detached) position onto a fresh
// feature branch, then report whether anything is left to commit.
//
// Every step runs exactly once and strictly after the previous one, since
// branch creation mutates the state the following queries observe.
type Preflight struct {
	inspector domain.RepositoryInspector
	printer   domain.ConsolePrinter
	logger    Logger
	now       func() time.Time
}

// NewPreflight creates a Preflight workflow with the given dependencies.
func NewPreflight(
	inspector domain.RepositoryInspector,
	printer domain.ConsolePrinter,
	log Logger,
	now func() time.Time,
) *Preflight {
	if now == nil {
		now = time.Now
	}
	return &Preflight{
		inspector: inspector,
		printer:   printer,
		logger:    log,
		now:       now,
	}
}

// Run executes the workflow. The two fatal outcomes are a missing signing
// configuration and a failed branch creation; both return an error after
// printing the diagnostic. Everything else, including "nothing to commit",
// completes normally.
func (p *Preflight) Run(ctx context.Context, input domain.PreflightInput) (*domain.PreflightResult, error) {
	if err := p.verifySigning(ctx); err != nil {
		return nil, err
	}

	branch, created, category, err := p.checkBranch(ctx, input.BranchOverride)
	if err != nil {
		return nil, err
	}

	state := p.checkChanges(ctx)

	return &domain.PreflightResult{
		State:         state,
		Branch:        branch,
		BranchCreated: created,
		Category:      category,
	}, nil
}

// verifySigning requires both identity keys to be configured.
func (p *Preflight) verifySigning(ctx context.Context) error {
	p.printer.Plainf("Verifying GPG signing configuration...")

	cfg := p.inspector.SigningConfig(ctx)
	if !cfg.Configured() {
		p.printer.Errorf("Error: GPG signing is not configured.")
		p.printer.Plainf("Please set:")
		p.printer.Plainf("  git config user.email 'your@email.com'")
		p.printer.Plainf("  git config user.signingkey 'YOUR_KEY_ID'")
		p.logger.Error(ctx, "signing configuration missing", domain.ErrSigningNotConfigured,
			map[string]interface{}{
				"user_email_set":  cfg.UserEmail != "",
				"signing_key_set": cfg.SigningKey != "",
			})
		return domain.ErrSigningNotConfigured
	}

	p.printer.Successf("GPG signing configured: %s", cfg.UserEmail)
	return nil
}

// checkBranch decides whether the current position mandates a new feature
// branch and creates one when it does. Detachment (which also covers "no
// branches exist yet") forces creation unconditionally; otherwise only the
// protected names do, compared exactly and case-sensitively.
func (p *Preflight) checkBranch(ctx context.Context, override string) (branch string, created bool, category domain.ChangeCategory, err error) {
	current := p.inspector.CurrentBranch(ctx)
	detached := p.inspector.IsDetachedHead(ctx)

	if detached {
		current = p.inspector.ShortHeadRevision(ctx)
		p.printer.Noticef("Detached HEAD state detected. Using ref: %s", current)
	}

	p.printer.Plainf("Current branch: %s", current)

	if !detached && !domain.ProtectedBranches[current] {
		p.logger.Debug(ctx, "already on a feature branch", map[string]interface{}{
			"branch": current,
		})
		return current, false, "", nil
	}

	p.printer.Noticef("On main/master or detached HEAD. Creating feature branch...")

	// Only the unstaged diff drives categorization; staged paths are
	// deliberately excluded from the classification input.
	changed := p.inspector.ChangedPaths(ctx, domain.ScopeUnstaged, domain.KindAny)
	category = ClassifyChange(changed)

	p.printer.Plainf("Detected change type: %s", category)

	name := GenerateBranchName(category, changed, override, p.now())

	p.printer.Plainf("Creating branch: %s", name)

	if err := p.inspector.CreateAndSwitchBranch(ctx, name); err != nil {
		p.printer.Errorf("Error: %v", err)
		return "", false, category, fmt.Errorf("creating branch %q: %w", name, err)
	}

	p.printer.Successf("Created and switched to branch: %s", name)
	p.logger.Info(ctx, "created feature branch", map[string]interface{}{
		"branch":   name,
		"category": string(category),
		"from":     current,
	})
	return name, true, category, nil
}

// checkChanges resolves the terminal state. Untracked files do not count
// here; only the staged and unstaged diffs decide.
func (p *Preflight) checkChanges(ctx context.Context) domain.WorkflowState {
	p.printer.Plainf("Checking for changes to commit...")

	if !p.inspector.HasAnyChange(ctx) {
		p.printer.Noticef("No changes to commit.")
		return domain.StateNothingToCommit
	}

	p.printer.Successf("Changes detected. Repository is ready for commit.")
	p.printer.Plainf("")
	p.printer.Plainf("Next steps:")
	p.printer.Plainf("  1. Stage changes: git add -A")
	p.printer.Plainf("  2. Create signed commit: git commit -S -m 'Your message'")
	p.printer.Plainf("  3. Verify: git log -1 --show-signature")
	return domain.StateReady
}
