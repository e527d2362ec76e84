// Package domain defines the core business entities and interfaces for git-preflight.
package domain

// ChangeScope selects which side of the index a diff query inspects.
type ChangeScope int

const (
	// ScopeUnstaged compares the working tree against the index.
	ScopeUnstaged ChangeScope = iota

	// ScopeStaged compares the index against HEAD (--cached).
	ScopeStaged
)

// ChangeKind narrows a diff query to a single git diff-filter letter.
// KindAny leaves the query unfiltered.
type ChangeKind string

const (
	KindAny      ChangeKind = ""
	KindAdded    ChangeKind = "A"
	KindModified ChangeKind = "M"
	KindDeleted  ChangeKind = "D"
)

// ChangeCategory is the semantic category derived from a set of changed paths.
// CategoryUpdate is the fallback; it is never inferred from content, only
// assigned when no classification rule matches.
type ChangeCategory string

const (
	CategorySkill  ChangeCategory = "skill"
	CategoryTest   ChangeCategory = "test"
	CategoryDocs   ChangeCategory = "docs"
	CategoryUpdate ChangeCategory = "update"
)

// ProtectedBranches is the fixed set of branch names that force creation of
// a feature branch. Matching is exact and case-sensitive.
var ProtectedBranches = map[string]bool{
	"main":   true,
	"master": true,
}

// BranchState is the derived (never stored) position of the repository.
type BranchState struct {
	// CurrentName is the current branch name, empty when none exists
	// (no commits yet) or when HEAD is detached.
	CurrentName string

	// IsDetached reports that HEAD is not on a named branch. When true,
	// CurrentName carries no branch identity and ShortRevision is the
	// human-facing label instead.
	IsDetached bool

	// ShortRevision is the abbreviated HEAD revision, or the literal
	// "initial" when the repository has no commits.
	ShortRevision string
}

// Label returns the human-facing label for the current position: the branch
// name when on one, the short revision otherwise.
func (s BranchState) Label() string {
	if s.IsDetached {
		return s.ShortRevision
	}
	return s.CurrentName
}

// SigningConfig is a read-only snapshot of the configured commit identity.
// Both fields must be non-empty for signing to be considered configured.
type SigningConfig struct {
	UserEmail  string
	SigningKey string
}

// Configured reports whether both identity fields are set.
func (c SigningConfig) Configured() bool {
	return c.UserEmail != "" && c.SigningKey != ""
}

// PreflightInput contains the parameters for one preflight run. The
// repository path is provided separately when creating the Inspector.
type PreflightInput struct {
	// BranchOverride, when non-empty, is used verbatim as the branch name
	// instead of the generated one.
	BranchOverride string
}

// WorkflowState identifies the terminal state a preflight run reached.
type WorkflowState string

const (
	// StateReady means changes exist and the repository is ready for a
	// signed commit.
	StateReady WorkflowState = "ready"

	// StateNothingToCommit means the workflow completed but neither the
	// staged nor the unstaged diff holds any change.
	StateNothingToCommit WorkflowState = "nothing-to-commit"
)

// PreflightResult describes the outcome of a completed preflight run.
// Fatal outcomes (signing unconfigured, branch-creation conflict) are
// returned as errors instead.
type PreflightResult struct {
	State WorkflowState

	// Branch is the branch (or short-revision label) the run finished on.
	Branch string

	// BranchCreated reports whether a feature branch was created.
	BranchCreated bool

	// Category is the classified change category; only meaningful when
	// BranchCreated is true.
	Category ChangeCategory
}

// UsageSnapshot holds the numeric fields parsed from a usage report.
// Costs are tracked in integer cents, token counts as plain integers.
type UsageSnapshot struct {
	TotalCostCents int64 `json:"total_cost_cents"`
	InputTokens    int64 `json:"input_tokens"`
	OutputTokens   int64 `json:"output_tokens"`
	CacheRead      int64 `json:"cache_read"`
	CacheWrite     int64 `json:"cache_write"`
}

// Equal reports whether two snapshots carry identical numbers.
// Used to suppress history entries that would duplicate the last one.
func (s UsageSnapshot) Equal(o UsageSnapshot) bool {
	return s == o
}

// Delta returns the field-wise difference of s minus the previous snapshot.
func (s UsageSnapshot) Delta(prev UsageSnapshot) UsageSnapshot {
	return UsageSnapshot{
		TotalCostCents: s.TotalCostCents - prev.TotalCostCents,
		InputTokens:    s.InputTokens - prev.InputTokens,
		OutputTokens:   s.OutputTokens - prev.OutputTokens,
		CacheRead:      s.CacheRead - prev.CacheRead,
		CacheWrite:     s.CacheWrite - prev.CacheWrite,
	}
}

// HistoryEntry is one persisted usage snapshot in the time-ordered history.
type HistoryEntry struct {
	// Name groups snapshots; deltas are computed against the most recent
	// entry of the same name.
	Name string `json:"name"`

	// Timestamp is the unix time the snapshot was taken.
	Timestamp int64 `json:"timestamp"`

	UsageSnapshot
}

// CostReport is the output of one cost-tracker run.
type CostReport struct {
	Current HistoryEntry  `json:"current"`
	Delta   UsageSnapshot `json:"delta"`
}
