package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/MyCarrier-DevOps/git-preflight/internal/domain"
)

// Parser turns raw usage-report text into a numeric snapshot.
type Parser interface {
	Parse(output string) domain.UsageSnapshot
}

// CostTracker fetches the current usage report, computes the delta against
// the last recorded snapshot of the same name, and appends to the history
// file when the numbers changed.
type CostTracker struct {
	source domain.UsageSource
	parser Parser
	store  domain.HistoryStore
	logger Logger
	now    func() time.Time
}

// NewCostTracker creates a CostTracker with the given dependencies.
func NewCostTracker(
	source domain.UsageSource,
	parser Parser,
	store domain.HistoryStore,
	log Logger,
	now func() time.Time,
) *CostTracker {
	if now == nil {
		now = time.Now
	}
	return &CostTracker{
		source: source,
		parser: parser,
		store:  store,
		logger: log,
		now:    now,
	}
}

// Run produces the cost report for the given snapshot name. Returns
// domain.ErrUsageUnavailable when the source yields no output.
func (t *CostTracker) Run(ctx context.Context, name string) (*domain.CostReport, error) {
	output := t.source.Fetch(ctx)
	if output == "" {
		return nil, domain.ErrUsageUnavailable
	}

	current := domain.HistoryEntry{
		Name:          name,
		Timestamp:     t.now().Unix(),
		UsageSnapshot: t.parser.Parse(output),
	}

	history, err := t.store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}

	last := domain.LastEntryForName(history, name)

	var delta domain.UsageSnapshot
	if last != nil {
		delta = current.UsageSnapshot.Delta(last.UsageSnapshot)
	}

	// Append only when the numbers moved; identical re-runs must not grow
	// the history.
	if last == nil || !current.UsageSnapshot.Equal(last.UsageSnapshot) {
		history = append(history, current)
		if err := t.store.Save(history); err != nil {
			return nil, fmt.Errorf("failed to save history: %w", err)
		}
		t.logger.Debug(ctx, "recorded usage snapshot", map[string]interface{}{
			"name":    name,
			"entries": len(history),
		})
	}

	return &domain.CostReport{
		Current: current,
		Delta:   delta,
	}, nil
}
