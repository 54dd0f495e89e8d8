package workflows

import (
	"context"
	"fmt"

	"github.com/PolarWolf314/pm/internal/audit"
)

// HistoryOptions configures the history workflow.
type HistoryOptions struct {
	// Limit keeps only the most recent entries. 0 means no limit.
	Limit int
}

// HistoryResult contains the outcome of a history operation.
type HistoryResult struct {
	// Entries are the audit entries, oldest first.
	Entries []audit.Entry

	// Total is the number of entries before the limit was applied.
	Total int
}

// History reads the audit trail.
func History(ctx context.Context, env *Env, opts HistoryOptions) (*HistoryResult, error) {
	if opts.Limit < 0 {
		return nil, fmt.Errorf("limit must not be negative, got %d", opts.Limit)
	}
	if env.Audit == nil {
		return &HistoryResult{}, nil
	}

	entries, err := env.Audit.ReadEntries()
	if err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}

	result := &HistoryResult{Entries: entries, Total: len(entries)}
	if opts.Limit > 0 && len(entries) > opts.Limit {
		result.Entries = entries[len(entries)-opts.Limit:]
	}
	return result, nil
}
