package workflows

import (
	"context"
	"fmt"
	"slices"

	"github.com/PolarWolf314/sealkit/internal/audit"
)

// LogOptions configures the log workflow.
type LogOptions struct {
	// Limit is the maximum number of entries to return. 0 means no limit.
	Limit int

	// Operation keeps only entries for one operation, e.g. "seal".
	Operation string

	// Reverse orders entries from most recent to oldest when true.
	Reverse bool
}

// LogResult contains the outcome of a log operation.
type LogResult struct {
	Entries []audit.Entry

	// Total is the number of entries in the log before filtering.
	Total int

	LogPath string
}

// Log reads and filters the audit log. A missing log yields no entries.
func Log(ctx context.Context, opts LogOptions) (*LogResult, error) {
	if err := checkContext(ctx); err != nil {
		return nil, err
	}

	entries, err := audit.ReadEntries()
	if err != nil {
		return nil, fmt.Errorf("reading audit log: %w", err)
	}

	filtered := audit.Filter(entries, opts.Operation, opts.Limit)
	if opts.Reverse {
		slices.Reverse(filtered)
	}

	return &LogResult{
		Entries: filtered,
		Total:   len(entries),
		LogPath: audit.LogPath(),
	}, nil
}
