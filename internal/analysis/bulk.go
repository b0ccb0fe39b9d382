package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/at-ishikawa/kwinsight/internal/keyword"
)

// BulkResult pairs a keyword, exactly as submitted, with its analysis.
type BulkResult struct {
	Keyword  string           `json:"keyword"`
	Analysis keyword.Analysis `json:"analysis"`
}

// BulkOutcome is one item of a bulk request, successful or not.
type BulkOutcome struct {
	Keyword  string
	Analysis keyword.Analysis
	Err      error
}

// AnalyzeBulk analyzes every keyword and returns the successful ones in input order.
// Failed keywords are left out without notice; use AnalyzeBulkOutcomes to see them.
func (e *Engine) AnalyzeBulk(ctx context.Context, raws []string) ([]BulkResult, error) {
	outcomes, err := e.AnalyzeBulkOutcomes(ctx, raws)
	if err != nil {
		return nil, err
	}

	results := make([]BulkResult, 0, len(outcomes))
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			slog.Default().Debug("dropping failed bulk keyword",
				"keyword", outcome.Keyword,
				"error", outcome.Err)
			continue
		}
		results = append(results, BulkResult{Keyword: outcome.Keyword, Analysis: outcome.Analysis})
	}
	return results, nil
}

// AnalyzeBulkOutcomes runs Analyze for each keyword with bounded concurrency. Every
// analysis draws on the same request budget as single requests.
func (e *Engine) AnalyzeBulkOutcomes(ctx context.Context, raws []string) ([]BulkOutcome, error) {
	if len(raws) > e.bulkLimit {
		return nil, fmt.Errorf("%w: %d keywords, at most %d are allowed", ErrInvalidInput, len(raws), e.bulkLimit)
	}

	outcomes := make([]BulkOutcome, len(raws))
	var g errgroup.Group
	g.SetLimit(e.bulkConcurrency)
	for i, raw := range raws {
		g.Go(func() error {
			analysis, err := e.Analyze(ctx, raw)
			outcomes[i] = BulkOutcome{Keyword: raw, Analysis: analysis, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return outcomes, nil
}
