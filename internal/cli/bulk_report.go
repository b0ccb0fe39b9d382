package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/kwinsight/internal/analysis"
	"github.com/at-ishikawa/kwinsight/internal/keyword"
)

// keywordFile accepts either a bare YAML list or a mapping with a keywords key.
type keywordFile struct {
	Keywords []string `yaml:"keywords"`
}

// ReadKeywordFile loads the keywords to analyze in bulk.
func ReadKeywordFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("os.Open(%s) > %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	var root yaml.Node
	if err := yaml.NewDecoder(file).Decode(&root); err != nil {
		return nil, fmt.Errorf("yaml.NewDecoder().Decode() > %w", err)
	}
	if len(root.Content) == 0 {
		return nil, fmt.Errorf("%s: no keywords", path)
	}

	var keywords []string
	switch doc := root.Content[0]; doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&keywords); err != nil {
			return nil, fmt.Errorf("node.Decode() > %w", err)
		}
	case yaml.MappingNode:
		var f keywordFile
		if err := doc.Decode(&f); err != nil {
			return nil, fmt.Errorf("node.Decode() > %w", err)
		}
		keywords = f.Keywords
	default:
		return nil, fmt.Errorf("%s: expected a list of keywords", path)
	}
	return keywords, nil
}

type bulkOutcomeJSON struct {
	Keyword  string            `json:"keyword"`
	Analysis *keyword.Analysis `json:"analysis,omitempty"`
	Error    string            `json:"error,omitempty"`
}

// Bulk analyzes every keyword. Without details, failed keywords are left out of the
// output the same way the HTTP endpoint does; with details each keyword reports its
// own outcome.
func (r *KeywordReporter) Bulk(ctx context.Context, raws []string, details bool) error {
	if details {
		return r.bulkOutcomes(ctx, raws)
	}

	results, err := r.analyzer.AnalyzeBulk(ctx, raws)
	if err != nil {
		return fmt.Errorf("analyzer.AnalyzeBulk > %w", err)
	}
	if r.asJSON {
		return r.writeJSON(map[string]any{"results": results})
	}

	r.printBulkHeader()
	for _, result := range results {
		r.printBulkRow(result.Keyword, result.Analysis)
	}
	_, _ = r.faint.Fprintf(r.out, "\nAnalyzed %d of %d keywords\n", len(results), len(raws))
	return nil
}

func (r *KeywordReporter) bulkOutcomes(ctx context.Context, raws []string) error {
	outcomes, err := r.analyzer.AnalyzeBulkOutcomes(ctx, raws)
	if err != nil {
		return fmt.Errorf("analyzer.AnalyzeBulkOutcomes > %w", err)
	}

	if r.asJSON {
		items := make([]bulkOutcomeJSON, 0, len(outcomes))
		for _, o := range outcomes {
			item := bulkOutcomeJSON{Keyword: o.Keyword}
			if o.Err != nil {
				item.Error = failureReason(o.Err)
			} else {
				a := o.Analysis
				item.Analysis = &a
			}
			items = append(items, item)
		}
		return r.writeJSON(map[string]any{"results": items})
	}

	r.printBulkHeader()
	failed := 0
	for _, o := range outcomes {
		if o.Err != nil {
			failed++
			_, _ = fmt.Fprintf(r.out, "%-32s  ", o.Keyword)
			_, _ = r.hard.Fprintf(r.out, "failed: %s\n", failureReason(o.Err))
			continue
		}
		r.printBulkRow(o.Keyword, o.Analysis)
	}
	_, _ = r.faint.Fprintf(r.out, "\nAnalyzed %d of %d keywords, %d failed\n", len(outcomes)-failed, len(outcomes), failed)
	return nil
}

func (r *KeywordReporter) printBulkHeader() {
	_, _ = r.bold.Fprintf(r.out, "%-32s  %-10s  %-11s  %-9s\n", "Keyword", "Difficulty", "Suggestions", "Questions")
}

func (r *KeywordReporter) printBulkRow(raw string, a keyword.Analysis) {
	_, _ = fmt.Fprintf(r.out, "%-32s  ", raw)
	_, _ = r.difficultyColor(a.Difficulty).Fprintf(r.out, "%-10d", a.Difficulty)
	_, _ = fmt.Fprintf(r.out, "  %-11d  %-9d\n", len(a.Suggestions), len(a.Questions))
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, analysis.ErrInvalidInput):
		return "invalid keyword"
	case errors.Is(err, analysis.ErrRateLimited):
		return "rate limit exceeded"
	default:
		return "analysis failed"
	}
}
