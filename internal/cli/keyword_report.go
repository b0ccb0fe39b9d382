package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/at-ishikawa/kwinsight/internal/analysis"
	"github.com/at-ishikawa/kwinsight/internal/keyword"
)

//go:generate mockgen -source=keyword_report.go -destination=../mocks/cli/mock_analyzer.go -package=mock_cli Analyzer

type Analyzer interface {
	Analyze(ctx context.Context, raw string) (keyword.Analysis, error)
	Suggestions(ctx context.Context, raw string) ([]keyword.Suggestion, error)
	Questions(ctx context.Context, raw string) ([]keyword.Question, error)
	Difficulty(ctx context.Context, raw string) (int, error)
	AnalyzeBulk(ctx context.Context, raws []string) ([]analysis.BulkResult, error)
	AnalyzeBulkOutcomes(ctx context.Context, raws []string) ([]analysis.BulkOutcome, error)
}

// Difficulty bands used for coloring, out of 100.
const (
	easyBelow   = 33
	mediumBelow = 66
)

// KeywordReporter runs one analysis operation and prints it either as a colored
// report or as JSON.
type KeywordReporter struct {
	analyzer Analyzer
	out      io.Writer
	asJSON   bool

	bold   *color.Color
	faint  *color.Color
	easy   *color.Color
	medium *color.Color
	hard   *color.Color
}

func NewKeywordReporter(analyzer Analyzer, out io.Writer, asJSON bool) *KeywordReporter {
	return &KeywordReporter{
		analyzer: analyzer,
		out:      out,
		asJSON:   asJSON,
		bold:     color.New(color.Bold),
		faint:    color.New(color.Faint),
		easy:     color.New(color.FgGreen),
		medium:   color.New(color.FgYellow),
		hard:     color.New(color.FgRed),
	}
}

func (r *KeywordReporter) Analyze(ctx context.Context, raw string) error {
	result, err := r.analyzer.Analyze(ctx, raw)
	if err != nil {
		return fmt.Errorf("analyzer.Analyze > %w", err)
	}
	if r.asJSON {
		return r.writeJSON(result)
	}

	r.printHeading(result.Keyword.String())
	r.printDifficulty(result.Difficulty)
	r.printSuggestions(result.Suggestions)
	r.printQuestions(result.Questions)
	_, _ = r.faint.Fprintf(r.out, "\nAnalyzed at %s\n", result.Timestamp)
	return nil
}

func (r *KeywordReporter) Suggestions(ctx context.Context, raw string) error {
	suggestions, err := r.analyzer.Suggestions(ctx, raw)
	if err != nil {
		return fmt.Errorf("analyzer.Suggestions > %w", err)
	}
	if r.asJSON {
		return r.writeJSON(map[string]any{"keyword": raw, "suggestions": suggestions})
	}
	r.printSuggestions(suggestions)
	return nil
}

func (r *KeywordReporter) Questions(ctx context.Context, raw string) error {
	questions, err := r.analyzer.Questions(ctx, raw)
	if err != nil {
		return fmt.Errorf("analyzer.Questions > %w", err)
	}
	if r.asJSON {
		return r.writeJSON(map[string]any{"keyword": raw, "questions": questions})
	}
	r.printQuestions(questions)
	return nil
}

func (r *KeywordReporter) Difficulty(ctx context.Context, raw string) error {
	difficulty, err := r.analyzer.Difficulty(ctx, raw)
	if err != nil {
		return fmt.Errorf("analyzer.Difficulty > %w", err)
	}
	if r.asJSON {
		return r.writeJSON(map[string]any{"keyword": raw, "difficulty": difficulty})
	}
	r.printDifficulty(difficulty)
	return nil
}

func (r *KeywordReporter) printHeading(text string) {
	_, _ = r.bold.Fprintln(r.out, text)
	_, _ = fmt.Fprintln(r.out)
}

func (r *KeywordReporter) printDifficulty(difficulty int) {
	_, _ = fmt.Fprint(r.out, "Difficulty: ")
	_, _ = r.difficultyColor(difficulty).Fprintf(r.out, "%d/100 (%s)\n", difficulty, difficultyLabel(difficulty))
}

func (r *KeywordReporter) printSuggestions(suggestions []keyword.Suggestion) {
	_, _ = r.bold.Fprintln(r.out, "\nSuggestions")
	if len(suggestions) == 0 {
		_, _ = r.faint.Fprintln(r.out, "  none")
		return
	}
	for _, s := range suggestions {
		_, _ = fmt.Fprintf(r.out, "  %3d  %s\n", s.Score, s.Keyword)
	}
}

func (r *KeywordReporter) printQuestions(questions []keyword.Question) {
	_, _ = r.bold.Fprintln(r.out, "\nQuestions")
	if len(questions) == 0 {
		_, _ = r.faint.Fprintln(r.out, "  none")
		return
	}
	for _, q := range questions {
		_, _ = fmt.Fprintf(r.out, "  %3d  %s\n", q.Score, q.Question)
	}
}

func (r *KeywordReporter) difficultyColor(difficulty int) *color.Color {
	switch {
	case difficulty < easyBelow:
		return r.easy
	case difficulty < mediumBelow:
		return r.medium
	default:
		return r.hard
	}
}

func difficultyLabel(difficulty int) string {
	switch {
	case difficulty < easyBelow:
		return "easy"
	case difficulty < mediumBelow:
		return "medium"
	default:
		return "hard"
	}
}

func (r *KeywordReporter) writeJSON(v any) error {
	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("json.Encode > %w", err)
	}
	return nil
}
