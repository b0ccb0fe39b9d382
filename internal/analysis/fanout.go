package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/at-ishikawa/kwinsight/internal/keyword"
)

// part selects which sub-results an upstream round fetches.
type part uint8

const (
	partSuggestions part = 1 << iota
	partQuestions
	partDifficulty
)

// round holds raw adapter output indexed by source priority, so merging never
// depends on which call finished first.
type round struct {
	suggestions [][]keyword.Suggestion
	questions   [][]keyword.Question
	frequency   int
	competition int
}

// fanOut calls every adapter needed for parts concurrently and waits for all of them.
// Adapters absorb their own upstream failures; only a panic fails the round.
func (e *Engine) fanOut(ctx context.Context, op string, k keyword.Keyword, parts part) (round, error) {
	start := time.Now()
	r := round{
		frequency:   keyword.NeutralScore,
		competition: keyword.NeutralScore,
	}

	var g errgroup.Group
	if parts&partSuggestions != 0 {
		r.suggestions = make([][]keyword.Suggestion, len(e.sources.Suggestions))
		for i, source := range e.sources.Suggestions {
			g.Go(func() (err error) {
				defer recoverStep(op, k, "suggestions", &err)
				r.suggestions[i] = source.Suggestions(ctx, k)
				return nil
			})
		}
	}
	if parts&partQuestions != 0 {
		r.questions = make([][]keyword.Question, len(e.sources.Questions))
		for i, source := range e.sources.Questions {
			g.Go(func() (err error) {
				defer recoverStep(op, k, "questions", &err)
				r.questions[i] = source.Questions(ctx, k)
				return nil
			})
		}
	}
	if parts&partDifficulty != 0 {
		if e.sources.Frequency != nil {
			g.Go(func() (err error) {
				defer recoverStep(op, k, "frequency", &err)
				r.frequency = e.sources.Frequency.Score(ctx, k)
				return nil
			})
		}
		if e.sources.Competition != nil {
			g.Go(func() (err error) {
				defer recoverStep(op, k, "competition", &err)
				r.competition = e.sources.Competition.Score(ctx, k)
				return nil
			})
		}
	}

	err := g.Wait()
	elapsed := time.Since(start)
	e.metrics.ObserveUpstreamRound(op, elapsed)
	if err != nil {
		return round{}, err
	}
	slog.Default().Debug("upstream round finished",
		"operation", op,
		"keyword", k,
		"elapsed", elapsed)
	return r, nil
}

func recoverStep(op string, k keyword.Keyword, step string, err *error) {
	if r := recover(); r != nil {
		*err = panicFailure(op, k, fmt.Sprintf("%s: %v", step, r))
	}
}
