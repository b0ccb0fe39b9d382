// Package analysis aggregates keyword data from several upstream providers into a
// single scored result, behind a shared request budget and a TTL cache.
package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/at-ishikawa/kwinsight/internal/cache"
	"github.com/at-ishikawa/kwinsight/internal/keyword"
	"github.com/at-ishikawa/kwinsight/internal/metrics"
	"github.com/at-ishikawa/kwinsight/internal/provider"
)

const (
	DefaultMaxSuggestions  = 10
	DefaultMaxQuestions    = 8
	DefaultBulkLimit       = 100
	DefaultBulkConcurrency = 8
)

const (
	opAnalyze     = "analyze"
	opSuggestions = "suggestions"
	opQuestions   = "questions"
	opDifficulty  = "difficulty"
)

// Limiter grants one permit per upstream round. *ratelimit.Limiter implements it.
type Limiter interface {
	Allow() bool
}

// Sources lists the adapters in priority order. Earlier sources win on duplicates.
type Sources struct {
	Suggestions []provider.SuggestionSource
	Questions   []provider.QuestionSource
	Frequency   provider.ScoreSource
	Competition provider.ScoreSource
}

// Names returns the configured adapter names, for startup logs.
func (s Sources) Names() map[string][]string {
	names := map[string][]string{}
	for _, source := range s.Suggestions {
		names[opSuggestions] = append(names[opSuggestions], source.Name())
	}
	for _, source := range s.Questions {
		names[opQuestions] = append(names[opQuestions], source.Name())
	}
	if s.Frequency != nil {
		names["frequency"] = []string{s.Frequency.Name()}
	}
	if s.Competition != nil {
		names["competition"] = []string{s.Competition.Name()}
	}
	return names
}

type Config struct {
	MaxSuggestions  int
	MaxQuestions    int
	BulkLimit       int
	BulkConcurrency int
	CacheTTL        time.Duration

	// Now defaults to time.Now. It drives both cache expiry and result timestamps.
	Now     func() time.Time
	Metrics *metrics.Metrics
}

type Engine struct {
	sources Sources
	limiter Limiter
	metrics *metrics.Metrics
	now     func() time.Time

	maxSuggestions  int
	maxQuestions    int
	bulkLimit       int
	bulkConcurrency int

	suggestions *cache.Cache[[]keyword.Suggestion]
	questions   *cache.Cache[[]keyword.Question]
	difficulty  *cache.Cache[int]
	analyses    *cache.Cache[keyword.Analysis]

	flight singleflight.Group
}

func NewEngine(sources Sources, limiter Limiter, config Config) *Engine {
	now := config.Now
	if now == nil {
		now = time.Now
	}
	e := &Engine{
		sources:         sources,
		limiter:         limiter,
		metrics:         config.Metrics,
		now:             now,
		maxSuggestions:  orDefault(config.MaxSuggestions, DefaultMaxSuggestions),
		maxQuestions:    orDefault(config.MaxQuestions, DefaultMaxQuestions),
		bulkLimit:       orDefault(config.BulkLimit, DefaultBulkLimit),
		bulkConcurrency: orDefault(config.BulkConcurrency, DefaultBulkConcurrency),
	}

	e.suggestions = cache.New(opSuggestions, config.CacheTTL,
		cache.WithClock[[]keyword.Suggestion](now),
		cache.WithClone(keyword.CloneSuggestions),
		cache.WithObserver[[]keyword.Suggestion](e.metrics),
	)
	e.questions = cache.New(opQuestions, config.CacheTTL,
		cache.WithClock[[]keyword.Question](now),
		cache.WithClone(keyword.CloneQuestions),
		cache.WithObserver[[]keyword.Question](e.metrics),
	)
	e.difficulty = cache.New(opDifficulty, config.CacheTTL,
		cache.WithClock[int](now),
		cache.WithObserver[int](e.metrics),
	)
	e.analyses = cache.New("analysis", config.CacheTTL,
		cache.WithClock[keyword.Analysis](now),
		cache.WithClone(keyword.Analysis.Clone),
		cache.WithObserver[keyword.Analysis](e.metrics),
	)
	return e
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// Analyze returns the full analysis of raw, from the cache when possible.
func (e *Engine) Analyze(ctx context.Context, raw string) (keyword.Analysis, error) {
	return lookup(ctx, e, opAnalyze, raw, e.analyses, keyword.Analysis.Clone, e.computeAnalysis)
}

func (e *Engine) Suggestions(ctx context.Context, raw string) ([]keyword.Suggestion, error) {
	return lookup(ctx, e, opSuggestions, raw, e.suggestions, keyword.CloneSuggestions, func(ctx context.Context, k keyword.Keyword) ([]keyword.Suggestion, error) {
		if err := e.permit(opSuggestions, k); err != nil {
			return nil, err
		}
		r, err := e.fanOut(ctx, opSuggestions, k, partSuggestions)
		if err != nil {
			return nil, err
		}
		suggestions := keyword.MergeSuggestions(e.maxSuggestions, r.suggestions...)
		e.suggestions.Set(k.String(), suggestions)
		return suggestions, nil
	})
}

func (e *Engine) Questions(ctx context.Context, raw string) ([]keyword.Question, error) {
	return lookup(ctx, e, opQuestions, raw, e.questions, keyword.CloneQuestions, func(ctx context.Context, k keyword.Keyword) ([]keyword.Question, error) {
		if err := e.permit(opQuestions, k); err != nil {
			return nil, err
		}
		r, err := e.fanOut(ctx, opQuestions, k, partQuestions)
		if err != nil {
			return nil, err
		}
		questions := keyword.MergeQuestions(e.maxQuestions, r.questions...)
		e.questions.Set(k.String(), questions)
		return questions, nil
	})
}

func (e *Engine) Difficulty(ctx context.Context, raw string) (int, error) {
	return lookup(ctx, e, opDifficulty, raw, e.difficulty, identity[int], func(ctx context.Context, k keyword.Keyword) (int, error) {
		if err := e.permit(opDifficulty, k); err != nil {
			return 0, err
		}
		r, err := e.fanOut(ctx, opDifficulty, k, partDifficulty)
		if err != nil {
			return 0, err
		}
		difficulty := keyword.Difficulty(r.frequency, r.competition)
		e.difficulty.Set(k.String(), difficulty)
		return difficulty, nil
	})
}

// computeAnalysis reuses cached sub-results and only asks upstream for the missing ones.
// A round with nothing missing needs no permit.
func (e *Engine) computeAnalysis(ctx context.Context, k keyword.Keyword) (keyword.Analysis, error) {
	key := k.String()
	suggestions, hasSuggestions := e.suggestions.Get(key)
	questions, hasQuestions := e.questions.Get(key)
	difficulty, hasDifficulty := e.difficulty.Get(key)

	var missing part
	if !hasSuggestions {
		missing |= partSuggestions
	}
	if !hasQuestions {
		missing |= partQuestions
	}
	if !hasDifficulty {
		missing |= partDifficulty
	}

	if missing != 0 {
		if err := e.permit(opAnalyze, k); err != nil {
			return keyword.Analysis{}, err
		}
		r, err := e.fanOut(ctx, opAnalyze, k, missing)
		if err != nil {
			return keyword.Analysis{}, err
		}
		if !hasSuggestions {
			suggestions = keyword.MergeSuggestions(e.maxSuggestions, r.suggestions...)
			e.suggestions.Set(key, suggestions)
		}
		if !hasQuestions {
			questions = keyword.MergeQuestions(e.maxQuestions, r.questions...)
			e.questions.Set(key, questions)
		}
		if !hasDifficulty {
			difficulty = keyword.Difficulty(r.frequency, r.competition)
			e.difficulty.Set(key, difficulty)
		}
	}

	analysis := keyword.NewAnalysis(k, difficulty, suggestions, questions, e.now())
	e.analyses.Set(key, analysis)
	return analysis, nil
}

func (e *Engine) permit(op string, k keyword.Keyword) error {
	if e.limiter == nil || e.limiter.Allow() {
		return nil
	}
	e.metrics.ObserveRateLimited(op)
	slog.Default().Info("request budget exhausted",
		"operation", op,
		"keyword", k)
	return ErrRateLimited
}

// PurgeExpired drops expired entries from every cache.
func (e *Engine) PurgeExpired() int {
	return e.suggestions.Purge() + e.questions.Purge() + e.difficulty.Purge() + e.analyses.Purge()
}

func identity[T any](v T) T {
	return v
}

// lookup normalizes raw, serves a cache hit directly, and otherwise runs compute once
// per key no matter how many callers miss at the same time.
func lookup[T any](
	ctx context.Context,
	e *Engine,
	op string,
	raw string,
	c *cache.Cache[T],
	clone func(T) T,
	compute func(ctx context.Context, k keyword.Keyword) (T, error),
) (result T, err error) {
	defer func() {
		e.metrics.ObserveAnalysis(op, err)
	}()

	k, err := keyword.Normalize(raw)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if cached, ok := c.Get(k.String()); ok {
		return cached, nil
	}

	ch := e.flight.DoChan(op+":"+k.String(), func() (v any, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = panicFailure(op, k, r)
			}
		}()
		// Another round may have filled the cache since the miss above.
		if cached, ok := c.Get(k.String()); ok {
			return cached, nil
		}
		// The round outlives a caller that gives up, so waiters still get its result.
		return compute(context.WithoutCancel(ctx), k)
	})

	select {
	case <-ctx.Done():
		return result, fmt.Errorf("%w: %w", ErrAnalysisFailed, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return result, res.Err
		}
		if res.Shared {
			slog.Default().Debug("shared upstream round", "operation", op, "keyword", k)
		}
		return clone(res.Val.(T)), nil
	}
}

func panicFailure(op string, k keyword.Keyword, r any) error {
	slog.Default().Error("analysis panicked",
		"operation", op,
		"keyword", k,
		"panic", r)
	return fmt.Errorf("%w: panic in %s", ErrAnalysisFailed, op)
}
