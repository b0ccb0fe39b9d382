// Package provider defines the contracts upstream data sources implement and the guard
// that turns their failures into empty or neutral contributions.
package provider

import (
	"context"

	"github.com/at-ishikawa/kwinsight/internal/keyword"
)

//go:generate mockgen -source=provider.go -destination=../mocks/provider/mock_provider.go -package=mock_provider

// SuggestionSource returns related keywords with scores already normalized to [0,100].
// Implementations never fail: an unavailable upstream yields an empty slice.
type SuggestionSource interface {
	Name() string
	Suggestions(ctx context.Context, k keyword.Keyword) []keyword.Suggestion
}

// QuestionSource returns related questions. Same failure contract as SuggestionSource.
type QuestionSource interface {
	Name() string
	Questions(ctx context.Context, k keyword.Keyword) []keyword.Question
}

// ScoreSource returns one difficulty sub-score in [0,100], or keyword.NeutralScore
// when the upstream has no usable data.
type ScoreSource interface {
	Name() string
	Score(ctx context.Context, k keyword.Keyword) int
}
