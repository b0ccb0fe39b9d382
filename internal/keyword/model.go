package keyword

import (
	"slices"
	"time"
)

// TimestampLayout is ISO-8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

type Suggestion struct {
	Keyword string `json:"keyword"`
	Score   int    `json:"score"`
}

type Question struct {
	Question string `json:"question"`
	Score    int    `json:"score"`
}

// Analysis is the unit returned to callers and stored in the cache.
// Treat it as read-only once built.
type Analysis struct {
	Keyword     Keyword      `json:"keyword"`
	Difficulty  int          `json:"difficulty"`
	Suggestions []Suggestion `json:"suggestions"`
	Questions   []Question   `json:"questions"`
	Timestamp   string       `json:"timestamp"`
}

func NewAnalysis(k Keyword, difficulty int, suggestions []Suggestion, questions []Question, now time.Time) Analysis {
	if suggestions == nil {
		suggestions = []Suggestion{}
	}
	if questions == nil {
		questions = []Question{}
	}
	return Analysis{
		Keyword:     k,
		Difficulty:  difficulty,
		Suggestions: suggestions,
		Questions:   questions,
		Timestamp:   now.UTC().Format(TimestampLayout),
	}
}

// Clone returns a copy that shares no slices with a.
func (a Analysis) Clone() Analysis {
	a.Suggestions = CloneSuggestions(a.Suggestions)
	a.Questions = CloneQuestions(a.Questions)
	return a
}

func CloneSuggestions(s []Suggestion) []Suggestion {
	if s == nil {
		return []Suggestion{}
	}
	return slices.Clone(s)
}

func CloneQuestions(q []Question) []Question {
	if q == nil {
		return []Question{}
	}
	return slices.Clone(q)
}
