// Package datamuse adapts the Datamuse word-association API.
package datamuse

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"golang.org/x/sync/errgroup"

	"github.com/at-ishikawa/kwinsight/internal/keyword"
	"github.com/at-ishikawa/kwinsight/internal/provider"
)

const (
	Name           = "datamuse"
	DefaultBaseURL = "https://api.datamuse.com"

	suggestionCeiling = 1000
	questionCeiling   = 5000
	// Only associations stronger than this become questions.
	questionThreshold = 1000
	frequencyCeiling  = 50000

	questionFormat = "Comment utiliser %s avec %s ?"
)

type Config struct {
	BaseURL string
	Retries uint
	Guard   provider.Guard
}

type Client struct {
	httpClient *resty.Client
	retries    uint
	guard      provider.Guard
}

var (
	_ provider.SuggestionSource = (*Client)(nil)
	_ provider.QuestionSource   = (*Client)(nil)
	_ provider.ScoreSource      = (*Client)(nil)
)

func NewClient(config Config) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	return &Client{
		httpClient: client,
		retries:    config.Retries,
		guard:      config.Guard,
	}
}

func (c *Client) Name() string {
	return Name
}

// word is one entry of a /words response.
type word struct {
	Word  string   `json:"word"`
	Score float64  `json:"score"`
	Tags  []string `json:"tags,omitempty"`
}

func (c *Client) lookup(ctx context.Context, params map[string]string) ([]word, error) {
	var words []word
	err := provider.Retry(ctx, c.retries, func() error {
		res, err := c.httpClient.R().
			SetContext(ctx).
			SetQueryParams(params).
			Get("/words")
		if err != nil {
			return fmt.Errorf("client.R.Get > %w", err)
		}
		if res.IsError() {
			return &provider.StatusError{Provider: Name, StatusCode: res.StatusCode(), Body: res.String()}
		}
		if err := json.Unmarshal(res.Body(), &words); err != nil {
			return fmt.Errorf("json.Unmarshal > %w", err)
		}
		return nil
	})
	return words, err
}

// Suggestions merges "triggered by" and "means like" associations.
func (c *Client) Suggestions(ctx context.Context, k keyword.Keyword) []keyword.Suggestion {
	return provider.Collect(ctx, c.guard, Name+"/suggestions", k, func(ctx context.Context) ([]keyword.Suggestion, error) {
		var triggered, meansLike []word
		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			triggered, err = c.lookup(ctx, map[string]string{"rel_trg": k.String(), "max": "10"})
			return err
		})
		g.Go(func() error {
			var err error
			meansLike, err = c.lookup(ctx, map[string]string{"ml": k.String(), "max": "10"})
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return toSuggestions(append(triggered, meansLike...)), nil
	})
}

func (c *Client) Questions(ctx context.Context, k keyword.Keyword) []keyword.Question {
	return provider.Collect(ctx, c.guard, Name+"/questions", k, func(ctx context.Context) ([]keyword.Question, error) {
		words, err := c.lookup(ctx, map[string]string{"rel_trg": k.String(), "max": "15"})
		if err != nil {
			return nil, err
		}
		return toQuestions(k, words), nil
	})
}

// Score is the word-frequency sub-score of the difficulty.
func (c *Client) Score(ctx context.Context, k keyword.Keyword) int {
	return provider.CollectScore(ctx, c.guard, Name+"/frequency", k, func(ctx context.Context) (int, bool, error) {
		words, err := c.lookup(ctx, map[string]string{"sp": k.String(), "md": "f", "max": "1"})
		if err != nil {
			return 0, false, err
		}
		score, found := toFrequencyScore(words)
		return score, found, nil
	})
}

func toSuggestions(words []word) []keyword.Suggestion {
	suggestions := make([]keyword.Suggestion, 0, len(words))
	for _, w := range words {
		if w.Word == "" || w.Score == 0 {
			continue
		}
		suggestions = append(suggestions, keyword.Suggestion{
			Keyword: w.Word,
			Score:   keyword.Scale(w.Score, suggestionCeiling),
		})
	}
	return suggestions
}

func toQuestions(k keyword.Keyword, words []word) []keyword.Question {
	questions := make([]keyword.Question, 0, len(words))
	for _, w := range words {
		if w.Word == "" || w.Score <= questionThreshold {
			continue
		}
		questions = append(questions, keyword.Question{
			Question: fmt.Sprintf(questionFormat, k, w.Word),
			Score:    keyword.Scale(w.Score, questionCeiling),
		})
	}
	return questions
}

// toFrequencyScore reads the "f:<per million>" tag of the first entry.
func toFrequencyScore(words []word) (int, bool) {
	if len(words) == 0 {
		return 0, false
	}
	for _, tag := range words[0].Tags {
		value, ok := strings.CutPrefix(tag, "f:")
		if !ok {
			continue
		}
		frequency, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, false
		}
		return keyword.Scale(frequency, frequencyCeiling), true
	}
	return 0, false
}
