// Package duckduckgo adapts the DuckDuckGo autocomplete endpoint.
package duckduckgo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"resty.dev/v3"

	"github.com/at-ishikawa/kwinsight/internal/keyword"
	"github.com/at-ishikawa/kwinsight/internal/provider"
)

const (
	Name           = "duckduckgo"
	DefaultBaseURL = "https://duckduckgo.com"
	DefaultRegion  = "fr-fr"

	// Each rank below the first loses this many points.
	rankPenalty = 10
)

type Config struct {
	BaseURL string
	Region  string
	Retries uint
	Guard   provider.Guard
}

type Client struct {
	httpClient *resty.Client
	region     string
	retries    uint
	guard      provider.Guard
}

var _ provider.SuggestionSource = (*Client)(nil)

func NewClient(config Config) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	region := config.Region
	if region == "" {
		region = DefaultRegion
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Accept", "application/json")

	return &Client{
		httpClient: client,
		region:     region,
		retries:    config.Retries,
		guard:      config.Guard,
	}
}

func (c *Client) Close() error {
	return c.httpClient.Close()
}

func (c *Client) Name() string {
	return Name
}

type phrase struct {
	Phrase string `json:"phrase"`
}

func (c *Client) autocomplete(ctx context.Context, k keyword.Keyword) ([]phrase, error) {
	var phrases []phrase
	err := provider.Retry(ctx, c.retries, func() error {
		response, err := c.httpClient.R().
			SetContext(ctx).
			SetQueryParam("q", k.String()).
			SetQueryParam("kl", c.region).
			Get("/ac/")
		if err != nil {
			return fmt.Errorf("httpClient.Get > %w", err)
		}
		if response.IsError() {
			return &provider.StatusError{Provider: Name, StatusCode: response.StatusCode(), Body: response.String()}
		}
		if err := json.Unmarshal(response.Bytes(), &phrases); err != nil {
			return fmt.Errorf("json.Unmarshal > %w", err)
		}
		return nil
	})
	return phrases, err
}

// Suggestions scores completions by their position in the list.
func (c *Client) Suggestions(ctx context.Context, k keyword.Keyword) []keyword.Suggestion {
	return provider.Collect(ctx, c.guard, Name+"/suggestions", k, func(ctx context.Context) ([]keyword.Suggestion, error) {
		phrases, err := c.autocomplete(ctx, k)
		if err != nil {
			return nil, err
		}
		suggestions := make([]keyword.Suggestion, 0, len(phrases))
		for _, p := range phrases {
			text := strings.TrimSpace(p.Phrase)
			if text == "" {
				continue
			}
			suggestions = append(suggestions, keyword.Suggestion{
				Keyword: text,
				Score:   rankScore(len(suggestions)),
			})
		}
		return suggestions, nil
	})
}

func rankScore(rank int) int {
	return keyword.Clamp(float64(keyword.MaxScore - rankPenalty*rank))
}
