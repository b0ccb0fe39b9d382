// Package trends adapts the Google Trends explore and widget endpoints.
package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"resty.dev/v3"

	"github.com/at-ishikawa/kwinsight/internal/keyword"
	"github.com/at-ishikawa/kwinsight/internal/provider"
)

const (
	Name            = "trends"
	DefaultBaseURL  = "https://trends.google.com/trends/api"
	DefaultGeo      = "FR"
	DefaultLanguage = "fr"

	relatedQueriesWidget = "RELATED_QUERIES"
	timeseriesWidget     = "TIMESERIES"

	// Google prefixes JSON payloads with this guard against script inclusion.
	xssiPrefix = ")]}'"

	maxRanked      = 5
	questionPrefix = "pourquoi"
	timeframe      = "today 12-m"
)

type Config struct {
	BaseURL  string
	Geo      string
	Language string
	Retries  uint
	Guard    provider.Guard
}

type Client struct {
	httpClient *resty.Client
	geo        string
	language   string
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
	geo := config.Geo
	if geo == "" {
		geo = DefaultGeo
	}
	language := config.Language
	if language == "" {
		language = DefaultLanguage
	}

	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Accept", "application/json")

	return &Client{
		httpClient: client,
		geo:        geo,
		language:   language,
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

type exploreRequest struct {
	ComparisonItem []comparisonItem `json:"comparisonItem"`
	Category       int              `json:"category"`
	Property       string           `json:"property"`
}

type comparisonItem struct {
	Keyword string `json:"keyword"`
	Geo     string `json:"geo"`
	Time    string `json:"time"`
}

type exploreResponse struct {
	Widgets []widget `json:"widgets"`
}

type widget struct {
	ID      string          `json:"id"`
	Token   string          `json:"token"`
	Request json.RawMessage `json:"request"`
}

type relatedSearchesResponse struct {
	Default struct {
		RankedList []struct {
			RankedKeyword []rankedKeyword `json:"rankedKeyword"`
		} `json:"rankedList"`
	} `json:"default"`
}

type rankedKeyword struct {
	Query string  `json:"query"`
	Value float64 `json:"value"`
}

type multilineResponse struct {
	Default struct {
		TimelineData []timelinePoint `json:"timelineData"`
	} `json:"default"`
}

type timelinePoint struct {
	Value []float64 `json:"value"`
}

// decode strips the anti-inclusion prefix before unmarshalling.
func decode(body string, v any) error {
	body = strings.TrimPrefix(strings.TrimSpace(body), xssiPrefix)
	body = strings.TrimLeft(body, ", \r\n\t")
	if err := json.Unmarshal([]byte(body), v); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, params map[string]string, v any) error {
	return provider.Retry(ctx, c.retries, func() error {
		response, err := c.httpClient.R().
			SetContext(ctx).
			SetQueryParam("hl", c.language).
			SetQueryParam("tz", "0").
			SetQueryParams(params).
			Get(path)
		if err != nil {
			return fmt.Errorf("httpClient.Get %s > %w", path, err)
		}
		if response.IsError() {
			return &provider.StatusError{Provider: Name, StatusCode: response.StatusCode(), Body: response.String()}
		}
		if err := decode(response.String(), v); err != nil {
			return fmt.Errorf("decode %s > %w", path, err)
		}
		return nil
	})
}

// explore returns the widget with the given id for a search term.
func (c *Client) explore(ctx context.Context, term, widgetID string) (widget, bool, error) {
	req, err := json.Marshal(exploreRequest{
		ComparisonItem: []comparisonItem{{Keyword: term, Geo: c.geo, Time: timeframe}},
	})
	if err != nil {
		return widget{}, false, fmt.Errorf("json.Marshal > %w", err)
	}

	var response exploreResponse
	if err := c.get(ctx, "/explore", map[string]string{"req": string(req)}, &response); err != nil {
		return widget{}, false, fmt.Errorf("explore > %w", err)
	}
	for _, w := range response.Widgets {
		if strings.HasPrefix(w.ID, widgetID) {
			return w, true, nil
		}
	}
	return widget{}, false, nil
}

func (c *Client) widgetData(ctx context.Context, path string, w widget, v any) error {
	return c.get(ctx, path, map[string]string{
		"req":   string(w.Request),
		"token": w.Token,
	}, v)
}

// relatedQueries returns the top ranked queries searched together with term.
func (c *Client) relatedQueries(ctx context.Context, term string) ([]rankedKeyword, error) {
	w, found, err := c.explore(ctx, term, relatedQueriesWidget)
	if err != nil || !found {
		return nil, err
	}

	var response relatedSearchesResponse
	if err := c.widgetData(ctx, "/widgetdata/relatedsearches", w, &response); err != nil {
		return nil, fmt.Errorf("relatedsearches > %w", err)
	}
	if len(response.Default.RankedList) == 0 {
		return nil, nil
	}
	top := response.Default.RankedList[0].RankedKeyword
	if len(top) > maxRanked {
		top = top[:maxRanked]
	}
	return top, nil
}

func (c *Client) Suggestions(ctx context.Context, k keyword.Keyword) []keyword.Suggestion {
	return provider.Collect(ctx, c.guard, Name+"/suggestions", k, func(ctx context.Context) ([]keyword.Suggestion, error) {
		ranked, err := c.relatedQueries(ctx, k.String())
		if err != nil {
			return nil, err
		}
		suggestions := make([]keyword.Suggestion, 0, len(ranked))
		for _, r := range ranked {
			if r.Query == "" {
				continue
			}
			suggestions = append(suggestions, keyword.Suggestion{Keyword: r.Query, Score: keyword.Clamp(r.Value)})
		}
		return suggestions, nil
	})
}

// Questions looks at what people ask about the keyword with "pourquoi".
func (c *Client) Questions(ctx context.Context, k keyword.Keyword) []keyword.Question {
	return provider.Collect(ctx, c.guard, Name+"/questions", k, func(ctx context.Context) ([]keyword.Question, error) {
		ranked, err := c.relatedQueries(ctx, questionPrefix+" "+k.String())
		if err != nil {
			return nil, err
		}
		questions := make([]keyword.Question, 0, len(ranked))
		for _, r := range ranked {
			if r.Query == "" {
				continue
			}
			questions = append(questions, keyword.Question{Question: r.Query + " ?", Score: keyword.Clamp(r.Value)})
		}
		return questions, nil
	})
}

// Score is the competition sub-score of the difficulty, derived from search interest over time.
func (c *Client) Score(ctx context.Context, k keyword.Keyword) int {
	return provider.CollectScore(ctx, c.guard, Name+"/competition", k, func(ctx context.Context) (int, bool, error) {
		w, found, err := c.explore(ctx, k.String(), timeseriesWidget)
		if err != nil || !found {
			return 0, false, err
		}

		var response multilineResponse
		if err := c.widgetData(ctx, "/widgetdata/multiline", w, &response); err != nil {
			return 0, false, fmt.Errorf("multiline > %w", err)
		}
		average, ok := averageInterest(response.Default.TimelineData)
		if !ok {
			return 0, false, nil
		}
		return competitionScore(average), true, nil
	})
}

func averageInterest(points []timelinePoint) (float64, bool) {
	var sum float64
	var count int
	for _, p := range points {
		if len(p.Value) == 0 {
			continue
		}
		sum += p.Value[0]
		count++
	}
	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// competitionScore maps an interest average in [0,100] onto [20,100].
func competitionScore(average float64) int {
	return keyword.Clamp(math.Round(average/100*80 + 20))
}
