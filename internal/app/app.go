// Package app assembles the analysis engine and its upstream adapters from configuration.
package app

import (
	"errors"
	"log/slog"

	"github.com/at-ishikawa/kwinsight/internal/analysis"
	"github.com/at-ishikawa/kwinsight/internal/config"
	"github.com/at-ishikawa/kwinsight/internal/metrics"
	"github.com/at-ishikawa/kwinsight/internal/provider"
	"github.com/at-ishikawa/kwinsight/internal/provider/datamuse"
	"github.com/at-ishikawa/kwinsight/internal/provider/duckduckgo"
	"github.com/at-ishikawa/kwinsight/internal/provider/trends"
	"github.com/at-ishikawa/kwinsight/internal/ratelimit"
)

// Runtime owns an engine together with the clients it holds open.
type Runtime struct {
	Engine  *analysis.Engine
	Sources analysis.Sources
	Limiter *ratelimit.Limiter

	closers []func() error
}

// New builds the adapters in priority order: datamuse first, then trends, then
// duckduckgo. m may be nil.
func New(cfg *config.Config, m *metrics.Metrics) *Runtime {
	guard := provider.Guard{
		Timeout:  cfg.Providers.Timeout,
		Observer: m,
	}
	retries := cfg.Providers.RetryAttempts

	rt := &Runtime{}

	lexical := datamuse.NewClient(datamuse.Config{
		BaseURL: cfg.Providers.Datamuse.BaseURL,
		Retries: retries,
		Guard:   guard,
	})
	rt.Sources = analysis.Sources{
		Suggestions: []provider.SuggestionSource{lexical},
		Questions:   []provider.QuestionSource{lexical},
		Frequency:   lexical,
	}

	if cfg.Providers.Trends.Enabled {
		t := trends.NewClient(trends.Config{
			BaseURL:  cfg.Providers.Trends.BaseURL,
			Geo:      cfg.Providers.Locale.Geo,
			Language: cfg.Providers.Locale.Language,
			Retries:  retries,
			Guard:    guard,
		})
		rt.Sources.Suggestions = append(rt.Sources.Suggestions, t)
		rt.Sources.Questions = append(rt.Sources.Questions, t)
		rt.Sources.Competition = t
		rt.closers = append(rt.closers, t.Close)
	}

	if cfg.Providers.DuckDuckGo.Enabled {
		ddg := duckduckgo.NewClient(duckduckgo.Config{
			BaseURL: cfg.Providers.DuckDuckGo.BaseURL,
			Region:  cfg.Providers.DuckDuckGo.Region,
			Retries: retries,
			Guard:   guard,
		})
		rt.Sources.Suggestions = append(rt.Sources.Suggestions, ddg)
		rt.closers = append(rt.closers, ddg.Close)
	}

	rt.Limiter = ratelimit.New(cfg.RateLimit.Capacity, cfg.RateLimit.Window)
	rt.Engine = analysis.NewEngine(rt.Sources, rt.Limiter, analysis.Config{
		MaxSuggestions:  cfg.Analysis.MaxSuggestions,
		MaxQuestions:    cfg.Analysis.MaxQuestions,
		BulkLimit:       cfg.Analysis.BulkLimit,
		BulkConcurrency: cfg.Analysis.BulkConcurrency,
		CacheTTL:        cfg.Cache.TTL,
		Metrics:         m,
	})

	slog.Default().Info("analysis engine ready",
		"sources", rt.Sources.Names(),
		"rate_limit", cfg.RateLimit.Capacity,
		"rate_window", cfg.RateLimit.Window,
		"cache_ttl", cfg.Cache.TTL)
	return rt
}

// Close releases the upstream clients.
func (rt *Runtime) Close() error {
	var errs []error
	for _, c := range rt.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
