package provider

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/at-ishikawa/kwinsight/internal/keyword"
)

const DefaultTimeout = 10 * time.Second

// FailureObserver is told about every absorbed failure. *metrics.Metrics implements it.
type FailureObserver interface {
	ObserveProviderFailure(provider string)
}

// Guard bounds each upstream call and absorbs its failures.
type Guard struct {
	Timeout  time.Duration
	Observer FailureObserver
}

func (g Guard) timeout() time.Duration {
	if g.Timeout <= 0 {
		return DefaultTimeout
	}
	return g.Timeout
}

func (g Guard) fail(provider string, k keyword.Keyword, err error) {
	slog.Default().Warn("upstream provider failed, contributing no data",
		"provider", provider,
		"keyword", k,
		"error", err)
	if g.Observer != nil {
		g.Observer.ObserveProviderFailure(provider)
	}
}

// Collect runs fetch under the guard's timeout. Errors, timeouts and panics all
// produce an empty result.
func Collect[T any](ctx context.Context, g Guard, provider string, k keyword.Keyword, fetch func(ctx context.Context) ([]T, error)) (records []T) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout())
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			g.fail(provider, k, fmt.Errorf("panic: %v", r))
			records = nil
		}
	}()

	records, err := fetch(ctx)
	if err != nil {
		g.fail(provider, k, err)
		return nil
	}
	return records
}

// CollectScore runs fetch under the guard's timeout. A failure, or a fetch reporting
// that no data was found, produces keyword.NeutralScore.
func CollectScore(ctx context.Context, g Guard, provider string, k keyword.Keyword, fetch func(ctx context.Context) (score int, found bool, err error)) (score int) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout())
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			g.fail(provider, k, fmt.Errorf("panic: %v", r))
			score = keyword.NeutralScore
		}
	}()

	score, found, err := fetch(ctx)
	if err != nil {
		g.fail(provider, k, err)
		return keyword.NeutralScore
	}
	if !found {
		slog.Default().Debug("upstream provider had no data", "provider", provider, "keyword", k)
		return keyword.NeutralScore
	}
	return score
}
