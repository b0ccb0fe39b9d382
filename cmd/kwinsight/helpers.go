package main

import (
	"context"
	"fmt"
	"io"

	"github.com/at-ishikawa/kwinsight/internal/app"
	"github.com/at-ishikawa/kwinsight/internal/cli"
	"github.com/at-ishikawa/kwinsight/internal/config"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// withReporter builds an engine from the configuration and hands a reporter to fn.
func withReporter(ctx context.Context, out io.Writer, asJSON bool, fn func(ctx context.Context, r *cli.KeywordReporter) error) (err error) {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	rt := app.New(cfg, nil)
	defer func() {
		if closeErr := rt.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("rt.Close() > %w", closeErr)
		}
	}()

	return fn(ctx, cli.NewKeywordReporter(rt.Engine, out, asJSON))
}
