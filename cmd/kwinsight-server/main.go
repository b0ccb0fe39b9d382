package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/kwinsight/internal/app"
	"github.com/at-ishikawa/kwinsight/internal/bootstrap"
	"github.com/at-ishikawa/kwinsight/internal/config"
	"github.com/at-ishikawa/kwinsight/internal/metrics"
	"github.com/at-ishikawa/kwinsight/internal/server"
)

var configFile string

func main() {
	var debugMode bool
	rootCmd := &cobra.Command{
		Use:           "kwinsight-server",
		Short:         "Keyword analysis HTTP server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(debugMode)
			return run(cmd.Context())
		},
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug mode")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogger(debugMode bool) {
	logLevel := slog.LevelInfo
	if debugMode {
		logLevel = slog.LevelDebug
	}

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})),
	)
}

func run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loadConfig() > %w", err)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	rt := app.New(cfg, metrics.New(reg))

	lifecycle := bootstrap.New(bootstrap.WithShutdownTimeout(cfg.Server.ShutdownTimeout))
	lifecycle.AddShutdownHook(func(context.Context) error {
		return rt.Close()
	})
	lifecycle.Every("cache purge", cfg.Cache.PurgeInterval, func(context.Context) {
		if purged := rt.Engine.PurgeExpired(); purged > 0 {
			slog.Default().Debug("purged expired cache entries", "count", purged)
		}
	})

	mux := server.NewMux(server.NewKeywordHandler(rt.Engine), reg)
	srv := server.NewHTTPServer(mux, cfg.Server)
	lifecycle.AddShutdownHook(srv.Shutdown)

	return lifecycle.Run(ctx, func(ctx context.Context) error {
		slog.Default().Info("starting server", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe() > %w", err)
		}
		return nil
	})
}

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("config.NewConfigLoader() > %w", err)
	}
	return loader.Load()
}
