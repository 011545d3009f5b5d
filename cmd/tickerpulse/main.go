package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/spacesedan/tickerpulse/config"
	"github.com/spacesedan/tickerpulse/internal/alerts"
	"github.com/spacesedan/tickerpulse/internal/analyzer"
	"github.com/spacesedan/tickerpulse/internal/cache"
	"github.com/spacesedan/tickerpulse/internal/logging"
	"github.com/spacesedan/tickerpulse/internal/market"
	"github.com/spacesedan/tickerpulse/internal/models"
	"github.com/spacesedan/tickerpulse/internal/server"
	"github.com/spacesedan/tickerpulse/internal/sources"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config error:", err)
		os.Exit(1)
	}
	logging.InitLogger(cfg.Logging.Level)

	root := &cobra.Command{
		Use:          "tickerpulse",
		Short:        "News sentiment signals for stock symbols",
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(cfg), newAnalyzeCmd(cfg))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildAnalyzer(cfg *config.Config) (*analyzer.Analyzer, func(), error) {
	newsAPI := sources.NewNewsAPISource()
	var news sources.NewsSource
	if newsAPI.Configured() {
		news = sources.NewChainNewsSource(newsAPI, sources.NewRSSSource(), sources.NewFallbackSource())
	} else {
		slog.Info("[Main] NEWS_API_KEY not set, using RSS with demo fallback")
		news = sources.NewChainNewsSource(sources.NewRSSSource(), sources.NewFallbackSource())
	}

	cleanup := func() {}
	var recordCache cache.RecordCache
	switch cfg.Cache.Backend {
	case "valkey":
		vc, err := cache.NewValkeyCache(cfg.Cache.TTL)
		if err != nil {
			return nil, nil, fmt.Errorf("init valkey cache: %w", err)
		}
		recordCache = vc
		cleanup = vc.Close
	default:
		recordCache = cache.NewMemoryCache(cfg.Cache.TTL)
	}

	a := analyzer.New(news, sources.NewYahooPriceSource(), recordCache, analyzer.Options{
		TrendThreshold: cfg.Analysis.TrendThreshold,
		VADERWeight:    cfg.Analysis.VADERWeight,
		PatternWeight:  cfg.Analysis.PatternWeight,
		MaxConcurrency: cfg.Analysis.MaxConcurrency,
		FetchTimeout:   cfg.Analysis.FetchTimeout,
	})
	return a, cleanup, nil
}

func newServeCmd(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, cleanup, err := buildAnalyzer(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			engine := alerts.NewEngine(cfg.Alerts)
			srv := server.New(cfg.Server.Addr, cfg.Server.AllowedOrigins, a, engine, cfg.Analysis.LookbackDays)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() { errCh <- srv.ListenAndServe() }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
				slog.Info("[Main] Shutting down")
				return srv.Shutdown(context.Background())
			}
		},
	}
}

func newAnalyzeCmd(cfg *config.Config) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "analyze [symbols...]",
		Short: "Run one analysis round and print the results as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			symbols := make([]string, 0, len(args))
			for _, arg := range args {
				symbol := market.NormalizeSymbol(arg)
				if !market.ValidSymbol(symbol) {
					return fmt.Errorf("invalid symbol: %q", arg)
				}
				symbols = append(symbols, symbol)
			}

			a, cleanup, err := buildAnalyzer(cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			result := a.AnalyzeBatch(cmd.Context(), symbols, days)
			triggered := alerts.NewEngine(cfg.Alerts).Evaluate(result.Records)

			out := struct {
				analyzer.BatchResult
				Alerts []models.Alert `json:"alerts"`
			}{BatchResult: result, Alerts: triggered}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().IntVar(&days, "days", cfg.Analysis.LookbackDays, "lookback window in days")
	return cmd
}
