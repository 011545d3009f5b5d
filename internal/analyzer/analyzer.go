// Package analyzer orchestrates the sentiment pipeline for one or more
// symbols: fetch articles, score, aggregate, estimate price correlation,
// and optionally cache the resulting record.
package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spacesedan/tickerpulse/internal/cache"
	"github.com/spacesedan/tickerpulse/internal/models"
	"github.com/spacesedan/tickerpulse/internal/sentiment"
	"github.com/spacesedan/tickerpulse/internal/sources"
)

// Options tunes an Analyzer. Zero values fall back to sane defaults.
type Options struct {
	TrendThreshold float64
	VADERWeight    float64
	PatternWeight  float64
	MaxConcurrency int
	FetchTimeout   time.Duration
}

func (o Options) withDefaults() Options {
	if o.TrendThreshold <= 0 {
		o.TrendThreshold = sentiment.DefaultTrendThreshold
	}
	if o.VADERWeight <= 0 {
		o.VADERWeight = sentiment.DefaultVADERWeight
		o.PatternWeight = sentiment.DefaultPatternWeight
	}
	if o.MaxConcurrency < 1 {
		o.MaxConcurrency = 5
	}
	if o.FetchTimeout <= 0 {
		o.FetchTimeout = 15 * time.Second
	}
	return o
}

// Analyzer runs the full per-symbol pipeline. It is stateless apart from
// the optional result cache and safe for concurrent use.
type Analyzer struct {
	scorer *sentiment.Scorer
	news   sources.NewsSource
	prices sources.PriceSource
	cache  cache.RecordCache
	opts   Options
}

// New builds an Analyzer. prices and recordCache may be nil: without a
// price source every record carries correlation 0.0, and without a cache
// every call recomputes.
func New(news sources.NewsSource, prices sources.PriceSource, recordCache cache.RecordCache, opts Options) *Analyzer {
	opts = opts.withDefaults()
	return &Analyzer{
		scorer: sentiment.NewScorerWithWeights(opts.VADERWeight, opts.PatternWeight),
		news:   news,
		prices: prices,
		cache:  recordCache,
		opts:   opts,
	}
}

// AnalyzeSymbol produces the SentimentRecord for one symbol over the
// lookback window. Zero usable articles yields the neutral record; only a
// failed article fetch is an error.
func (a *Analyzer) AnalyzeSymbol(ctx context.Context, symbol string, days int) (models.SentimentRecord, error) {
	if a.cache != nil {
		if record, ok, err := a.cache.Get(ctx, symbol, days); err == nil && ok {
			slog.Debug("[Analyzer] Cache hit",
				slog.String("symbol", symbol),
				slog.Int("days", days))
			return record, nil
		}
	}

	fetchCtx, cancel := context.WithTimeout(ctx, a.opts.FetchTimeout)
	articles, err := a.news.FetchArticles(fetchCtx, symbol, days)
	cancel()
	if err != nil {
		return models.SentimentRecord{}, fmt.Errorf("fetch articles for %s: %w", symbol, err)
	}

	scored := a.scorer.ScoreArticles(articles)
	record := sentiment.Aggregate(symbol, scored, a.opts.TrendThreshold)

	if len(scored) > 0 && a.prices != nil {
		record.PriceCorrelation = a.correlate(ctx, symbol, scored, days)
	}

	if a.cache != nil {
		if err := a.cache.Set(ctx, symbol, days, record); err != nil {
			slog.Warn("[Analyzer] Cache write failed",
				slog.String("symbol", symbol),
				slog.String("error", err.Error()))
		}
	}

	return record, nil
}

// correlate fetches the price series and estimates the same-day
// correlation. A failed price fetch degrades to 0.0 rather than failing
// the record.
func (a *Analyzer) correlate(ctx context.Context, symbol string, scored []models.ScoredArticle, days int) float64 {
	fetchCtx, cancel := context.WithTimeout(ctx, a.opts.FetchTimeout)
	defer cancel()

	series, err := a.prices.FetchPrices(fetchCtx, symbol, days)
	if err != nil {
		slog.Warn("[Analyzer] Price fetch failed, correlation unavailable",
			slog.String("symbol", symbol),
			slog.String("error", err.Error()))
		return 0.0
	}

	return sentiment.PriceCorrelation(scored, series)
}
