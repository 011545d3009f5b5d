package analyzer

import (
	"context"
	"log/slog"
	"math"
	"sync"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"

	"github.com/spacesedan/tickerpulse/internal/models"
)

// BatchResult is the outcome of one multi-symbol analysis round.
// Records only contains symbols that succeeded; downstream aggregates are
// computed over those alone.
type BatchResult struct {
	Records map[string]models.SentimentRecord `json:"records"`
	Summary models.MarketSummary              `json:"summary"`
}

// AnalyzeBatch fans out per-symbol analyses with bounded concurrency.
// Symbol analyses fail independently: a failed symbol is logged and
// omitted from the result rather than aborting the batch.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, symbols []string, days int) BatchResult {
	records := make(map[string]models.SentimentRecord, len(symbols))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.opts.MaxConcurrency)

	for _, symbol := range symbols {
		symbol := symbol
		g.Go(func() error {
			record, err := a.AnalyzeSymbol(gctx, symbol, days)
			if err != nil {
				slog.Warn("[Analyzer] Symbol analysis failed, omitting from batch",
					slog.String("symbol", symbol),
					slog.String("error", err.Error()))
				return nil
			}
			mu.Lock()
			records[symbol] = record
			mu.Unlock()
			return nil
		})
	}

	// Workers swallow their own errors, so Wait only reflects ctx
	// cancellation; partial results are still returned.
	_ = g.Wait()

	return BatchResult{
		Records: records,
		Summary: Summarize(records),
	}
}

// Summarize computes market-wide sentiment metrics over the symbols that
// produced a record. Bullish means overall sentiment above 0.6, bearish
// below 0.4.
func Summarize(records map[string]models.SentimentRecord) models.MarketSummary {
	if len(records) == 0 {
		return models.MarketSummary{OverallMarketSentiment: 0.5}
	}

	sentiments := make([]float64, 0, len(records))
	for _, record := range records {
		sentiments = append(sentiments, record.OverallSentiment)
	}

	summary := models.MarketSummary{
		OverallMarketSentiment: stat.Mean(sentiments, nil),
		MarketConfidence:       math.Max(0, 1-stat.PopStdDev(sentiments, nil)),
	}

	for _, s := range sentiments {
		switch {
		case s > 0.6:
			summary.BullishStocks++
		case s < 0.4:
			summary.BearishStocks++
		default:
			summary.NeutralStocks++
		}
	}

	return summary
}
