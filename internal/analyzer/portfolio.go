package analyzer

import (
	"gonum.org/v1/gonum/stat"

	"github.com/spacesedan/tickerpulse/internal/models"
)

// Portfolio computes cross-symbol risk/return metrics from sentiment
// records and per-symbol price percentage changes supplied by the pricing
// layer. Only symbols present in both maps contribute.
func Portfolio(records map[string]models.SentimentRecord, priceChanges map[string]float64) models.PortfolioMetrics {
	var changes, sentiments, correlations []float64

	for symbol, record := range records {
		change, ok := priceChanges[symbol]
		if !ok {
			continue
		}
		changes = append(changes, change)
		sentiments = append(sentiments, record.OverallSentiment)
		correlations = append(correlations, record.PriceCorrelation)
	}

	if len(changes) == 0 {
		return models.PortfolioMetrics{}
	}

	metrics := models.PortfolioMetrics{
		PortfolioReturn:     stat.Mean(changes, nil),
		PortfolioVolatility: stat.PopStdDev(changes, nil),
		PortfolioSentiment:  stat.Mean(sentiments, nil),
		SentimentVolatility: stat.PopStdDev(sentiments, nil),
		AvgCorrelation:      stat.Mean(correlations, nil),
		NumStocks:           len(changes),
	}

	if metrics.PortfolioVolatility > 0 {
		metrics.SharpeRatio = metrics.PortfolioReturn / metrics.PortfolioVolatility
	}
	if metrics.SentimentVolatility > 0 {
		metrics.SentimentRiskRatio = metrics.PortfolioSentiment / metrics.SentimentVolatility
	}

	return metrics
}
