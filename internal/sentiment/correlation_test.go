package sentiment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/spacesedan/tickerpulse/internal/models"
)

func pricesOn(symbol string, closes map[string]float64, order []string) models.PriceSeries {
	series := models.PriceSeries{Symbol: symbol}
	for _, day := range order {
		date, _ := time.Parse("2006-01-02", day)
		series.Points = append(series.Points, models.PricePoint{Date: date, Close: closes[day]})
	}
	return series
}

func TestPriceCorrelationInsufficientPrices(t *testing.T) {
	scored := []models.ScoredArticle{
		scoredAt(0.5, "2026-08-26T10:00:00Z"),
		scoredAt(-0.5, "2026-08-27T10:00:00Z"),
	}

	empty := models.PriceSeries{Symbol: "A"}
	assert.Equal(t, 0.0, PriceCorrelation(scored, empty))

	single := pricesOn("A", map[string]float64{"2026-08-26": 100}, []string{"2026-08-26"})
	assert.Equal(t, 0.0, PriceCorrelation(scored, single))
}

func TestPriceCorrelationIdenticalCloses(t *testing.T) {
	scored := []models.ScoredArticle{
		scoredAt(0.5, "2026-08-26T10:00:00Z"),
		scoredAt(-0.5, "2026-08-27T10:00:00Z"),
	}
	flat := pricesOn("A",
		map[string]float64{"2026-08-25": 100, "2026-08-26": 100, "2026-08-27": 100},
		[]string{"2026-08-25", "2026-08-26", "2026-08-27"})

	// Zero price variance makes Pearson undefined; the estimator maps
	// that to 0.
	assert.Equal(t, 0.0, PriceCorrelation(scored, flat))
}

func TestPriceCorrelationPositive(t *testing.T) {
	scored := []models.ScoredArticle{
		scoredAt(0.8, "2026-08-26T09:00:00Z"),
		scoredAt(-0.4, "2026-08-27T09:00:00Z"),
	}
	prices := pricesOn("A",
		map[string]float64{"2026-08-25": 100, "2026-08-26": 110, "2026-08-27": 104.5},
		[]string{"2026-08-25", "2026-08-26", "2026-08-27"})

	correlation := PriceCorrelation(scored, prices)
	assert.InDelta(t, 1.0, correlation, 1e-9)
}

func TestPriceCorrelationNegative(t *testing.T) {
	scored := []models.ScoredArticle{
		scoredAt(-0.4, "2026-08-26T09:00:00Z"),
		scoredAt(0.8, "2026-08-27T09:00:00Z"),
	}
	prices := pricesOn("A",
		map[string]float64{"2026-08-25": 100, "2026-08-26": 110, "2026-08-27": 104.5},
		[]string{"2026-08-25", "2026-08-26", "2026-08-27"})

	correlation := PriceCorrelation(scored, prices)
	assert.InDelta(t, -1.0, correlation, 1e-9)
}

func TestPriceCorrelationNoAlignedDates(t *testing.T) {
	scored := []models.ScoredArticle{
		scoredAt(0.8, "2026-07-01T09:00:00Z"),
		scoredAt(-0.4, "2026-07-02T09:00:00Z"),
	}
	prices := pricesOn("A",
		map[string]float64{"2026-08-25": 100, "2026-08-26": 110, "2026-08-27": 104.5},
		[]string{"2026-08-25", "2026-08-26", "2026-08-27"})

	assert.Equal(t, 0.0, PriceCorrelation(scored, prices))
}

func TestPriceCorrelationSkipsBadTimestamps(t *testing.T) {
	scored := []models.ScoredArticle{
		scoredAt(0.8, "garbage"),
		scoredAt(-0.4, "2026-08-27T09:00:00Z"),
	}
	prices := pricesOn("A",
		map[string]float64{"2026-08-25": 100, "2026-08-26": 110, "2026-08-27": 104.5},
		[]string{"2026-08-25", "2026-08-26", "2026-08-27"})

	// Only one datable sentiment day remains, below the 2-pair minimum.
	assert.Equal(t, 0.0, PriceCorrelation(scored, prices))
}

func TestPriceCorrelationAveragesSameDayArticles(t *testing.T) {
	scored := []models.ScoredArticle{
		scoredAt(1.0, "2026-08-26T09:00:00Z"),
		scoredAt(0.6, "2026-08-26T15:00:00Z"),
		scoredAt(-0.4, "2026-08-27T09:00:00Z"),
	}
	prices := pricesOn("A",
		map[string]float64{"2026-08-25": 100, "2026-08-26": 110, "2026-08-27": 104.5},
		[]string{"2026-08-25", "2026-08-26", "2026-08-27"})

	// Day one averages to 0.8; direction still matches price moves.
	assert.InDelta(t, 1.0, PriceCorrelation(scored, prices), 1e-9)
}

func TestPriceCorrelationClamped(t *testing.T) {
	scored := []models.ScoredArticle{
		scoredAt(0.3, "2026-08-26T09:00:00Z"),
		scoredAt(0.1, "2026-08-27T09:00:00Z"),
		scoredAt(0.9, "2026-08-28T09:00:00Z"),
	}
	prices := pricesOn("A",
		map[string]float64{"2026-08-25": 100, "2026-08-26": 103, "2026-08-27": 101, "2026-08-28": 108},
		[]string{"2026-08-25", "2026-08-26", "2026-08-27", "2026-08-28"})

	correlation := PriceCorrelation(scored, prices)
	assert.GreaterOrEqual(t, correlation, -1.0)
	assert.LessOrEqual(t, correlation, 1.0)
}
