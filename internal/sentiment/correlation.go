package sentiment

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/spacesedan/tickerpulse/internal/models"
)

const dateKeyLayout = "2006-01-02"

// PriceCorrelation estimates the same-day Pearson correlation between
// per-day average article sentiment and per-day percentage price change.
// It needs at least 2 price points and 2 aligned (sentiment, change) pairs;
// anything less, or a degenerate correlation, yields 0. This is not a
// causal or predictive estimate.
func PriceCorrelation(scored []models.ScoredArticle, prices models.PriceSeries) float64 {
	changes := dailyChanges(prices)
	if len(changes) < 2 {
		return 0.0
	}

	daily := dailySentiment(scored)
	if len(daily) < 2 {
		return 0.0
	}

	// Deterministic alignment order.
	dates := make([]string, 0, len(daily))
	for date := range daily {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	var sentimentSeries, changeSeries []float64
	for _, date := range dates {
		change, ok := changes[date]
		if !ok {
			continue
		}
		sentimentSeries = append(sentimentSeries, daily[date])
		changeSeries = append(changeSeries, change)
	}

	if len(sentimentSeries) < 2 {
		return 0.0
	}

	correlation := stat.Correlation(sentimentSeries, changeSeries, nil)
	if math.IsNaN(correlation) || math.IsInf(correlation, 0) {
		return 0.0
	}

	return clamp(correlation, -1, 1)
}

// dailyChanges maps a date key to the close-over-close percentage change
// ending on that date.
func dailyChanges(prices models.PriceSeries) map[string]float64 {
	changes := make(map[string]float64)
	points := prices.Points

	for i := 1; i < len(points); i++ {
		prev := points[i-1].Close
		if prev == 0 {
			continue
		}
		key := points[i].Date.Format(dateKeyLayout)
		changes[key] = (points[i].Close - prev) / prev
	}
	return changes
}

// dailySentiment maps a date key to the mean compound score of the
// articles published that day. Articles with unparseable timestamps are
// skipped.
func dailySentiment(scored []models.ScoredArticle) map[string]float64 {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, sa := range scored {
		ts, err := ParseTimestamp(sa.PublishedAt)
		if err != nil {
			continue
		}
		key := ts.Format(dateKeyLayout)
		sums[key] += sa.CompoundScore
		counts[key]++
	}

	daily := make(map[string]float64, len(sums))
	for key, sum := range sums {
		daily[key] = sum / float64(counts[key])
	}
	return daily
}
