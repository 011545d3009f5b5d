// Package alerts derives threshold-based alerts from aggregated sentiment
// records. Evaluation is stateless: every call is a fresh, independent
// recompute with no deduplication against previous runs.
package alerts

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/spacesedan/tickerpulse/internal/models"
)

// Thresholds holds every numeric constant the rule engine evaluates
// against. All values are overridable through configuration.
type Thresholds struct {
	ExtremePositive   float64 `mapstructure:"extreme_positive"`
	ExtremeNegative   float64 `mapstructure:"extreme_negative"`
	HighPositive      float64 `mapstructure:"high_positive"`
	HighNegative      float64 `mapstructure:"high_negative"`
	HighVolume        int     `mapstructure:"high_volume"`
	LowVolume         int     `mapstructure:"low_volume"`
	LowConfidence     float64 `mapstructure:"low_confidence"`
	StrongCorrelation float64 `mapstructure:"strong_correlation"`
	Distribution      float64 `mapstructure:"distribution"`

	// GateTrendOnSentiment additionally requires overall sentiment above
	// 0.6 (improving) or below 0.4 (declining) before a trend alert
	// fires. Off by default.
	GateTrendOnSentiment bool `mapstructure:"gate_trend_on_sentiment"`
}

// DefaultThresholds returns the standard rule thresholds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		ExtremePositive:   0.85,
		ExtremeNegative:   0.15,
		HighPositive:      0.75,
		HighNegative:      0.25,
		HighVolume:        15,
		LowVolume:         3,
		LowConfidence:     0.4,
		StrongCorrelation: 0.7,
		Distribution:      0.8,
	}
}

// Engine evaluates the fixed rule set against sentiment records.
type Engine struct {
	thresholds Thresholds
	now        func() time.Time
}

// NewEngine returns an Engine using the given thresholds.
func NewEngine(thresholds Thresholds) *Engine {
	return &Engine{thresholds: thresholds, now: time.Now}
}

// NewEngineWithClock pins the trigger timestamp clock, for deterministic
// output in tests.
func NewEngineWithClock(thresholds Thresholds, now func() time.Time) *Engine {
	return &Engine{thresholds: thresholds, now: now}
}

// Evaluate runs every rule tier against every record and returns the
// triggered alerts sorted by severity (high, medium, low), preserving
// per-symbol generation order as a stable tie-break. Symbols are visited
// in sorted order so identical inputs always yield identical output.
func (e *Engine) Evaluate(records map[string]models.SentimentRecord) []models.Alert {
	symbols := make([]string, 0, len(records))
	for symbol := range records {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	var alerts []models.Alert
	for _, symbol := range symbols {
		alerts = append(alerts, e.evaluateSymbol(symbol, records[symbol])...)
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity.Rank() < alerts[j].Severity.Rank()
	})

	return alerts
}

func (e *Engine) evaluateSymbol(symbol string, record models.SentimentRecord) []models.Alert {
	t := e.thresholds
	triggeredAt := e.now()

	var alerts []models.Alert
	add := func(alertType models.AlertType, severity models.Severity, message string, threshold, current float64) {
		alerts = append(alerts, models.Alert{
			Symbol:       symbol,
			Type:         alertType,
			Severity:     severity,
			Message:      message,
			Threshold:    threshold,
			CurrentValue: current,
			TriggeredAt:  triggeredAt,
		})
	}

	// Sentiment tier, mutually exclusive, strongest condition wins.
	sentiment := record.OverallSentiment
	switch {
	case sentiment > t.ExtremePositive:
		add(models.AlertTypeSentiment, models.SeverityHigh,
			fmt.Sprintf("Extremely positive sentiment detected (%.2f)", sentiment),
			t.ExtremePositive, sentiment)
	case sentiment < t.ExtremeNegative:
		add(models.AlertTypeSentiment, models.SeverityHigh,
			fmt.Sprintf("Extremely negative sentiment detected (%.2f)", sentiment),
			t.ExtremeNegative, sentiment)
	case sentiment > t.HighPositive:
		add(models.AlertTypeSentiment, models.SeverityMedium,
			fmt.Sprintf("High positive sentiment (%.2f)", sentiment),
			t.HighPositive, sentiment)
	case sentiment < t.HighNegative:
		add(models.AlertTypeSentiment, models.SeverityMedium,
			fmt.Sprintf("High negative sentiment (%.2f)", sentiment),
			t.HighNegative, sentiment)
	}

	// Trend tier, independent of the sentiment tier.
	switch record.SentimentTrend {
	case models.TrendImproving:
		if !t.GateTrendOnSentiment || sentiment > 0.6 {
			add(models.AlertTypeTrend, models.SeverityMedium,
				"Improving sentiment trend detected", 0, sentiment)
		}
	case models.TrendDeclining:
		if !t.GateTrendOnSentiment || sentiment < 0.4 {
			add(models.AlertTypeTrend, models.SeverityMedium,
				"Declining sentiment trend detected", 0, sentiment)
		}
	}

	// Volume tier.
	total := record.TotalArticles
	if total > t.HighVolume {
		add(models.AlertTypeVolume, models.SeverityLow,
			fmt.Sprintf("High news activity (%d articles)", total),
			float64(t.HighVolume), float64(total))
	} else if total < t.LowVolume {
		add(models.AlertTypeVolume, models.SeverityLow,
			fmt.Sprintf("Low news activity (%d articles)", total),
			float64(t.LowVolume), float64(total))
	}

	// Confidence tier.
	if record.Confidence < t.LowConfidence {
		add(models.AlertTypeConfidence, models.SeverityLow,
			fmt.Sprintf("Low sentiment confidence with mixed signals (%.2f)", record.Confidence),
			t.LowConfidence, record.Confidence)
	}

	// Correlation tier.
	correlation := record.PriceCorrelation
	if math.Abs(correlation) > t.StrongCorrelation {
		direction := "positive"
		if correlation < 0 {
			direction = "negative"
		}
		add(models.AlertTypeCorrelation, models.SeverityLow,
			fmt.Sprintf("Strong %s price-sentiment correlation detected (%.2f)", direction, correlation),
			t.StrongCorrelation, correlation)
	}

	// Distribution tier.
	if total > 0 {
		positiveShare := float64(record.PositiveCount) / float64(total)
		negativeShare := float64(record.NegativeCount) / float64(total)
		if positiveShare > t.Distribution {
			add(models.AlertTypeDistribution, models.SeverityMedium,
				fmt.Sprintf("Overwhelming positive coverage (%.0f%%)", positiveShare*100),
				t.Distribution, positiveShare)
		} else if negativeShare > t.Distribution {
			add(models.AlertTypeDistribution, models.SeverityMedium,
				fmt.Sprintf("Overwhelming negative coverage (%.0f%%)", negativeShare*100),
				t.Distribution, negativeShare)
		}
	}

	return alerts
}
