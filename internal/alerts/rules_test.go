package alerts

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/tickerpulse/internal/models"
)

func fixedClock() time.Time {
	return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
}

func record(overall float64, trend string, total int, confidence, correlation float64) models.SentimentRecord {
	return models.SentimentRecord{
		OverallSentiment: overall,
		SentimentTrend:   trend,
		TotalArticles:    total,
		Confidence:       confidence,
		PriceCorrelation: correlation,
		NeutralCount:     total,
	}
}

func severityCounts(alerts []models.Alert) (high, medium, low int) {
	for _, a := range alerts {
		switch a.Severity {
		case models.SeverityHigh:
			high++
		case models.SeverityMedium:
			medium++
		case models.SeverityLow:
			low++
		}
	}
	return
}

func TestEvaluateFullScenario(t *testing.T) {
	engine := NewEngineWithClock(DefaultThresholds(), fixedClock)

	alerts := engine.Evaluate(map[string]models.SentimentRecord{
		"AAPL": record(0.9, models.TrendImproving, 20, 0.2, 0.85),
	})

	require.Len(t, alerts, 5)

	types := make(map[models.AlertType]models.Alert)
	for _, a := range alerts {
		types[a.Type] = a
	}

	assert.Equal(t, models.SeverityHigh, types[models.AlertTypeSentiment].Severity)
	assert.Contains(t, types[models.AlertTypeSentiment].Message, "Extremely positive")
	assert.Equal(t, models.SeverityMedium, types[models.AlertTypeTrend].Severity)
	assert.Equal(t, models.SeverityLow, types[models.AlertTypeVolume].Severity)
	assert.Contains(t, types[models.AlertTypeVolume].Message, "High news activity")
	assert.Equal(t, models.SeverityLow, types[models.AlertTypeConfidence].Severity)
	assert.Equal(t, models.SeverityLow, types[models.AlertTypeCorrelation].Severity)
	assert.Contains(t, types[models.AlertTypeCorrelation].Message, "positive")

	// Sorted high -> medium -> low.
	assert.Equal(t, models.SeverityHigh, alerts[0].Severity)
	assert.Equal(t, models.SeverityMedium, alerts[1].Severity)
	for _, a := range alerts[2:] {
		assert.Equal(t, models.SeverityLow, a.Severity)
	}
}

func TestEvaluateSeverityOrdering(t *testing.T) {
	engine := NewEngineWithClock(DefaultThresholds(), fixedClock)

	alerts := engine.Evaluate(map[string]models.SentimentRecord{
		"AAA": record(0.5, models.TrendStable, 1, 0.9, 0.0),  // low volume only
		"BBB": record(0.9, models.TrendImproving, 8, 0.8, 0), // high + medium
		"CCC": record(0.1, models.TrendStable, 8, 0.9, 0.0),  // high
	})

	lastRank := -1
	for _, a := range alerts {
		rank := a.Severity.Rank()
		assert.GreaterOrEqual(t, rank, lastRank,
			"alert %q out of severity order", a.Message)
		lastRank = rank
	}
}

func TestSentimentTierMutuallyExclusive(t *testing.T) {
	engine := NewEngineWithClock(DefaultThresholds(), fixedClock)

	tests := []struct {
		overall  float64
		severity models.Severity
		fragment string
	}{
		{0.9, models.SeverityHigh, "Extremely positive"},
		{0.1, models.SeverityHigh, "Extremely negative"},
		{0.8, models.SeverityMedium, "High positive"},
		{0.2, models.SeverityMedium, "High negative"},
	}

	for _, tt := range tests {
		alerts := engine.Evaluate(map[string]models.SentimentRecord{
			"X": record(tt.overall, models.TrendStable, 8, 0.9, 0.0),
		})
		var sentimentAlerts []models.Alert
		for _, a := range alerts {
			if a.Type == models.AlertTypeSentiment {
				sentimentAlerts = append(sentimentAlerts, a)
			}
		}
		require.Len(t, sentimentAlerts, 1, "overall=%v", tt.overall)
		assert.Equal(t, tt.severity, sentimentAlerts[0].Severity)
		assert.Contains(t, sentimentAlerts[0].Message, tt.fragment)
	}
}

func TestNoAlertsForQuietRecord(t *testing.T) {
	engine := NewEngineWithClock(DefaultThresholds(), fixedClock)

	alerts := engine.Evaluate(map[string]models.SentimentRecord{
		"X": record(0.5, models.TrendStable, 8, 0.9, 0.2),
	})
	assert.Empty(t, alerts)
}

func TestVolumeTier(t *testing.T) {
	engine := NewEngineWithClock(DefaultThresholds(), fixedClock)

	low := engine.Evaluate(map[string]models.SentimentRecord{
		"X": record(0.5, models.TrendStable, 2, 0.9, 0.0),
	})
	require.Len(t, low, 1)
	assert.Contains(t, low[0].Message, "Low news activity")

	// Boundary: exactly 15 does not trigger.
	none := engine.Evaluate(map[string]models.SentimentRecord{
		"X": record(0.5, models.TrendStable, 15, 0.9, 0.0),
	})
	assert.Empty(t, none)
}

func TestCorrelationTierNegativeWording(t *testing.T) {
	engine := NewEngineWithClock(DefaultThresholds(), fixedClock)

	alerts := engine.Evaluate(map[string]models.SentimentRecord{
		"X": record(0.5, models.TrendStable, 8, 0.9, -0.8),
	})
	require.Len(t, alerts, 1)
	assert.Equal(t, models.AlertTypeCorrelation, alerts[0].Type)
	assert.Contains(t, alerts[0].Message, "negative")
}

func TestDistributionTier(t *testing.T) {
	engine := NewEngineWithClock(DefaultThresholds(), fixedClock)

	rec := models.SentimentRecord{
		OverallSentiment: 0.7,
		SentimentTrend:   models.TrendStable,
		TotalArticles:    10,
		PositiveCount:    9,
		NeutralCount:     1,
		Confidence:       0.9,
	}

	alerts := engine.Evaluate(map[string]models.SentimentRecord{"X": rec})

	var found bool
	for _, a := range alerts {
		if a.Type == models.AlertTypeDistribution {
			found = true
			assert.Equal(t, models.SeverityMedium, a.Severity)
			assert.Contains(t, a.Message, "positive coverage")
		}
	}
	assert.True(t, found)
}

func TestTrendGateOnSentiment(t *testing.T) {
	thresholds := DefaultThresholds()
	thresholds.GateTrendOnSentiment = true
	engine := NewEngineWithClock(thresholds, fixedClock)

	// Improving trend but middling sentiment: gated out.
	gated := engine.Evaluate(map[string]models.SentimentRecord{
		"X": record(0.5, models.TrendImproving, 8, 0.9, 0.0),
	})
	for _, a := range gated {
		assert.NotEqual(t, models.AlertTypeTrend, a.Type)
	}

	// Improving trend with high sentiment passes the gate.
	passed := engine.Evaluate(map[string]models.SentimentRecord{
		"X": record(0.65, models.TrendImproving, 8, 0.9, 0.0),
	})
	var found bool
	for _, a := range passed {
		if a.Type == models.AlertTypeTrend {
			found = true
		}
	}
	assert.True(t, found)
}

func TestEvaluateDeterministicAcrossCalls(t *testing.T) {
	engine := NewEngineWithClock(DefaultThresholds(), fixedClock)
	records := map[string]models.SentimentRecord{
		"AAPL": record(0.9, models.TrendImproving, 20, 0.2, 0.85),
		"MSFT": record(0.1, models.TrendDeclining, 2, 0.9, 0.0),
	}

	first := engine.Evaluate(records)
	second := engine.Evaluate(records)
	assert.Equal(t, first, second)
}

func TestEmptyRecordsNoAlerts(t *testing.T) {
	engine := NewEngineWithClock(DefaultThresholds(), fixedClock)
	assert.Empty(t, engine.Evaluate(nil))
	assert.Empty(t, engine.Evaluate(map[string]models.SentimentRecord{}))
}
