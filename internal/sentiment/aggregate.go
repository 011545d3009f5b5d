package sentiment

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/spacesedan/tickerpulse/internal/models"
)

const (
	// DefaultTrendThreshold is the minimum newer-half vs older-half mean
	// difference treated as a real trend. A 0.1 variant exists in the
	// wild; 0.15 is the value this pipeline commits to.
	DefaultTrendThreshold = 0.15

	// Articles with |compound| <= neutralBand count as neutral.
	neutralBand = 0.05

	// MaxRecentHeadlines caps the headlines carried on a record.
	MaxRecentHeadlines = 10
)

// timestampLayouts are tried in order when parsing publish timestamps.
// Feeds are sloppy about timezones, so date-only and zone-less layouts are
// accepted; a trailing Z parses as UTC via RFC3339.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02",
}

// ParseTimestamp parses an article publish timestamp leniently.
func ParseTimestamp(value string) (time.Time, error) {
	var err error
	for _, layout := range timestampLayouts {
		var ts time.Time
		ts, err = time.Parse(layout, value)
		if err == nil {
			return ts, nil
		}
	}
	return time.Time{}, err
}

// Aggregate reduces scored articles for one symbol into a SentimentRecord.
// PriceCorrelation is left at 0; the caller fills it in from the
// correlation estimator. An empty input produces the neutral record.
func Aggregate(symbol string, scored []models.ScoredArticle, trendThreshold float64) models.SentimentRecord {
	if len(scored) == 0 {
		return models.NeutralRecord(symbol)
	}
	if trendThreshold <= 0 {
		trendThreshold = DefaultTrendThreshold
	}

	scores := make([]float64, len(scored))
	for i, sa := range scored {
		scores[i] = sa.CompoundScore
	}

	rawMean := stat.Mean(scores, nil)
	overall := clamp((rawMean+1)/2, 0, 1)

	std := stat.PopStdDev(scores, nil)
	confidence := clamp(1-math.Min(std, 1.0), 0, 1)
	if math.IsNaN(confidence) {
		confidence = 0
	}

	var positive, negative int
	for _, score := range scores {
		if score > neutralBand {
			positive++
		} else if score < -neutralBand {
			negative++
		}
	}
	// Neutral is derived so the count invariant always holds.
	neutral := len(scores) - positive - negative

	return models.SentimentRecord{
		Symbol:           symbol,
		OverallSentiment: overall,
		Confidence:       confidence,
		PositiveCount:    positive,
		NegativeCount:    negative,
		NeutralCount:     neutral,
		TotalArticles:    len(scored),
		SentimentTrend:   calculateTrend(scored, trendThreshold),
		PriceCorrelation: 0.0,
		RecentHeadlines:  recentHeadlines(scored),
	}
}

// calculateTrend compares the mean score of the newer half of the window
// against the older half. Articles whose timestamps cannot be parsed are
// excluded from the ordering; fewer than 3 datable articles is "stable".
func calculateTrend(scored []models.ScoredArticle, threshold float64) string {
	type datedScore struct {
		at    time.Time
		score float64
	}

	dated := make([]datedScore, 0, len(scored))
	for _, sa := range scored {
		ts, err := ParseTimestamp(sa.PublishedAt)
		if err != nil {
			continue
		}
		dated = append(dated, datedScore{at: ts, score: sa.CompoundScore})
	}

	if len(dated) < 3 {
		return models.TrendStable
	}

	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].at.Before(dated[j].at)
	})

	mid := len(dated) / 2
	var olderSum, newerSum float64
	for _, ds := range dated[:mid] {
		olderSum += ds.score
	}
	for _, ds := range dated[mid:] {
		newerSum += ds.score
	}

	olderMean := olderSum / float64(mid)
	newerMean := newerSum / float64(len(dated)-mid)
	difference := newerMean - olderMean

	switch {
	case difference > threshold:
		return models.TrendImproving
	case difference < -threshold:
		return models.TrendDeclining
	default:
		return models.TrendStable
	}
}

func recentHeadlines(scored []models.ScoredArticle) []models.Headline {
	n := len(scored)
	if n > MaxRecentHeadlines {
		n = MaxRecentHeadlines
	}

	headlines := make([]models.Headline, 0, n)
	for _, sa := range scored[:n] {
		headlines = append(headlines, models.Headline{
			Title:     sa.Title,
			Sentiment: clamp((sa.CompoundScore+1)/2, 0, 1),
			Source:    sa.Source,
			Date:      sa.PublishedAt,
		})
	}
	return headlines
}
