package models

// Trend labels for SentimentRecord.SentimentTrend.
const (
	TrendImproving = "improving"
	TrendDeclining = "declining"
	TrendStable    = "stable"
)

// Headline is one normalized headline carried on a SentimentRecord for
// display. Sentiment here is the per-article score mapped to [0,1].
type Headline struct {
	Title     string  `json:"title"`
	Sentiment float64 `json:"sentiment"`
	Source    string  `json:"source"`
	Date      string  `json:"date"`
}

// SentimentRecord is the aggregate sentiment output for one symbol over
// one lookback window.
//
// Invariants: PositiveCount+NegativeCount+NeutralCount == TotalArticles,
// OverallSentiment in [0,1], Confidence in [0,1], PriceCorrelation in [-1,1].
type SentimentRecord struct {
	Symbol           string     `json:"symbol"`
	OverallSentiment float64    `json:"overall_sentiment"`
	Confidence       float64    `json:"confidence"`
	PositiveCount    int        `json:"positive_count"`
	NegativeCount    int        `json:"negative_count"`
	NeutralCount     int        `json:"neutral_count"`
	TotalArticles    int        `json:"total_articles"`
	SentimentTrend   string     `json:"sentiment_trend"`
	PriceCorrelation float64    `json:"price_correlation"`
	RecentHeadlines  []Headline `json:"recent_headlines"`
}

// NeutralRecord is the well-defined "no data" record returned when a
// symbol has zero usable articles, so consumers never need to null-check.
func NeutralRecord(symbol string) SentimentRecord {
	return SentimentRecord{
		Symbol:           symbol,
		OverallSentiment: 0.5,
		Confidence:       0.0,
		SentimentTrend:   TrendStable,
		PriceCorrelation: 0.0,
		RecentHeadlines:  []Headline{},
	}
}
