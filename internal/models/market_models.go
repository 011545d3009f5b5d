package models

import "time"

// MarketSummary aggregates sentiment across every symbol that produced a
// record in a batch run.
type MarketSummary struct {
	OverallMarketSentiment float64 `json:"overall_market_sentiment"`
	MarketConfidence       float64 `json:"market_confidence"`
	BullishStocks          int     `json:"bullish_stocks"`
	BearishStocks          int     `json:"bearish_stocks"`
	NeutralStocks          int     `json:"neutral_stocks"`
}

// PortfolioMetrics are cross-symbol risk/return style metrics computed
// from per-symbol price changes and sentiment records.
type PortfolioMetrics struct {
	PortfolioReturn     float64 `json:"portfolio_return"`
	PortfolioVolatility float64 `json:"portfolio_volatility"`
	PortfolioSentiment  float64 `json:"portfolio_sentiment"`
	SentimentVolatility float64 `json:"sentiment_volatility"`
	AvgCorrelation      float64 `json:"avg_correlation"`
	SharpeRatio         float64 `json:"sharpe_ratio"`
	SentimentRiskRatio  float64 `json:"sentiment_risk_ratio"`
	NumStocks           int     `json:"num_stocks"`
}

// MarketStatus reports whether the US market is currently open and the
// next open/close event.
type MarketStatus struct {
	IsOpen        bool          `json:"is_open"`
	NextEvent     string        `json:"next_event"`
	NextEventTime time.Time     `json:"next_event_time"`
	TimeUntilNext time.Duration `json:"time_until_next"`
}
