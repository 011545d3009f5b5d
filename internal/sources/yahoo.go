package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spacesedan/tickerpulse/internal/models"
)

const yahooChartEndpoint = "https://query1.finance.yahoo.com/v8/finance/chart"

// YahooPriceSource fetches daily closes from the Yahoo Finance v8 chart
// API.
type YahooPriceSource struct {
	endpoint string
}

// NewYahooPriceSource returns the default Yahoo-backed price source.
func NewYahooPriceSource() *YahooPriceSource {
	return &YahooPriceSource{endpoint: yahooChartEndpoint}
}

// NewYahooPriceSourceWithEndpoint is used by tests.
func NewYahooPriceSourceWithEndpoint(endpoint string) *YahooPriceSource {
	return &YahooPriceSource{endpoint: endpoint}
}

func (y *YahooPriceSource) Name() string { return "Yahoo Finance" }

type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// FetchPrices returns the daily close series for the lookback window,
// oldest first. Missing closes (market holidays, gaps) are skipped.
func (y *YahooPriceSource) FetchPrices(ctx context.Context, symbol string, days int) (models.PriceSeries, error) {
	series := models.PriceSeries{Symbol: symbol}

	url := fmt.Sprintf("%s/%s?range=%dd&interval=1d", y.endpoint, symbol, days)
	resp, err := doGetWithRetry(ctx, url)
	if err != nil {
		return series, fmt.Errorf("yahoo chart request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return series, ErrSymbolNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return series, fmt.Errorf("yahoo chart returned %s", resp.Status)
	}

	var payload yahooChartResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return series, fmt.Errorf("decode yahoo chart response: %w", err)
	}

	if payload.Chart.Error != nil {
		return series, fmt.Errorf("yahoo chart error: %s", payload.Chart.Error.Description)
	}
	if len(payload.Chart.Result) == 0 || len(payload.Chart.Result[0].Indicators.Quote) == 0 {
		return series, ErrSymbolNotFound
	}

	result := payload.Chart.Result[0]
	closes := result.Indicators.Quote[0].Close

	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		series.Points = append(series.Points, models.PricePoint{
			Date:  time.Unix(ts, 0).UTC().Truncate(24 * time.Hour),
			Close: *closes[i],
		})
	}

	slog.Debug("[YahooPrices] Fetched close series",
		slog.String("symbol", symbol),
		slog.Int("points", len(series.Points)))

	return series, nil
}
