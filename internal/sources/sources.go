// Package sources provides the external data inputs for the pipeline:
// news articles and daily price series. Each source implements a narrow
// interface so the analyzer never knows where its inputs come from.
package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/spacesedan/tickerpulse/internal/models"
)

// NewsSource returns zero or more articles mentioning a symbol within the
// last `days` days. An empty slice is a valid response, not an error.
type NewsSource interface {
	Name() string
	FetchArticles(ctx context.Context, symbol string, days int) ([]models.Article, error)
}

// PriceSource returns an ordered (oldest first) series of daily closes for
// a symbol covering the last `days` days. Fewer than 2 points is valid but
// insufficient for correlation.
type PriceSource interface {
	Name() string
	FetchPrices(ctx context.Context, symbol string, days int) (models.PriceSeries, error)
}

// ErrSymbolNotFound is returned when a source cannot resolve a symbol.
var ErrSymbolNotFound = errors.New("symbol not found")

// ErrRateLimited is returned when a source refuses the request due to
// rate limiting.
var ErrRateLimited = errors.New("rate limited by data source")

const (
	maxRetries     = 3
	initialBackoff = 500 * time.Millisecond
)

var httpClient = &http.Client{
	Timeout: 10 * time.Second,
}

// doGetWithRetry performs a GET with bounded retries and exponential
// backoff on transport errors and 5xx responses.
func doGetWithRetry(ctx context.Context, url string) (*http.Response, error) {
	var resp *http.Response
	var err error
	backoff := initialBackoff

	for attempt := 1; attempt <= maxRetries; attempt++ {
		var req *http.Request
		req, err = http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err = httpClient.Do(req)
		if err == nil && resp.StatusCode < 500 {
			return resp, nil
		}

		if resp != nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}

		slog.Warn("[Sources] Request failed, will retry",
			slog.String("url", url),
			slog.Int("attempt", attempt),
			slog.String("error", errMsg(err, resp)))

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	if err != nil {
		return nil, fmt.Errorf("giving up after %d attempts: %w", maxRetries, err)
	}
	return nil, fmt.Errorf("giving up after %d attempts: %s", maxRetries, resp.Status)
}

func errMsg(err error, resp *http.Response) string {
	if err != nil {
		return err.Error()
	}
	if resp != nil {
		return resp.Status
	}
	return "unknown error"
}
