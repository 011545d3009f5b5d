package sources

import (
	"context"
	"log/slog"

	"github.com/spacesedan/tickerpulse/internal/models"
)

// ChainNewsSource tries each source in order and returns the first
// non-empty result. A source that errors or comes back empty falls
// through to the next one; only an entirely dry chain returns empty.
type ChainNewsSource struct {
	sources []NewsSource
}

// NewChainNewsSource composes news sources in priority order.
func NewChainNewsSource(srcs ...NewsSource) *ChainNewsSource {
	return &ChainNewsSource{sources: srcs}
}

func (c *ChainNewsSource) Name() string { return "Chain" }

func (c *ChainNewsSource) FetchArticles(ctx context.Context, symbol string, days int) ([]models.Article, error) {
	var lastErr error

	for _, src := range c.sources {
		articles, err := src.FetchArticles(ctx, symbol, days)
		if err != nil {
			slog.Warn("[ChainNews] Source failed, trying next",
				slog.String("source", src.Name()),
				slog.String("symbol", symbol),
				slog.String("error", err.Error()))
			lastErr = err
			continue
		}
		if len(articles) > 0 {
			return articles, nil
		}
	}

	if lastErr != nil && len(c.sources) == 1 {
		return nil, lastErr
	}
	// Every source was empty (or recovered): valid no-articles response.
	return []models.Article{}, nil
}
