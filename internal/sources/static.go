package sources

import (
	"context"

	"github.com/spacesedan/tickerpulse/internal/models"
)

// StaticNewsSource serves a fixed article set, optionally failing. Used as
// a fixture in tests and offline runs.
type StaticNewsSource struct {
	Articles map[string][]models.Article
	Err      error
}

func (s *StaticNewsSource) Name() string { return "Static" }

func (s *StaticNewsSource) FetchArticles(ctx context.Context, symbol string, days int) ([]models.Article, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Articles[symbol], nil
}

// StaticPriceSource serves a fixed price series per symbol.
type StaticPriceSource struct {
	Series map[string]models.PriceSeries
	Err    error
}

func (s *StaticPriceSource) Name() string { return "Static" }

func (s *StaticPriceSource) FetchPrices(ctx context.Context, symbol string, days int) (models.PriceSeries, error) {
	if s.Err != nil {
		return models.PriceSeries{Symbol: symbol}, s.Err
	}
	return s.Series[symbol], nil
}
