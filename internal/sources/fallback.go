package sources

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"time"

	"github.com/spacesedan/tickerpulse/internal/models"
)

// FallbackSource fabricates plausible articles when no real news source is
// configured. Output is seeded from the symbol so repeated calls for the
// same symbol are deterministic; it sits behind the same interface as the
// real sources and is never wired into scoring logic directly.
type FallbackSource struct {
	now func() time.Time
}

// NewFallbackSource returns a demo article source.
func NewFallbackSource() *FallbackSource {
	return &FallbackSource{now: time.Now}
}

// NewFallbackSourceAt pins the clock, for deterministic tests.
func NewFallbackSourceAt(now func() time.Time) *FallbackSource {
	return &FallbackSource{now: now}
}

func (f *FallbackSource) Name() string { return "Fallback" }

var fallbackTemplates = []struct {
	title       string
	description string
	source      string
}{
	{
		title:       "Market Analysis: %s shows strong fundamentals",
		description: "Latest analysis suggests %s maintains steady performance in current market conditions.",
		source:      "Market Watch",
	},
	{
		title:       "%s quarterly outlook remains positive",
		description: "Industry experts maintain optimistic outlook for %s based on recent market trends.",
		source:      "Financial News",
	},
	{
		title:       "Analysts weigh risks for %s amid sector volatility",
		description: "Some analysts flag concerns over %s exposure to volatile market conditions.",
		source:      "Street Insider",
	},
	{
		title:       "%s trading volume draws investor attention",
		description: "Unusual activity around %s has investors watching for a breakout or decline.",
		source:      "Market Data",
	},
	{
		title:       "%s earnings beat expectations, shares rally",
		description: "Strong results boost confidence as %s outperforms consensus estimates.",
		source:      "Earnings Wire",
	},
	{
		title:       "Mixed signals for %s as momentum slows",
		description: "Traders see uncertainty in %s with weak momentum and declining volume.",
		source:      "Trading Desk",
	},
}

// FetchArticles generates between 3 and 8 articles spread over the window.
func (f *FallbackSource) FetchArticles(ctx context.Context, symbol string, days int) ([]models.Article, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if days < 1 {
		days = 1
	}

	rng := rand.New(rand.NewSource(symbolSeed(symbol)))
	count := 3 + rng.Intn(6)
	now := f.now().UTC()

	articles := make([]models.Article, 0, count)
	for i := 0; i < count; i++ {
		tmpl := fallbackTemplates[rng.Intn(len(fallbackTemplates))]
		age := time.Duration(rng.Int63n(int64(days)*int64(24*time.Hour)))

		articles = append(articles, models.Article{
			Title:       fmt.Sprintf(tmpl.title, symbol),
			Description: fmt.Sprintf(tmpl.description, symbol),
			Source:      tmpl.source,
			PublishedAt: now.Add(-age).Format(time.RFC3339),
			URL:         "#",
		})
	}

	return articles, nil
}

func symbolSeed(symbol string) int64 {
	h := fnv.New64a()
	h.Write([]byte(symbol))
	return int64(h.Sum64())
}
