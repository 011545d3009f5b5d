package sources

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/spacesedan/tickerpulse/internal/models"
)

// RSSFeed is one configured financial news feed.
type RSSFeed struct {
	Name string
	URL  string
}

// DefaultRSSFeeds lists the financial news feeds polled when no custom
// feed set is configured.
var DefaultRSSFeeds = []RSSFeed{
	{Name: "Yahoo Finance", URL: "https://finance.yahoo.com/news/rssindex"},
	{Name: "CNBC Markets", URL: "https://www.cnbc.com/id/100003114/device/rss/rss.html"},
	{Name: "MarketWatch", URL: "https://feeds.marketwatch.com/marketwatch/topstories/"},
}

// RSSSource fetches market news from RSS feeds and filters items that
// mention the requested symbol.
type RSSSource struct {
	feeds  []RSSFeed
	parser *gofeed.Parser
}

// NewRSSSource returns an RSSSource over the default feed set.
func NewRSSSource() *RSSSource {
	return NewRSSSourceWithFeeds(DefaultRSSFeeds)
}

// NewRSSSourceWithFeeds returns an RSSSource over a custom feed set.
func NewRSSSourceWithFeeds(feeds []RSSFeed) *RSSSource {
	return &RSSSource{
		feeds:  feeds,
		parser: gofeed.NewParser(),
	}
}

func (r *RSSSource) Name() string { return "RSS" }

// FetchArticles pulls every configured feed and keeps items that mention
// the symbol and fall inside the lookback window. Failing feeds are
// skipped; only a fully failed round returns the last error.
func (r *RSSSource) FetchArticles(ctx context.Context, symbol string, days int) ([]models.Article, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	needle := strings.ToUpper(symbol)

	var articles []models.Article
	var lastErr error
	failed := 0

	for _, feed := range r.feeds {
		parsed, err := r.parser.ParseURLWithContext(feed.URL, ctx)
		if err != nil {
			slog.Warn("[RSS] Feed fetch failed, skipping",
				slog.String("feed", feed.Name),
				slog.String("error", err.Error()))
			lastErr = err
			failed++
			continue
		}

		for _, item := range parsed.Items {
			if item.Title == "" {
				continue
			}
			if !mentionsSymbol(item, needle) {
				continue
			}
			if item.PublishedParsed != nil && item.PublishedParsed.Before(cutoff) {
				continue
			}

			published := item.Published
			if item.PublishedParsed != nil {
				published = item.PublishedParsed.UTC().Format(time.RFC3339)
			}

			articles = append(articles, models.Article{
				Title:       item.Title,
				Description: item.Description,
				Content:     item.Content,
				Source:      feed.Name,
				PublishedAt: published,
				URL:         item.Link,
			})
		}
	}

	if failed == len(r.feeds) && lastErr != nil {
		return nil, lastErr
	}

	return articles, nil
}

func mentionsSymbol(item *gofeed.Item, symbol string) bool {
	haystack := strings.ToUpper(item.Title + " " + item.Description)
	return strings.Contains(haystack, symbol)
}
