package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/spacesedan/tickerpulse/internal/models"
)

const (
	newsAPIEndpoint = "https://newsapi.org/v2/everything"
	newsAPIPageSize = 50
)

// NewsAPISource fetches articles from newsapi.org.
type NewsAPISource struct {
	apiKey   string
	endpoint string
}

type newsAPIResponse struct {
	Status       string           `json:"status"`
	TotalResults int              `json:"totalResults"`
	Articles     []newsAPIArticle `json:"articles"`
}

type newsAPIArticle struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

// NewNewsAPISource reads the API key from NEWS_API_KEY.
func NewNewsAPISource() *NewsAPISource {
	return &NewsAPISource{
		apiKey:   os.Getenv("NEWS_API_KEY"),
		endpoint: newsAPIEndpoint,
	}
}

// NewNewsAPISourceWithEndpoint is used by tests to point the source at a
// local server.
func NewNewsAPISourceWithEndpoint(apiKey, endpoint string) *NewsAPISource {
	return &NewsAPISource{apiKey: apiKey, endpoint: endpoint}
}

func (n *NewsAPISource) Name() string { return "NewsAPI" }

// Configured reports whether an API key is present.
func (n *NewsAPISource) Configured() bool { return n.apiKey != "" }

// FetchArticles queries newsapi.org for articles mentioning the symbol
// within the lookback window. Articles missing a title or description are
// dropped at the boundary.
func (n *NewsAPISource) FetchArticles(ctx context.Context, symbol string, days int) ([]models.Article, error) {
	if !n.Configured() {
		return nil, fmt.Errorf("NEWS_API_KEY not set")
	}

	end := time.Now().UTC()
	start := end.AddDate(0, 0, -days)

	params := url.Values{}
	params.Set("q", symbol)
	params.Set("from", start.Format("2006-01-02"))
	params.Set("to", end.Format("2006-01-02"))
	params.Set("sortBy", "relevancy")
	params.Set("language", "en")
	params.Set("pageSize", fmt.Sprintf("%d", newsAPIPageSize))
	params.Set("apiKey", n.apiKey)

	resp, err := doGetWithRetry(ctx, n.endpoint+"?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("newsapi request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("newsapi returned %s", resp.Status)
	}

	var payload newsAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode newsapi response: %w", err)
	}

	articles := make([]models.Article, 0, len(payload.Articles))
	for _, a := range payload.Articles {
		if a.Title == "" || a.Description == "" {
			continue
		}
		articles = append(articles, models.Article{
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			Source:      a.Source.Name,
			PublishedAt: a.PublishedAt,
			URL:         a.URL,
		})
	}

	slog.Debug("[NewsAPI] Fetched articles",
		slog.String("symbol", symbol),
		slog.Int("count", len(articles)))

	return articles, nil
}
