package models

// Article is a raw news article as returned by a news source.
// Ownership stays with the caller; the pipeline never mutates it.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content,omitempty"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`
	URL         string `json:"url,omitempty"`
}

// ScoredArticle carries the per-article sentiment scores alongside the
// metadata needed for display. Built once per article per analysis call.
type ScoredArticle struct {
	Title       string `json:"title"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at"`

	VADERCompound float64 `json:"vader_compound"`
	VADERPositive float64 `json:"vader_positive"`
	VADERNegative float64 `json:"vader_negative"`
	VADERNeutral  float64 `json:"vader_neutral"`

	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`

	// CompoundScore is the blended score in [-1,1] used by all
	// downstream aggregation.
	CompoundScore float64 `json:"compound_score"`
	TextLength    int     `json:"text_length"`
}
