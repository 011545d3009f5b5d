package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacesedan/tickerpulse/internal/models"
)

func TestScoreArticleEmptyTextSkipped(t *testing.T) {
	scorer := NewScorer()

	_, ok := scorer.ScoreArticle(models.Article{Title: "", Description: ""})
	assert.False(t, ok)

	_, ok = scorer.ScoreArticle(models.Article{Title: "   ", Description: "\t"})
	assert.False(t, ok)

	// URL-only text cleans down to nothing.
	_, ok = scorer.ScoreArticle(models.Article{Title: "https://example.com/story", Description: ""})
	assert.False(t, ok)
}

func TestScoreArticlePolarity(t *testing.T) {
	scorer := NewScorer()

	positive, ok := scorer.ScoreArticle(models.Article{
		Title:       "Company reports great quarterly results",
		Description: "Strong earnings beat expectations, shares surge on impressive growth",
		Source:      "Test Wire",
		PublishedAt: "2026-08-28T10:00:00Z",
	})
	require.True(t, ok)
	assert.Greater(t, positive.CompoundScore, 0.05)

	negative, ok := scorer.ScoreArticle(models.Article{
		Title:       "Company faces bankruptcy fears after disappointing losses",
		Description: "Shares plunge as weak results and fraud concerns mount",
		Source:      "Test Wire",
		PublishedAt: "2026-08-28T10:00:00Z",
	})
	require.True(t, ok)
	assert.Less(t, negative.CompoundScore, -0.05)
}

func TestScoreArticleRanges(t *testing.T) {
	scorer := NewScorer()

	sa, ok := scorer.ScoreArticle(models.Article{
		Title:       "Extremely impressive record profits, massive surge, incredible rally, huge gains",
		Description: "Great great great great success",
	})
	require.True(t, ok)
	assert.GreaterOrEqual(t, sa.CompoundScore, -1.0)
	assert.LessOrEqual(t, sa.CompoundScore, 1.0)
	assert.GreaterOrEqual(t, sa.Subjectivity, 0.0)
	assert.LessOrEqual(t, sa.Subjectivity, 1.0)
}

func TestScoreArticleMetadataCarriedThrough(t *testing.T) {
	scorer := NewScorer()

	sa, ok := scorer.ScoreArticle(models.Article{
		Title:       "Steady growth for the quarter",
		Description: "Results in line with expectations",
		Source:      "Newswire",
		PublishedAt: "2026-08-01T09:00:00Z",
	})
	require.True(t, ok)
	assert.Equal(t, "Steady growth for the quarter", sa.Title)
	assert.Equal(t, "Newswire", sa.Source)
	assert.Equal(t, "2026-08-01T09:00:00Z", sa.PublishedAt)
}

func TestScoreArticlesDropsUnusable(t *testing.T) {
	scorer := NewScorer()

	scored := scorer.ScoreArticles([]models.Article{
		{Title: "Strong gains for the index", Description: "Markets rally"},
		{Title: "", Description: ""},
		{Title: "Losses deepen", Description: "Stocks decline on weak outlook"},
	})
	assert.Len(t, scored, 2)
}

func TestScoreArticleDeterministic(t *testing.T) {
	scorer := NewScorer()
	article := models.Article{
		Title:       "Mixed session as gains offset losses",
		Description: "Traders see uncertainty but momentum remains",
	}

	first, ok := scorer.ScoreArticle(article)
	require.True(t, ok)
	second, ok := scorer.ScoreArticle(article)
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestScorePatternNegation(t *testing.T) {
	plain := ScorePattern("the results were good")
	negated := ScorePattern("the results were not good")

	assert.Greater(t, plain.Polarity, 0.0)
	assert.Less(t, negated.Polarity, 0.0)
}

func TestScorePatternNoHits(t *testing.T) {
	scores := ScorePattern("the quick brown fox jumps over the lazy dog")
	assert.Zero(t, scores.Polarity)
	assert.Zero(t, scores.Subjectivity)
}
