package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"

	"github.com/spacesedan/tickerpulse/internal/models"
)

// Default blend weights: VADER handles short news-style text better, so it
// carries most of the weight; the pattern lexicon supplies a complementary
// signal.
const (
	DefaultVADERWeight   = 0.7
	DefaultPatternWeight = 0.3
)

// Scorer scores individual articles by blending VADER with the pattern
// lexicon. Safe for concurrent use.
type Scorer struct {
	vader         *govader.SentimentIntensityAnalyzer
	vaderWeight   float64
	patternWeight float64
}

// NewScorer returns a Scorer with the default blend weights.
func NewScorer() *Scorer {
	return NewScorerWithWeights(DefaultVADERWeight, DefaultPatternWeight)
}

// NewScorerWithWeights returns a Scorer with custom blend weights.
// Weights outside (0,1] fall back to the defaults.
func NewScorerWithWeights(vaderWeight, patternWeight float64) *Scorer {
	if vaderWeight <= 0 || vaderWeight > 1 || patternWeight < 0 || patternWeight > 1 {
		vaderWeight = DefaultVADERWeight
		patternWeight = DefaultPatternWeight
	}
	return &Scorer{
		vader:         govader.NewSentimentIntensityAnalyzer(),
		vaderWeight:   vaderWeight,
		patternWeight: patternWeight,
	}
}

// ScoreArticle scores one article from its title and description. Articles
// whose cleaned text is empty produce (zero, false) and must be skipped by
// the caller; they do not count toward any aggregate.
func (s *Scorer) ScoreArticle(article models.Article) (models.ScoredArticle, bool) {
	text := article.Title + " " + article.Description
	cleaned := NormalizeText(text)
	if strings.TrimSpace(cleaned) == "" {
		return models.ScoredArticle{}, false
	}

	vaderScores := s.vader.PolarityScores(cleaned)
	patternScores := ScorePattern(cleaned)

	compound := s.vaderWeight*vaderScores.Compound + s.patternWeight*patternScores.Polarity

	return models.ScoredArticle{
		Title:         article.Title,
		Source:        article.Source,
		PublishedAt:   article.PublishedAt,
		VADERCompound: vaderScores.Compound,
		VADERPositive: vaderScores.Positive,
		VADERNegative: vaderScores.Negative,
		VADERNeutral:  vaderScores.Neutral,
		Polarity:      patternScores.Polarity,
		Subjectivity:  patternScores.Subjectivity,
		CompoundScore: clamp(compound, -1, 1),
		TextLength:    len(cleaned),
	}, true
}

// ScoreArticles scores a batch, silently dropping articles with no usable
// text.
func (s *Scorer) ScoreArticles(articles []models.Article) []models.ScoredArticle {
	scored := make([]models.ScoredArticle, 0, len(articles))
	for _, article := range articles {
		if sa, ok := s.ScoreArticle(article); ok {
			scored = append(scored, sa)
		}
	}
	return scored
}
