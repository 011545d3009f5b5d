package sentiment

import (
	"strings"
)

// PatternScores is the output of the polarity/subjectivity scorer.
// Polarity is in [-1,1]; Subjectivity is in [0,1].
type PatternScores struct {
	Polarity     float64
	Subjectivity float64
}

type lexiconEntry struct {
	polarity     float64
	subjectivity float64
}

// patternLexicon maps lowercase tokens to polarity/subjectivity weights.
// Skewed toward the vocabulary of financial news headlines.
var patternLexicon = map[string]lexiconEntry{
	// positive
	"good":          {0.7, 0.6},
	"great":         {0.8, 0.75},
	"strong":        {0.5, 0.4},
	"positive":      {0.6, 0.5},
	"optimistic":    {0.6, 0.7},
	"bullish":       {0.7, 0.7},
	"growth":        {0.4, 0.3},
	"gain":          {0.5, 0.3},
	"gains":         {0.5, 0.3},
	"profit":        {0.5, 0.3},
	"profits":       {0.5, 0.3},
	"record":        {0.4, 0.4},
	"beat":          {0.5, 0.4},
	"beats":         {0.5, 0.4},
	"surge":         {0.6, 0.5},
	"surges":        {0.6, 0.5},
	"soar":          {0.7, 0.6},
	"soars":         {0.7, 0.6},
	"rally":         {0.5, 0.4},
	"upgrade":       {0.5, 0.4},
	"upgraded":      {0.5, 0.4},
	"outperform":    {0.6, 0.5},
	"success":       {0.7, 0.5},
	"successful":    {0.7, 0.5},
	"innovative":    {0.5, 0.6},
	"steady":        {0.3, 0.3},
	"stable":        {0.3, 0.3},
	"opportunity":   {0.4, 0.4},
	"opportunities": {0.4, 0.4},
	"momentum":      {0.3, 0.4},
	"recovery":      {0.4, 0.4},
	"boost":         {0.5, 0.4},
	"exceeds":       {0.5, 0.4},
	"impressive":    {0.7, 0.8},
	"robust":        {0.5, 0.5},

	// negative
	"bad":           {-0.7, 0.65},
	"weak":          {-0.5, 0.4},
	"negative":      {-0.6, 0.5},
	"bearish":       {-0.7, 0.7},
	"loss":          {-0.5, 0.3},
	"losses":        {-0.5, 0.3},
	"decline":       {-0.5, 0.3},
	"declines":      {-0.5, 0.3},
	"drop":          {-0.4, 0.3},
	"drops":         {-0.4, 0.3},
	"fall":          {-0.4, 0.3},
	"falls":         {-0.4, 0.3},
	"plunge":        {-0.7, 0.6},
	"plunges":       {-0.7, 0.6},
	"crash":         {-0.8, 0.6},
	"slump":         {-0.6, 0.5},
	"miss":          {-0.5, 0.4},
	"misses":        {-0.5, 0.4},
	"downgrade":     {-0.5, 0.4},
	"downgraded":    {-0.5, 0.4},
	"underperform":  {-0.6, 0.5},
	"concern":       {-0.4, 0.5},
	"concerns":      {-0.4, 0.5},
	"risk":          {-0.3, 0.4},
	"risks":         {-0.3, 0.4},
	"warning":       {-0.5, 0.5},
	"lawsuit":       {-0.5, 0.4},
	"fraud":         {-0.8, 0.6},
	"bankruptcy":    {-0.9, 0.5},
	"recession":     {-0.6, 0.5},
	"volatile":      {-0.3, 0.5},
	"uncertainty":   {-0.4, 0.6},
	"disappointing": {-0.7, 0.8},
	"struggles":     {-0.5, 0.5},
	"layoffs":       {-0.6, 0.4},
	"cuts":          {-0.4, 0.3},
}

// negators flip the polarity of the following lexicon word.
var negators = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"without": true,
	"hardly":  true,
	"isnt":    true,
	"wasnt":   true,
	"doesnt":  true,
	"didnt":   true,
	"wont":    true,
	"cant":    true,
}

// boosters scale the polarity of the following lexicon word.
var boosters = map[string]float64{
	"very":       1.3,
	"extremely":  1.5,
	"highly":     1.3,
	"slightly":   0.6,
	"somewhat":   0.7,
	"remarkably": 1.4,
	"sharply":    1.3,
}

// ScorePattern runs the polarity/subjectivity lexicon over cleaned text.
// Words outside the lexicon contribute nothing; text with no lexicon hits
// scores a neutral (0, 0).
func ScorePattern(text string) PatternScores {
	tokens := strings.Fields(strings.ToLower(text))
	if len(tokens) == 0 {
		return PatternScores{}
	}

	var polaritySum, subjectivitySum float64
	var hits int

	for i, token := range tokens {
		token = strings.Trim(token, ".,!?;:")
		entry, ok := patternLexicon[token]
		if !ok {
			continue
		}

		polarity := entry.polarity
		if i > 0 {
			prev := strings.Trim(tokens[i-1], ".,!?;:")
			if negators[prev] {
				polarity = -polarity * 0.5
			} else if boost, ok := boosters[prev]; ok {
				polarity *= boost
			}
		}

		polaritySum += polarity
		subjectivitySum += entry.subjectivity
		hits++
	}

	if hits == 0 {
		return PatternScores{}
	}

	return PatternScores{
		Polarity:     clamp(polaritySum/float64(hits), -1, 1),
		Subjectivity: clamp(subjectivitySum/float64(hits), 0, 1),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
