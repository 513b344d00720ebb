package nlp

import (
	"github.com/jonreiter/govader"

	"github.com/lueurxax/page-reply-bot/internal/core/domain"
)

// Polarity thresholds. A compound score strictly above positiveThreshold is
// positive, strictly below negativeThreshold is negative, anything else
// (the boundaries included) is neutral.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

// SentimentScorer maps text to a three-way sentiment label via the VADER
// lexicon model's compound polarity in [-1, 1].
type SentimentScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewSentimentScorer builds a scorer with the stock VADER lexicon.
func NewSentimentScorer() *SentimentScorer {
	return &SentimentScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the sentiment label for text. Sentiment is advisory context
// for the prompt; it never gates, so any internal trouble resolves to
// neutral rather than an error.
func (s *SentimentScorer) Score(text string) domain.SentimentLabel {
	if text == "" {
		return domain.SentimentNeutral
	}

	return labelFor(s.analyzer.PolarityScores(text).Compound)
}

// labelFor maps a compound polarity score to a label.
func labelFor(polarity float64) domain.SentimentLabel {
	switch {
	case polarity > positiveThreshold:
		return domain.SentimentPositive
	case polarity < negativeThreshold:
		return domain.SentimentNegative
	default:
		return domain.SentimentNeutral
	}
}
