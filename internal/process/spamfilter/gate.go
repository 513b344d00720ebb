package spamfilter

import (
	"strings"

	"github.com/lueurxax/page-reply-bot/internal/core/domain"
)

// Messages below this token count are too short for the statistical
// classifier to be reliable; the keyword filter decides alone.
const shortMessageTokens = 3

// Gate combines the lexical filter and the Bayes classifier under a
// length-aware policy. For messages of three or more tokens both signals
// must agree before a comment is dropped: dropping a real customer inquiry
// is costlier than occasionally replying to mild spam.
type Gate struct {
	keywords   *KeywordFilter
	classifier *BayesClassifier
}

// NewGate builds a gate from a keyword filter and a trained classifier.
// The classifier may be nil, in which case the keyword filter decides alone
// for messages of any length.
func NewGate(keywords *KeywordFilter, classifier *BayesClassifier) *Gate {
	return &Gate{
		keywords:   keywords,
		classifier: classifier,
	}
}

// Classify returns the spam verdict for text. It is pure and total: no
// failure mode, always a result.
func (g *Gate) Classify(text string) domain.ClassificationResult {
	keywordHit := g.keywords.Match(text)

	if len(strings.Fields(text)) < shortMessageTokens {
		if keywordHit {
			return domain.ClassificationResult{IsSpam: true, Reason: domain.ReasonShortKeywordOnly}
		}

		return domain.ClassificationResult{IsSpam: false, Reason: domain.ReasonClean}
	}

	if g.classifier == nil {
		if keywordHit {
			return domain.ClassificationResult{IsSpam: true, Reason: domain.ReasonKeywordMatch}
		}

		return domain.ClassificationResult{IsSpam: false, Reason: domain.ReasonClean}
	}

	if keywordHit && g.classifier.IsSpam(text) {
		return domain.ClassificationResult{IsSpam: true, Reason: domain.ReasonMLAndKeyword}
	}

	return domain.ClassificationResult{IsSpam: false, Reason: domain.ReasonClean}
}

// IsSpam is a convenience wrapper over Classify.
func (g *Gate) IsSpam(text string) bool {
	return g.Classify(text).IsSpam
}
