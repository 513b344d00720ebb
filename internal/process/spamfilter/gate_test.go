package spamfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lueurxax/page-reply-bot/internal/core/domain"
)

func TestGate_ShortMessagesUseKeywordFilterOnly(t *testing.T) {
	// Classifier trained so that "cheap watches" is unambiguously spam.
	classifier := NewBayesClassifierWithCorpus(
		[]string{"cheap watches", "cheap watches for sale"},
		[]string{"hello there", "good morning"},
	)
	gate := NewGate(NewKeywordFilter(), classifier)

	// Two tokens: the classifier would say spam, but it must not be consulted.
	assert.True(t, classifier.IsSpam("cheap watches"))

	res := gate.Classify("cheap watches")
	assert.False(t, res.IsSpam)
	assert.Equal(t, domain.ReasonClean, res.Reason)
}

func TestGate_ShortMessageKeywordHit(t *testing.T) {
	gate := NewGate(NewKeywordFilter(), NewBayesClassifier())

	res := gate.Classify("অশ্লীল ভিডিও")
	assert.True(t, res.IsSpam)
	assert.Equal(t, domain.ReasonShortKeywordOnly, res.Reason)
}

func TestGate_BothSignalsMustAgree(t *testing.T) {
	gate := NewGate(NewKeywordFilter(), NewBayesClassifier())

	tests := []struct {
		name     string
		input    string
		expected bool
		reason   domain.SpamReason
	}{
		{
			name:     "keyword and classifier agree",
			input:    "buy now limited time offer",
			expected: true,
			reason:   domain.ReasonMLAndKeyword,
		},
		{
			name:     "classifier spam but no keyword",
			input:    "earn 1000 daily work from home",
			expected: false,
			reason:   domain.ReasonClean,
		},
		{
			name:     "legitimate inquiry",
			input:    "how much does this cost?",
			expected: false,
			reason:   domain.ReasonClean,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := gate.Classify(tt.input)
			assert.Equal(t, tt.expected, res.IsSpam)
			assert.Equal(t, tt.reason, res.Reason)
		})
	}
}

func TestGate_KeywordHitButClassifierHam(t *testing.T) {
	// Keyword set that overlaps the ham corpus: the lexical filter flags the
	// text, the classifier votes ham, and the disagreement lets it through.
	keywords := NewKeywordFilterWithKeywords([]string{"price"})
	gate := NewGate(keywords, NewBayesClassifier())

	res := gate.Classify("what's the price?")
	assert.False(t, res.IsSpam)
	assert.Equal(t, domain.ReasonClean, res.Reason)
}

func TestGate_WithoutClassifier(t *testing.T) {
	gate := NewGate(NewKeywordFilter(), nil)

	res := gate.Classify("this is a limited time offer friends")
	assert.True(t, res.IsSpam)
	assert.Equal(t, domain.ReasonKeywordMatch, res.Reason)

	res = gate.Classify("how much does this cost?")
	assert.False(t, res.IsSpam)
}
