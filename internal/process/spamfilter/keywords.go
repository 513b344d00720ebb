// Package spamfilter decides whether a comment is spam. It combines a
// lexical keyword filter with a naive Bayes classifier under a length-aware
// gate policy; both are built once at startup and immutable afterwards.
package spamfilter

import (
	"strings"

	"github.com/cloudflare/ahocorasick"
)

// KeywordFilter tests substring membership against a fixed keyword set.
// Matching is case-insensitive; the first hit short-circuits.
type KeywordFilter struct {
	matcher *ahocorasick.Matcher
}

// NewKeywordFilter builds a filter over the default keyword set.
func NewKeywordFilter() *KeywordFilter {
	return NewKeywordFilterWithKeywords(spamKeywords)
}

// NewKeywordFilterWithKeywords builds a filter over a custom keyword set.
func NewKeywordFilterWithKeywords(keywords []string) *KeywordFilter {
	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}

	return &KeywordFilter{matcher: ahocorasick.NewStringMatcher(lowered)}
}

// Match reports whether text contains any spam keyword.
func (f *KeywordFilter) Match(text string) bool {
	return len(f.matcher.Match([]byte(strings.ToLower(text)))) > 0
}
