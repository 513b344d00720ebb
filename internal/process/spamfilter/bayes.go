package spamfilter

import (
	"strings"
	"unicode"

	"github.com/jbrukh/bayesian"
)

// Classifier classes.
const (
	classSpam bayesian.Class = "spam"
	classHam  bayesian.Class = "ham"
)

// BayesClassifier is a multinomial naive Bayes model over bag-of-words token
// counts. It is trained once at construction from the fixed labeled corpus
// and is safe for concurrent read-only use afterwards.
type BayesClassifier struct {
	model *bayesian.Classifier
}

// NewBayesClassifier trains a classifier on the default bilingual corpus.
func NewBayesClassifier() *BayesClassifier {
	return NewBayesClassifierWithCorpus(spamTexts, hamTexts)
}

// NewBayesClassifierWithCorpus trains a classifier on a custom corpus.
func NewBayesClassifierWithCorpus(spam, ham []string) *BayesClassifier {
	model := bayesian.NewClassifier(classSpam, classHam)

	for _, text := range spam {
		model.Learn(tokenize(text), classSpam)
	}

	for _, text := range ham {
		model.Learn(tokenize(text), classHam)
	}

	return &BayesClassifier{model: model}
}

// IsSpam returns true when the spam posterior exceeds the ham posterior.
// Tokens unseen during training contribute only smoothing mass, so
// out-of-vocabulary input never errors. Empty input is ham: with zero
// evidence the ham class wins deterministically.
func (c *BayesClassifier) IsSpam(text string) bool {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return false
	}

	_, likely, _ := c.model.LogScores(tokens)

	return c.model.Classes[likely] == classSpam
}

// tokenize lowercases text and splits on any rune that is not a letter or
// digit. Apostrophes are dropped with the split, matching the bag-of-words
// vectorization the corpus was written for.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
