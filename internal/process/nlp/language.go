// Package nlp provides language identification and sentiment scoring for
// comment text. Both are advisory: every failure path resolves to a fixed
// fallback value and never aborts the pipeline.
package nlp

import (
	"strings"

	"github.com/pemistahl/lingua-go"

	"github.com/lueurxax/page-reply-bot/internal/core/domain"
)

// Languages the detector distinguishes between. A closed set keeps the
// lingua models small and detection accurate on short comment text.
var detectorLanguages = []lingua.Language{
	lingua.English,
	lingua.Bengali,
	lingua.Spanish,
	lingua.French,
	lingua.German,
	lingua.Hindi,
	lingua.Arabic,
	lingua.Russian,
}

// LanguageDetector identifies the dominant language of free text.
type LanguageDetector struct {
	detector lingua.LanguageDetector
	fallback domain.LanguageTag
}

// NewLanguageDetector builds a detector over the default language set with
// the working language as fallback.
func NewLanguageDetector() *LanguageDetector {
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(detectorLanguages...).
		Build()

	return &LanguageDetector{
		detector: detector,
		fallback: domain.WorkingLanguage,
	}
}

// Detect returns the ISO 639-1 code of the dominant language of text, or the
// fallback tag when detection is inconclusive. Detection failure never
// propagates an error.
func (d *LanguageDetector) Detect(text string) domain.LanguageTag {
	if strings.TrimSpace(text) == "" {
		return d.fallback
	}

	language, exists := d.detector.DetectLanguageOf(text)
	if !exists {
		return d.fallback
	}

	return strings.ToLower(language.IsoCode639_1().String())
}
