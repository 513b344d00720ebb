package domain

import "time"

// Comment represents a single inbound comment or message from the page.
// It is created by the transport boundary and consumed exactly once by the
// pipeline; the core never persists it.
type Comment struct {
	ID         string
	SenderID   string
	Text       string
	ReceivedAt time.Time
}

// SpamReason explains a spam gate decision.
type SpamReason string

// Spam gate decision reasons.
const (
	ReasonKeywordMatch     SpamReason = "keyword_match"
	ReasonMLAndKeyword     SpamReason = "ml_and_keyword"
	ReasonShortKeywordOnly SpamReason = "short_message_keyword_only"
	ReasonClean            SpamReason = "clean"
)

// ClassificationResult is the spam gate verdict for one comment.
type ClassificationResult struct {
	IsSpam bool
	Reason SpamReason
}

// SentimentLabel is a three-way sentiment classification.
type SentimentLabel string

// Sentiment labels.
const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNegative SentimentLabel = "negative"
	SentimentNeutral  SentimentLabel = "neutral"
)

// LanguageTag is a normalized ISO 639-1 language code, e.g. "en" or "bn".
type LanguageTag = string

// WorkingLanguage is the canonical language prompts are composed in and
// generation happens in, regardless of the comment's original language.
const WorkingLanguage LanguageTag = "en"

// ReplyDraft is the prompt handed to the reply generator. PromptText is
// always composed in the working language.
type ReplyDraft struct {
	PromptText      string
	WorkingLanguage LanguageTag
}

// ReplyResult is the text actually dispatched, localized back to the
// comment's original language when that differs from the working language.
type ReplyResult struct {
	FinalText      string
	TargetLanguage LanguageTag
}
