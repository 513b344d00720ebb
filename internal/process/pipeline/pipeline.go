// Package pipeline sequences the per-comment decision flow: spam gate,
// language and sentiment classification, inbound normalization, prompt
// construction, reply generation, outbound localization, dispatch.
//
// Failure policy: every external-adapter stage degrades and continues
// (pass-through text, canned apology) rather than aborting. The only path
// that suppresses a reply entirely is the spam gate.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/rs/zerolog"

	"github.com/lueurxax/page-reply-bot/internal/core/domain"
	apperrors "github.com/lueurxax/page-reply-bot/internal/core/errors"
	"github.com/lueurxax/page-reply-bot/internal/platform/observability"
)

// FallbackReply is dispatched, localized like any reply, when generation
// fails. Kept in the working language.
const FallbackReply = "Sorry, we can't respond right now. Please try again later."

// SpamGate flags comments that must not receive a reply.
type SpamGate interface {
	Classify(text string) domain.ClassificationResult
}

// LanguageDetector identifies the dominant language of text.
type LanguageDetector interface {
	Detect(text string) domain.LanguageTag
}

// SentimentScorer labels the sentiment of text.
type SentimentScorer interface {
	Score(text string) domain.SentimentLabel
}

// Sink posts the final reply text to the originating conversation.
type Sink interface {
	PostReply(ctx context.Context, commentID, text string) error
}

// Status is the terminal state of one comment's pipeline run.
type Status string

// Terminal states.
const (
	StatusReplied Status = "replied"
	StatusSpam    Status = "spam"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// Outcome reports what happened to one comment.
type Outcome struct {
	Status         Status
	Classification domain.ClassificationResult
	Language       domain.LanguageTag
	Sentiment      domain.SentimentLabel
	Reply          *domain.ReplyResult
}

// Timeouts bound each external-adapter call.
type Timeouts struct {
	Generate  time.Duration
	Translate time.Duration
	Dispatch  time.Duration
}

// Options configures a Pipeline.
type Options struct {
	BusinessContext string
	Timeouts        Timeouts
	SeenCacheSize   int
	SeenCacheTTL    time.Duration
}

const (
	defaultSeenCacheSize = 4096
	defaultSeenCacheTTL  = time.Hour
	defaultStageTimeout  = 30 * time.Second
)

// seenCache wraps the expirable LRU with a mutex since it is not
// goroutine-safe.
type seenCache struct {
	mu    sync.Mutex
	cache *lru.LRU[string, struct{}]
}

func newSeenCache(size int, ttl time.Duration) *seenCache {
	return &seenCache{cache: lru.NewLRU[string, struct{}](size, nil, ttl)}
}

func (c *seenCache) markSeen(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.cache.Get(id); ok {
		return false
	}

	c.cache.Add(id, struct{}{})

	return true
}

// forget evicts an id so a platform redelivery of a failed comment is not
// skipped as a duplicate.
func (c *seenCache) forget(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache.Remove(id)
}

// Pipeline owns the per-comment decision flow and all fallback policy.
// All collaborators are injected once at construction and shared read-only
// across concurrently processed comments.
type Pipeline struct {
	gate       SpamGate
	languages  LanguageDetector
	sentiments SentimentScorer
	translator Translator
	generator  Generator
	sink       Sink
	opts       Options
	seen       *seenCache
	logger     *zerolog.Logger
}

// New creates a Pipeline. A nil logger disables logging.
func New(
	gate SpamGate,
	languages LanguageDetector,
	sentiments SentimentScorer,
	translator Translator,
	generator Generator,
	sink Sink,
	opts Options,
	logger *zerolog.Logger,
) *Pipeline {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	if opts.SeenCacheSize <= 0 {
		opts.SeenCacheSize = defaultSeenCacheSize
	}

	if opts.SeenCacheTTL <= 0 {
		opts.SeenCacheTTL = defaultSeenCacheTTL
	}

	if opts.Timeouts.Generate <= 0 {
		opts.Timeouts.Generate = defaultStageTimeout
	}

	if opts.Timeouts.Translate <= 0 {
		opts.Timeouts.Translate = defaultStageTimeout
	}

	if opts.Timeouts.Dispatch <= 0 {
		opts.Timeouts.Dispatch = defaultStageTimeout
	}

	return &Pipeline{
		gate:       gate,
		languages:  languages,
		sentiments: sentiments,
		translator: translator,
		generator:  generator,
		sink:       sink,
		opts:       opts,
		seen:       newSeenCache(opts.SeenCacheSize, opts.SeenCacheTTL),
		logger:     logger,
	}
}

// Process runs one comment through the pipeline. It returns an error only
// for rejected input (malformed comment) or a failed dispatch; every
// adapter failure in between degrades and continues. Stages for one comment
// are strictly sequential; dispatch is all-or-nothing under cancellation.
func (p *Pipeline) Process(ctx context.Context, comment domain.Comment) (Outcome, error) {
	start := time.Now()
	defer func() {
		observability.PipelineDuration.Observe(time.Since(start).Seconds())
	}()

	if err := validate(comment); err != nil {
		observability.CommentsProcessed.WithLabelValues(observability.StatusSkipped).Inc()

		return Outcome{Status: StatusSkipped}, err
	}

	if !p.seen.markSeen(comment.ID) {
		p.logger.Debug().Str("comment_id", comment.ID).Msg("duplicate delivery, skipping")
		observability.CommentsProcessed.WithLabelValues(observability.StatusSkipped).Inc()

		return Outcome{Status: StatusSkipped}, nil
	}

	classification := p.gate.Classify(comment.Text)
	if classification.IsSpam {
		p.logger.Info().
			Str("comment_id", comment.ID).
			Str("reason", string(classification.Reason)).
			Msg("comment gated as spam, no reply")
		observability.SpamGated.WithLabelValues(string(classification.Reason)).Inc()
		observability.CommentsProcessed.WithLabelValues(observability.StatusSpam).Inc()

		return Outcome{Status: StatusSpam, Classification: classification}, nil
	}

	// Language and sentiment are always computed on the original text; the
	// translated variant feeds only the prompt.
	lang := p.languages.Detect(comment.Text)
	sentiment := p.sentiments.Score(comment.Text)

	normalized := p.normalize(ctx, comment, lang)
	draft := BuildDraft(normalized, sentiment, p.opts.BusinessContext)
	replyText := p.generate(ctx, comment.ID, draft)
	result := p.localize(ctx, comment.ID, replyText, lang)

	// All-or-nothing: no partial dispatch after cancellation. The failed
	// comment is forgotten so the platform's redelivery gets a fresh attempt.
	if err := ctx.Err(); err != nil {
		p.seen.forget(comment.ID)
		observability.CommentsProcessed.WithLabelValues(observability.StatusFailed).Inc()

		return Outcome{Status: StatusFailed, Classification: classification, Language: lang, Sentiment: sentiment},
			fmt.Errorf("canceled before dispatch: %w", err)
	}

	if err := p.dispatch(ctx, comment.ID, result.FinalText); err != nil {
		p.seen.forget(comment.ID)
		p.logger.Error().Err(err).Str("comment_id", comment.ID).Msg("dispatch failed")
		observability.RepliesDispatched.WithLabelValues(observability.StatusFailed).Inc()
		observability.CommentsProcessed.WithLabelValues(observability.StatusFailed).Inc()

		return Outcome{Status: StatusFailed, Classification: classification, Language: lang, Sentiment: sentiment, Reply: &result},
			fmt.Errorf("dispatch reply: %w", err)
	}

	observability.RepliesDispatched.WithLabelValues(observability.StatusReplied).Inc()
	observability.CommentsProcessed.WithLabelValues(observability.StatusReplied).Inc()

	p.logger.Info().
		Str("comment_id", comment.ID).
		Str("language", lang).
		Str("sentiment", string(sentiment)).
		Msg("reply dispatched")

	return Outcome{
		Status:         StatusReplied,
		Classification: classification,
		Language:       lang,
		Sentiment:      sentiment,
		Reply:          &result,
	}, nil
}

// normalize translates the comment into the working language when needed.
// On adapter failure the original text is used untranslated: a lower-quality
// reply beats no reply.
func (p *Pipeline) normalize(ctx context.Context, comment domain.Comment, lang domain.LanguageTag) string {
	if lang == domain.WorkingLanguage {
		return comment.Text
	}

	tctx, cancel := context.WithTimeout(ctx, p.opts.Timeouts.Translate)
	defer cancel()

	translated, err := p.translator.Translate(tctx, comment.Text, domain.WorkingLanguage)
	if err != nil || strings.TrimSpace(translated) == "" {
		p.logger.Warn().Err(err).Str("comment_id", comment.ID).Msg("inbound translation failed, using original text")
		observability.AdapterFallbacks.WithLabelValues("normalize").Inc()

		return comment.Text
	}

	return translated
}

// generate invokes the reply generator; on failure it degrades to the fixed
// fallback message in the working language.
func (p *Pipeline) generate(ctx context.Context, commentID string, draft domain.ReplyDraft) string {
	gctx, cancel := context.WithTimeout(ctx, p.opts.Timeouts.Generate)
	defer cancel()

	reply, err := p.generator.Generate(gctx, draft.PromptText)
	if err != nil || strings.TrimSpace(reply) == "" {
		p.logger.Warn().Err(err).Str("comment_id", commentID).Msg("reply generation failed, using fallback message")
		observability.AdapterFallbacks.WithLabelValues("generate").Inc()

		return FallbackReply
	}

	return strings.TrimSpace(reply)
}

// localize translates the reply back into the comment's language. On
// failure the working-language text is dispatched rather than dropped.
func (p *Pipeline) localize(ctx context.Context, commentID, replyText string, lang domain.LanguageTag) domain.ReplyResult {
	if lang == domain.WorkingLanguage {
		return domain.ReplyResult{FinalText: replyText, TargetLanguage: lang}
	}

	tctx, cancel := context.WithTimeout(ctx, p.opts.Timeouts.Translate)
	defer cancel()

	localized, err := p.translator.Translate(tctx, replyText, lang)
	if err != nil || strings.TrimSpace(localized) == "" {
		p.logger.Warn().Err(err).Str("comment_id", commentID).Msg("outbound translation failed, dispatching working-language reply")
		observability.AdapterFallbacks.WithLabelValues("localize").Inc()

		return domain.ReplyResult{FinalText: replyText, TargetLanguage: domain.WorkingLanguage}
	}

	return domain.ReplyResult{FinalText: localized, TargetLanguage: lang}
}

func (p *Pipeline) dispatch(ctx context.Context, commentID, text string) error {
	dctx, cancel := context.WithTimeout(ctx, p.opts.Timeouts.Dispatch)
	defer cancel()

	return p.sink.PostReply(dctx, commentID, text)
}

func validate(comment domain.Comment) error {
	if comment.ID == "" {
		return fmt.Errorf("comment id: %w", apperrors.ErrMissingField)
	}

	if strings.TrimSpace(comment.Text) == "" {
		return fmt.Errorf("comment %s: %w", comment.ID, apperrors.ErrEmptyText)
	}

	return nil
}
