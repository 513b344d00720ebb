package llm

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/generative-ai-go/genai"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"

	apperrors "github.com/lueurxax/page-reply-bot/internal/core/errors"
	"github.com/lueurxax/page-reply-bot/internal/platform/config"
)

// googleProvider implements the Provider interface for Google Gemini.
type googleProvider struct {
	cfg         *config.Config
	client      *genai.Client
	logger      *zerolog.Logger
	rateLimiter *rate.Limiter
}

// NewGoogleProvider creates a new Google Gemini LLM provider.
func NewGoogleProvider(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) (Provider, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GoogleAPIKey))
	if err != nil {
		return nil, fmt.Errorf("creating google genai client: %w", err)
	}

	rateLimit := cfg.RateLimitRPS
	if rateLimit == 0 {
		rateLimit = 1
	}

	return &googleProvider{
		cfg:         cfg,
		client:      client,
		logger:      logger,
		rateLimiter: rate.NewLimiter(rate.Limit(float64(rateLimit)), rateLimiterBurst),
	}, nil
}

func (p *googleProvider) Name() ProviderName {
	return ProviderGoogle
}

func (p *googleProvider) IsAvailable() bool {
	return p.cfg.GoogleAPIKey != "" && p.client != nil
}

func (p *googleProvider) Priority() int {
	return PriorityFallback
}

// CompleteText implements Provider interface.
func (p *googleProvider) CompleteText(ctx context.Context, prompt, model string) (string, error) {
	if err := p.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf(errRateLimiter, err)
	}

	genModel := p.client.GenerativeModel(p.resolveModel(model))

	resp, err := genModel.GenerateContent(ctx, genai.Text(sanitizeUTF8(prompt)))
	if err != nil {
		return "", fmt.Errorf("google genai completion: %w", err)
	}

	text := extractResponseText(resp)
	if text == "" {
		return "", fmt.Errorf("google genai completion: %w", apperrors.ErrEmptyResponse)
	}

	return text, nil
}

// TranslateText implements Provider interface.
func (p *googleProvider) TranslateText(ctx context.Context, text, targetLanguage, model string) (string, error) {
	if strings.TrimSpace(text) == "" || strings.TrimSpace(targetLanguage) == "" {
		return text, nil
	}

	if err := p.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf(errRateLimiter, err)
	}

	prompt := fmt.Sprintf(translatePromptFmt, targetLanguage, text)
	genModel := p.client.GenerativeModel(p.resolveModel(model))

	resp, err := genModel.GenerateContent(ctx, genai.Text(sanitizeUTF8(prompt)))
	if err != nil {
		return "", fmt.Errorf("google genai translation: %w", err)
	}

	translated := extractResponseText(resp)
	if translated == "" {
		return "", fmt.Errorf("google genai translation: %w", apperrors.ErrEmptyResponse)
	}

	return translated, nil
}

func (p *googleProvider) resolveModel(model string) string {
	if model != "" {
		return model
	}

	return p.cfg.GoogleModel
}

// extractResponseText concatenates the text parts of the first candidate.
// Required-field validation happens here so a malformed response surfaces as
// a typed adapter error, not a nil dereference.
func extractResponseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil {
		return ""
	}

	var sb strings.Builder

	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}

	return strings.TrimSpace(sb.String())
}

// sanitizeUTF8 removes invalid UTF-8 sequences. Google's protobuf API
// requires valid UTF-8, and inbound comment text is untrusted.
func sanitizeUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}

	var builder strings.Builder
	builder.Grow(len(s))

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			builder.WriteRune(utf8.RuneError)

			i++
		} else {
			builder.WriteRune(r)

			i += size
		}
	}

	return builder.String()
}
