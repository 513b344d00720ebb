package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	apperrors "github.com/lueurxax/page-reply-bot/internal/core/errors"
	"github.com/lueurxax/page-reply-bot/internal/platform/config"
	"github.com/lueurxax/page-reply-bot/internal/platform/observability"
)

// openAIProvider implements the Provider interface for OpenAI-compatible APIs.
type openAIProvider struct {
	cfg         *config.Config
	client      *openai.Client
	logger      *zerolog.Logger
	rateLimiter *rate.Limiter
}

// NewOpenAIProvider creates a new OpenAI LLM provider.
func NewOpenAIProvider(cfg *config.Config, logger *zerolog.Logger) Provider {
	rateLimit := cfg.RateLimitRPS
	if rateLimit == 0 {
		rateLimit = 1
	}

	return &openAIProvider{
		cfg:         cfg,
		client:      openai.NewClient(cfg.LLMAPIKey),
		logger:      logger,
		rateLimiter: rate.NewLimiter(rate.Limit(float64(rateLimit)), rateLimiterBurst),
	}
}

func (p *openAIProvider) Name() ProviderName {
	return ProviderOpenAI
}

func (p *openAIProvider) IsAvailable() bool {
	return p.cfg.LLMAPIKey != ""
}

func (p *openAIProvider) Priority() int {
	return PriorityPrimary
}

// CompleteText implements Provider interface.
func (p *openAIProvider) CompleteText(ctx context.Context, prompt, model string) (string, error) {
	if err := p.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf(errRateLimiter, err)
	}

	start := time.Now()
	resolvedModel := p.resolveModel(model)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: resolvedModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   completionMaxTokens,
		Temperature: completionTemperature,
	})

	observability.LLMRequestDuration.WithLabelValues(resolvedModel).Observe(time.Since(start).Seconds())

	if err != nil {
		return "", fmt.Errorf("openai completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai completion: %w", apperrors.ErrEmptyResponse)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// TranslateText implements Provider interface.
func (p *openAIProvider) TranslateText(ctx context.Context, text, targetLanguage, model string) (string, error) {
	if strings.TrimSpace(text) == "" || strings.TrimSpace(targetLanguage) == "" {
		return text, nil
	}

	if err := p.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf(errRateLimiter, err)
	}

	resolvedModel := p.resolveModel(model)
	prompt := fmt.Sprintf(translatePromptFmt, targetLanguage, text)

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: resolvedModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai translation: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai translation: %w", apperrors.ErrEmptyResponse)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (p *openAIProvider) resolveModel(model string) string {
	if model != "" {
		return model
	}

	return p.cfg.LLMModel
}
