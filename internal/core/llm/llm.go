// Package llm provides reply generation and translation behind a
// multi-provider registry with priority fallback and per-provider circuit
// breakers. The pipeline only sees the two-method Client interface.
package llm

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/lueurxax/page-reply-bot/internal/platform/config"
)

// Client is the capability surface the pipeline depends on.
type Client interface {
	CompleteText(ctx context.Context, prompt, model string) (string, error)
	TranslateText(ctx context.Context, text, targetLanguage, model string) (string, error)
}

const (
	defaultCircuitThreshold = 5
	defaultCircuitTimeout   = time.Minute
)

// New creates an LLM client with multi-provider fallback support.
// Providers are registered in priority order: OpenAI (primary), Google
// (fallback). If no provider is configured, a mock client is used so that
// console test mode works without credentials.
func New(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) Client {
	if logger == nil {
		nopLogger := zerolog.Nop()
		logger = &nopLogger
	}

	registry := NewRegistry(logger)
	circuitCfg := CircuitBreakerConfig{
		Threshold:  defaultCircuitThreshold,
		ResetAfter: defaultCircuitTimeout,
	}

	if cfg.LLMAPIKey != "" {
		registry.Register(NewOpenAIProvider(cfg, logger), circuitCfg)
	}

	if cfg.GoogleAPIKey != "" {
		googleProvider, err := NewGoogleProvider(ctx, cfg, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("failed to create Google LLM provider")
		} else {
			registry.Register(googleProvider, circuitCfg)
		}
	}

	if registry.ProviderCount() == 0 {
		registry.Register(NewMockProvider(), circuitCfg)
	}

	return registry
}
