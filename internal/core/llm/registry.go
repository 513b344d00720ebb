package llm

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	apperrors "github.com/lueurxax/page-reply-bot/internal/core/errors"
	"github.com/lueurxax/page-reply-bot/internal/platform/observability"
)

// Availability metric values.
const (
	metricValueAvailable   = 1
	metricValueUnavailable = 0
)

// Registry manages LLM providers with fallback support. Providers are tried
// in priority order; a provider whose circuit is open is skipped.
type Registry struct {
	mu              sync.RWMutex
	providers       map[ProviderName]Provider
	order           []ProviderName
	circuitBreakers map[ProviderName]*CircuitBreaker
	logger          *zerolog.Logger
}

// NewRegistry creates a new provider registry.
func NewRegistry(logger *zerolog.Logger) *Registry {
	return &Registry{
		providers:       make(map[ProviderName]Provider),
		order:           make([]ProviderName, 0),
		circuitBreakers: make(map[ProviderName]*CircuitBreaker),
		logger:          logger,
	}
}

// Register adds a provider to the registry.
func (r *Registry) Register(p Provider, cfg CircuitBreakerConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := p.Name()
	r.providers[name] = p
	r.order = append(r.order, name)
	r.circuitBreakers[name] = NewCircuitBreaker(cfg, r.logger)

	sort.SliceStable(r.order, func(i, j int) bool {
		return r.providers[r.order[i]].Priority() > r.providers[r.order[j]].Priority()
	})

	available := float64(metricValueUnavailable)
	if p.IsAvailable() {
		available = metricValueAvailable
	}

	observability.LLMProviderAvailable.WithLabelValues(string(name)).Set(available)

	r.logger.Info().
		Str("provider", string(name)).
		Int("priority", p.Priority()).
		Msg("registered LLM provider")
}

// ProviderCount returns the number of registered providers.
func (r *Registry) ProviderCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.providers)
}

// providerChain returns providers in priority order.
func (r *Registry) providerChain() []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	chain := make([]Provider, 0, len(r.order))
	for _, name := range r.order {
		chain = append(chain, r.providers[name])
	}

	return chain
}

func (r *Registry) breaker(name ProviderName) *CircuitBreaker {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.circuitBreakers[name]
}

// execute runs op against each available provider in priority order until
// one succeeds. Context cancellation stops the chain immediately.
func (r *Registry) execute(ctx context.Context, opName string, op func(Provider) (string, error)) (string, error) {
	chain := r.providerChain()
	if len(chain) == 0 {
		return "", apperrors.ErrNoProvidersAvailable
	}

	var lastErr error

	for _, p := range chain {
		if err := ctx.Err(); err != nil {
			return "", fmt.Errorf("%s canceled: %w", opName, err)
		}

		if !p.IsAvailable() {
			continue
		}

		cb := r.breaker(p.Name())
		if err := cb.CheckCircuit(); err != nil {
			lastErr = err
			continue
		}

		result, err := op(p)
		if err != nil {
			cb.RecordFailure(p.Name())
			lastErr = err

			r.logger.Warn().
				Err(err).
				Str("provider", string(p.Name())).
				Str("op", opName).
				Msg("LLM provider failed, trying next")

			continue
		}

		cb.RecordSuccess()

		return result, nil
	}

	if lastErr != nil {
		return "", fmt.Errorf("%w: %s: %w", apperrors.ErrAllProvidersFailed, opName, lastErr)
	}

	return "", apperrors.ErrNoProvidersAvailable
}

// CompleteText implements Client interface with provider fallback.
func (r *Registry) CompleteText(ctx context.Context, prompt, model string) (string, error) {
	return r.execute(ctx, "complete", func(p Provider) (string, error) {
		return p.CompleteText(ctx, prompt, model)
	})
}

// TranslateText implements Client interface with provider fallback.
func (r *Registry) TranslateText(ctx context.Context, text, targetLanguage, model string) (string, error) {
	return r.execute(ctx, "translate", func(p Provider) (string, error) {
		return p.TranslateText(ctx, text, targetLanguage, model)
	})
}
