package llm

import "context"

// ProviderName identifies an LLM provider.
type ProviderName string

// Provider name constants.
const (
	ProviderOpenAI ProviderName = "openai"
	ProviderGoogle ProviderName = "google"
	ProviderMock   ProviderName = "mock"
)

// Priority constants for provider ordering.
const (
	PriorityPrimary  = 100 // Primary provider (OpenAI)
	PriorityFallback = 50  // First fallback (Google)
	PriorityMock     = 0   // Mock provider for testing
)

// Provider defines the interface for LLM providers. Both operations are
// blocking network calls; the caller bounds them with a context deadline.
type Provider interface {
	// Name returns the provider identifier.
	Name() ProviderName

	// IsAvailable returns true if the provider is configured and available.
	IsAvailable() bool

	// Priority returns the provider priority (higher = preferred).
	Priority() int

	// CompleteText sends a prompt and returns the completion text.
	CompleteText(ctx context.Context, prompt, model string) (string, error)

	// TranslateText translates text into the target language.
	TranslateText(ctx context.Context, text, targetLanguage, model string) (string, error)
}
