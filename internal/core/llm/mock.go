package llm

import (
	"context"
	"fmt"
)

// mockProvider implements the Provider interface for testing and for
// running console mode without credentials.
type mockProvider struct{}

// NewMockProvider creates a new mock LLM provider.
func NewMockProvider() Provider {
	return &mockProvider{}
}

func (p *mockProvider) Name() ProviderName {
	return ProviderMock
}

func (p *mockProvider) IsAvailable() bool {
	return true
}

func (p *mockProvider) Priority() int {
	return PriorityMock
}

// CompleteText implements Provider interface.
func (p *mockProvider) CompleteText(_ context.Context, prompt, _ string) (string, error) {
	return fmt.Sprintf("[mock reply to prompt of %d chars]", len(prompt)), nil
}

// TranslateText implements Provider interface.
func (p *mockProvider) TranslateText(_ context.Context, text, targetLanguage, _ string) (string, error) {
	return fmt.Sprintf("[%s] %s", targetLanguage, text), nil
}
