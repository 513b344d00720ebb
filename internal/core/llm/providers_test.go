package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lueurxax/page-reply-bot/internal/platform/config"
)

func TestResolveModel_EachProviderResolvesOwnDefault(t *testing.T) {
	cfg := &config.Config{
		LLMModel:    "gpt-4o-mini",
		GoogleModel: "gemini-2.0-flash",
	}

	openAI := &openAIProvider{cfg: cfg}
	google := &googleProvider{cfg: cfg}

	// An empty request-level model is forwarded unchanged through the
	// fallback chain; each provider must fall back to its own configured
	// model, never a sibling's.
	assert.Equal(t, "gpt-4o-mini", openAI.resolveModel(""))
	assert.Equal(t, "gemini-2.0-flash", google.resolveModel(""))
}

func TestResolveModel_ExplicitModelWins(t *testing.T) {
	cfg := &config.Config{
		LLMModel:    "gpt-4o-mini",
		GoogleModel: "gemini-2.0-flash",
	}

	openAI := &openAIProvider{cfg: cfg}
	google := &googleProvider{cfg: cfg}

	assert.Equal(t, "gpt-4o", openAI.resolveModel("gpt-4o"))
	assert.Equal(t, "gemini-2.5-pro", google.resolveModel("gemini-2.5-pro"))
}
