package pipeline

import (
	"context"
	"fmt"

	"github.com/lueurxax/page-reply-bot/internal/core/llm"
)

// Generator produces free reply text from a constructed prompt. May fail;
// the pipeline supplies the fixed fallback message.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type replyGenerator struct {
	llmClient llm.Client
	model     string
}

// NewGenerator returns a Generator backed by the LLM client.
func NewGenerator(llmClient llm.Client, model string) Generator {
	return &replyGenerator{
		llmClient: llmClient,
		model:     model,
	}
}

func (g *replyGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	res, err := g.llmClient.CompleteText(ctx, prompt, g.model)
	if err != nil {
		return "", fmt.Errorf("generate reply: %w", err)
	}

	return res, nil
}
