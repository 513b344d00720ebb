package pipeline

import (
	"context"
	"fmt"

	"github.com/lueurxax/page-reply-bot/internal/core/domain"
	"github.com/lueurxax/page-reply-bot/internal/core/llm"
)

// Translator converts text into a target language. May fail; the pipeline
// supplies the fallback (pass-through of the original text).
type Translator interface {
	Translate(ctx context.Context, text string, target domain.LanguageTag) (string, error)
}

type translationAdapter struct {
	llmClient llm.Client
	model     string
}

// NewTranslator returns a Translator backed by the LLM client.
func NewTranslator(llmClient llm.Client, model string) Translator {
	return &translationAdapter{
		llmClient: llmClient,
		model:     model,
	}
}

func (a *translationAdapter) Translate(ctx context.Context, text string, target domain.LanguageTag) (string, error) {
	res, err := a.llmClient.TranslateText(ctx, text, target, a.model)
	if err != nil {
		return "", fmt.Errorf("translate text: %w", err)
	}

	return res, nil
}
