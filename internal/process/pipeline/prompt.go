package pipeline

import (
	"fmt"
	"strings"

	"github.com/lueurxax/page-reply-bot/internal/core/domain"
)

// The prompt is always composed in the working language; the comment text
// embedded in it has already been normalized when the original language
// differs.
const (
	promptWithContextFmt = `You are a customer service assistant for a business page. Business details:
"%s"

A user left this %s comment:
"%s"

Reply politely, concisely and helpfully, based on the business details above. If the comment asks about price or stock, answer from the business details.
Reply:`

	promptFmt = `A user left this %s comment on a business page:
"%s"

Reply politely, concisely and helpfully.
Reply:`
)

// BuildDraft constructs the ReplyDraft for a normalized comment text and its
// sentiment. businessContext is embedded verbatim when non-empty.
func BuildDraft(text string, sentiment domain.SentimentLabel, businessContext string) domain.ReplyDraft {
	var prompt string
	if strings.TrimSpace(businessContext) != "" {
		prompt = fmt.Sprintf(promptWithContextFmt, businessContext, sentiment, text)
	} else {
		prompt = fmt.Sprintf(promptFmt, sentiment, text)
	}

	return domain.ReplyDraft{
		PromptText:      prompt,
		WorkingLanguage: domain.WorkingLanguage,
	}
}
