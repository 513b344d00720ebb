package llm

// Prompt templates shared by providers.
const (
	translatePromptFmt = "Translate the following text to %s. Return only the translated text with no preamble.\n\n%s"

	systemPrompt = "You are a helpful customer service assistant for a Facebook Page. " +
		"Respond concisely and professionally. Keep your answers brief and to the point."
)

// Request shaping.
const (
	completionMaxTokens   = 150
	completionTemperature = 0.7
	rateLimiterBurst      = 5
)

// Error message formats.
const (
	errRateLimiter = "rate limiter wait: %w"
)
