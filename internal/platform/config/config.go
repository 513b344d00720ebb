package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration. It is loaded once in main and
// passed by pointer into the pipeline and adapters; nothing reads the
// process environment after Load returns.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"local"`

	// Reply generation. LLMModel and GoogleModel are each provider's own
	// default; GenerationModel and TranslationModel are cross-provider
	// overrides and stay empty unless set.
	LLMAPIKey        string        `env:"LLM_API_KEY"`
	LLMModel         string        `env:"LLM_MODEL" envDefault:"gpt-4o-mini"`
	GoogleAPIKey     string        `env:"GOOGLE_API_KEY"`
	GoogleModel      string        `env:"GOOGLE_MODEL" envDefault:"gemini-2.0-flash"`
	GenerationModel  string        `env:"GENERATION_MODEL"`
	TranslationModel string        `env:"TRANSLATION_MODEL"`
	LLMTimeout       time.Duration `env:"LLM_TIMEOUT" envDefault:"45s"`
	TranslateTimeout time.Duration `env:"TRANSLATE_TIMEOUT" envDefault:"30s"`
	RateLimitRPS     int           `env:"RATE_LIMIT_RPS" envDefault:"1"`

	// Prompting
	BusinessContext string `env:"BUSINESS_CONTEXT"`

	// Facebook page
	PageAccessToken string        `env:"PAGE_ACCESS_TOKEN"`
	VerifyToken     string        `env:"VERIFY_TOKEN"`
	GraphAPIBaseURL string        `env:"GRAPH_API_BASE_URL" envDefault:"https://graph.facebook.com/v19.0"`
	DispatchTimeout time.Duration `env:"DISPATCH_TIMEOUT" envDefault:"10s"`

	// Transport
	WebhookPort int `env:"WEBHOOK_PORT" envDefault:"5000"`
	HealthPort  int `env:"HEALTH_PORT" envDefault:"8080"`

	// Pipeline workers
	Workers   int `env:"PIPELINE_WORKERS" envDefault:"4"`
	QueueSize int `env:"PIPELINE_QUEUE_SIZE" envDefault:"64"`

	// Webhook redelivery dedupe
	SeenCacheSize int           `env:"SEEN_CACHE_SIZE" envDefault:"4096"`
	SeenCacheTTL  time.Duration `env:"SEEN_CACHE_TTL" envDefault:"1h"`
}

// Load reads .env if present, then parses the environment into a Config.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}
