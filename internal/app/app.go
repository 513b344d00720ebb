// Package app provides the application bootstrap and runtime orchestration.
//
// The App type wires together all dependencies and exposes methods to run
// different operational modes:
//
//   - Serve mode: webhook server plus a worker pool draining the comment queue
//   - Console mode: interactive loop reading comments from stdin, replies
//     printed to stdout instead of posted to the platform
//
// Both modes share the same pipeline; only the comment source and reply sink
// differ.
package app

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lueurxax/page-reply-bot/internal/core/domain"
	"github.com/lueurxax/page-reply-bot/internal/core/llm"
	"github.com/lueurxax/page-reply-bot/internal/output/dispatch"
	"github.com/lueurxax/page-reply-bot/internal/platform/config"
	"github.com/lueurxax/page-reply-bot/internal/platform/observability"
	"github.com/lueurxax/page-reply-bot/internal/platform/worker"
	"github.com/lueurxax/page-reply-bot/internal/process/nlp"
	"github.com/lueurxax/page-reply-bot/internal/process/pipeline"
	"github.com/lueurxax/page-reply-bot/internal/process/spamfilter"
	"github.com/lueurxax/page-reply-bot/internal/transport/webhook"
)

const (
	consoleSenderID = "console"
	pipelinePool    = "pipeline"
)

// App holds the application dependencies and provides methods to run different modes.
type App struct {
	cfg    *config.Config
	logger *zerolog.Logger
}

// New creates a new App instance with the given dependencies.
func New(cfg *config.Config, logger *zerolog.Logger) *App {
	return &App{
		cfg:    cfg,
		logger: logger,
	}
}

// StartHealthServer starts the health check and metrics server.
func (a *App) StartHealthServer(ctx context.Context) error {
	return observability.NewServer(a.cfg.HealthPort, a.logger).Start(ctx)
}

// RunServe runs the webhook server and the pipeline worker pool until ctx is
// canceled. Incoming replies are posted through the Graph API.
func (a *App) RunServe(ctx context.Context) error {
	sink := dispatch.NewGraphAPI(a.cfg.GraphAPIBaseURL, a.cfg.PageAccessToken, a.cfg.DispatchTimeout, a.logger)
	pipe := a.buildPipeline(ctx, sink)

	queue := make(chan domain.Comment, a.cfg.QueueSize)
	server := webhook.NewServer(a.cfg.WebhookPort, a.cfg.VerifyToken, queue, a.logger)

	serverErr := make(chan error, 1)

	go func() {
		serverErr <- server.Start(ctx)
	}()

	worker.Run(ctx, queue, worker.Config[domain.Comment]{
		Name:    pipelinePool,
		Workers: a.cfg.Workers,
		Process: func(ctx context.Context, comment domain.Comment) {
			if _, err := pipe.Process(ctx, comment); err != nil {
				a.logger.Warn().Err(err).Str("comment_id", comment.ID).Msg("comment left without reply")
			}
		},
		Logger: a.logger,
	})

	if err := <-serverErr; err != nil {
		return fmt.Errorf("serve mode: %w", err)
	}

	return ctx.Err()
}

// RunConsole runs an interactive loop: each stdin line is processed as a
// comment and the reply is printed to stdout. Useful without page credentials.
func (a *App) RunConsole(ctx context.Context) error {
	sink := dispatch.NewConsole(os.Stdout)
	pipe := a.buildPipeline(ctx, sink)

	a.logger.Info().Msg("console mode: type a comment and press enter, 'exit' or ctrl-d to quit")

	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		if text == "exit" || text == "quit" {
			return nil
		}

		comment := domain.Comment{
			ID:         uuid.NewString(),
			SenderID:   consoleSenderID,
			Text:       text,
			ReceivedAt: time.Now(),
		}

		outcome, err := pipe.Process(ctx, comment)
		if err != nil {
			a.logger.Error().Err(err).Msg("comment processing failed")

			continue
		}

		if outcome.Status == pipeline.StatusSpam {
			fmt.Fprintf(os.Stdout, "--- gated as spam (%s), no reply ---\n\n", outcome.Classification.Reason)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}

	return ctx.Err()
}

// buildPipeline assembles the shared processing pipeline around the given
// reply sink.
func (a *App) buildPipeline(ctx context.Context, sink pipeline.Sink) *pipeline.Pipeline {
	gate := spamfilter.NewGate(spamfilter.NewKeywordFilter(), spamfilter.NewBayesClassifier())
	client := llm.New(ctx, a.cfg, a.logger)

	return pipeline.New(
		gate,
		nlp.NewLanguageDetector(),
		nlp.NewSentimentScorer(),
		// Model overrides are empty by default so the registry forwards an
		// empty model string and each provider resolves its own configured
		// model during fallback.
		pipeline.NewTranslator(client, a.cfg.TranslationModel),
		pipeline.NewGenerator(client, a.cfg.GenerationModel),
		sink,
		pipeline.Options{
			BusinessContext: a.cfg.BusinessContext,
			Timeouts: pipeline.Timeouts{
				Generate:  a.cfg.LLMTimeout,
				Translate: a.cfg.TranslateTimeout,
				Dispatch:  a.cfg.DispatchTimeout,
			},
			SeenCacheSize: a.cfg.SeenCacheSize,
			SeenCacheTTL:  a.cfg.SeenCacheTTL,
		},
		a.logger,
	)
}
