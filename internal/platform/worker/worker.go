// Package worker provides a generic consumer-pool abstraction for background
// processing. It encapsulates the common pattern of a fixed number of
// goroutines draining a queue with context cancellation and per-item panic
// recovery.
package worker

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Config configures a consumer pool.
type Config[T any] struct {
	// Name identifies the pool for logging.
	Name string

	// Workers is the number of concurrent consumers.
	Workers int

	// Process handles one item. Items are independent; no ordering is
	// guaranteed between workers.
	Process func(ctx context.Context, item T)

	// Logger for the pool.
	Logger *zerolog.Logger
}

// Run consumes queue with cfg.Workers goroutines until ctx is canceled or
// the queue is closed. It blocks until all workers have exited.
func Run[T any](ctx context.Context, queue <-chan T, cfg Config[T]) {
	logger := cfg.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	logger.Info().Str("worker", cfg.Name).Int("count", workers).Msg("starting worker pool")

	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()
			consume(ctx, queue, cfg.Process, logger, cfg.Name)
		}()
	}

	wg.Wait()
	logger.Info().Str("worker", cfg.Name).Msg("worker pool stopped")
}

func consume[T any](ctx context.Context, queue <-chan T, process func(context.Context, T), logger *zerolog.Logger, name string) {
	for {
		select {
		case <-ctx.Done():
			return
		case item, ok := <-queue:
			if !ok {
				return
			}

			processSafely(ctx, item, process, logger, name)
		}
	}
}

// processSafely isolates one item: a panic is logged and the worker keeps
// consuming.
func processSafely[T any](ctx context.Context, item T, process func(context.Context, T), logger *zerolog.Logger, name string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error().Str("worker", name).Interface("panic", r).Msg("recovered from panic in worker")
		}
	}()

	process(ctx, item)
}
