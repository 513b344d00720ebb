// Package webhook receives page events from the platform, verifies the
// subscription handshake, and feeds extracted comments to the pipeline
// queue. It always acks deliveries with 200 regardless of internal
// processing outcome, so the platform never starts a redelivery storm.
package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/lueurxax/page-reply-bot/internal/core/domain"
	"github.com/lueurxax/page-reply-bot/internal/platform/observability"
)

const (
	webhookPath       = "/webhook"
	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
	maxBodyBytes      = 1 << 20
)

// Server hosts the webhook endpoint.
type Server struct {
	port        int
	verifyToken string
	queue       chan<- domain.Comment
	logger      *zerolog.Logger
}

// NewServer creates a webhook server that enqueues extracted comments.
func NewServer(port int, verifyToken string, queue chan<- domain.Comment, logger *zerolog.Logger) *Server {
	return &Server{
		port:        port,
		verifyToken: verifyToken,
		queue:       queue,
		logger:      logger,
	}
}

// Handler returns the HTTP handler, exposed for tests.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(webhookPath, s.handleWebhook)

	return mux
}

// Start serves until ctx is canceled.
func (s *Server) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info().Int("port", s.port).Msg("webhook server started")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown webhook server: %w", err)
		}

		return nil
	case err := <-errCh:
		return fmt.Errorf("webhook server: %w", err)
	}
}

func (s *Server) handleWebhook(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleVerification(w, r)
	case http.MethodPost:
		s.handleDelivery(w, r)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// handleVerification answers the subscription handshake: echo hub.challenge
// when the verify token matches, 403 otherwise.
func (s *Server) handleVerification(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	mode := query.Get("hub.mode")
	token := query.Get("hub.verify_token")
	challenge := query.Get("hub.challenge")

	if mode != "subscribe" || token != s.verifyToken {
		s.logger.Warn().Str("mode", mode).Msg("webhook verification token mismatch")
		http.Error(w, "verification token mismatch", http.StatusForbidden)

		return
	}

	s.logger.Info().Msg("webhook verified")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(challenge))
}

func (s *Server) handleDelivery(w http.ResponseWriter, r *http.Request) {
	var event Event

	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := decoder.Decode(&event); err != nil {
		s.logger.Warn().Err(err).Msg("undecodable webhook delivery")
		observability.WebhookEvents.WithLabelValues("bad_json").Inc()
		http.Error(w, "invalid JSON", http.StatusBadRequest)

		return
	}

	for _, comment := range event.Comments(time.Now()) {
		select {
		case s.queue <- comment:
			observability.WebhookEvents.WithLabelValues("enqueued").Inc()
		default:
			// Queue full: drop rather than block the ack. The platform
			// redelivers and the dedupe cache absorbs the overlap.
			s.logger.Warn().Str("comment_id", comment.ID).Msg("pipeline queue full, dropping comment")
			observability.WebhookEvents.WithLabelValues("dropped").Inc()
		}
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
