package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	CommentsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reply_comments_processed_total",
		Help: "The total number of comments processed by the pipeline",
	}, []string{"status"})

	SpamGated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reply_spam_gated_total",
		Help: "The total number of comments suppressed by the spam gate",
	}, []string{"reason"})

	AdapterFallbacks = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reply_adapter_fallbacks_total",
		Help: "The total number of degraded-mode fallbacks per pipeline stage",
	}, []string{"stage"})

	RepliesDispatched = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reply_dispatched_total",
		Help: "The total number of replies handed to the dispatch sink",
	}, []string{"status"})

	LLMRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "reply_llm_request_duration_seconds",
		Help:    "Duration of LLM requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"model"})

	PipelineDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "reply_pipeline_duration_seconds",
		Help:    "End-to-end duration of processing one comment",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60, 120},
	})

	LLMProviderAvailable = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "reply_llm_provider_available",
		Help: "Whether an LLM provider is configured and available (1) or not (0)",
	}, []string{"provider"})

	WebhookEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "reply_webhook_events_total",
		Help: "The total number of webhook deliveries received",
	}, []string{"outcome"})
)

// Pipeline status label values.
const (
	StatusReplied = "replied"
	StatusSpam    = "spam"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)
