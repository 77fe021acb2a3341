package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "research_assistant"

// Metrics holds the Prometheus collectors for one assistant process.
type Metrics struct {
	// ActionsStarted counts digest runs triggered by the page, API or CLI.
	ActionsStarted prometheus.Counter

	// ActionsFailed counts digest runs that ended with a fetch error.
	ActionsFailed prometheus.Counter

	// ActionDuration observes end-to-end digest duration in seconds.
	ActionDuration prometheus.Histogram

	// FetchDuration observes the arXiv request duration in seconds.
	FetchDuration prometheus.Histogram

	// PapersFetched counts papers returned by the arXiv API.
	PapersFetched prometheus.Counter

	// SummarizerFallbacks counts summaries replaced by the truncated abstract.
	SummarizerFallbacks prometheus.Counter

	// KeywordFailures counts papers whose keyword extraction failed.
	KeywordFailures prometheus.Counter
}

// NewMetrics creates and registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ActionsStarted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_started_total",
			Help:      "Digest runs started.",
		}),
		ActionsFailed: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_failed_total",
			Help:      "Digest runs that failed to fetch papers.",
		}),
		ActionDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "action_duration_seconds",
			Help:      "End-to-end digest duration.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		}),
		FetchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "arXiv API request duration.",
			Buckets:   prometheus.DefBuckets,
		}),
		PapersFetched: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "papers_fetched_total",
			Help:      "Papers returned by the arXiv API.",
		}),
		SummarizerFallbacks: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "summarizer_fallbacks_total",
			Help:      "Summaries replaced by the truncated abstract.",
		}),
		KeywordFailures: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "keyword_failures_total",
			Help:      "Papers whose keyword extraction failed.",
		}),
	}
}
