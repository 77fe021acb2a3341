// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assistant runs one digest action: fetch papers for a query, then
// summarize and extract keywords for each, in order.
package assistant

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/research-assistant/internal/observability"
	"github.com/pdiddy/research-assistant/internal/search"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// State is the action state of the assistant.
type State int32

const (
	// Idle means no action is running.
	Idle State = iota
	// Fetching means an action is fetching and processing papers.
	Fetching
)

// String returns "idle" or "fetching".
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Fetching:
		return "fetching"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Summarizer turns an abstract into a summary. It never fails.
type Summarizer interface {
	Summarize(ctx context.Context, text string) string
}

// KeywordExtractor returns the comma-separated keywords of a text.
type KeywordExtractor interface {
	Extract(text string) (string, error)
}

// Assistant sequences the fetcher, summarizer and keyword extractor.
// Run calls are serialized: a second caller waits for the first to finish.
type Assistant struct {
	fetcher    search.Fetcher
	summarizer Summarizer
	extractor  KeywordExtractor
	logger     zerolog.Logger
	metrics    *observability.Metrics

	mu    sync.Mutex
	state atomic.Int32
	now   func() time.Time
}

// New builds an Assistant. metrics may be nil.
func New(f search.Fetcher, s Summarizer, e KeywordExtractor, logger zerolog.Logger, metrics *observability.Metrics) *Assistant {
	return &Assistant{
		fetcher:    f,
		summarizer: s,
		extractor:  e,
		logger:     logger.With().Str("component", "assistant").Logger(),
		metrics:    metrics,
		now:        time.Now,
	}
}

// State reports whether an action is in progress.
func (a *Assistant) State() State {
	return State(a.state.Load())
}

// Run fetches up to maxResults papers for query and builds one row per
// paper in fetch order. Summarizer and keyword failures are absorbed per
// paper; a fetch failure aborts the action and is returned.
func (a *Assistant) Run(ctx context.Context, query string, maxResults int) (types.Digest, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.state.Store(int32(Fetching))
	defer a.state.Store(int32(Idle))

	start := a.now()
	if a.metrics != nil {
		a.metrics.ActionsStarted.Inc()
		defer func() { a.metrics.ActionDuration.Observe(a.now().Sub(start).Seconds()) }()
	}

	log := a.logger.With().Str("query", query).Int("max_results", maxResults).Logger()
	log.Info().Msg("digest started")

	fetchStart := a.now()
	papers, err := a.fetcher.Fetch(ctx, query, maxResults)
	if a.metrics != nil {
		a.metrics.FetchDuration.Observe(a.now().Sub(fetchStart).Seconds())
	}
	if err != nil {
		if a.metrics != nil {
			a.metrics.ActionsFailed.Inc()
		}
		log.Error().Err(err).Msg("fetching papers failed")
		return types.Digest{}, fmt.Errorf("fetching papers: %w", err)
	}
	if a.metrics != nil {
		a.metrics.PapersFetched.Add(float64(len(papers)))
	}

	rows := make([]types.DigestRow, 0, len(papers))
	for _, p := range papers {
		rows = append(rows, a.row(ctx, p, log))
	}

	d := types.Digest{
		Query:      query,
		MaxResults: maxResults,
		Rows:       rows,
		FetchedAt:  start,
		Duration:   a.now().Sub(start),
	}
	log.Info().Int("papers", len(rows)).Dur("elapsed", d.Duration).Msg("digest finished")
	return d, nil
}

func (a *Assistant) row(ctx context.Context, p types.Paper, log zerolog.Logger) types.DigestRow {
	summary := a.summarizer.Summarize(ctx, p.Summary)

	keywords, err := a.extractor.Extract(p.Summary)
	if err != nil {
		log.Warn().Err(err).Str("link", p.Link).Msg("keyword extraction failed")
		if a.metrics != nil {
			a.metrics.KeywordFailures.Inc()
		}
		keywords = ""
	}

	return types.DigestRow{
		Title:    p.Title,
		Authors:  p.AuthorList(),
		Summary:  summary,
		Keywords: keywords,
		Link:     p.Link,
	}
}
