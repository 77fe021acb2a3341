// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/pdiddy/research-assistant/internal/httputil"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// DefaultEndpoint is the arXiv search endpoint.
const DefaultEndpoint = "http://export.arxiv.org/api/query"

// maxBodyBytes caps how much of the response is read.
const maxBodyBytes = 10 << 20

// ArxivFetcher queries the arXiv API with a single GET per call.
type ArxivFetcher struct {
	Client    *http.Client
	Endpoint  string
	UserAgent string

	// Limiter spaces out consecutive requests. Nil disables it.
	Limiter *rate.Limiter

	Logger zerolog.Logger
}

// NewArxivFetcher builds a fetcher from cfg.
func NewArxivFetcher(cfg types.SearchConfig, logger zerolog.Logger) *ArxivFetcher {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	var limiter *rate.Limiter
	if cfg.RatePerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst)
	}

	return &ArxivFetcher{
		Client:    httputil.NewClient(cfg.HTTPConfig),
		Endpoint:  endpoint,
		UserAgent: cfg.UserAgent,
		Limiter:   limiter,
		Logger:    logger.With().Str("component", "arxiv").Logger(),
	}
}

// BuildURL interpolates query and maxResults into the endpoint template.
// The query is inserted verbatim without URL-encoding, so reserved
// characters in it change how the API reads the request.
func BuildURL(endpoint, query string, maxResults int) string {
	return fmt.Sprintf("%s?search_query=all:%s&start=0&max_results=%d", endpoint, query, maxResults)
}

// Fetch performs one GET against the arXiv API and parses the Atom response.
// maxResults is passed through unchanged. A malformed or empty body yields
// an empty slice and no error; transport failures and non-200 statuses are
// returned.
func (f *ArxivFetcher) Fetch(ctx context.Context, query string, maxResults int) ([]types.Paper, error) {
	if f.Limiter != nil {
		if err := f.Limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("waiting for arXiv rate limiter: %w", err)
		}
	}

	rawURL := BuildURL(f.Endpoint, query, maxResults)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, httputil.RequoteURL(rawURL), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httputil.SetUserAgent(req, f.UserAgent)

	start := time.Now()
	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d: %w", resp.StatusCode, ErrHTTPStatus)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading arXiv response: %w", err)
	}

	papers := ParseFeed(body, f.Logger)
	f.Logger.Debug().
		Str("query", query).
		Int("max_results", maxResults).
		Int("papers", len(papers)).
		Dur("elapsed", time.Since(start)).
		Msg("fetched arXiv results")
	return papers, nil
}
