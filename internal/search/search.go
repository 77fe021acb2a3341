// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search fetches candidate papers from the arXiv Atom API and parses
// the response into Paper records.
package search

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// ErrHTTPStatus is wrapped by Fetch when the API answers with a non-200 status.
var ErrHTTPStatus = errors.New("unexpected HTTP status")

// Fetcher returns the papers matching a free-text query, in response order.
// The assistant depends on this interface so tests can supply a stub.
type Fetcher interface {
	Fetch(ctx context.Context, query string, maxResults int) ([]types.Paper, error)
}

// FetcherFunc adapts a plain function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, query string, maxResults int) ([]types.Paper, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, query string, maxResults int) ([]types.Paper, error) {
	return f(ctx, query, maxResults)
}

// normalizeSpace collapses every run of whitespace (including newlines) into
// one space and trims the ends.
func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// extractArxivID pulls the arXiv ID from the entry's <id> URL
// (e.g. "http://arxiv.org/abs/2301.07041v1" → "2301.07041").
func extractArxivID(idURL string) string {
	const prefix = "/abs/"
	idx := strings.Index(idURL, prefix)
	if idx < 0 {
		return ""
	}
	id := strings.TrimSpace(idURL[idx+len(prefix):])

	// Strip version suffix (e.g. "v1", "v2").
	if vIdx := strings.LastIndex(id, "v"); vIdx > 0 {
		if _, err := strconv.Atoi(id[vIdx+1:]); err == nil {
			id = id[:vIdx]
		}
	}
	return id
}
