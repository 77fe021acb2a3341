// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the data structures shared by the fetch, summarize,
// keyword and rendering stages of research-assistant.
package types

import (
	"strings"
	"time"
)

// Paper is one entry parsed from an arXiv Atom response. It lives only for
// the duration of a single digest run.
type Paper struct {
	// Title is the entry title with whitespace collapsed to single spaces.
	Title string `json:"title" yaml:"title"`

	// Authors lists the author names in feed order.
	Authors []string `json:"authors" yaml:"authors"`

	// Summary is the raw abstract with whitespace collapsed.
	Summary string `json:"summary" yaml:"summary"`

	// Link is the entry id URL (e.g. "http://arxiv.org/abs/2301.07041v1").
	// It is the only identity a Paper has.
	Link string `json:"link" yaml:"link"`

	// ArxivID is Link without the abs/ prefix and version suffix.
	ArxivID string `json:"arxiv_id,omitempty" yaml:"arxiv_id,omitempty"`

	// Published is the preprint date, zero when the feed omits it.
	Published time.Time `json:"published,omitempty" yaml:"published,omitempty"`

	// Categories holds the arXiv category terms (e.g. "cs.AI").
	Categories []string `json:"categories,omitempty" yaml:"categories,omitempty"`
}

// AuthorList returns the author names joined with ", ".
func (p Paper) AuthorList() string {
	return strings.Join(p.Authors, ", ")
}

// DigestRow is one row of the rendered table.
type DigestRow struct {
	Title    string `json:"title" yaml:"title"`
	Authors  string `json:"authors" yaml:"authors"`
	Summary  string `json:"summary" yaml:"summary"`
	Keywords string `json:"keywords" yaml:"keywords"`
	Link     string `json:"link" yaml:"link"`
}

// Digest is the full output of one user action: the query that produced it
// and one row per fetched paper, in feed order.
type Digest struct {
	Query      string        `json:"query" yaml:"query"`
	MaxResults int           `json:"max_results" yaml:"max_results"`
	Rows       []DigestRow   `json:"rows" yaml:"rows"`
	FetchedAt  time.Time     `json:"fetched_at" yaml:"fetched_at"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
}

// IsEmpty reports whether the digest has no rows.
func (d Digest) IsEmpty() bool {
	return len(d.Rows) == 0
}
