// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package summarize reduces a paper abstract to a short summary with a
// pretrained language model, degrading to a truncated prefix of the input
// when the model cannot produce one.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/research-assistant/internal/observability"
	"github.com/pdiddy/research-assistant/pkg/types"
)

const (
	defaultMinLength     = 25
	defaultMaxLength     = 80
	defaultTruncateChars = 200
	ellipsis             = "..."
)

var (
	// ErrUnknownProvider is returned by New for a provider name it does not know.
	ErrUnknownProvider = errors.New("unknown summarization provider")

	// ErrMissingAPIKey is returned by New when a hosted provider has no key.
	ErrMissingAPIKey = errors.New("missing API key")

	// ErrDegenerate marks empty input or output shorter than the lower bound.
	ErrDegenerate = errors.New("degenerate summary")
)

// Bounds limits summary length, counted in whitespace-separated words.
type Bounds struct {
	MinLength int
	MaxLength int
}

// Model produces one summary per call. Implementations generate
// deterministically so identical inputs give identical outputs.
type Model interface {
	Name() string
	Summarize(ctx context.Context, text string, b Bounds) (string, error)
}

// Summarizer wraps a Model with length enforcement and the truncation
// fallback. The model is constructed once at startup and only read after.
type Summarizer struct {
	model         Model
	bounds        Bounds
	truncateChars int
	logger        zerolog.Logger
	metrics       *observability.Metrics
}

// NewSummarizer binds model to the bounds in cfg. metrics may be nil.
func NewSummarizer(model Model, cfg types.SummarizerConfig, logger zerolog.Logger, metrics *observability.Metrics) *Summarizer {
	b := Bounds{MinLength: cfg.MinLength, MaxLength: cfg.MaxLength}
	if b.MinLength <= 0 {
		b.MinLength = defaultMinLength
	}
	if b.MaxLength <= 0 {
		b.MaxLength = defaultMaxLength
	}
	if b.MinLength > b.MaxLength {
		b.MinLength = b.MaxLength
	}

	truncateChars := cfg.TruncateChars
	if truncateChars <= 0 {
		truncateChars = defaultTruncateChars
	}

	return &Summarizer{
		model:         model,
		bounds:        b,
		truncateChars: truncateChars,
		logger:        logger.With().Str("component", "summarizer").Str("model", model.Name()).Logger(),
		metrics:       metrics,
	}
}

// ModelName returns the name of the loaded model.
func (s *Summarizer) ModelName() string { return s.model.Name() }

// Bounds returns the enforced length bounds.
func (s *Summarizer) Bounds() Bounds { return s.bounds }

// Summarize returns a summary of text between the configured bounds. On any
// model failure it returns the first truncateChars runes of text followed
// by "..."; the caller cannot tell the two cases apart.
func (s *Summarizer) Summarize(ctx context.Context, text string) string {
	summary, err := s.summarize(ctx, text)
	if err != nil {
		s.logger.Warn().Err(err).Msg("summarization failed, using truncated abstract")
		if s.metrics != nil {
			s.metrics.SummarizerFallbacks.Inc()
		}
		return Truncate(text, s.truncateChars)
	}
	return summary
}

func (s *Summarizer) summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty input: %w", ErrDegenerate)
	}

	out, err := s.model.Summarize(ctx, text, s.bounds)
	if err != nil {
		return "", err
	}

	words := strings.Fields(out)
	if len(words) > s.bounds.MaxLength {
		words = words[:s.bounds.MaxLength]
	}
	if len(words) < s.bounds.MinLength {
		return "", fmt.Errorf("%d words, want at least %d: %w", len(words), s.bounds.MinLength, ErrDegenerate)
	}
	return strings.Join(words, " "), nil
}

// Truncate returns the first n runes of text followed by "...". Shorter
// texts are returned whole, still with the marker.
func Truncate(text string, n int) string {
	r := []rune(text)
	if len(r) > n {
		r = r[:n]
	}
	return string(r) + ellipsis
}
