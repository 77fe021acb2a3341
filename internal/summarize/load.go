// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// New constructs the model named by spec. keys maps hosted providers to
// their API keys.
func New(spec types.ModelSpec, keys map[types.Provider]string) (Model, error) {
	switch spec.Provider {
	case types.ProviderAnthropic:
		return NewAnthropicModel(spec, keys[types.ProviderAnthropic])
	case types.ProviderOpenAI:
		return NewOpenAIModel(spec, keys[types.ProviderOpenAI])
	case types.ProviderLead:
		return LeadModel{}, nil
	default:
		return nil, fmt.Errorf("%q: %w", spec.Provider, ErrUnknownProvider)
	}
}

// Load constructs the preferred model, or the fallback model when the
// preferred one cannot be constructed. It fails only when both do.
func Load(cfg types.SummarizerConfig, keys map[types.Provider]string, logger zerolog.Logger) (Model, error) {
	m, err := New(cfg.Preferred, keys)
	if err == nil {
		logger.Info().Str("model", m.Name()).Msg("summarization model loaded")
		return m, nil
	}

	logger.Warn().Err(err).
		Str("preferred", string(cfg.Preferred.Provider)).
		Str("fallback", string(cfg.Fallback.Provider)).
		Msg("preferred summarization model unavailable, loading fallback")

	fb, fbErr := New(cfg.Fallback, keys)
	if fbErr != nil {
		return nil, fmt.Errorf("loading fallback model (preferred failed: %v): %w", err, fbErr)
	}
	logger.Info().Str("model", fb.Name()).Msg("fallback summarization model loaded")
	return fb, nil
}
