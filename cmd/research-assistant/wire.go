// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/pdiddy/research-assistant/internal/assistant"
	"github.com/pdiddy/research-assistant/internal/keywords"
	"github.com/pdiddy/research-assistant/internal/observability"
	"github.com/pdiddy/research-assistant/internal/search"
	"github.com/pdiddy/research-assistant/internal/secrets"
	"github.com/pdiddy/research-assistant/internal/summarize"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// components is everything one process needs to run digests.
type components struct {
	logger    zerolog.Logger
	registry  *prometheus.Registry
	assistant *assistant.Assistant
}

// buildComponents loads the model once and wires the fetcher, summarizer
// and keyword extractor into an Assistant. Logs go to logOut.
func buildComponents(cfg types.AssistantConfig, logOut io.Writer) (*components, error) {
	logger := observability.NewLogger(cfg.Logging, logOut)

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	model, err := summarize.Load(cfg.Summarizer, secrets.ProviderKeys(loadedSecrets), logger)
	if err != nil {
		return nil, fmt.Errorf("loading summarization model: %w", err)
	}

	fetcher := search.NewArxivFetcher(cfg.Search, logger)
	summarizer := summarize.NewSummarizer(model, cfg.Summarizer, logger, metrics)
	extractor := keywords.Extractor{TopN: cfg.Keywords.TopN}

	return &components{
		logger:    logger,
		registry:  reg,
		assistant: assistant.New(fetcher, summarizer, extractor, logger, metrics),
	}, nil
}
