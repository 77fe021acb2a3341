// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/pdiddy/research-assistant/internal/search"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// setDefaults registers every configuration key so that environment
// variables can override keys absent from the config file.
func setDefaults(v *viper.Viper) {
	v.SetDefault("search.endpoint", search.DefaultEndpoint)
	v.SetDefault("search.user_agent", "research-assistant/"+version)
	v.SetDefault("search.timeout", time.Duration(0))
	v.SetDefault("search.rate_per_second", 1.0/3.0)
	v.SetDefault("search.burst", 1)

	v.SetDefault("summarizer.preferred.provider", string(types.ProviderAnthropic))
	v.SetDefault("summarizer.preferred.model", "claude-3-5-haiku-latest")
	v.SetDefault("summarizer.preferred.base_url", "")
	v.SetDefault("summarizer.fallback.provider", string(types.ProviderLead))
	v.SetDefault("summarizer.fallback.model", "")
	v.SetDefault("summarizer.fallback.base_url", "")
	v.SetDefault("summarizer.min_length", 25)
	v.SetDefault("summarizer.max_length", 80)
	v.SetDefault("summarizer.truncate_chars", 200)

	v.SetDefault("keywords.top_n", 5)

	v.SetDefault("server.address", ":8501")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 120*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("ui.default_query", "Artificial Intelligence")
	v.SetDefault("ui.default_max_results", 10)
	v.SetDefault("ui.min_results", 5)
	v.SetDefault("ui.max_results", 20)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

// loadConfig decodes v into an AssistantConfig and checks the UI bounds.
func loadConfig(v *viper.Viper) (types.AssistantConfig, error) {
	var cfg types.AssistantConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	ui := cfg.UI
	if ui.MinResults > ui.MaxResults {
		return cfg, fmt.Errorf("ui.min_results %d exceeds ui.max_results %d", ui.MinResults, ui.MaxResults)
	}
	if ui.DefaultMaxResults < ui.MinResults || ui.DefaultMaxResults > ui.MaxResults {
		return cfg, fmt.Errorf("ui.default_max_results %d outside [%d, %d]", ui.DefaultMaxResults, ui.MinResults, ui.MaxResults)
	}
	return cfg, nil
}
