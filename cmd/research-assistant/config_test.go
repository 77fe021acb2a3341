// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-assistant/pkg/types"
)

func TestLoadConfig_Defaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	cfg, err := loadConfig(v)
	require.NoError(t, err)

	assert.Equal(t, "http://export.arxiv.org/api/query", cfg.Search.Endpoint)
	assert.Equal(t, "research-assistant/dev", cfg.Search.UserAgent)
	assert.Zero(t, cfg.Search.Timeout)
	assert.InDelta(t, 0.333, cfg.Search.RatePerSecond, 0.001)
	assert.Equal(t, 1, cfg.Search.Burst)

	assert.Equal(t, types.ProviderAnthropic, cfg.Summarizer.Preferred.Provider)
	assert.Equal(t, "claude-3-5-haiku-latest", cfg.Summarizer.Preferred.Model)
	assert.Equal(t, types.ProviderLead, cfg.Summarizer.Fallback.Provider)
	assert.Equal(t, 25, cfg.Summarizer.MinLength)
	assert.Equal(t, 80, cfg.Summarizer.MaxLength)
	assert.Equal(t, 200, cfg.Summarizer.TruncateChars)

	assert.Equal(t, 5, cfg.Keywords.TopN)
	assert.Equal(t, ":8501", cfg.Server.Address)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, types.UIConfig{
		DefaultQuery:      "Artificial Intelligence",
		DefaultMaxResults: 10,
		MinResults:        5,
		MaxResults:        20,
	}, cfg.UI)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "research-assistant.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
search:
  timeout: 15s
summarizer:
  preferred:
    provider: openai
    model: gpt-4o-mini
keywords:
  top_n: 3
`), 0o644))

	t.Setenv("RESEARCH_ASSISTANT_SERVER_ADDRESS", "127.0.0.1:9999")

	v := viper.New()
	v.SetConfigFile(path)
	setDefaults(v)
	v.SetEnvPrefix("RESEARCH_ASSISTANT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	require.NoError(t, v.ReadInConfig())

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.Search.Timeout)
	assert.Equal(t, types.ProviderOpenAI, cfg.Summarizer.Preferred.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.Summarizer.Preferred.Model)
	assert.Equal(t, 3, cfg.Keywords.TopN)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Address)
}

func TestLoadConfig_InvalidUIBounds(t *testing.T) {
	tests := []struct {
		name string
		set  map[string]int
	}{
		{"min above max", map[string]int{"ui.min_results": 30}},
		{"default below min", map[string]int{"ui.default_max_results": 2}},
		{"default above max", map[string]int{"ui.default_max_results": 21}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			setDefaults(v)
			for k, val := range tt.set {
				v.Set(k, val)
			}
			_, err := loadConfig(v)
			assert.Error(t, err)
		})
	}
}

func TestFormatter(t *testing.T) {
	d := types.Digest{Query: "q", Rows: []types.DigestRow{{Title: "T", Link: "http://arxiv.org/abs/1"}}}

	for _, name := range []string{"table", "json", "yaml"} {
		t.Run(name, func(t *testing.T) {
			write, err := formatter(name)
			require.NoError(t, err)
			var buf bytes.Buffer
			require.NoError(t, write(d, &buf))
			assert.Contains(t, buf.String(), "http://arxiv.org/abs/1")
		})
	}

	_, err := formatter("xml")
	assert.Error(t, err)
}
