// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package observability provides the structured logger and Prometheus
// metrics used across research-assistant.
package observability

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/research-assistant/pkg/types"
)

// NewLogger creates a zerolog logger writing to w. Format "json" emits one
// JSON object per line; anything else uses the human-readable console writer.
// Unknown levels fall back to info.
func NewLogger(cfg types.LoggingConfig, w io.Writer) zerolog.Logger {
	if !strings.EqualFold(cfg.Format, "json") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}
