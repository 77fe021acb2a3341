// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/pdiddy/research-assistant/pkg/types"
)

const defaultAnthropicModel = "claude-3-5-haiku-latest"

// AnthropicModel summarizes with the Claude Messages API.
type AnthropicModel struct {
	client *anthropic.Client
	model  anthropic.Model
}

// NewAnthropicModel builds a client for spec. SDK retries are disabled so
// each summary is a single request.
func NewAnthropicModel(spec types.ModelSpec, apiKey string) (*AnthropicModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic: %w", ErrMissingAPIKey)
	}
	name := spec.Model
	if name == "" {
		name = defaultAnthropicModel
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if spec.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(spec.BaseURL))
	}
	client := anthropic.NewClient(opts...)

	return &AnthropicModel{client: &client, model: anthropic.Model(name)}, nil
}

// Name returns "anthropic/<model>".
func (m *AnthropicModel) Name() string { return "anthropic/" + string(m.model) }

// Summarize sends one non-sampling request and returns the text blocks of
// the reply.
func (m *AnthropicModel) Summarize(ctx context.Context, text string, b Bounds) (string, error) {
	prompt, err := renderPrompt(text, b)
	if err != nil {
		return "", err
	}

	resp, err := m.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       m.model,
		MaxTokens:   maxTokens(b),
		Temperature: anthropic.Float(0),
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic api error: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.AsText().Text)
		}
	}
	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", fmt.Errorf("anthropic returned no text: %w", ErrDegenerate)
	}
	return out, nil
}
