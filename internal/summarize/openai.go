// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/pdiddy/research-assistant/pkg/types"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIModel summarizes with the Chat Completions API.
type OpenAIModel struct {
	client *openai.Client
	model  string
}

// NewOpenAIModel builds a client for spec with SDK retries disabled.
func NewOpenAIModel(spec types.ModelSpec, apiKey string) (*OpenAIModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai: %w", ErrMissingAPIKey)
	}
	name := spec.Model
	if name == "" {
		name = defaultOpenAIModel
	}

	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}
	if spec.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(spec.BaseURL))
	}
	client := openai.NewClient(opts...)

	return &OpenAIModel{client: &client, model: name}, nil
}

// Name returns "openai/<model>".
func (m *OpenAIModel) Name() string { return "openai/" + m.model }

// Summarize sends one temperature-0 completion request.
func (m *OpenAIModel) Summarize(ctx context.Context, text string, b Bounds) (string, error) {
	prompt, err := renderPrompt(text, b)
	if err != nil {
		return "", err
	}

	resp, err := m.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: m.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		Temperature:         openai.Float(0),
		MaxCompletionTokens: openai.Int(maxTokens(b)),
	})
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai returned no choices: %w", ErrDegenerate)
	}

	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return "", fmt.Errorf("openai returned no text: %w", ErrDegenerate)
	}
	return out, nil
}
