// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"context"
	"fmt"
	"strings"
)

// LeadModel is a local extractive summarizer: it keeps the leading
// sentences of the text until the lower bound is reached, never exceeding
// the upper bound. It needs no network and is fully deterministic.
type LeadModel struct{}

// Name returns "lead".
func (LeadModel) Name() string { return "lead" }

// Summarize returns the lead sentences of text.
func (LeadModel) Summarize(_ context.Context, text string, b Bounds) (string, error) {
	sentences := splitSentences(text)
	if len(sentences) == 0 {
		return "", fmt.Errorf("no sentences: %w", ErrDegenerate)
	}

	var words []string
	for _, s := range sentences {
		sw := strings.Fields(s)
		if len(words)+len(sw) > b.MaxLength {
			if len(words) < b.MinLength {
				words = append(words, sw[:b.MaxLength-len(words)]...)
			}
			break
		}
		words = append(words, sw...)
		if len(words) >= b.MinLength {
			break
		}
	}
	return strings.Join(words, " "), nil
}

// splitSentences breaks text after '.', '!' or '?' followed by whitespace.
func splitSentences(text string) []string {
	fields := strings.Fields(text)
	var sentences []string
	var cur []string
	for _, f := range fields {
		cur = append(cur, f)
		if strings.HasSuffix(f, ".") || strings.HasSuffix(f, "!") || strings.HasSuffix(f, "?") {
			sentences = append(sentences, strings.Join(cur, " "))
			cur = nil
		}
	}
	if len(cur) > 0 {
		sentences = append(sentences, strings.Join(cur, " "))
	}
	return sentences
}
