// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"bytes"
	"fmt"
	"text/template"
)

const systemPrompt = "You summarize research paper abstracts. Reply with the summary text only."

// summaryPromptTmpl is the user message sent to hosted models for each abstract.
var summaryPromptTmpl = template.Must(template.New("summary").Parse(`Summarize the following abstract in plain prose between {{.MinLength}} and {{.MaxLength}} words.
Do not add a title, bullet points, or commentary.

Abstract:
{{.Text}}
`))

func renderPrompt(text string, b Bounds) (string, error) {
	var buf bytes.Buffer
	err := summaryPromptTmpl.Execute(&buf, struct {
		Text      string
		MinLength int
		MaxLength int
	}{text, b.MinLength, b.MaxLength})
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}
	return buf.String(), nil
}

// maxTokens sizes the completion budget for a word bound; words average
// more than one token.
func maxTokens(b Bounds) int64 {
	return int64(b.MaxLength * 2)
}
