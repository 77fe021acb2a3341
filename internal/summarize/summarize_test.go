// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package summarize

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/research-assistant/internal/observability"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// --- mock model ---

type mockModel struct {
	out   string
	err   error
	calls int
}

func (m *mockModel) Name() string { return "mock" }

func (m *mockModel) Summarize(_ context.Context, _ string, _ Bounds) (string, error) {
	m.calls++
	return m.out, m.err
}

func words(n int) string {
	w := make([]string, n)
	for i := range w {
		w[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(w, " ")
}

var longAbstract = strings.Repeat("Transformers model long range dependencies with attention. ", 10)

func newTestSummarizer(m Model) (*Summarizer, *observability.Metrics) {
	metrics := observability.NewMetrics(prometheus.NewRegistry())
	return NewSummarizer(m, types.SummarizerConfig{}, zerolog.Nop(), metrics), metrics
}

// --- Summarizer ---

func TestSummarize_WithinBounds(t *testing.T) {
	s, metrics := newTestSummarizer(&mockModel{out: words(40)})

	got := s.Summarize(context.Background(), longAbstract)
	assert.Equal(t, words(40), got)
	assert.Zero(t, testutil.ToFloat64(metrics.SummarizerFallbacks))
}

func TestSummarize_CutsToMaxLength(t *testing.T) {
	s, _ := newTestSummarizer(&mockModel{out: words(120)})

	got := s.Summarize(context.Background(), longAbstract)
	assert.Len(t, strings.Fields(got), 80)
	assert.Equal(t, words(80), got)
}

func TestSummarize_FallbackOnError(t *testing.T) {
	s, metrics := newTestSummarizer(&mockModel{err: errors.New("model exploded")})

	got := s.Summarize(context.Background(), longAbstract)
	assert.Equal(t, string([]rune(longAbstract)[:200])+"...", got)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.SummarizerFallbacks))
}

func TestSummarize_FallbackOnDegenerateOutput(t *testing.T) {
	s, _ := newTestSummarizer(&mockModel{out: words(3)})

	got := s.Summarize(context.Background(), longAbstract)
	assert.Equal(t, Truncate(longAbstract, 200), got)
}

func TestSummarize_EmptyInputSkipsModel(t *testing.T) {
	m := &mockModel{out: words(40)}
	s, _ := newTestSummarizer(m)

	assert.Equal(t, "...", s.Summarize(context.Background(), ""))
	assert.Equal(t, "   ...", s.Summarize(context.Background(), "   "))
	assert.Zero(t, m.calls)
}

func TestSummarize_Idempotent(t *testing.T) {
	s, _ := newTestSummarizer(LeadModel{})

	first := s.Summarize(context.Background(), longAbstract)
	second := s.Summarize(context.Background(), longAbstract)
	assert.Equal(t, first, second)
}

func TestNewSummarizer_Defaults(t *testing.T) {
	s := NewSummarizer(LeadModel{}, types.SummarizerConfig{}, zerolog.Nop(), nil)
	assert.Equal(t, Bounds{MinLength: 25, MaxLength: 80}, s.Bounds())
	assert.Equal(t, "lead", s.ModelName())

	s = NewSummarizer(LeadModel{}, types.SummarizerConfig{MinLength: 50, MaxLength: 10}, zerolog.Nop(), nil)
	assert.Equal(t, Bounds{MinLength: 10, MaxLength: 10}, s.Bounds())
}

func TestSummarize_NilMetrics(t *testing.T) {
	s := NewSummarizer(&mockModel{err: errors.New("x")}, types.SummarizerConfig{}, zerolog.Nop(), nil)
	assert.Equal(t, "abc...", s.Summarize(context.Background(), "abc"))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		text string
		n    int
		want string
	}{
		{"short", "abc", 200, "abc..."},
		{"exact", "abcd", 4, "abcd..."},
		{"long", "abcdef", 3, "abc..."},
		{"runes", "ééééé", 2, "éé..."},
		{"empty", "", 200, "..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.text, tt.n))
		})
	}
}

// --- lead model ---

func TestLeadModel(t *testing.T) {
	b := Bounds{MinLength: 5, MaxLength: 12}
	text := "One two three. Four five six seven. Eight nine ten eleven twelve thirteen."

	got, err := LeadModel{}.Summarize(context.Background(), text, b)
	require.NoError(t, err)
	assert.Equal(t, "One two three. Four five six seven.", got)
}

func TestLeadModel_LongFirstSentence(t *testing.T) {
	got, err := LeadModel{}.Summarize(context.Background(), words(100)+".", Bounds{MinLength: 5, MaxLength: 10})
	require.NoError(t, err)
	assert.Equal(t, words(10), got)
}

func TestLeadModel_ShortLeadThenLongSentence(t *testing.T) {
	text := "We study transformers here. " + strings.Repeat("very ", 90) + "long sentence."
	b := Bounds{MinLength: 25, MaxLength: 80}

	got, err := LeadModel{}.Summarize(context.Background(), text, b)
	require.NoError(t, err)
	n := len(strings.Fields(got))
	assert.GreaterOrEqual(t, n, b.MinLength)
	assert.LessOrEqual(t, n, b.MaxLength)
	assert.True(t, strings.HasPrefix(got, "We study transformers here. very very"))

	s, metrics := newTestSummarizer(LeadModel{})
	summary := s.Summarize(context.Background(), text)
	assert.NotEqual(t, Truncate(text, 200), summary)
	assert.Equal(t, got, summary)
	assert.Zero(t, testutil.ToFloat64(metrics.SummarizerFallbacks))
}

func TestLeadModel_Empty(t *testing.T) {
	_, err := LeadModel{}.Summarize(context.Background(), " ", Bounds{MinLength: 1, MaxLength: 2})
	assert.True(t, errors.Is(err, ErrDegenerate))
}

// --- loading ---

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		spec    types.ModelSpec
		keys    map[types.Provider]string
		want    string
		wantErr error
	}{
		{"lead", types.ModelSpec{Provider: types.ProviderLead}, nil, "lead", nil},
		{"anthropic", types.ModelSpec{Provider: types.ProviderAnthropic, Model: "claude-x"},
			map[types.Provider]string{types.ProviderAnthropic: "k"}, "anthropic/claude-x", nil},
		{"openai default model", types.ModelSpec{Provider: types.ProviderOpenAI},
			map[types.Provider]string{types.ProviderOpenAI: "k"}, "openai/gpt-4o-mini", nil},
		{"anthropic without key", types.ModelSpec{Provider: types.ProviderAnthropic}, nil, "", ErrMissingAPIKey},
		{"openai without key", types.ModelSpec{Provider: types.ProviderOpenAI}, nil, "", ErrMissingAPIKey},
		{"unknown", types.ModelSpec{Provider: "bart"}, nil, "", ErrUnknownProvider},
		{"empty", types.ModelSpec{}, nil, "", ErrUnknownProvider},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.spec, tt.keys)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "err = %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Name())
		})
	}
}

func TestLoad_PreferredThenFallback(t *testing.T) {
	cfg := types.SummarizerConfig{
		Preferred: types.ModelSpec{Provider: types.ProviderAnthropic},
		Fallback:  types.ModelSpec{Provider: types.ProviderLead},
	}

	m, err := Load(cfg, map[types.Provider]string{types.ProviderAnthropic: "key"}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "anthropic/claude-3-5-haiku-latest", m.Name())

	m, err = Load(cfg, nil, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "lead", m.Name())
}

func TestLoad_BothFail(t *testing.T) {
	cfg := types.SummarizerConfig{
		Preferred: types.ModelSpec{Provider: types.ProviderAnthropic},
		Fallback:  types.ModelSpec{Provider: types.ProviderOpenAI},
	}
	_, err := Load(cfg, nil, zerolog.Nop())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMissingAPIKey))
	assert.Contains(t, err.Error(), "preferred failed")
}

// --- hosted providers ---

func TestAnthropicModel_Summarize(t *testing.T) {
	var body map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &body))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"msg_1","type":"message","role":"assistant","model":"claude-x",
			"content":[{"type":"text","text":"  A concise summary.  "}],
			"stop_reason":"end_turn","usage":{"input_tokens":10,"output_tokens":5}}`)
	}))
	defer ts.Close()

	m, err := NewAnthropicModel(types.ModelSpec{Provider: types.ProviderAnthropic, Model: "claude-x", BaseURL: ts.URL}, "test-key")
	require.NoError(t, err)

	got, err := m.Summarize(context.Background(), "An abstract.", Bounds{MinLength: 25, MaxLength: 80})
	require.NoError(t, err)
	assert.Equal(t, "A concise summary.", got)

	assert.Equal(t, "claude-x", body["model"])
	assert.EqualValues(t, 160, body["max_tokens"])
	assert.EqualValues(t, 0, body["temperature"])
}

func TestAnthropicModel_APIError(t *testing.T) {
	var calls int
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"type":"error","error":{"type":"api_error","message":"boom"}}`)
	}))
	defer ts.Close()

	m, err := NewAnthropicModel(types.ModelSpec{BaseURL: ts.URL}, "k")
	require.NoError(t, err)

	_, err = m.Summarize(context.Background(), "An abstract.", Bounds{MinLength: 1, MaxLength: 10})
	require.Error(t, err)
	assert.Equal(t, 1, calls, "retries must be disabled")
}

func TestOpenAIModel_Summarize(t *testing.T) {
	var body map[string]any
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"), r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		data, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(data, &body))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"c1","object":"chat.completion","created":1,"model":"gpt-x",
			"choices":[{"index":0,"message":{"role":"assistant","content":"An OpenAI summary."},"finish_reason":"stop"}]}`)
	}))
	defer ts.Close()

	m, err := NewOpenAIModel(types.ModelSpec{Model: "gpt-x", BaseURL: ts.URL}, "test-key")
	require.NoError(t, err)

	got, err := m.Summarize(context.Background(), "An abstract.", Bounds{MinLength: 25, MaxLength: 80})
	require.NoError(t, err)
	assert.Equal(t, "An OpenAI summary.", got)
	assert.Equal(t, "gpt-x", body["model"])
	assert.EqualValues(t, 0, body["temperature"])
}

func TestOpenAIModel_NoChoices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id":"c1","object":"chat.completion","created":1,"model":"gpt-x","choices":[]}`)
	}))
	defer ts.Close()

	m, err := NewOpenAIModel(types.ModelSpec{BaseURL: ts.URL}, "k")
	require.NoError(t, err)

	_, err = m.Summarize(context.Background(), "An abstract.", Bounds{MinLength: 1, MaxLength: 10})
	assert.True(t, errors.Is(err, ErrDegenerate))
}

func TestRenderPrompt(t *testing.T) {
	p, err := renderPrompt("The abstract body.", Bounds{MinLength: 25, MaxLength: 80})
	require.NoError(t, err)
	assert.Contains(t, p, "between 25 and 80 words")
	assert.Contains(t, p, "The abstract body.")
}
