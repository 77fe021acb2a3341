package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "research-assistant/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// SearchConfig holds settings for the arXiv fetch stage.
type SearchConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// Endpoint is the arXiv query endpoint without a query string.
	Endpoint string `json:"endpoint" yaml:"endpoint" mapstructure:"endpoint"`

	// RatePerSecond caps outgoing requests. Zero disables the limiter.
	RatePerSecond float64 `json:"rate_per_second" yaml:"rate_per_second" mapstructure:"rate_per_second"`

	// Burst is the limiter burst size (default 1).
	Burst int `json:"burst" yaml:"burst" mapstructure:"burst"`
}

// Provider names a summarization backend.
type Provider string

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
	ProviderLead      Provider = "lead"
)

// ModelSpec selects one summarization model.
type ModelSpec struct {
	// Provider is one of anthropic, openai or lead.
	Provider Provider `json:"provider" yaml:"provider" mapstructure:"provider"`

	// Model is the provider's model identifier. Ignored by lead.
	Model string `json:"model" yaml:"model" mapstructure:"model"`

	// BaseURL overrides the provider API endpoint.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty" mapstructure:"base_url"`
}

// SummarizerConfig holds settings for the summarization stage.
type SummarizerConfig struct {
	// Preferred is loaded first at startup.
	Preferred ModelSpec `json:"preferred" yaml:"preferred" mapstructure:"preferred"`

	// Fallback is loaded when Preferred cannot be constructed.
	Fallback ModelSpec `json:"fallback" yaml:"fallback" mapstructure:"fallback"`

	// MinLength and MaxLength bound the summary length in words (default 25, 80).
	MinLength int `json:"min_length" yaml:"min_length" mapstructure:"min_length"`
	MaxLength int `json:"max_length" yaml:"max_length" mapstructure:"max_length"`

	// TruncateChars is the prefix length used when summarization fails (default 200).
	TruncateChars int `json:"truncate_chars" yaml:"truncate_chars" mapstructure:"truncate_chars"`
}

// KeywordConfig holds settings for keyword extraction.
type KeywordConfig struct {
	// TopN is the maximum number of keywords per paper (default 5).
	TopN int `json:"top_n" yaml:"top_n" mapstructure:"top_n"`
}

// ServerConfig holds settings for the web page server.
type ServerConfig struct {
	Address         string        `json:"address" yaml:"address" mapstructure:"address"`
	ReadTimeout     time.Duration `json:"read_timeout" yaml:"read_timeout" mapstructure:"read_timeout"`
	IdleTimeout     time.Duration `json:"idle_timeout" yaml:"idle_timeout" mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" mapstructure:"shutdown_timeout"`
}

// UIConfig holds the defaults and bounds of the page controls.
type UIConfig struct {
	DefaultQuery      string `json:"default_query" yaml:"default_query" mapstructure:"default_query"`
	DefaultMaxResults int    `json:"default_max_results" yaml:"default_max_results" mapstructure:"default_max_results"`
	MinResults        int    `json:"min_results" yaml:"min_results" mapstructure:"min_results"`
	MaxResults        int    `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is json or console.
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}

// AssistantConfig groups all stage configurations.
type AssistantConfig struct {
	Search     SearchConfig     `json:"search" yaml:"search" mapstructure:"search"`
	Summarizer SummarizerConfig `json:"summarizer" yaml:"summarizer" mapstructure:"summarizer"`
	Keywords   KeywordConfig    `json:"keywords" yaml:"keywords" mapstructure:"keywords"`
	Server     ServerConfig     `json:"server" yaml:"server" mapstructure:"server"`
	UI         UIConfig         `json:"ui" yaml:"ui" mapstructure:"ui"`
	Logging    LoggingConfig    `json:"logging" yaml:"logging" mapstructure:"logging"`
}
