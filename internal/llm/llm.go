// Package llm calls hosted language models to turn a prepared prompt into article text.
package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Provider identifies a hosted model API.
type Provider string

// Supported providers.
const (
	ProviderGoogle    Provider = "google"
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
)

// DefaultModel is the model used when none is given.
const DefaultModel = "gemini-2.0-flash-001"

// ErrMissingAPIKey is returned when a writer is built without a credential.
var ErrMissingAPIKey = errors.New("API key required")

// Writer turns a prompt into generated text.
type Writer interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GenerationConfig holds the sampling parameters sent with every request.
type GenerationConfig struct {
	Temperature     float64
	TopP            float64
	TopK            int
	MaxOutputTokens int
}

// DefaultGenerationConfig favors faithful rewriting over creativity.
var DefaultGenerationConfig = GenerationConfig{
	Temperature:     0.2,
	TopP:            0.8,
	TopK:            40,
	MaxOutputTokens: 4096,
}

// Settings configure a Writer.
type Settings struct {
	Provider Provider
	Model    string
	APIKey   string
	// BaseURL overrides the provider endpoint; empty uses the SDK default.
	BaseURL string
}

// New creates a Writer for the given settings.
// An empty provider is inferred from the model name.
func New(s Settings) (Writer, error) {
	if s.Model == "" {
		s.Model = DefaultModel
	}
	if s.Provider == "" {
		s.Provider = InferProvider(s.Model)
	}
	if s.APIKey == "" {
		return nil, fmt.Errorf("%w for provider %s", ErrMissingAPIKey, s.Provider)
	}

	switch s.Provider {
	case ProviderGoogle:
		return newGoogleWriter(s), nil
	case ProviderAnthropic:
		return newAnthropicWriter(s), nil
	case ProviderOpenAI:
		return newOpenAIWriter(s), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", s.Provider)
	}
}

// openAIPrefixes are model name prefixes served by OpenAI.
var openAIPrefixes = []string{"gpt-", "chatgpt-", "o1", "o3", "o4"}

// InferProvider guesses the provider from a model name, defaulting to Google.
func InferProvider(model string) Provider {
	m := strings.ToLower(model)

	switch {
	case strings.HasPrefix(m, "claude-"):
		return ProviderAnthropic
	case strings.HasPrefix(m, "gemini-"):
		return ProviderGoogle
	}

	for _, prefix := range openAIPrefixes {
		if strings.HasPrefix(m, prefix) {
			return ProviderOpenAI
		}
	}

	return ProviderGoogle
}

// ParseProvider validates a provider name. An empty name is allowed and means "infer".
func ParseProvider(name string) (Provider, error) {
	switch p := Provider(strings.ToLower(name)); p {
	case "", ProviderGoogle, ProviderAnthropic, ProviderOpenAI:
		return p, nil
	default:
		return "", fmt.Errorf("unknown provider %q: must be google, anthropic or openai", name)
	}
}
