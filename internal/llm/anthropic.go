package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

// anthropicWriter generates text with the Anthropic Messages API.
type anthropicWriter struct {
	apiKey  string
	model   anthropic.Model
	baseURL string
	config  GenerationConfig
}

func newAnthropicWriter(s Settings) *anthropicWriter {
	return &anthropicWriter{
		apiKey:  s.APIKey,
		model:   anthropic.Model(s.Model),
		baseURL: s.BaseURL,
		config:  DefaultGenerationConfig,
	}
}

// Generate sends prompt as a single user message and returns the concatenated text blocks.
func (w *anthropicWriter) Generate(ctx context.Context, prompt string) (string, error) {
	opts := []option.RequestOption{
		option.WithAPIKey(w.apiKey),
		option.WithMaxRetries(0),
	}
	if w.baseURL != "" {
		opts = append(opts, option.WithBaseURL(w.baseURL))
	}

	client := anthropic.NewClient(opts...)

	params := anthropic.MessageNewParams{
		Model:       w.model,
		MaxTokens:   int64(w.config.MaxOutputTokens),
		Temperature: anthropic.Float(w.config.Temperature),
		TopP:        anthropic.Float(w.config.TopP),
		TopK:        anthropic.Int(int64(w.config.TopK)),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}

	resp, err := client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to generate article via Anthropic API: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if textBlock, ok := block.AsAny().(anthropic.TextBlock); ok {
			sb.WriteString(textBlock.Text)
		}
	}

	if sb.Len() == 0 {
		return "", errors.New("empty response from Anthropic API")
	}

	return sb.String(), nil
}
