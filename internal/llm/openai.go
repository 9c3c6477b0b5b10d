package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// openAIWriter generates text with OpenAI chat completions.
// The API has no top-k parameter, so only temperature, top-p and max tokens are sent.
type openAIWriter struct {
	apiKey  string
	model   string
	baseURL string
	config  GenerationConfig
}

func newOpenAIWriter(s Settings) *openAIWriter {
	return &openAIWriter{
		apiKey:  s.APIKey,
		model:   s.Model,
		baseURL: s.BaseURL,
		config:  DefaultGenerationConfig,
	}
}

// Generate sends prompt as a single user message and returns the first choice.
func (w *openAIWriter) Generate(ctx context.Context, prompt string) (string, error) {
	opts := []option.RequestOption{
		option.WithAPIKey(w.apiKey),
		option.WithMaxRetries(0),
	}
	if w.baseURL != "" {
		opts = append(opts, option.WithBaseURL(w.baseURL))
	}

	client := openai.NewClient(opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(w.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature:         openai.Float(w.config.Temperature),
		TopP:                openai.Float(w.config.TopP),
		MaxCompletionTokens: openai.Int(int64(w.config.MaxOutputTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("failed to generate article via OpenAI API: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", errors.New("empty response from OpenAI API")
	}

	return resp.Choices[0].Message.Content, nil
}
