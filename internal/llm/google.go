package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/alkime/devdiary/pkg/collections"
	"google.golang.org/genai"
)

// harmCategories are blocked at medium probability and above.
var harmCategories = []genai.HarmCategory{
	genai.HarmCategoryHarassment,
	genai.HarmCategoryHateSpeech,
	genai.HarmCategorySexuallyExplicit,
	genai.HarmCategoryDangerousContent,
}

// SafetySettings returns the content-safety thresholds sent to Gemini.
func SafetySettings() []*genai.SafetySetting {
	return collections.Apply(harmCategories, func(c genai.HarmCategory) *genai.SafetySetting {
		return &genai.SafetySetting{
			Category:  c,
			Threshold: genai.HarmBlockThresholdBlockMediumAndAbove,
		}
	})
}

// googleWriter generates text with the Gemini API.
type googleWriter struct {
	apiKey  string
	model   string
	baseURL string
	config  GenerationConfig
}

func newGoogleWriter(s Settings) *googleWriter {
	return &googleWriter{
		apiKey:  s.APIKey,
		model:   s.Model,
		baseURL: s.BaseURL,
		config:  DefaultGenerationConfig,
	}
}

func (w *googleWriter) contentConfig() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(w.config.Temperature)),
		TopP:            genai.Ptr(float32(w.config.TopP)),
		TopK:            genai.Ptr(float32(w.config.TopK)),
		MaxOutputTokens: int32(w.config.MaxOutputTokens), //nolint:gosec // Fixed small value
		SafetySettings:  SafetySettings(),
	}
}

// Generate sends prompt to Gemini and returns the response text.
func (w *googleWriter) Generate(ctx context.Context, prompt string) (string, error) {
	//nolint:exhaustruct // Only API key, backend and endpoint are relevant
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      w.apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: w.baseURL},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, w.model, genai.Text(prompt), w.contentConfig())
	if err != nil {
		return "", fmt.Errorf("failed to generate article via Gemini API: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return "", errors.New("empty response from Gemini API")
	}

	return text, nil
}
