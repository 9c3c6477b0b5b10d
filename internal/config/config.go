package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Provider names accepted by APIKey.
const (
	ProviderGoogle    = "google"
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// Config holds the process environment for a single run.
// It is loaded once at startup and passed by value; nothing mutates it afterwards.
type Config struct {
	// Credentials
	GoogleAPIKey    string `envconfig:"GOOGLE_API_KEY"`
	AnthropicAPIKey string `envconfig:"ANTHROPIC_API_KEY"`
	OpenAIAPIKey    string `envconfig:"OPENAI_API_KEY"`

	// Template path resolution hints
	GitHubActions bool   `envconfig:"GITHUB_ACTIONS" default:"false"`
	ActionPath    string `envconfig:"GITHUB_ACTION_PATH"`
	ContainerRoot string `envconfig:"DIARY_CONTAINER_ROOT" default:"/app"`

	// Link targets used when filling URL placeholders
	RepositoryBaseURL string `envconfig:"DIARY_REPOSITORY_BASE_URL" default:"https://github.com/centervil"`
	ArticleBaseURL    string `envconfig:"DIARY_ARTICLE_BASE_URL" default:"https://zenn.dev/centervil/articles"`

	// Logging settings
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadConfig loads configuration from .env file and environment variables.
func LoadConfig() (Config, error) {
	// Try to load .env file (optional outside local development)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, fmt.Errorf("failed to process environment variables: %w", err)
	}

	return config, nil
}

// APIKey returns the credential configured for the given provider.
func (c Config) APIKey(provider string) string {
	switch provider {
	case ProviderAnthropic:
		return c.AnthropicAPIKey
	case ProviderOpenAI:
		return c.OpenAIAPIKey
	default:
		return c.GoogleAPIKey
	}
}

// APIKeyEnv names the environment variable holding the provider's credential.
func APIKeyEnv(provider string) string {
	switch provider {
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	default:
		return "GOOGLE_API_KEY"
	}
}

// CIActionRoot returns the action checkout directory when running inside a CI action, or "".
func (c Config) CIActionRoot() string {
	if !c.GitHubActions {
		return ""
	}

	return c.ActionPath
}
