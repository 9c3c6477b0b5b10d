// Package keyring stores model API keys in the system keychain.
package keyring

import (
	"fmt"

	"github.com/zalando/go-keyring"
)

const serviceName = "devdiary"

// APIKey represents a named API key stored in the keychain.
type APIKey string

const (
	// Google is the keychain entry for the Gemini API key.
	Google APIKey = "google-api-key"
	// Anthropic is the keychain entry for the Anthropic API key.
	Anthropic APIKey = "anthropic-api-key"
	// OpenAI is the keychain entry for the OpenAI API key.
	OpenAI APIKey = "openai-api-key"
)

// AllAPIKeys returns all known API key types for iteration.
func AllAPIKeys() []APIKey {
	return []APIKey{Google, Anthropic, OpenAI}
}

// DisplayName returns the provider name for the API key.
func (k APIKey) DisplayName() string {
	switch k {
	case Google:
		return "google"
	case Anthropic:
		return "anthropic"
	case OpenAI:
		return "openai"
	default:
		return string(k)
	}
}

// Get retrieves an API key value from the system keychain.
func Get(apiKey APIKey) (string, error) {
	value, err := keyring.Get(serviceName, string(apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to get %s from keychain: %w", apiKey.DisplayName(), err)
	}

	return value, nil
}

// Set stores an API key value in the system keychain.
func Set(apiKey APIKey, value string) error {
	if err := keyring.Set(serviceName, string(apiKey), value); err != nil {
		return fmt.Errorf("failed to set %s in keychain: %w", apiKey.DisplayName(), err)
	}

	return nil
}

// IsSet checks if an API key exists in the keychain.
func IsSet(apiKey APIKey) bool {
	_, err := keyring.Get(serviceName, string(apiKey))

	return err == nil
}

// APIKeyFromServiceName maps a provider name (e.g., "google") to an APIKey.
func APIKeyFromServiceName(name string) (APIKey, error) {
	for _, k := range AllAPIKeys() {
		if k.DisplayName() == name {
			return k, nil
		}
	}

	return "", fmt.Errorf("unknown service: %s", name)
}

// Lookup returns the stored key for a provider, or "" when none is stored.
func Lookup(provider string) string {
	apiKey, err := APIKeyFromServiceName(provider)
	if err != nil {
		return ""
	}

	value, err := Get(apiKey)
	if err != nil {
		return ""
	}

	return value
}
