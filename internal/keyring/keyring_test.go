package keyring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestAPIKeyFromServiceName(t *testing.T) {
	tests := []struct {
		name    string
		want    APIKey
		wantErr bool
	}{
		{name: "google", want: Google},
		{name: "anthropic", want: Anthropic},
		{name: "openai", want: OpenAI},
		{name: "mistral", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := APIKeyFromServiceName(tt.name)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.name, got.DisplayName())
		})
	}
}

func TestSetAndLookup(t *testing.T) {
	keyring.MockInit()

	assert.False(t, IsSet(Google))
	assert.Empty(t, Lookup("google"))

	require.NoError(t, Set(Google, "g-secret"))

	assert.True(t, IsSet(Google))
	assert.Equal(t, "g-secret", Lookup("google"))
	assert.Empty(t, Lookup("anthropic"))
	assert.Empty(t, Lookup("unknown"))

	_, err := Get(OpenAI)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai")
}
