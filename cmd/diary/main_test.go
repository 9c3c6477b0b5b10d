package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alkime/devdiary/internal/config"
	"github.com/alkime/devdiary/internal/keyring"
	"github.com/alkime/devdiary/internal/llm"
	"github.com/alkime/devdiary/internal/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gokeyring "github.com/zalando/go-keyring"
)

type fakeWriter struct {
	result string
}

func (f fakeWriter) Generate(_ context.Context, _ string) (string, error) {
	return f.result, nil
}

// recordingFactory returns a factory that remembers the settings it was given.
func recordingFactory(got *llm.Settings, called *bool) writerFactory {
	return func(s llm.Settings) (llm.Writer, error) {
		*got = s
		*called = true
		return fakeWriter{result: "```markdown\n# Title\nbody\n```"}, nil
	}
}

func setup(t *testing.T) (ConvertCmd, template.Resolver) {
	t.Helper()
	gokeyring.MockInit()

	dir := t.TempDir()
	source := filepath.Join(dir, "2024-01-15-001-refactor-myproj.md")
	//nolint:gosec // Test file
	require.NoError(t, os.WriteFile(source, []byte("今日の作業\n"), 0o644))

	tmpl := filepath.Join(dir, "template.md")
	//nolint:gosec // Test file
	require.NoError(t, os.WriteFile(tmpl, []byte("## [テーマ名]\n"), 0o644))

	cmd := ConvertCmd{
		Source:      source,
		Destination: filepath.Join(dir, "out", "article.md"),
		Model:       llm.DefaultModel,
		Template:    tmpl,
	}

	return cmd, template.Resolver{}
}

func TestConvert_MissingCredential(t *testing.T) {
	cmd, resolver := setup(t)

	var got llm.Settings
	var called bool
	err := cmd.convert(context.Background(), config.Config{}, resolver, recordingFactory(&got, &called))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GOOGLE_API_KEY")
	assert.False(t, called)
	assert.NoFileExists(t, cmd.Destination)
	assert.NoDirExists(t, filepath.Dir(cmd.Destination))
}

func TestConvert_EnvironmentKey(t *testing.T) {
	cmd, resolver := setup(t)
	require.NoError(t, keyring.Set(keyring.Google, "from-keychain"))

	var got llm.Settings
	var called bool
	cfg := config.Config{GoogleAPIKey: "from-env"}
	require.NoError(t, cmd.convert(context.Background(), cfg, resolver, recordingFactory(&got, &called)))

	assert.Equal(t, "from-env", got.APIKey)
	assert.Equal(t, llm.ProviderGoogle, got.Provider)

	data, err := os.ReadFile(cmd.Destination)
	require.NoError(t, err)
	assert.Equal(t, "# Title\nbody", string(data))
}

func TestConvert_KeychainFallback(t *testing.T) {
	cmd, resolver := setup(t)
	cmd.Model = "claude-sonnet-4-5"
	require.NoError(t, keyring.Set(keyring.Anthropic, "from-keychain"))

	var got llm.Settings
	var called bool
	require.NoError(t, cmd.convert(context.Background(), config.Config{}, resolver, recordingFactory(&got, &called)))

	assert.Equal(t, llm.ProviderAnthropic, got.Provider)
	assert.Equal(t, "from-keychain", got.APIKey)
	assert.Equal(t, "claude-sonnet-4-5", got.Model)
}

func TestConvert_ExplicitProvider(t *testing.T) {
	cmd, resolver := setup(t)
	cmd.Model = "my-finetune"
	cmd.Provider = "openai"

	var got llm.Settings
	var called bool
	cfg := config.Config{OpenAIAPIKey: "sk-test"}
	require.NoError(t, cmd.convert(context.Background(), cfg, resolver, recordingFactory(&got, &called)))

	assert.Equal(t, llm.ProviderOpenAI, got.Provider)
	assert.Equal(t, "sk-test", got.APIKey)
}

func TestConvert_UnknownProvider(t *testing.T) {
	cmd, resolver := setup(t)
	cmd.Provider = "mistral"

	var got llm.Settings
	var called bool
	err := cmd.convert(context.Background(), config.Config{GoogleAPIKey: "k"}, resolver,
		recordingFactory(&got, &called))

	require.Error(t, err)
	assert.False(t, called)
	assert.NoFileExists(t, cmd.Destination)
}
