package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/alkime/devdiary/internal/article"
	"github.com/alkime/devdiary/internal/config"
	"github.com/alkime/devdiary/internal/keyring"
	"github.com/alkime/devdiary/internal/llm"
	"github.com/alkime/devdiary/internal/logger"
	"github.com/alkime/devdiary/internal/sanitize"
	"github.com/alkime/devdiary/internal/template"
)

// CLI defines the diary command structure.
type CLI struct {
	// Default command (runs when no subcommand given)
	Convert ConvertCmd `cmd:"" default:"withargs" help:"Convert a development diary into an article"`

	// Subcommands
	Sanitize SanitizeCmd `cmd:"" help:"Remove an enclosing code fence from a markdown file"`
	Config   ConfigCmd   `cmd:"" help:"Manage configuration"`
}

// ConvertCmd is the default command that runs the conversion pipeline.
type ConvertCmd struct {
	Source       string `arg:"" help:"Path to the diary file"`
	Destination  string `arg:"" help:"Path of the article to write"`
	Model        string `flag:"" default:"gemini-2.0-flash-001" help:"Model used to write the article"`
	Provider     string `flag:"" optional:"" help:"Model provider: google, anthropic or openai (inferred from --model when empty)"`
	Template     string `flag:"" default:"./templates/zenn_template.md" env:"DIARY_TEMPLATE_PATH" help:"Article template path"`
	Debug        bool   `flag:"" help:"Print resolved inputs and the generated article"`
	ProjectName  string `flag:"" optional:"" help:"Project name (overrides the diary filename)"`
	IssueNumber  string `flag:"" optional:"" help:"Issue number (overrides the diary serial)"`
	PrevArticle  string `flag:"" optional:"" help:"Slug of the previous article"`
	CycleArticle string `flag:"" optional:"" help:"URL of the article describing the development cycle"`
}

// writerFactory builds the model client; tests swap it for a fake.
type writerFactory func(llm.Settings) (llm.Writer, error)

// Run executes the convert command.
func (c *ConvertCmd) Run() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger.SetupLogger(os.Stdout, c.Debug, cfg.LogLevel)

	resolver, err := template.NewResolver(cfg.CIActionRoot(), cfg.ContainerRoot)
	if err != nil {
		return err
	}

	return c.convert(context.Background(), cfg, resolver, llm.New)
}

func (c *ConvertCmd) convert(
	ctx context.Context,
	cfg config.Config,
	resolver template.Resolver,
	newWriter writerFactory,
) error {
	provider, err := llm.ParseProvider(c.Provider)
	if err != nil {
		return err
	}
	if provider == "" {
		provider = llm.InferProvider(c.Model)
	}

	// Resolve API key: environment variable takes priority, fallback to keychain
	apiKey := cfg.APIKey(string(provider))
	if apiKey == "" {
		apiKey = keyring.Lookup(string(provider))
	}

	if apiKey == "" {
		return fmt.Errorf("missing %s API key: set %s or run 'diary config set-key %s <key>'",
			provider, config.APIKeyEnv(string(provider)), provider)
	}

	writer, err := newWriter(llm.Settings{
		Provider: provider,
		Model:    c.Model,
		APIKey:   apiKey,
	})
	if err != nil {
		return fmt.Errorf("failed to create model client: %w", err)
	}

	slog.Debug("model client ready", "provider", provider, "model", c.Model)

	converter := article.NewConverter(article.Options{
		Model:             c.Model,
		TemplatePath:      c.Template,
		Debug:             c.Debug,
		ProjectName:       c.ProjectName,
		IssueNumber:       c.IssueNumber,
		PrevArticleSlug:   c.PrevArticle,
		CycleArticleURL:   c.CycleArticle,
		RepositoryBaseURL: cfg.RepositoryBaseURL,
		ArticleBaseURL:    cfg.ArticleBaseURL,
	}, resolver, writer)

	return converter.Convert(ctx, c.Source, c.Destination)
}

// SanitizeCmd strips an enclosing code fence from a markdown file.
type SanitizeCmd struct {
	Input  string `arg:"" help:"Markdown file to sanitize"`
	Output string `short:"o" optional:"" help:"Output path (default: overwrite input)"`
	Debug  bool   `flag:"" help:"Enable debug logging"`
}

// Run executes the sanitize command.
func (c *SanitizeCmd) Run() error {
	logger.SetupLogger(os.Stdout, c.Debug, "info")

	return sanitize.NewChain().ProcessFile(c.Input, c.Output)
}

// ConfigCmd groups configuration-related subcommands.
type ConfigCmd struct {
	SetKey   SetKeyCmd   `cmd:"" help:"Store an API key in system keychain"`
	ListKeys ListKeysCmd `cmd:"" name:"list-keys" help:"Show which API keys are configured"`
}

// SetKeyCmd stores an API key in the system keychain.
type SetKeyCmd struct {
	Service string `arg:"" enum:"google,anthropic,openai" help:"Service name (google, anthropic or openai)"`
	Secret  string `arg:"" help:"API key value"`
}

// Run executes the set-key command.
func (c *SetKeyCmd) Run() error {
	if strings.TrimSpace(c.Secret) == "" {
		return errors.New("API key cannot be empty")
	}

	apiKey, err := keyring.APIKeyFromServiceName(c.Service)
	if err != nil {
		return fmt.Errorf("invalid service: %w", err)
	}

	if err := keyring.Set(apiKey, c.Secret); err != nil {
		return fmt.Errorf("failed to store API key: %w", err)
	}

	fmt.Printf("%s API key stored in keychain\n", c.Service)

	return nil
}

// ListKeysCmd shows which API keys are configured.
type ListKeysCmd struct{}

// Run executes the list-keys command.
//
//nolint:unparam // error return required by Kong interface
func (c *ListKeysCmd) Run() error {
	allSet := true

	for _, apiKey := range keyring.AllAPIKeys() {
		if keyring.IsSet(apiKey) {
			fmt.Printf("%s: configured\n", apiKey.DisplayName())
		} else {
			fmt.Printf("%s: not set\n", apiKey.DisplayName())
			allSet = false
		}
	}

	if !allSet {
		fmt.Println("\nRun 'diary config set-key <service> <key>' to configure.")
	}

	return nil
}

func main() {
	// Commands reconfigure the level once flags and environment are known
	//nolint:exhaustruct // Using default values for other HandlerOptions fields
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))

	cli := &CLI{} //nolint:exhaustruct // Kong fills in command fields
	ctx := kong.Parse(cli,
		kong.Name("diary"),
		kong.Description("Turn development diaries into publishable articles."),
		kong.UsageOnError(),
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
	os.Exit(0)
}
