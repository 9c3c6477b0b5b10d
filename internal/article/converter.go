// Package article turns a development diary into a publication-ready article.
package article

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alkime/devdiary/internal/diary"
	"github.com/alkime/devdiary/internal/llm"
	"github.com/alkime/devdiary/internal/placeholder"
	"github.com/alkime/devdiary/internal/prompt"
	"github.com/alkime/devdiary/internal/sanitize"
	"github.com/alkime/devdiary/internal/style"
	"github.com/alkime/devdiary/internal/template"
	"github.com/alkime/devdiary/internal/workdir"
)

var (
	// ErrReadDiary is returned when the diary source cannot be read.
	ErrReadDiary = errors.New("failed to read diary")
	// ErrGeneration wraps any failure of the model call.
	ErrGeneration = errors.New("article generation failed")
	// ErrWriteArticle is returned when the article cannot be saved.
	ErrWriteArticle = errors.New("failed to save article")
)

// Options are the per-run settings. They are fixed once the Converter is built.
type Options struct {
	Model        string
	TemplatePath string
	Debug        bool

	// Overrides for values otherwise taken from the diary filename.
	ProjectName string
	IssueNumber string

	PrevArticleSlug string
	CycleArticleURL string

	RepositoryBaseURL string
	ArticleBaseURL    string
}

// Converter turns one diary file into one article file.
type Converter struct {
	opts     Options
	resolver template.Resolver
	writer   llm.Writer
	chain    *sanitize.Chain
	out      io.Writer
	now      func() time.Time
}

// Option customizes a Converter.
type Option func(*Converter)

// WithClock overrides the clock used when the filename carries no date.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) {
		c.now = now
	}
}

// WithOutput sets where debug echo and the completion line are printed.
func WithOutput(w io.Writer) Option {
	return func(c *Converter) {
		c.out = w
	}
}

// NewConverter creates a converter. The writer is the only collaborator that leaves the process.
func NewConverter(opts Options, resolver template.Resolver, writer llm.Writer, options ...Option) *Converter {
	c := &Converter{
		opts:     opts,
		resolver: resolver,
		writer:   writer,
		chain:    sanitize.NewChain(),
		out:      os.Stdout,
		now:      time.Now,
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

// Convert reads source, generates the article and writes it to destination.
// Nothing is written unless the model call succeeds.
func (c *Converter) Convert(ctx context.Context, source, destination string) error {
	diaryText, err := os.ReadFile(source)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrReadDiary, source, err)
	}

	tmpl, err := c.resolver.Load(c.opts.TemplatePath)
	if err != nil {
		return err
	}

	meta := diary.ParseFilename(source, c.now())
	values := c.values(meta)

	slog.Debug("resolved inputs",
		"source", source,
		"destination", destination,
		"template", tmpl.Path,
		"templateTitle", tmpl.Title(),
	)
	slog.Debug("diary metadata",
		"date", meta.Date,
		"dateFromName", meta.DateFromName,
		"serial", meta.Serial,
		"theme", meta.Theme,
		"project", meta.Project,
	)

	engine := values.Engine()
	slog.Debug("placeholder rules", "order", strings.Join(engine.Rules(), ","))

	prepared := engine.Apply(tmpl.Raw)
	fullPrompt := prompt.Assemble(prepared, string(diaryText))

	if prompt.Instructions(prepared) == "" {
		slog.Debug("template has no instruction block", "template", tmpl.Path)
	}

	if c.opts.Debug {
		fmt.Fprint(c.out, style.Block("Template structure: "+tmpl.Path, prompt.Structure(prepared)))
	}

	slog.Info("Generating article", "model", c.opts.Model, "promptBytes", len(fullPrompt))

	raw, err := c.writer.Generate(ctx, fullPrompt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	article, changed := c.chain.Process(raw)
	if changed {
		slog.Debug("removed enclosing code fence from model output")
	}

	if err := workdir.Write(destination, article); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteArticle, err)
	}

	// The header is parsed after substitution so its title carries the run values.
	summary := Summarize(article, template.Parse(tmpl.Path, prepared).Title())
	slog.Info("Article saved", "path", destination, "title", summary.Title, "headings", summary.Headings)

	if c.opts.Debug {
		fmt.Fprint(c.out, style.Block("Article: "+destination, article))
		fmt.Fprintln(c.out, style.Saved(destination))
	}

	return nil
}

// values merges filename metadata with the run overrides.
func (c *Converter) values(meta diary.Metadata) placeholder.Values {
	project := meta.Project
	if c.opts.ProjectName != "" {
		project = c.opts.ProjectName
	}

	serial := meta.Serial
	if c.opts.IssueNumber != "" {
		serial = c.opts.IssueNumber
	}

	v := placeholder.Values{
		Model:           c.opts.Model,
		Theme:           meta.ThemeTitle(),
		Serial:          serial,
		Project:         project,
		Repository:      project,
		CycleArticleURL: c.opts.CycleArticleURL,
		PrevArticleSlug: c.opts.PrevArticleSlug,
	}

	if c.opts.RepositoryBaseURL != "" {
		v.RepositoryURL = joinURL(c.opts.RepositoryBaseURL, project)
	}

	if c.opts.PrevArticleSlug != "" && c.opts.ArticleBaseURL != "" {
		v.PrevArticleURL = joinURL(c.opts.ArticleBaseURL, c.opts.PrevArticleSlug)
	}

	return v
}

func joinURL(base, elem string) string {
	return strings.TrimRight(base, "/") + "/" + elem
}
