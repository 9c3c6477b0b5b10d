// Package sanitize cleans up common artifacts in model-generated markdown.
package sanitize

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"unicode"
)

const fence = "```"

// Processor transforms a document.
type Processor func(string) string

// Chain runs processors in order.
type Chain struct {
	processors []Processor
}

// NewChain creates a chain. With no processors it uses RemoveEnclosingFence.
func NewChain(processors ...Processor) *Chain {
	if len(processors) == 0 {
		processors = []Processor{RemoveEnclosingFence}
	}

	return &Chain{processors: processors}
}

// Process applies every processor and reports whether the document changed.
func (c *Chain) Process(content string) (string, bool) {
	out := content
	for _, p := range c.processors {
		out = p(out)
	}

	return out, out != content
}

// ProcessFile rewrites in through the chain into out. An empty out overwrites in.
func (c *Chain) ProcessFile(in, out string) error {
	data, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", in, err)
	}
	slog.Debug("read document", "path", in)

	result, changed := c.Process(string(data))
	if changed {
		slog.Info("document fixed", "path", in)
	} else {
		slog.Info("document unchanged", "path", in)
	}

	if out == "" {
		out = in
	}

	//nolint:gosec // Articles need to be readable
	if err := os.WriteFile(out, []byte(result), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}
	slog.Debug("wrote document", "path", out)

	return nil
}

// RemoveEnclosingFence strips a code fence wrapping the whole document.
// It repeats until nothing changes, so applying it twice equals applying it once.
// A document that is nothing but one fenced block ends up unwrapped, whatever its language tag.
func RemoveEnclosingFence(content string) string {
	for {
		next := removeFenceOnce(content)
		if next == content {
			return content
		}
		content = next
	}
}

func removeFenceOnce(content string) string {
	if strings.HasPrefix(content, fence) && strings.HasSuffix(content, fence) {
		slog.Debug("document is wrapped in a code fence")

		content = dropFirstLine(content)
		if strings.HasSuffix(content, fence) {
			content = trimRightSpace(strings.TrimSuffix(content, fence))
		}
	}

	if hasMarkdownFence(content) {
		slog.Debug("document starts with a markdown fence")

		content = dropFirstLine(content)
		if trimmed := trimRightSpace(content); strings.HasSuffix(trimmed, fence) {
			content = trimRightSpace(strings.TrimSuffix(trimmed, fence))
		}
	}

	return content
}

// hasMarkdownFence reports whether the first line opens a markdown-tagged fence.
func hasMarkdownFence(content string) bool {
	if !strings.HasPrefix(content, fence) {
		return false
	}

	firstLine, _, ok := strings.Cut(content, "\n")
	if !ok {
		return false
	}

	lang := strings.TrimSpace(strings.TrimPrefix(firstLine, fence))

	return strings.EqualFold(lang, "markdown") || strings.EqualFold(lang, "md")
}

func dropFirstLine(content string) string {
	_, rest, ok := strings.Cut(content, "\n")
	if !ok {
		return content
	}

	return rest
}

func trimRightSpace(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
