package article

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// Summary describes a generated article for the completion log line.
type Summary struct {
	// Title is the frontmatter title, else the first level-1 heading, else the template's title.
	Title    string
	Headings int
}

// Summarize parses markdown and reports its title and heading count.
// fallbackTitle is used when the article carries no title of its own.
func Summarize(markdown, fallbackTitle string) Summary {
	body, title := stripFrontmatter(markdown)
	source := []byte(body)

	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var s Summary
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		heading, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}

		s.Headings++
		if title == "" && heading.Level == 1 {
			title = headingText(heading, source)
		}

		return ast.WalkSkipChildren, nil
	})

	if title == "" {
		title = fallbackTitle
	}
	s.Title = title

	return s
}

// headingText concatenates the text segments under a heading.
func headingText(n ast.Node, source []byte) string {
	var buf bytes.Buffer
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if t, ok := c.(*ast.Text); ok && entering {
			buf.Write(t.Segment.Value(source))
			if t.SoftLineBreak() {
				buf.WriteByte(' ')
			}
		}

		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(buf.String())
}

// stripFrontmatter removes a leading --- block and returns its title entry, if any.
func stripFrontmatter(markdown string) (string, string) {
	if !strings.HasPrefix(markdown, "---\n") {
		return markdown, ""
	}

	header, body, ok := strings.Cut(markdown[4:], "\n---")
	if !ok {
		return markdown, ""
	}

	var meta struct {
		Title string `yaml:"title"`
	}
	if err := yaml.Unmarshal([]byte(header), &meta); err != nil {
		return body, ""
	}

	return body, meta.Title
}
