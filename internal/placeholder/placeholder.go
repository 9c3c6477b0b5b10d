// Package placeholder fills bracketed template tokens such as [連番] with run values.
//
// Substitution is an ordered list of rules applied once each, in declaration order.
// The order is part of the contract: a rule never sees text produced by a later rule.
package placeholder

import (
	"regexp"
	"strings"
)

// Template tokens.
const (
	TokenModel        = "[LLM Model名]"
	TokenTheme        = "[テーマ名]"
	TokenSerial       = "[連番]"
	TokenIssue        = "[Issue番号]"
	TokenProject      = "[プロジェクト名]"
	TokenRepository   = "[リポジトリ名]"
	TokenPrevSlug     = "[前回の記事スラッグ]"
	CycleArticleLabel = "[LLM対話で実現する継続的な開発プロセス]"
)

// Upstream links as they appear in the stock template. They are redirected to the configured
// bases before the bare tokens are filled in.
const (
	UpstreamRepositoryURL  = "https://github.com/centervil/" + TokenRepository
	UpstreamPrevArticleURL = "https://zenn.dev/centervil/articles/" + TokenPrevSlug
)

var cycleLinkPattern = regexp.MustCompile(regexp.QuoteMeta(CycleArticleLabel) + `\([^)]*\)`)

// Rule is one substitution step.
type Rule struct {
	Name  string
	apply func(string) string
}

// Apply runs the rule against text.
func (r Rule) Apply(text string) string {
	return r.apply(text)
}

// Literal replaces every occurrence of token with value.
func Literal(name, token, value string) Rule {
	return Rule{
		Name: name,
		apply: func(text string) string {
			return strings.ReplaceAll(text, token, value)
		},
	}
}

// Pattern replaces every match of re with value, taken literally.
func Pattern(name string, re *regexp.Regexp, value string) Rule {
	return Rule{
		Name: name,
		apply: func(text string) string {
			return re.ReplaceAllLiteralString(text, value)
		},
	}
}

// Engine applies rules in order.
type Engine struct {
	rules []Rule
}

// NewEngine creates an engine with a fixed rule sequence.
func NewEngine(rules ...Rule) *Engine {
	return &Engine{rules: rules}
}

// Rules returns the names of the rules in application order.
func (e *Engine) Rules() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.Name
	}

	return names
}

// Apply runs every rule once, in order.
func (e *Engine) Apply(text string) string {
	for _, r := range e.rules {
		text = r.Apply(text)
	}

	return text
}

// Values are the run values placed into a template.
// An empty field leaves its token untouched.
type Values struct {
	Model           string
	Theme           string
	Serial          string
	Project         string
	Repository      string
	RepositoryURL   string
	CycleArticleURL string
	PrevArticleSlug string
	PrevArticleURL  string
}

// Rules declares the substitution order:
// model, theme, serial/issue, project, repository, cycle article, previous article.
// Each URL rule rewrites only the upstream link and runs before its bare token rule,
// so links to other hosts keep their host and owner.
func (v Values) Rules() []Rule {
	var rules []Rule
	add := func(value string, r ...Rule) {
		if value != "" {
			rules = append(rules, r...)
		}
	}

	add(v.Model, Literal("model", TokenModel, v.Model))
	add(v.Theme, Literal("theme", TokenTheme, v.Theme))
	add(v.Serial,
		Literal("serial", TokenSerial, v.Serial),
		Literal("issue", TokenIssue, v.Serial),
	)
	add(v.Project, Literal("project", TokenProject, v.Project))
	add(v.RepositoryURL, Literal("repository-url", UpstreamRepositoryURL, v.RepositoryURL))
	add(v.Repository, Literal("repository", TokenRepository, v.Repository))
	add(v.CycleArticleURL,
		Pattern("cycle-article-url", cycleLinkPattern, CycleArticleLabel+"("+v.CycleArticleURL+")"))
	add(v.PrevArticleURL, Literal("prev-article-url", UpstreamPrevArticleURL, v.PrevArticleURL))
	add(v.PrevArticleSlug, Literal("prev-article-slug", TokenPrevSlug, v.PrevArticleSlug))

	return rules
}

// Engine returns an engine for v.
func (v Values) Engine() *Engine {
	return NewEngine(v.Rules()...)
}
