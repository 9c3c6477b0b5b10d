// Package diary extracts article metadata from development-diary filenames.
//
// The canonical naming convention is:
//
//	YYYY-MM-DD-NNN-theme-project.md
//
// where the theme may contain hyphens and the project is the final hyphen-free segment.
// The date may be preceded by a prefix ("notes-2024-01-15-003-x-y.md"); the serial, theme and
// project are always read from the text that starts at the first date.
package diary

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Defaults used when the filename does not follow the naming convention.
const (
	DefaultSerial  = "1"
	DefaultTheme   = "開発日記"
	DefaultProject = "プロジェクト"
)

var (
	datePattern     = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	serialPattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-(\d+)`)
	compoundPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}-\d+-(.+)-([^-.]+)\.[^.]+$`)
)

// Metadata is what a diary filename says about its entry.
type Metadata struct {
	Date         string
	DateFromName bool
	Serial       string
	Theme        string
	Project      string
}

// ParseFilename extracts metadata from the base name of path.
// A missing date falls back to now; other missing fields fall back to the package defaults.
func ParseFilename(path string, now time.Time) Metadata {
	name := filepath.Base(path)

	meta := Metadata{
		Date:    now.Format(time.DateOnly),
		Serial:  DefaultSerial,
		Theme:   DefaultTheme,
		Project: DefaultProject,
	}

	loc := datePattern.FindStringIndex(name)
	if loc == nil {
		return meta
	}

	meta.Date = name[loc[0]:loc[1]]
	meta.DateFromName = true

	dated := name[loc[0]:]

	if m := serialPattern.FindStringSubmatch(dated); m != nil {
		meta.Serial = trimSerial(m[1])
	}

	if m := compoundPattern.FindStringSubmatch(dated); m != nil {
		meta.Theme = m[1]
		meta.Project = m[2]
	}

	return meta
}

// ThemeTitle renders the theme for display: "refactor-api-layer" -> "Refactor Api Layer".
func (m Metadata) ThemeTitle() string {
	words := strings.ReplaceAll(m.Theme, "-", " ")

	return cases.Title(language.Und).String(words)
}

func trimSerial(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}

	return trimmed
}
