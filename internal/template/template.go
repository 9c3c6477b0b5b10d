// Package template resolves and loads article templates.
package template

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when the resolved template file does not exist.
var ErrNotFound = errors.New("template not found")

// Template is the raw template text plus its parsed metadata header.
type Template struct {
	// Path is the resolved absolute path the template was read from.
	Path string
	// Raw is the full file content, header included.
	Raw string
	// Header is the YAML frontmatter; nil when absent or unparseable.
	Header map[string]any
}

// Title returns the header's title entry, if any.
func (t *Template) Title() string {
	if t.Header == nil {
		return ""
	}

	title, _ := t.Header["title"].(string)

	return title
}

// Resolver turns a configured template path into an absolute one.
// Relative paths are tried against the CI action root, then the container root, then the install directory.
type Resolver struct {
	// ActionPath is the CI action checkout directory; empty outside CI.
	ActionPath string
	// ContainerRoot is used when the directory exists on disk.
	ContainerRoot string
	// InstallDir is the directory of the running executable.
	InstallDir string
}

// NewResolver builds a resolver whose install directory is the running executable's directory.
func NewResolver(actionPath, containerRoot string) (Resolver, error) {
	exe, err := os.Executable()
	if err != nil {
		return Resolver{}, fmt.Errorf("failed to locate executable: %w", err)
	}

	return Resolver{
		ActionPath:    actionPath,
		ContainerRoot: containerRoot,
		InstallDir:    filepath.Dir(exe),
	}, nil
}

// Resolve returns the absolute path for p.
func (r Resolver) Resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}

	if r.ActionPath != "" {
		return filepath.Join(r.ActionPath, p)
	}

	if r.ContainerRoot != "" && isDir(r.ContainerRoot) {
		return filepath.Join(r.ContainerRoot, p)
	}

	return filepath.Join(r.InstallDir, p)
}

// Load resolves p and reads the template.
func (r Resolver) Load(p string) (*Template, error) {
	path := r.Resolve(p)

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}

		return nil, fmt.Errorf("failed to stat template %s: %w", path, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template %s: %w", path, err)
	}

	return Parse(path, string(data)), nil
}

// Parse builds a Template from raw content. A broken header is logged and ignored.
func Parse(path, raw string) *Template {
	tmpl := &Template{Path: path, Raw: raw}

	header := splitFrontmatter(raw)
	if header == "" {
		slog.Debug("template has no metadata header", "path", path)
		return tmpl
	}

	var meta map[string]any
	if err := yaml.Unmarshal([]byte(header), &meta); err != nil {
		slog.Debug("could not parse template metadata header", "path", path, "error", err)
		return tmpl
	}

	tmpl.Header = meta

	return tmpl
}

// splitFrontmatter returns the YAML block delimited by --- lines at the start of raw.
func splitFrontmatter(raw string) string {
	raw = strings.TrimLeft(raw, "\ufeff \t\r\n")
	if !strings.HasPrefix(raw, "---") {
		return ""
	}

	rest := raw[3:]
	before, _, ok := strings.Cut(rest, "\n---")
	if !ok {
		return ""
	}

	return strings.TrimSpace(before)
}

func isDir(path string) bool {
	info, err := os.Stat(path)

	return err == nil && info.IsDir()
}
