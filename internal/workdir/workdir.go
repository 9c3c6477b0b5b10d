// Package workdir places generated files on disk.
package workdir

import (
	"fmt"
	"os"
	"path/filepath"
)

// Prep ensures that the directory containing path exists.
func Prep(path string) error {
	dir := filepath.Dir(path)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	return nil
}

// Write creates missing parent directories and writes content to path.
func Write(path, content string) error {
	if err := Prep(path); err != nil {
		return err
	}

	//nolint:gosec // Articles need to be readable
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
