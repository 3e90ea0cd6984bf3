// Package download saves generated poems as plain-text files.
package download

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const filePerm = 0o644

// Dir writes files into one directory.
type Dir struct {
	path string
}

// NewDir creates a writer for dir. An empty dir means the working directory.
func NewDir(dir string) Dir {
	return Dir{path: strings.TrimSpace(dir)}
}

// Path returns the target directory.
func (d Dir) Path() string {
	if d.path == "" {
		return "."
	}
	return d.path
}

// WriteFile stores data under name and returns the written path.
// Existing files with the same name are replaced.
func (d Dir) WriteFile(name string, data []byte) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	dir := d.Path()
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("failed to create download directory: %w", err)
	}
	target := filepath.Join(dir, name)
	if err := writeFileAtomic(target, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", target, err)
	}
	return target, nil
}

func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	f, err := os.CreateTemp(filepath.Dir(path), ".poem-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := f.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Chmod(perm); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	// Rename replaces an existing target in one step.
	return os.Rename(tmpPath, path)
}
