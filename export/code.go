package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/milk9111/subplot2grid/grid"
)

var ErrEmptyPath = errors.New("empty output path")

// WriteCode saves the generated statements verbatim. A path without an
// extension gets ".txt". The final path is returned.
func WriteCode(path string, code grid.Code) (string, error) {
	path, err := normalizePath(path, ".txt")
	if err != nil {
		return "", fmt.Errorf("export: write code: %w", err)
	}
	if err := writeFile(path, []byte(code.String())); err != nil {
		return "", fmt.Errorf("export: write code %s: %w", path, err)
	}
	return path, nil
}

func normalizePath(path, defaultExt string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", ErrEmptyPath
	}
	if filepath.Ext(path) == "" {
		path += defaultExt
	}
	return path, nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}
