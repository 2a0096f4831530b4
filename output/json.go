// Package output serializes the grouped document and the statistics export.
package output

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/asatlas/peergroup/model"
)

// SaveDocument writes doc to path as UTF-8 JSON with two-space indentation.
// HTML escaping is off so country names and passthrough fields keep their
// original characters. The document is encoded into a temporary file in the
// destination directory and renamed into place, so an existing file at path
// survives any failure before the full encode completed.
func SaveDocument(path string, doc *model.Document) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".peergroup-*.json")
	if err != nil {
		return fmt.Errorf("create temp output in %s: %w", dir, err)
	}
	tmpName := tmp.Name()

	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("encode output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("flush output: %w", err)
	}

	// CreateTemp files are 0600; the grouped document is a normal artifact
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("set output permissions: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("move output into place: %w", err)
	}
	return nil
}
