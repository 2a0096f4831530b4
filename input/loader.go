// Package input reads the enriched-links document from disk and validates
// its shape at the boundary, before any per-AS processing starts.
package input

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/asatlas/peergroup/model"
)

// Load reads the whole file at path into memory and decodes it into a
// Document. Failures keep their class: IO errors wrap the underlying error,
// malformed JSON becomes a *model.ParseError, and well-formed JSON with the
// wrong top-level shape a *model.SchemaError.
func Load(path string) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	doc := model.NewDocument()
	if err := json.Unmarshal(data, doc); err != nil {
		var schemaErr *model.SchemaError
		if errors.As(err, &schemaErr) {
			return nil, err
		}
		return nil, &model.ParseError{Err: err}
	}
	return doc, nil
}
