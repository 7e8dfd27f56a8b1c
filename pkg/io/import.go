package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/mainseq/pkg/component"
	"github.com/matzehuels/mainseq/pkg/errors"
	"github.com/matzehuels/mainseq/pkg/metrics"
)

// ReadJSON decodes a JSON graph document from r.
//
// ReadJSON returns an error if the JSON is malformed, a component ID is
// empty or duplicated, a component depends on itself, or a file count is
// negative. Source roots are returned as written. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*component.Graph, metrics.Counts, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode")
	}
	return doc.toGraph("")
}

// ReadYAML decodes a YAML graph document from r. An empty document yields
// an empty graph. Validation matches [ReadJSON].
func ReadYAML(r io.Reader) (*component.Graph, metrics.Counts, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode")
	}
	return doc.toGraph("")
}

// ImportJSON reads a JSON graph file. Relative source roots are resolved
// against the file's directory.
func ImportJSON(path string) (*component.Graph, metrics.Counts, error) {
	return importFile(path, json.Unmarshal)
}

// ImportYAML reads a YAML graph file. Relative source roots are resolved
// against the file's directory.
func ImportYAML(path string) (*component.Graph, metrics.Counts, error) {
	return importFile(path, yaml.Unmarshal)
}

// Import reads a graph file, choosing the decoder by extension.
func Import(path string) (*component.Graph, metrics.Counts, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ImportJSON(path)
	case ".yaml", ".yml":
		return ImportYAML(path)
	default:
		return nil, nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported graph file extension %q", ext)
	}
}

// IsGraphFile reports whether path has a graph file extension.
func IsGraphFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func importFile(path string, unmarshal func([]byte, any) error) (*component.Graph, metrics.Counts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}

	var doc document
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := unmarshal(data, &doc); err != nil {
			return nil, nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", path)
		}
	}
	return doc.toGraph(filepath.Dir(path))
}
