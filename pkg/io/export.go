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

// WriteJSON encodes g as a JSON graph document and writes it to w.
// counts may be nil; components with an entry get abstract/concrete fields.
func WriteJSON(g *component.Graph, counts metrics.Counts, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(fromGraph(g, counts)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteYAML encodes g as a YAML graph document and writes it to w.
func WriteYAML(g *component.Graph, counts metrics.Counts, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fromGraph(g, counts)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}

// ExportJSON writes g to a JSON file at path.
func ExportJSON(g *component.Graph, counts metrics.Counts, path string) error {
	return exportFile(path, func(w io.Writer) error { return WriteJSON(g, counts, w) })
}

// ExportYAML writes g to a YAML file at path.
func ExportYAML(g *component.Graph, counts metrics.Counts, path string) error {
	return exportFile(path, func(w io.Writer) error { return WriteYAML(g, counts, w) })
}

// Export writes g to path, choosing the encoder by extension.
func Export(g *component.Graph, counts metrics.Counts, path string) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ExportJSON(g, counts, path)
	case ".yaml", ".yml":
		return ExportYAML(g, counts, path)
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported graph file extension %q", ext)
	}
}

func exportFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
