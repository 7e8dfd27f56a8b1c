package io

import (
	"path/filepath"

	"github.com/matzehuels/mainseq/pkg/component"
	"github.com/matzehuels/mainseq/pkg/errors"
	"github.com/matzehuels/mainseq/pkg/metrics"
)

type document struct {
	Components []node `json:"components" yaml:"components"`
}

type node struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name,omitempty" yaml:"name,omitempty"`
	Dependencies []string `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
	SourceRoots  []string `json:"source_roots,omitempty" yaml:"source_roots,omitempty"`
	Abstract     *int     `json:"abstract,omitempty" yaml:"abstract,omitempty"`
	Concrete     *int     `json:"concrete,omitempty" yaml:"concrete,omitempty"`
}

// toGraph converts a decoded document. Relative source roots are joined
// with base when base is non-empty.
func (d *document) toGraph(base string) (*component.Graph, metrics.Counts, error) {
	g := component.New()
	counts := make(metrics.Counts)

	for _, n := range d.Components {
		roots := make([]string, len(n.SourceRoots))
		for i, r := range n.SourceRoots {
			r = filepath.FromSlash(r)
			if base != "" && !filepath.IsAbs(r) {
				r = filepath.Join(base, r)
			}
			roots[i] = r
		}

		c := component.Component{ID: n.ID, Name: n.Name, SourceRoots: roots}
		if err := g.Add(c, n.Dependencies...); err != nil {
			return nil, nil, errors.Wrap(errors.ErrCodeInvalidGraph, err, "component %q", n.ID)
		}

		if n.Abstract == nil && n.Concrete == nil {
			continue
		}
		var cls metrics.Classification
		if n.Abstract != nil {
			cls.Abstract = *n.Abstract
		}
		if n.Concrete != nil {
			cls.Concrete = *n.Concrete
		}
		if cls.Abstract < 0 || cls.Concrete < 0 {
			return nil, nil, errors.New(errors.ErrCodeInvalidFormat, "component %q: negative file count", n.ID)
		}
		counts[n.ID] = cls
	}

	if err := g.Validate(); err != nil {
		return nil, nil, err
	}
	return g, counts, nil
}

// fromGraph builds a document from g. Counts are written for components
// that have an entry in counts.
func fromGraph(g *component.Graph, counts metrics.Counts) document {
	out := document{Components: make([]node, 0, g.Len())}
	for _, c := range g.Components() {
		n := node{
			ID:           c.ID,
			Name:         c.Name,
			Dependencies: g.Dependencies(c.ID),
			SourceRoots:  filepathsToSlash(c.SourceRoots),
		}
		if cls, ok := counts[c.ID]; ok {
			abstract, concrete := cls.Abstract, cls.Concrete
			n.Abstract = &abstract
			n.Concrete = &concrete
		}
		out.Components = append(out.Components, n)
	}
	return out
}

func filepathsToSlash(paths []string) []string {
	if len(paths) == 0 {
		return nil
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.ToSlash(p)
	}
	return out
}
