package metrics

import (
	"context"

	"github.com/matzehuels/mainseq/pkg/component"
	"github.com/matzehuels/mainseq/pkg/errors"
)

// Classification counts a component's source files by kind.
type Classification struct {
	Abstract int `json:"abstract" yaml:"abstract"` // files declaring an abstract or interface type
	Concrete int `json:"concrete" yaml:"concrete"` // all other classifiable files
}

// Total returns the number of classified files.
func (c Classification) Total() int { return c.Abstract + c.Concrete }

// Applicable reports whether any file was classified. When false, the
// component's abstractness is the not-applicable sentinel.
func (c Classification) Applicable() bool { return c.Total() > 0 }

// Abstractness returns abstract / (abstract + concrete), or
// NotApplicableSentinel when no file was classified.
func (c Classification) Abstractness() float64 {
	if !c.Applicable() {
		return NotApplicableSentinel
	}
	return float64(c.Abstract) / float64(c.Total())
}

// Classifier reports file classification counts for a component.
type Classifier interface {
	Classify(ctx context.Context, c component.Component) (Classification, error)
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(ctx context.Context, c component.Component) (Classification, error)

// Classify calls f.
func (f ClassifierFunc) Classify(ctx context.Context, c component.Component) (Classification, error) {
	return f(ctx, c)
}

// Counts is a Classifier backed by precomputed classifications.
// Components without an entry have no classifiable sources.
type Counts map[string]Classification

// Classify returns the stored classification for c.
func (m Counts) Classify(_ context.Context, c component.Component) (Classification, error) {
	return m[c.ID], nil
}

// Abstractness computes A for every component of g using cls.
// A classifier failure aborts the whole computation with a CLASSIFY_FAILED
// error; no partial map is returned.
func Abstractness(ctx context.Context, g *component.Graph, cls Classifier) (Map, error) {
	m := make(Map, g.Len())
	for _, c := range g.Components() {
		counts, err := cls.Classify(ctx, c)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeClassifyFailed, err, "classify %s", c.ID)
		}
		if counts.Abstract < 0 || counts.Concrete < 0 {
			return nil, errors.New(errors.ErrCodeClassifyFailed, "classify %s: negative file count", c.ID)
		}
		m[c.ID] = counts.Abstractness()
	}
	return m, nil
}

// Classifications collects the classification of every component of g,
// so callers can tell measured zeros from not-applicable ones.
func Classifications(ctx context.Context, g *component.Graph, cls Classifier) (Counts, error) {
	out := make(Counts, g.Len())
	for _, c := range g.Components() {
		counts, err := cls.Classify(ctx, c)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeClassifyFailed, err, "classify %s", c.ID)
		}
		out[c.ID] = counts
	}
	return out, nil
}
