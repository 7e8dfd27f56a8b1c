// Package build constructs component graphs from build descriptors.
//
// A [Builder] understands one build system. It reads the descriptor found in
// a project directory and returns one [component.Graph] node per module,
// keyed by the build system's own identifier, with the intra-project
// dependencies that module declares.
//
// Available builders:
//
//   - maven: multi-module pom.xml reactors (package maven)
//   - golang: go.work workspaces (package golang)
//
// Use [Detect] to pick the builder for a directory and [Run] to execute it
// with observability hooks attached.
package build

import (
	"context"
	"time"

	"github.com/matzehuels/mainseq/pkg/component"
	"github.com/matzehuels/mainseq/pkg/errors"
	"github.com/matzehuels/mainseq/pkg/observability"
)

// Builder constructs a component graph for one build system.
type Builder interface {
	// Name returns the build system identifier (e.g., "maven").
	Name() string
	// Supports reports whether dir contains this builder's descriptor.
	Supports(dir string) bool
	// Build reads the descriptors below dir and returns the component graph.
	Build(ctx context.Context, dir string) (*component.Graph, error)
}

// Detect returns the first builder that supports dir.
func Detect(dir string, builders ...Builder) (Builder, error) {
	for _, b := range builders {
		if b.Supports(dir) {
			return b, nil
		}
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "no supported build descriptor in %s", dir)
}

// Run builds the graph for dir with b, reporting to the build hooks.
func Run(ctx context.Context, b Builder, dir string) (g *component.Graph, err error) {
	start := time.Now()
	hooks := observability.Build()
	hooks.OnBuildStart(ctx, b.Name(), dir)
	defer func() {
		n := 0
		if g != nil {
			n = g.Len()
		}
		hooks.OnBuildComplete(ctx, b.Name(), dir, n, time.Since(start), err)
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return b.Build(ctx, dir)
}
