package maven

import (
	"context"
	"os"
	"path/filepath"

	"github.com/matzehuels/mainseq/pkg/component"
	"github.com/matzehuels/mainseq/pkg/errors"
)

// Builder builds graphs from a Maven reactor rooted at a directory.
type Builder struct{}

// Name returns "maven".
func (Builder) Name() string { return "maven" }

// Supports reports whether dir contains a pom.xml.
func (Builder) Supports(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, pomFile))
	return err == nil && !info.IsDir()
}

// Build walks the reactor declared by dir/pom.xml. The root project is never
// a component; a project without modules yields an empty graph.
func (b Builder) Build(ctx context.Context, dir string) (*component.Graph, error) {
	if !b.Supports(dir) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "no %s in %s", pomFile, dir)
	}
	root, err := readPOM(dir)
	if err != nil {
		return nil, err
	}

	w := &walker{
		graph:   component.New(),
		visited: map[string]bool{},
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve %s", dir)
	}
	w.visited[abs] = true
	if err := w.modules(ctx, root, abs); err != nil {
		return nil, err
	}
	return w.graph, nil
}

type walker struct {
	graph   *component.Graph
	visited map[string]bool // module directories already read
}

// modules visits the modules declared by an aggregator pom in dir.
func (w *walker) modules(ctx context.Context, agg *pomProject, dir string) error {
	for _, m := range agg.Modules {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := errors.ValidateModulePath(m); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidManifest, err, "module %q of %s", m, agg.ArtifactID)
		}

		moduleDir := filepath.Join(dir, filepath.FromSlash(m))
		if w.visited[moduleDir] {
			continue
		}
		w.visited[moduleDir] = true

		pom, err := readPOM(moduleDir)
		if err != nil {
			return err
		}
		if pom.isAggregator() {
			if err := w.modules(ctx, pom, moduleDir); err != nil {
				return err
			}
			continue
		}
		if err := w.add(pom, moduleDir); err != nil {
			return err
		}
	}
	return nil
}

// add records a leaf module. A module reached twice is added once.
func (w *walker) add(pom *pomProject, dir string) error {
	if w.graph.Resolve(pom.ArtifactID) {
		return nil
	}

	var deps []string
	for _, d := range pom.internalDependencies() {
		if d != pom.ArtifactID {
			deps = append(deps, d)
		}
	}

	c := component.Component{
		ID:          pom.ArtifactID,
		Name:        pom.Name,
		Dir:         dir,
		SourceRoots: []string{pom.sourceRoot(dir)},
	}
	if err := w.graph.Add(c, deps...); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidManifest, err, "module %s", pom.ArtifactID)
	}
	return nil
}
