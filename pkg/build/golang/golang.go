// Package golang builds component graphs from Go workspaces.
//
// Every module named by a use directive in go.work is a component keyed by
// its module path. A module's dependency list holds the require entries of
// its go.mod that name other workspace modules, so third-party requirements
// never enter the graph. Source roots are the module directories; nested
// modules are excluded by the source scanner.
package golang

import (
	"context"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"

	"github.com/matzehuels/mainseq/pkg/component"
	"github.com/matzehuels/mainseq/pkg/errors"
)

const (
	workFile = "go.work"
	modFile  = "go.mod"
)

// Builder builds graphs from a go.work file.
type Builder struct{}

// Name returns "golang".
func (Builder) Name() string { return "golang" }

// Supports reports whether dir contains a go.work file.
func (Builder) Supports(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, workFile))
	return err == nil && !info.IsDir()
}

type module struct {
	path string
	dir  string
	file *modfile.File
}

// Build reads dir/go.work and the go.mod of every used module.
func (b Builder) Build(ctx context.Context, dir string) (*component.Graph, error) {
	if !b.Supports(dir) {
		return nil, errors.New(errors.ErrCodeFileNotFound, "no %s in %s", workFile, dir)
	}

	workPath := filepath.Join(dir, workFile)
	data, err := os.ReadFile(workPath)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read %s", workPath)
	}
	work, err := modfile.ParseWork(workPath, data, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", workPath)
	}

	var modules []module
	inWorkspace := make(map[string]bool)
	for _, use := range work.Use {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := errors.ValidateModulePath(use.Path); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "use %q", use.Path)
		}

		m, err := readModule(filepath.Join(dir, filepath.FromSlash(use.Path)))
		if err != nil {
			return nil, err
		}
		if inWorkspace[m.path] {
			continue
		}
		inWorkspace[m.path] = true
		modules = append(modules, m)
	}

	g := component.New()
	for _, m := range modules {
		var deps []string
		for _, req := range m.file.Require {
			if inWorkspace[req.Mod.Path] && req.Mod.Path != m.path {
				deps = append(deps, req.Mod.Path)
			}
		}
		c := component.Component{
			ID:          m.path,
			Dir:         m.dir,
			SourceRoots: []string{m.dir},
		}
		if err := g.Add(c, deps...); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "module %s", m.path)
		}
	}
	return g, nil
}

func readModule(dir string) (module, error) {
	path := filepath.Join(dir, modFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return module{}, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read %s", path)
	}
	f, err := modfile.Parse(path, data, nil)
	if err != nil {
		return module{}, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", path)
	}
	if f.Module == nil || f.Module.Mod.Path == "" {
		return module{}, errors.New(errors.ErrCodeInvalidManifest, "%s has no module directive", path)
	}
	return module{path: f.Module.Mod.Path, dir: dir, file: f}, nil
}
