package component

import (
	"errors"
	"slices"

	mserrors "github.com/matzehuels/mainseq/pkg/errors"
)

var (
	// ErrInvalidComponentID is returned by [Graph.Add] when the component ID
	// or one of its dependency identifiers is empty.
	ErrInvalidComponentID = errors.New("component ID must not be empty")

	// ErrDuplicateComponent is returned by [Graph.Add] when a component with
	// the same ID already exists in the graph.
	ErrDuplicateComponent = errors.New("duplicate component ID")

	// ErrSelfDependency is returned by [Graph.Add] when a component lists its
	// own ID as a dependency.
	ErrSelfDependency = errors.New("component depends on itself")
)

// Component is a build component: a unit with its own build descriptor and
// source roots.
type Component struct {
	ID          string   // Stable build identifier (artifactId, module path, node id)
	Name        string   // Display name; empty means ID
	Dir         string   // Base directory, if known
	SourceRoots []string // Directories scanned for abstractness
}

// DisplayName returns Name if set, otherwise ID.
func (c Component) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.ID
}

// Graph is an insertion-ordered component dependency graph.
//
// The zero value is not usable - use New.
type Graph struct {
	order      []string
	components map[string]*Component
	deps       map[string][]string
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{
		components: make(map[string]*Component),
		deps:       make(map[string][]string),
	}
}

// Add appends a component and its dependency identifiers to the graph.
// Duplicate identifiers in deps are collapsed, keeping first occurrence
// order. The source roots slice is copied.
func (g *Graph) Add(c Component, deps ...string) error {
	if c.ID == "" {
		return ErrInvalidComponentID
	}
	if _, exists := g.components[c.ID]; exists {
		return ErrDuplicateComponent
	}

	list := make([]string, 0, len(deps))
	seen := make(map[string]bool, len(deps))
	for _, d := range deps {
		switch {
		case d == "":
			return ErrInvalidComponentID
		case d == c.ID:
			return ErrSelfDependency
		case seen[d]:
			continue
		}
		seen[d] = true
		list = append(list, d)
	}

	c.SourceRoots = slices.Clone(c.SourceRoots)
	g.components[c.ID] = &c
	g.deps[c.ID] = list
	g.order = append(g.order, c.ID)
	return nil
}

// Len returns the number of components.
func (g *Graph) Len() int { return len(g.order) }

// IsEmpty reports whether the graph has no components.
func (g *Graph) IsEmpty() bool { return len(g.order) == 0 }

// EdgeCount returns the total length of all dependency lists, including
// identifiers that do not resolve to a component.
func (g *Graph) EdgeCount() int {
	n := 0
	for _, d := range g.deps {
		n += len(d)
	}
	return n
}

// IDs returns component IDs in insertion order.
func (g *Graph) IDs() []string { return slices.Clone(g.order) }

// Components returns copies of all components in insertion order.
func (g *Graph) Components() []Component {
	out := make([]Component, len(g.order))
	for i, id := range g.order {
		out[i] = *g.components[id]
	}
	return out
}

// Component returns the component with the given ID.
func (g *Graph) Component(id string) (Component, bool) {
	c, ok := g.components[id]
	if !ok {
		return Component{}, false
	}
	return *c, true
}

// Resolve reports whether id names a component of the graph.
func (g *Graph) Resolve(id string) bool {
	_, ok := g.components[id]
	return ok
}

// Dependencies returns the dependency identifiers declared by id, in
// declaration order. The returned slice must not be modified.
func (g *Graph) Dependencies(id string) []string { return g.deps[id] }

// ResolvedDependencies returns the dependencies of id that name components
// of the graph, in declaration order.
func (g *Graph) ResolvedDependencies(id string) []string {
	var out []string
	for _, d := range g.deps[id] {
		if g.Resolve(d) {
			out = append(out, d)
		}
	}
	return out
}

// Dependents returns the IDs of components whose dependency list contains
// id, in insertion order.
func (g *Graph) Dependents(id string) []string {
	var out []string
	for _, other := range g.order {
		if other != id && slices.Contains(g.deps[other], id) {
			out = append(out, other)
		}
	}
	return out
}

// Validate checks every component and dependency identifier with
// [mserrors.ValidateComponentID]. Graphs built from files or manifests are
// validated before analysis; an invalid graph is an INVALID_GRAPH error.
func (g *Graph) Validate() error {
	for _, id := range g.order {
		if err := mserrors.ValidateComponentID(id); err != nil {
			return err
		}
		for _, d := range g.deps[id] {
			if err := mserrors.ValidateComponentID(d); err != nil {
				return mserrors.Wrap(mserrors.ErrCodeInvalidGraph, err, "dependency of %s", id)
			}
		}
	}
	return nil
}

// HasCycle reports whether the resolved dependency edges contain a directed
// cycle. Cycles are legal input; detection runs in O(N+E) using depth-first
// search with white/gray/black coloring.
func (g *Graph) HasCycle() bool {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(g.order))
	var hasCycle bool

	var dfs func(id string)
	dfs = func(id string) {
		color[id] = gray
		for _, dep := range g.deps[id] {
			if !g.Resolve(dep) {
				continue
			}
			switch color[dep] {
			case white:
				dfs(dep)
			case gray:
				hasCycle = true
			}
			if hasCycle {
				return
			}
		}
		color[id] = black
	}

	for _, id := range g.order {
		if color[id] == white {
			dfs(id)
			if hasCycle {
				return true
			}
		}
	}
	return false
}
