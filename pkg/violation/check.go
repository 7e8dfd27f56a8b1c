package violation

import (
	"github.com/matzehuels/mainseq/pkg/component"
	"github.com/matzehuels/mainseq/pkg/errors"
	"github.com/matzehuels/mainseq/pkg/metrics"
)

// Check walks g as a breadth-first forest and returns a *Violation for the
// first edge whose endpoints satisfy p.Violates, or nil if none does.
//
// A metric map lacking a component, or a principle without a predicate, is
// an input error reported as INVALID_INPUT.
func Check(g *component.Graph, m metrics.Map, p Principle) error {
	if p.Violates == nil {
		return errors.New(errors.ErrCodeInvalidInput, "principle %q has no predicate", p.Name)
	}

	ids := g.IDs()
	for _, id := range ids {
		if _, ok := m[id]; !ok {
			return errors.New(errors.ErrCodeInvalidInput, "no metric value for component %s", id)
		}
	}

	visited := make(map[string]bool, len(ids))
	next := 0 // index of the first possibly unvisited component

	for len(visited) < len(ids) {
		for visited[ids[next]] {
			next++
		}
		root := ids[next]
		visited[root] = true
		queue := []string{root}

		for len(queue) > 0 {
			curr := queue[0]
			queue = queue[1:]

			deps := g.ResolvedDependencies(curr)
			for _, dep := range deps {
				if !visited[dep] {
					visited[dep] = true
					queue = append(queue, dep)
				}
			}

			for _, dep := range deps {
				if p.Violates(m[curr], m[dep]) {
					return &Violation{Principle: p, Component: curr}
				}
			}
		}
	}
	return nil
}
