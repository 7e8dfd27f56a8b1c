package metrics

import "github.com/matzehuels/mainseq/pkg/component"

// Instability computes I for every component of g.
// The result has exactly one entry per component.
func Instability(g *component.Graph) Map {
	fanIn := fanInCounts(g)
	m := make(Map, g.Len())
	for _, id := range g.IDs() {
		m[id] = instability(fanIn[id], len(g.Dependencies(id)))
	}
	return m
}

// FanOut returns the number of distinct dependencies declared by id.
func FanOut(g *component.Graph, id string) int {
	return len(g.Dependencies(id))
}

// FanIn returns the number of other components whose dependency list
// contains id.
func FanIn(g *component.Graph, id string) int {
	return len(g.Dependents(id))
}

func instability(fanIn, fanOut int) float64 {
	if fanOut == 0 {
		return StableSentinel
	}
	return float64(fanOut) / float64(fanIn+fanOut)
}

// fanInCounts counts incoming references in a single pass over all lists.
// Lists are duplicate-free and never contain their owner, so each
// dependent contributes at most one to a given count.
func fanInCounts(g *component.Graph) map[string]int {
	counts := make(map[string]int, g.Len())
	for _, id := range g.IDs() {
		for _, dep := range g.Dependencies(id) {
			counts[dep]++
		}
	}
	return counts
}
