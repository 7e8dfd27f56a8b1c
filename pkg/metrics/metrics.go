package metrics

import (
	"maps"
	"slices"
)

// Sentinel metric values for structurally degenerate components.
const (
	// StableSentinel is the instability of a component with zero fan-out.
	StableSentinel = 0.0
	// NotApplicableSentinel is the abstractness of a component with no
	// classifiable source files.
	NotApplicableSentinel = 0.0
)

// Map assigns a metric value in [0, 1] to each component ID.
type Map map[string]float64

// Get returns the value for id and whether it is present.
func (m Map) Get(id string) (float64, bool) {
	v, ok := m[id]
	return v, ok
}

// Keys returns the component IDs in sorted order.
func (m Map) Keys() []string {
	return slices.Sorted(maps.Keys(m))
}
