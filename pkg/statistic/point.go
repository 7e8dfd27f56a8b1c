package statistic

import (
	"math"

	"github.com/matzehuels/mainseq/pkg/component"
	"github.com/matzehuels/mainseq/pkg/metrics"
)

// zoneBound is the closed boundary of both zones of exclusion.
const zoneBound = 0.5

// Point is a component's position on the abstractness/instability plane.
type Point struct {
	Component    string  `json:"component"`
	Name         string  `json:"name,omitempty"`
	Instability  float64 `json:"instability"`
	Abstractness float64 `json:"abstractness"`
}

// DisplayName returns Name if set, otherwise the component ID.
func (p Point) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Component
}

// Distance returns |I + A - 1|, in [0, 1].
func (p Point) Distance() float64 {
	return math.Abs(p.Instability + p.Abstractness - 1)
}

// InZoneOfPain reports whether the point is stable and concrete.
func (p Point) InZoneOfPain() bool {
	return p.Instability <= zoneBound && p.Abstractness <= zoneBound
}

// InZoneOfUselessness reports whether the point is unstable and abstract.
func (p Point) InZoneOfUselessness() bool {
	return p.Instability >= zoneBound && p.Abstractness >= zoneBound
}

// NewPoints builds one point per component of g, in insertion order.
// Components missing from a map get a zero coordinate.
func NewPoints(g *component.Graph, instability, abstractness metrics.Map) []Point {
	points := make([]Point, 0, g.Len())
	for _, c := range g.Components() {
		points = append(points, Point{
			Component:    c.ID,
			Name:         c.Name,
			Instability:  instability[c.ID],
			Abstractness: abstractness[c.ID],
		})
	}
	return points
}

// ZoneOfPain returns the names of points in the zone of pain, in order.
func ZoneOfPain(points []Point) []string {
	return filter(points, Point.InZoneOfPain)
}

// ZoneOfUselessness returns the names of points in the zone of uselessness,
// in order.
func ZoneOfUselessness(points []Point) []string {
	return filter(points, Point.InZoneOfUselessness)
}

func filter(points []Point, keep func(Point) bool) []string {
	var out []string
	for _, p := range points {
		if keep(p) {
			out = append(out, p.DisplayName())
		}
	}
	return out
}
