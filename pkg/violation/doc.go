// Package violation detects Stable Dependencies and Stable Abstractions
// principle violations along the edges of a component graph.
//
// A single traversal routine, [Check], serves both principles. It is
// parameterized by a metric map and a [Principle], whose predicate compares
// the metric of a dependent component (outer) with that of one of its direct
// dependencies (inner):
//
//	err := violation.Check(g, instability, violation.SDP)
//	err  = violation.Check(g, abstractness, violation.SAP)
//
// # Traversal
//
// The graph is walked as a forest: roots are taken from the first still
// unvisited component in insertion order, and each root starts a
// breadth-first traversal. Dependency identifiers that do not name a
// component are skipped. Every resolved edge leaving a dequeued component is
// evaluated, including edges to components already visited, so cycles are
// checked but never re-enqueued.
//
// Detection is fail-fast: the first violating edge ends the run with a
// [*Violation] naming its outer component. The order is a pure function of
// the graph's insertion order, so repeated runs report the same component.
package violation
