// Package component provides the component graph analysed by mainseq.
//
// # Overview
//
// A [Graph] is an insertion-ordered mapping from a build component (a Maven
// module, a Go workspace module, or a node of an imported graph file) to the
// ordered list of intra-project components it declares a direct dependency
// on. Insertion order is significant: it fixes the order of report rows and
// the root order of the violation detector, which keeps every downstream
// computation deterministic.
//
// # Identifiers
//
// Components are keyed by a stable build identifier ([Component.ID]).
// Dependency lists store identifiers, not references, because the builders
// that produce a graph may encounter same-project artifacts that are not
// part of the analysed module set. Such identifiers stay in the list (they
// count towards fan-out) and are skipped by [Graph.Resolve] lookups:
//
//	g := component.New()
//	_ = g.Add(component.Component{ID: "api"}, "core", "external-sdk")
//	_ = g.Add(component.Component{ID: "core"})
//
//	g.Dependencies("api")      // [core external-sdk]
//	g.Resolve("external-sdk")  // false: not a component
//
// # Invariants
//
//   - IDs are unique and non-empty ([ErrInvalidComponentID], [ErrDuplicateComponent])
//   - A component never depends on itself ([ErrSelfDependency])
//   - Duplicate dependency identifiers are collapsed, so fan-out counts
//     distinct dependencies
//
// Cycles and disconnected subgraphs are allowed; [Graph.HasCycle] reports
// the former so callers can warn about them.
//
// A Graph is built once and read-only afterwards. It is not safe for
// concurrent mutation, but concurrent readers are fine once built.
package component
