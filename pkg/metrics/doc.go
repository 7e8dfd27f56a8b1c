// Package metrics computes Robert C. Martin's Instability and Abstractness
// metrics for every component of a [component.Graph].
//
// # Instability
//
// I(c) = fanOut / (fanIn + fanOut), where fanOut is the length of c's
// dependency list and fanIn the number of other components listing c.
// A component with no dependencies is maximally stable: I = 0 regardless of
// fan-in ([StableSentinel]). Consequently such a component can never be the
// outer end of a Stable Dependencies violation.
//
// # Abstractness
//
// A(c) = abstract / (abstract + concrete), using per-component file counts
// supplied by a [Classifier]. A component without classifiable sources
// (an aggregator module, or a language no rule understands) gets A = 0
// ([NotApplicableSentinel]). That zero is a "not applicable" marker, not a
// measured minimum, and reports label it as such via
// [Classification.Applicable].
//
// Both calculators are single-threaded passes over an already built graph and
// produce a fresh [Map] per call.
//
// [component.Graph]: github.com/matzehuels/mainseq/pkg/component.Graph
package metrics
