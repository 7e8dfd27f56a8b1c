// Package source classifies component source files as abstract or concrete.
//
// A [Scanner] walks the source roots of a component and hands every file to
// the first [Rule] whose extension matches. The rule decides whether the
// file declares an abstract type. Counts of abstract and concrete files feed
// the abstractness metric.
//
// Built-in rules:
//
//   - [Java]: a file declaring an abstract class, an interface or an
//     annotation type
//   - [Go]: a non-test file declaring an interface type
//
// Hidden directories, vendor, testdata and node_modules are never entered.
// Rules may name a boundary file (go.mod for [Go]); a subdirectory holding
// one belongs to another module and is skipped.
//
// [Scanner.Classify] implements metrics.Classifier for a single component.
// [Scanner.ClassifyAll] scans every component of a graph concurrently and
// returns the counts as a metrics.Counts.
package source
