// Package report writes analysis results.
//
// Three outputs are available:
//
//   - [WriteText]: the fixed-width metrics report, one row per component,
//     followed by the zones of exclusion and distance statistics
//   - [WriteJSON]: a machine-readable report with per-component fan-in,
//     fan-out, metrics, zones and violations
//   - [ToDOT] and [RenderSVG]: the component graph as a Graphviz diagram,
//     nodes coloured by zone and edges that break the Stable Dependencies
//     Principle drawn in red
//
// [WriteFile] writes any of them to a path, creating parent directories.
//
// # Text Layout
//
// Rows use four 30-character columns. Component names longer than 30
// characters are truncated. Numbers are printed with the shortest
// representation that round-trips, always with a fractional part:
//
//	COMPONENT                      INSTABILITY                    ABSTRACTION                    DISTANCE FROM MAIN SEQUENCE
//	========================================================================================================================
//
//	module1                        1.0                            0.0                            0.0
//
// The zones section is omitted when both zones are empty.
package report
