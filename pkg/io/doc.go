// Package io provides JSON and YAML import and export for component graphs.
//
// # Overview
//
// A graph file describes the components of a project and the intra-project
// dependencies each declares. It lets projects built with tools mainseq has
// no builder for be analysed, and lets a graph produced by a builder be
// saved, edited and re-analysed.
//
// # Format
//
// The format has one top-level array, in component order:
//
//	{
//	  "components": [
//	    {"id": "web", "dependencies": ["core"], "abstract": 0, "concrete": 12},
//	    {"id": "core", "name": "Core Domain", "source_roots": ["core/src"]}
//	  ]
//	}
//
// The same document in YAML:
//
//	components:
//	  - id: web
//	    dependencies: [core]
//	    abstract: 0
//	    concrete: 12
//	  - id: core
//	    name: Core Domain
//	    source_roots: [core/src]
//
// # Component Fields
//
// Required:
//   - id: Unique component identifier
//
// Optional:
//   - name: Display name used in reports
//   - dependencies: Identifiers of components this one depends on. Entries
//     naming no component are kept and count towards fan-out.
//   - source_roots: Directories to scan for abstractness. Relative paths are
//     resolved against the directory of the graph file.
//   - abstract, concrete: Precomputed file counts. When either is present the
//     sources are not scanned for this component.
//
// # Import
//
// [Import] dispatches on the file extension (.json, .yaml, .yml).
// [ReadJSON] and [ReadYAML] decode from any io.Reader. All of them return the
// graph and the precomputed counts; components without counts have no entry.
//
// # Export
//
// [WriteJSON], [WriteYAML] and [Export] write the same format. Exporting a
// graph and importing it again yields an identical graph.
package io
