// Package pkg provides the core libraries for mainseq package metrics.
//
// # Overview
//
// mainseq measures how the modules of a multi-module build relate to Robert
// C. Martin's main sequence. Every module gets an instability I (how much it
// depends on others relative to how much others depend on it) and an
// abstractness A (the share of its source files declaring abstract types).
// A module's distance from the main sequence is |I + A - 1|.
//
// # Architecture
//
// The typical data flow:
//
//	pom.xml reactor / go.work / graph file
//	         ↓
//	    [build] or [io] (component graph)
//	         ↓
//	    [source] (abstract and concrete file counts)
//	         ↓
//	    [analysis] ([metrics], [statistic], [violation])
//	         ↓
//	    [report] (text, JSON, DOT, SVG)
//
// # Quick Start
//
// Analyze a Maven reactor:
//
//	import (
//	    "context"
//	    "os"
//
//	    "github.com/matzehuels/mainseq/pkg/analysis"
//	    "github.com/matzehuels/mainseq/pkg/build"
//	    "github.com/matzehuels/mainseq/pkg/build/maven"
//	    "github.com/matzehuels/mainseq/pkg/report"
//	    "github.com/matzehuels/mainseq/pkg/source"
//	)
//
//	ctx := context.Background()
//
//	// 1. Build the component graph
//	g, _ := build.Run(ctx, maven.Builder{}, "./reactor")
//
//	// 2. Classify sources
//	counts, _ := source.NewScanner().ClassifyAll(ctx, g)
//
//	// 3. Analyze
//	res, _ := analysis.NewRunner(nil).Run(ctx, g, counts)
//
//	// 4. Write the report
//	_ = report.WriteText(os.Stdout, res)
//
// # Main Packages
//
// ## Metrics
//
// [component] - Ordered component graph. Dependencies are identifiers and may
// name components outside the graph.
//
// [metrics] - Instability and abstractness calculators.
//
// [violation] - Breadth-first detector for the Stable Dependencies and Stable
// Abstractions principles.
//
// [statistic] - Points on the abstractness/instability plane, zones of
// exclusion and distance statistics.
//
// [analysis] - Runs a complete analysis over a graph.
//
// ## Inputs
//
// [build] - Component graphs from build manifests: [build/maven] for Maven
// reactors and [build/golang] for Go workspaces.
//
// [source] - Classifies source files as abstract or concrete.
//
// [io] - JSON and YAML graph files.
//
// ## Outputs
//
// [report] - The columnar text report, a JSON report and Graphviz diagrams.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...             # All tests
//	go test ./pkg/violation/...   # Specific package
//	go test -run Example ./pkg/... # Examples only
//
// [component]: https://pkg.go.dev/github.com/matzehuels/mainseq/pkg/component
// [metrics]: https://pkg.go.dev/github.com/matzehuels/mainseq/pkg/metrics
// [violation]: https://pkg.go.dev/github.com/matzehuels/mainseq/pkg/violation
// [statistic]: https://pkg.go.dev/github.com/matzehuels/mainseq/pkg/statistic
// [analysis]: https://pkg.go.dev/github.com/matzehuels/mainseq/pkg/analysis
// [build]: https://pkg.go.dev/github.com/matzehuels/mainseq/pkg/build
// [build/maven]: https://pkg.go.dev/github.com/matzehuels/mainseq/pkg/build/maven
// [build/golang]: https://pkg.go.dev/github.com/matzehuels/mainseq/pkg/build/golang
// [source]: https://pkg.go.dev/github.com/matzehuels/mainseq/pkg/source
// [io]: https://pkg.go.dev/github.com/matzehuels/mainseq/pkg/io
// [report]: https://pkg.go.dev/github.com/matzehuels/mainseq/pkg/report
package pkg
