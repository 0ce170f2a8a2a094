// Package pkg provides the lineage graph engine used by the platform CLI.
//
// # Overview
//
// The CLI fetches pipeline-job records from the platform API and hands them
// to this engine, which materializes a directed graph of jobs and data
// entities and answers structural questions over it. The pkg directory is
// organized into:
//
//  1. [lineage] - Graph construction and queries (paths, dependencies)
//  2. [nodelink] - Generic {nodes, links} export for graph-drawing tools
//  3. [mermaid] - Bounded, escaped Mermaid flowchart rendering
//  4. [engine] - Build-once, query-many orchestration facade
//  5. [errors], [observability] - Coded errors and instrumentation hooks
//
// # Architecture
//
// The typical data flow:
//
//	Platform API job records
//	         ↓
//	    [lineage] package (build graph, trace paths, resolve dependencies)
//	         ↓
//	    [nodelink] / [mermaid] packages (export + diagram output)
//
// # Quick Start
//
// Build a graph and query it:
//
//	import (
//	    "github.com/driftdata/lineage/pkg/lineage"
//	    "github.com/driftdata/lineage/pkg/mermaid"
//	)
//
//	g := lineage.Build(records)
//	paths := g.TracePaths("in.raw-events", "out.daily-report")
//	deps := g.DependenciesOf("out.daily-report")
//	diagram := mermaid.Render(g, mermaid.Options{MaxNodes: 50})
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/lineage/...  # Specific package
//	go test -run Example       # Examples only
//
// [lineage]: https://pkg.go.dev/github.com/driftdata/lineage/pkg/lineage
// [nodelink]: https://pkg.go.dev/github.com/driftdata/lineage/pkg/nodelink
// [mermaid]: https://pkg.go.dev/github.com/driftdata/lineage/pkg/mermaid
// [engine]: https://pkg.go.dev/github.com/driftdata/lineage/pkg/engine
// [errors]: https://pkg.go.dev/github.com/driftdata/lineage/pkg/errors
// [observability]: https://pkg.go.dev/github.com/driftdata/lineage/pkg/observability
package pkg
