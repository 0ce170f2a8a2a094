// Package engine provides the build-once, query-many facade over the
// lineage graph, for use by the surrounding CLI.
//
// An [Engine] owns the current graph snapshot. [Engine.Build] materializes a
// fresh graph from job records and swaps it in wholesale; every query method
// reads the snapshot without mutating it. Rebuilding rather than mutating is
// what makes the snapshot safe to hand to concurrent readers.
//
//	eng := engine.New(logger)
//	eng.Build(ctx, records)
//	paths, err := eng.TracePaths("in.raw", "out.report")
//	diagram, err := eng.RenderDiagram(ctx, mermaid.Options{MaxNodes: 50})
//
// Queries before the first build fail with a GRAPH_NOT_BUILT coded error;
// expected absence inside a built graph (unknown IDs, no connecting path)
// returns empty results instead.
package engine
