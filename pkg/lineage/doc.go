// Package lineage provides the data lineage graph at the core of the
// platform CLI: a directed graph connecting pipeline jobs to the data
// entities they read and write, with structural queries over it.
//
// # Overview
//
// The surrounding CLI fetches job records from the platform API and hands
// them to [Build], which materializes an immutable [Graph]. Every other
// operation is a read-only query against that graph: [Graph.TracePaths]
// enumerates simple paths between two nodes, [Graph.DependenciesOf] resolves
// the through-one-job upstream/downstream neighborhood of an entity, and
// [Graph.JobsUsing] lists the jobs touching an entity.
//
// # Basic Usage
//
// Build a graph from job records and query it:
//
//	g := lineage.Build(records)
//	paths := g.TracePaths("in.raw-events", "out.daily-report")
//	deps := g.DependenciesOf("out.daily-report")
//
// # Graph Model
//
// Nodes are typed ([NodeTypeJob] or [NodeTypeEntity]) and identified by the
// IDs carried in the source records. Edges are typed too: [EdgeKindReads]
// connects entity→job, [EdgeKindWrites] connects job→entity. Both type tags
// are closed enums so consumers can branch exhaustively.
//
// Cycles are legal data (a job may, directly or through other jobs, feed
// itself) and never crash a query: traversals carry per-search visited sets
// instead of relying on the structure being acyclic.
//
// # Error Model
//
// Expected absence is not an error. Unknown IDs, disconnected node pairs,
// and empty record collections all produce empty results (nil slices or nil
// pointers) rather than failures, and malformed records without an ID are
// skipped during the build so one bad record cannot sink the whole dataset.
package lineage
