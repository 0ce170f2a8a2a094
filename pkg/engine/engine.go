package engine

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/driftdata/lineage/pkg/errors"
	"github.com/driftdata/lineage/pkg/lineage"
	"github.com/driftdata/lineage/pkg/mermaid"
	"github.com/driftdata/lineage/pkg/nodelink"
	"github.com/driftdata/lineage/pkg/observability"
)

// Stats contains build statistics for the current graph snapshot.
type Stats struct {
	Records   int           // Job records received
	Skipped   int           // Records dropped for missing IDs
	Nodes     int           // Nodes materialized
	Edges     int           // Edges materialized
	BuildTime time.Duration // Wall time of the build
}

// Engine holds the current lineage graph snapshot and answers queries
// against it. The graph is write-once: [Engine.Build] replaces the snapshot
// wholesale, it never mutates the previous one, so readers holding the old
// [lineage.Graph] keep a consistent view.
//
// The Engine is stateless beyond the snapshot, its stats, and the logger.
// Queries issued before the first build return a GRAPH_NOT_BUILT error;
// that is a programming-contract violation in the caller, not a recoverable
// runtime condition.
type Engine struct {
	graph  *lineage.Graph
	stats  Stats
	logger *log.Logger
}

// New creates an engine with the given logger.
// If logger is nil, the default logger is used.
func New(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	return &Engine{logger: logger}
}

// Build materializes a fresh graph from the job records and makes it the
// current snapshot. Malformed records (no ID) are skipped with a warning and
// counted in [Engine.Stats]; they never abort the build.
func (e *Engine) Build(ctx context.Context, records []lineage.JobRecord) *lineage.Graph {
	observability.Engine().OnBuildStart(ctx, len(records))
	start := time.Now()

	g, skipped := lineage.BuildWithLogger(records, e.logger)

	e.graph = g
	e.stats = Stats{
		Records:   len(records),
		Skipped:   skipped,
		Nodes:     g.NodeCount(),
		Edges:     g.EdgeCount(),
		BuildTime: time.Since(start),
	}

	e.logger.Debug("Built lineage graph",
		"records", e.stats.Records,
		"skipped", e.stats.Skipped,
		"nodes", e.stats.Nodes,
		"edges", e.stats.Edges,
		"duration", e.stats.BuildTime.Round(time.Millisecond))
	observability.Engine().OnBuildComplete(ctx, e.stats.Nodes, e.stats.Edges, e.stats.Skipped, e.stats.BuildTime)

	return g
}

// Stats returns the statistics of the most recent build.
// The zero value is returned before any build.
func (e *Engine) Stats() Stats { return e.stats }

// Graph returns the current snapshot, or a GRAPH_NOT_BUILT error before the
// first build.
func (e *Engine) Graph() (*lineage.Graph, error) {
	if e.graph == nil {
		return nil, errors.New(errors.ErrCodeGraphNotBuilt, "no lineage graph built yet, call Build first")
	}
	return e.graph, nil
}

// TracePaths enumerates all simple paths between two node IDs on the current
// snapshot. Unknown IDs yield an empty result, not an error.
func (e *Engine) TracePaths(fromID, toID string) ([]lineage.Path, error) {
	g, err := e.Graph()
	if err != nil {
		return nil, err
	}
	return g.TracePaths(fromID, toID), nil
}

// DependenciesOf resolves the upstream/downstream neighborhood of an entity
// on the current snapshot. A nil set means the ID is absent or names a job.
func (e *Engine) DependenciesOf(entityID string) (*lineage.DependencySet, error) {
	g, err := e.Graph()
	if err != nil {
		return nil, err
	}
	return g.DependenciesOf(entityID), nil
}

// JobsUsing lists the jobs reading or writing an entity on the current
// snapshot.
func (e *Engine) JobsUsing(entityID string) ([]*lineage.Node, error) {
	g, err := e.Graph()
	if err != nil {
		return nil, err
	}
	return g.JobsUsing(entityID), nil
}

// Export flattens the current snapshot into its node-link hand-off shape.
func (e *Engine) Export() (nodelink.Export, error) {
	g, err := e.Graph()
	if err != nil {
		return nodelink.Export{}, err
	}
	return nodelink.FromGraph(g), nil
}

// RenderDiagram renders the current snapshot as Mermaid flowchart text.
// A negative MaxNodes is rejected with an INVALID_INPUT error; zero means
// unlimited.
func (e *Engine) RenderDiagram(ctx context.Context, opts mermaid.Options) (string, error) {
	if opts.MaxNodes < 0 {
		return "", errors.New(errors.ErrCodeInvalidInput, "max nodes must not be negative: %d", opts.MaxNodes)
	}

	g, err := e.Graph()
	if err != nil {
		observability.Engine().OnRenderComplete(ctx, 0, 0, err)
		return "", err
	}

	start := time.Now()
	out := mermaid.Render(g, opts)
	observability.Engine().OnRenderComplete(ctx, strings.Count(out, "\n"), time.Since(start), nil)
	return out, nil
}
