// Package nodelink flattens lineage graphs into the generic node-link shape
// consumed by external graph-drawing tools.
//
// The export is a direct, order-preserving hand-off: every node and every
// edge of the built graph appears exactly once, nodes sorted by ID and links
// in edge insertion order. No filtering, aggregation, or layout happens here.
//
//	export := nodelink.FromGraph(g)
//	err := nodelink.ExportJSON(g, "lineage.json")
//
// The JSON wire format:
//
//	{
//	  "nodes": [{"id": "d1", "type": "entity", "label": "Raw events"}],
//	  "links": [{"source": "d1", "target": "j1", "kind": "reads"}]
//	}
package nodelink
