package nodelink

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/driftdata/lineage/pkg/lineage"
)

// Link is one directed relationship in the export, in the source/target
// naming expected by node-link drawing front ends.
type Link struct {
	Source string           `json:"source"`
	Target string           `json:"target"`
	Kind   lineage.EdgeKind `json:"kind"`
}

// Export is the flattened node-link shape handed to external graph-drawing
// tools. It carries the graph without filtering or aggregation and performs
// no layout; positioning is the consumer's concern.
type Export struct {
	Nodes []lineage.Node `json:"nodes"`
	Links []Link         `json:"links"`
}

// FromGraph flattens a lineage graph into its node-link export.
// Nodes are sorted by ID and links keep edge insertion order, so the export
// is deterministic for a fixed graph.
func FromGraph(g *lineage.Graph) Export {
	nodes := g.Nodes()
	edges := g.Edges()

	out := Export{
		Nodes: make([]lineage.Node, len(nodes)),
		Links: make([]Link, len(edges)),
	}
	for i, n := range nodes {
		out.Nodes[i] = *n
	}
	for i, e := range edges {
		out.Links[i] = Link{Source: e.From, Target: e.To, Kind: e.Kind}
	}
	return out
}

// WriteJSON flattens the graph and writes it to w as indented JSON.
func WriteJSON(g *lineage.Graph, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes the graph's node-link export to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *lineage.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}
