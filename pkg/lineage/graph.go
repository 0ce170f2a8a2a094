package lineage

import "slices"

// Graph is a directed lineage graph connecting pipeline jobs to the data
// entities they read and write. Nodes are stored arena-style in a map keyed
// by ID, so cycles (a job feeding itself through other jobs) are ordinary
// data; traversal safety comes from per-search visited sets, not from the
// structure forbidding cycles.
//
// A Graph is immutable once built: [Build] is the only producer, and all
// query methods are read-only. To hand a new version to concurrent readers,
// rebuild and swap rather than mutating in place.
type Graph struct {
	nodes    map[string]*Node
	edges    []Edge
	outgoing map[string][]Edge // from node ID -> edges leaving it
	incoming map[string][]Edge // to node ID -> edges entering it
}

func newGraph() *Graph {
	return &Graph{
		nodes:    make(map[string]*Node),
		outgoing: make(map[string][]Edge),
		incoming: make(map[string][]Edge),
	}
}

// addNode inserts a node, reusing the existing one when the ID is already
// present: the first-seen node, and with it the first-seen label, wins.
// A node without a display name gets its ID as label, so every materialized
// node carries a usable label on the wire.
// Empty IDs are the builder's responsibility to filter before calling.
func (g *Graph) addNode(n Node) {
	if n.ID == "" {
		return
	}
	if _, exists := g.nodes[n.ID]; exists {
		return
	}
	if n.Label == "" {
		n.Label = n.ID
	}
	node := &n
	g.nodes[node.ID] = node
}

// addEdge connects two nodes. The builder materializes both endpoints before
// connecting them, so an edge is never created to a dangling ID.
func (g *Graph) addEdge(e Edge) {
	g.edges = append(g.edges, e)
	g.outgoing[e.From] = append(g.outgoing[e.From], e)
	g.incoming[e.To] = append(g.incoming[e.To], e)
}

// Node returns the node with the given ID and true, or nil and false if the
// ID is not part of the graph.
func (g *Graph) Node(id string) (*Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns all nodes sorted by ID for deterministic iteration.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		nodes = append(nodes, n)
	}
	slices.SortFunc(nodes, func(a, b *Node) int {
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	return nodes
}

// Edges returns a copy of all edges in insertion order. Insertion order is
// the stable tie-break for all deterministic output.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Outgoing returns the edges leaving the node in insertion order.
// The returned slice is a read-only view; do not modify it.
// Returns nil if the node has no outgoing edges or doesn't exist.
func (g *Graph) Outgoing(id string) []Edge { return g.outgoing[id] }

// Incoming returns the edges entering the node in insertion order.
// The returned slice is a read-only view; do not modify it.
// Returns nil if the node has no incoming edges or doesn't exist.
func (g *Graph) Incoming(id string) []Edge { return g.incoming[id] }
