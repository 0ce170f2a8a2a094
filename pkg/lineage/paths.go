package lineage

// Path is an ordered walk through the graph from one node to another,
// generally alternating between entity and job nodes. Distance is the number
// of edges traversed (len(Nodes) - 1). A Path never repeats a node.
type Path struct {
	Nodes    []*Node `json:"nodes"`
	Distance int     `json:"distance"`
}

// TracePaths enumerates every simple path from fromID to toID following edge
// direction. It returns nil when either ID is absent or when no directed
// path connects them; absence is an expected answer, not an error.
//
// The search is an exhaustive depth-first traversal with an on-path visited
// set: a node already on the current path is never revisited, so enumeration
// terminates even when the graph contains cycles. Neighbors are expanded in
// edge insertion order, making the result order stable for a fixed graph;
// callers should rely on that only for reproducibility, not correctness.
//
// Path enumeration is exponential in the worst case on densely connected
// graphs. Treat this as best-effort on production-scale graphs, or pre-filter
// the graph before tracing.
func (g *Graph) TracePaths(fromID, toID string) []Path {
	if _, ok := g.nodes[fromID]; !ok {
		return nil
	}
	if _, ok := g.nodes[toID]; !ok {
		return nil
	}

	var paths []Path
	onPath := map[string]bool{fromID: true}
	current := []string{fromID}

	var dfs func(id string)
	dfs = func(id string) {
		if id == toID {
			paths = append(paths, g.pathFromIDs(current))
			return
		}
		for _, e := range g.outgoing[id] {
			if onPath[e.To] {
				continue
			}
			onPath[e.To] = true
			current = append(current, e.To)
			dfs(e.To)
			current = current[:len(current)-1]
			delete(onPath, e.To)
		}
	}
	dfs(fromID)

	return paths
}

// pathFromIDs resolves a trail of node IDs into a Path with its node
// pointers and edge distance.
func (g *Graph) pathFromIDs(ids []string) Path {
	nodes := make([]*Node, len(ids))
	for i, id := range ids {
		nodes[i] = g.nodes[id]
	}
	return Path{Nodes: nodes, Distance: len(nodes) - 1}
}

// NodeIDs extracts the ID from each node in a slice, preserving order.
func NodeIDs(nodes []*Node) []string {
	ids := make([]string, len(nodes))
	for i, n := range nodes {
		ids[i] = n.ID
	}
	return ids
}

// IDs returns the node IDs along the path, in traversal order.
func (p Path) IDs() []string { return NodeIDs(p.Nodes) }
