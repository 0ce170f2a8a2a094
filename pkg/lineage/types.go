package lineage

import "fmt"

// NodeType distinguishes the two vertex kinds of a lineage graph.
type NodeType int

const (
	// NodeTypeJob represents a pipeline job: a named processing unit that
	// declares the entities it reads and writes.
	NodeTypeJob NodeType = iota
	// NodeTypeEntity represents a data entity: a named data artifact
	// consumed or produced by jobs.
	NodeTypeEntity
)

// String returns the wire name of the node type ("job" or "entity").
func (t NodeType) String() string {
	if t == NodeTypeEntity {
		return "entity"
	}
	return "job"
}

// MarshalJSON encodes the node type as its wire name.
func (t NodeType) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.String() + `"`), nil
}

// UnmarshalJSON decodes a wire name ("job" or "entity") into a node type.
func (t *NodeType) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"job"`:
		*t = NodeTypeJob
	case `"entity"`:
		*t = NodeTypeEntity
	default:
		return fmt.Errorf("unknown node type %s", data)
	}
	return nil
}

// EdgeKind distinguishes the two edge directions of a lineage graph.
type EdgeKind int

const (
	// EdgeKindReads marks an entity→job edge: the job consumes the entity.
	EdgeKindReads EdgeKind = iota
	// EdgeKindWrites marks a job→entity edge: the job produces the entity.
	EdgeKindWrites
)

// String returns the wire name of the edge kind ("reads" or "writes").
func (k EdgeKind) String() string {
	if k == EdgeKindWrites {
		return "writes"
	}
	return "reads"
}

// MarshalJSON encodes the edge kind as its wire name.
func (k EdgeKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON decodes a wire name ("reads" or "writes") into an edge kind.
func (k *EdgeKind) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"reads"`:
		*k = EdgeKindReads
	case `"writes"`:
		*k = EdgeKindWrites
	default:
		return fmt.Errorf("unknown edge kind %s", data)
	}
	return nil
}

// Node represents a vertex in the lineage graph: either a pipeline job or a
// data entity. Nodes are identified by ID; the ID is stable across rebuilds
// for the same input identifier.
type Node struct {
	ID    string   `json:"id"`
	Type  NodeType `json:"type"`
	Label string   `json:"label,omitempty"` // Display label (defaults to ID)
}

// IsJob reports whether the node represents a pipeline job.
func (n Node) IsJob() bool { return n.Type == NodeTypeJob }

// IsEntity reports whether the node represents a data entity.
func (n Node) IsEntity() bool { return n.Type == NodeTypeEntity }

// DisplayLabel returns the label if set, otherwise the ID.
func (n Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// Edge represents a directed read or write relationship between an entity
// node and a job node. The endpoints always exist as nodes in the same graph;
// the builder materializes referenced nodes before connecting them.
type Edge struct {
	From string   `json:"from"`
	To   string   `json:"to"`
	Kind EdgeKind `json:"kind"`
}
