package lineage

import (
	"encoding/json"

	"github.com/charmbracelet/log"
)

// EntityRef names a data entity referenced by a job record, as delivered by
// the platform API.
type EntityRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
}

// JobRecord is one pipeline job as delivered by the platform API: the job's
// identity plus the entities it reads (Inputs) and writes (Outputs). Both
// lists are optional; a record with neither yields an isolated job node.
type JobRecord struct {
	ID      string      `json:"id"`
	Name    string      `json:"name,omitempty"`
	Inputs  []EntityRef `json:"inputs,omitempty"`
	Outputs []EntityRef `json:"outputs,omitempty"`
}

// UnmarshalRecords decodes a JSON array of job records.
// This is the wire shape the surrounding CLI hands over after fetching and
// paginating the platform's job listing.
func UnmarshalRecords(data []byte) ([]JobRecord, error) {
	var records []JobRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// Build materializes a lineage graph from a collection of job records.
//
// For every record it creates (or reuses) a job node, then an entity node per
// input and output reference, connected with a reads edge (entity→job) per
// input and a writes edge (job→entity) per output. Node identity is by ID;
// when the same ID appears with different display names, the first-seen name
// wins and later names are ignored. A record or reference that supplies no
// name yields a node labeled with its ID. Records and references without an
// ID are skipped, never fatal: one malformed record must not prevent lineage
// for the rest of the dataset.
//
// An empty record collection yields an empty, fully usable graph.
func Build(records []JobRecord) *Graph {
	g, _ := build(records, nil)
	return g
}

// BuildWithLogger is the logger-carrying variant of [Build]. It warns once
// per skipped record and returns the skip count alongside the graph, for
// callers that surface build statistics.
func BuildWithLogger(records []JobRecord, logger *log.Logger) (*Graph, int) {
	return build(records, logger)
}

func build(records []JobRecord, logger *log.Logger) (*Graph, int) {
	g := newGraph()
	skipped := 0

	for i, rec := range records {
		if rec.ID == "" {
			skipped++
			if logger != nil {
				logger.Warn("Skipping job record without ID", "index", i)
			}
			continue
		}
		g.addNode(Node{ID: rec.ID, Type: NodeTypeJob, Label: rec.Name})

		for _, in := range rec.Inputs {
			if in.ID == "" {
				continue
			}
			g.addNode(Node{ID: in.ID, Type: NodeTypeEntity, Label: in.Name})
			g.addEdge(Edge{From: in.ID, To: rec.ID, Kind: EdgeKindReads})
		}
		for _, out := range rec.Outputs {
			if out.ID == "" {
				continue
			}
			g.addNode(Node{ID: out.ID, Type: NodeTypeEntity, Label: out.Name})
			g.addEdge(Edge{From: rec.ID, To: out.ID, Kind: EdgeKindWrites})
		}
	}

	return g, skipped
}
