package nodelink

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/driftdata/lineage/pkg/lineage"
)

func buildFixture() *lineage.Graph {
	return lineage.Build([]lineage.JobRecord{
		{
			ID: "j1", Name: "Transform",
			Inputs:  []lineage.EntityRef{{ID: "d1", Name: "raw"}},
			Outputs: []lineage.EntityRef{{ID: "d2"}},
		},
	})
}

func TestFromGraph(t *testing.T) {
	tests := []struct {
		name      string
		graph     *lineage.Graph
		wantNodes []string
		wantLinks int
	}{
		{
			name:      "Empty",
			graph:     lineage.Build(nil),
			wantNodes: []string{},
			wantLinks: 0,
		},
		{
			name:      "Simple",
			graph:     buildFixture(),
			wantNodes: []string{"d1", "d2", "j1"}, // sorted by ID
			wantLinks: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := FromGraph(tt.graph)
			if got := len(out.Nodes); got != len(tt.wantNodes) {
				t.Fatalf("nodes = %d, want %d", got, len(tt.wantNodes))
			}
			for i, n := range out.Nodes {
				if n.ID != tt.wantNodes[i] {
					t.Errorf("node[%d] = %s, want %s", i, n.ID, tt.wantNodes[i])
				}
			}
			if got := len(out.Links); got != tt.wantLinks {
				t.Errorf("links = %d, want %d", got, tt.wantLinks)
			}
		})
	}
}

func TestFromGraphPreservesLinkOrder(t *testing.T) {
	out := FromGraph(buildFixture())
	want := []Link{
		{Source: "d1", Target: "j1", Kind: lineage.EdgeKindReads},
		{Source: "j1", Target: "d2", Kind: lineage.EdgeKindWrites},
	}
	for i, l := range out.Links {
		if l != want[i] {
			t.Errorf("link[%d] = %v, want %v", i, l, want[i])
		}
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(buildFixture(), &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var decoded Export
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded.Nodes) != 3 || len(decoded.Links) != 2 {
		t.Errorf("round trip = %d nodes/%d links, want 3/2", len(decoded.Nodes), len(decoded.Links))
	}
	if !strings.Contains(buf.String(), `"kind": "reads"`) {
		t.Error("output missing reads link kind")
	}
	if !strings.Contains(buf.String(), `"type": "entity"`) {
		t.Error("output missing entity node type")
	}
}

func TestWriteJSONLabelsUnnamedNodes(t *testing.T) {
	// A ref without a display name must still export {id, type, label},
	// with the ID standing in as the label.
	g := lineage.Build([]lineage.JobRecord{
		{ID: "j1", Inputs: []lineage.EntityRef{{ID: "d1"}}},
	})

	var buf bytes.Buffer
	if err := WriteJSON(g, &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if !strings.Contains(buf.String(), `"label": "d1"`) {
		t.Errorf("output missing defaulted label:\n%s", buf.String())
	}

	for _, n := range FromGraph(g).Nodes {
		if n.Label == "" {
			t.Errorf("node %s exported without label", n.ID)
		}
	}
}

func TestExportJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lineage.json")
	if err := ExportJSON(buildFixture(), path); err != nil {
		t.Fatalf("ExportJSON: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var decoded Export
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded.Nodes) != 3 {
		t.Errorf("nodes = %d, want 3", len(decoded.Nodes))
	}

	if err := ExportJSON(buildFixture(), filepath.Join(t.TempDir(), "missing", "x.json")); err == nil {
		t.Error("expected error for unwritable path")
	}
}
