package mermaid

import (
	"strings"
	"testing"

	"github.com/driftdata/lineage/pkg/lineage"
)

func buildFixture() *lineage.Graph {
	return lineage.Build([]lineage.JobRecord{
		{
			ID: "j1", Name: "Transform",
			Inputs:  []lineage.EntityRef{{ID: "d1", Name: "raw"}},
			Outputs: []lineage.EntityRef{{ID: "d2", Name: "clean"}},
		},
	})
}

func TestRender(t *testing.T) {
	got := Render(buildFixture(), Options{})

	want := strings.Join([]string{
		"flowchart TB",
		`    d1(["raw"]):::entity`,
		`    d2(["clean"]):::entity`,
		`    j1["Transform"]:::job`,
		"    d1 -- reads --> j1",
		"    j1 -. writes .-> d2",
		"    classDef entity fill:#d4e6f1,stroke:#2e86c1",
		"    classDef job fill:#fdebd0,stroke:#ca6f1e",
		"",
	}, "\n")

	if got != want {
		t.Errorf("Render() =\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderDirection(t *testing.T) {
	got := Render(lineage.Build(nil), Options{Direction: "LR"})
	if !strings.HasPrefix(got, "flowchart LR\n") {
		t.Errorf("Render() = %q, want LR header", got)
	}
}

func TestRenderEscapesQuotes(t *testing.T) {
	g := lineage.Build([]lineage.JobRecord{
		{ID: "j1", Name: `the "final" step`},
	})
	got := Render(g, Options{})

	if !strings.Contains(got, `j1["the 'final' step"]:::job`) {
		t.Errorf("Render() = %q, want escaped label", got)
	}
	// No label position may carry an unescaped double quote.
	for _, line := range strings.Split(got, "\n") {
		if trimmed := strings.Trim(line, " "); strings.Count(trimmed, `"`) > 2 {
			t.Errorf("line %q has more than one quoted span", line)
		}
	}
}

func TestRenderSanitizesIDs(t *testing.T) {
	g := lineage.Build([]lineage.JobRecord{
		{ID: "job 1", Inputs: []lineage.EntityRef{{ID: "in/table"}}},
	})
	got := Render(g, Options{})

	if !strings.Contains(got, "in_table -- reads --> job_1") {
		t.Errorf("Render() = %q, want sanitized edge", got)
	}
}

func TestRenderMaxNodes(t *testing.T) {
	records := []lineage.JobRecord{
		{ID: "j1", Inputs: []lineage.EntityRef{{ID: "d1"}}, Outputs: []lineage.EntityRef{{ID: "d2"}}},
		{ID: "j2", Inputs: []lineage.EntityRef{{ID: "d2"}}, Outputs: []lineage.EntityRef{{ID: "d3"}}},
	}
	g := lineage.Build(records) // 5 nodes, 4 edges

	tests := []struct {
		name     string
		maxNodes int
		wantDecl int
	}{
		{name: "Unlimited", maxNodes: 0, wantDecl: 9},
		{name: "NodesOnly", maxNodes: 3, wantDecl: 3},
		{name: "NodesAndSomeEdges", maxNodes: 7, wantDecl: 7},
		{name: "CapAboveTotal", maxNodes: 100, wantDecl: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(g, Options{MaxNodes: tt.maxNodes})

			lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
			// Header plus two classDef lines are always present.
			decl := len(lines) - 3
			if decl != tt.wantDecl {
				t.Errorf("declaration lines = %d, want %d", decl, tt.wantDecl)
			}
			if tt.maxNodes > 0 && decl > tt.maxNodes {
				t.Errorf("declaration lines = %d exceed cap %d", decl, tt.maxNodes)
			}
		})
	}
}

func TestRenderEmptyGraph(t *testing.T) {
	got := Render(lineage.Build(nil), Options{})
	want := "flowchart TB\n" +
		"    classDef entity fill:#d4e6f1,stroke:#2e86c1\n" +
		"    classDef job fill:#fdebd0,stroke:#ca6f1e\n"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}
