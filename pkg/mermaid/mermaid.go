package mermaid

import (
	"fmt"
	"strings"

	"github.com/driftdata/lineage/pkg/lineage"
)

// DefaultDirection is the flowchart direction used when Options.Direction
// is empty. Top-down reads naturally for lineage: sources above, sinks below.
const DefaultDirection = "TB"

// Options configures diagram rendering.
type Options struct {
	// MaxNodes caps the number of declaration lines (node and edge lines
	// combined) in the output. Zero means unlimited. The cap is a hard
	// counted cutoff over stable iteration order, not a sample; callers
	// needing a representative subgraph must pre-filter before rendering.
	MaxNodes int

	// Direction is the flowchart direction (TB, LR, BT, RL).
	// Defaults to [DefaultDirection].
	Direction string
}

// Render emits a Mermaid flowchart describing the lineage graph.
//
// Entity nodes are declared with stadium brackets and the entity class, job
// nodes with square brackets and the job class. Reads edges use a solid
// connector, writes edges a dotted one, so the two kinds stay visually
// distinct. Two classDef lines close the diagram.
//
// Labels are embedded in Mermaid's quoted-string syntax; any double quote
// inside a label is replaced with a single quote first, so a label can never
// break out of its quoting. Nodes are emitted sorted by ID and edges in
// insertion order, making output exact and assertable for small fixtures.
func Render(g *lineage.Graph, opts Options) string {
	direction := opts.Direction
	if direction == "" {
		direction = DefaultDirection
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "flowchart %s\n", direction)

	budget := opts.MaxNodes
	unlimited := budget <= 0

	for _, n := range g.Nodes() {
		if !unlimited && budget == 0 {
			break
		}
		sb.WriteString("    " + declareNode(n) + "\n")
		budget--
	}
	for _, e := range g.Edges() {
		if !unlimited && budget == 0 {
			break
		}
		sb.WriteString("    " + declareEdge(e) + "\n")
		budget--
	}

	sb.WriteString("    classDef entity fill:#d4e6f1,stroke:#2e86c1\n")
	sb.WriteString("    classDef job fill:#fdebd0,stroke:#ca6f1e\n")
	return sb.String()
}

func declareNode(n *lineage.Node) string {
	label := escapeLabel(n.DisplayLabel())
	if n.IsEntity() {
		return fmt.Sprintf("%s([\"%s\"]):::entity", sanitizeID(n.ID), label)
	}
	return fmt.Sprintf("%s[\"%s\"]:::job", sanitizeID(n.ID), label)
}

func declareEdge(e lineage.Edge) string {
	if e.Kind == lineage.EdgeKindWrites {
		return fmt.Sprintf("%s -. writes .-> %s", sanitizeID(e.From), sanitizeID(e.To))
	}
	return fmt.Sprintf("%s -- reads --> %s", sanitizeID(e.From), sanitizeID(e.To))
}

// escapeLabel makes a label safe for Mermaid's quoted-string node syntax.
func escapeLabel(s string) string {
	return strings.ReplaceAll(s, `"`, `'`)
}

// sanitizeID rewrites a node ID into a Mermaid-safe identifier. Mermaid
// identifiers cannot carry whitespace or bracket/quote characters; those are
// collapsed to underscores. Distinct IDs that sanitize to the same token are
// a caller concern; record IDs from the platform are alphanumeric with dots
// and dashes, which survive untouched.
func sanitizeID(id string) string {
	var sb strings.Builder
	sb.Grow(len(id))
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			sb.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	return sb.String()
}
