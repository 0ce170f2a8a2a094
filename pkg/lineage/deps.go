package lineage

// DependencySide is one direction of an entity's neighborhood: the jobs
// directly attached to the entity on that side, and the entities one hop
// further, reached through those jobs.
type DependencySide struct {
	Jobs     []*Node `json:"jobs"`
	Entities []*Node `json:"entities"`
}

// DependencySet describes the through-one-job neighborhood of a data entity.
//
// Upstream is the producing side: the jobs that write the entity, and the
// entities those jobs read. Downstream is the consuming side: the jobs that
// read the entity, and the entities those jobs write. This is intentionally
// bounded at one job hop, not a transitive closure; full closure is
// obtainable by repeated calls or by [Graph.TracePaths].
type DependencySet struct {
	Upstream   DependencySide `json:"upstream"`
	Downstream DependencySide `json:"downstream"`
}

// DependenciesOf resolves the dependency neighborhood of the entity with the
// given ID. It returns nil when the ID is absent from the graph or names a
// job node; dependencies are only defined for entities.
//
// All four result lists are de-duplicated and ordered by edge insertion
// order, so output is stable for a fixed graph.
func (g *Graph) DependenciesOf(entityID string) *DependencySet {
	entity, ok := g.nodes[entityID]
	if !ok || !entity.IsEntity() {
		return nil
	}

	set := &DependencySet{}

	// Producing side: writers into the entity, then what those jobs read.
	producers := newNodeSet()
	for _, e := range g.incoming[entityID] {
		if e.Kind != EdgeKindWrites {
			continue
		}
		if job, ok := g.nodes[e.From]; ok && job.IsJob() {
			producers.add(job)
		}
	}
	set.Upstream.Jobs = producers.ordered()

	inputs := newNodeSet()
	for _, job := range set.Upstream.Jobs {
		for _, e := range g.incoming[job.ID] {
			if e.Kind != EdgeKindReads {
				continue
			}
			if src, ok := g.nodes[e.From]; ok && src.IsEntity() {
				inputs.add(src)
			}
		}
	}
	set.Upstream.Entities = inputs.ordered()

	// Consuming side: readers of the entity, then what those jobs write.
	consumers := newNodeSet()
	for _, e := range g.outgoing[entityID] {
		if e.Kind != EdgeKindReads {
			continue
		}
		if job, ok := g.nodes[e.To]; ok && job.IsJob() {
			consumers.add(job)
		}
	}
	set.Downstream.Jobs = consumers.ordered()

	outputs := newNodeSet()
	for _, job := range set.Downstream.Jobs {
		for _, e := range g.outgoing[job.ID] {
			if e.Kind != EdgeKindWrites {
				continue
			}
			if dst, ok := g.nodes[e.To]; ok && dst.IsEntity() {
				outputs.add(dst)
			}
		}
	}
	set.Downstream.Entities = outputs.ordered()

	return set
}

// JobsUsing returns every job connected to the entity in either direction,
// as reader or writer, de-duplicated. Returns nil when the entity is unused
// or absent.
func (g *Graph) JobsUsing(entityID string) []*Node {
	jobs := newNodeSet()
	for _, e := range g.incoming[entityID] {
		if job, ok := g.nodes[e.From]; ok && job.IsJob() {
			jobs.add(job)
		}
	}
	for _, e := range g.outgoing[entityID] {
		if job, ok := g.nodes[e.To]; ok && job.IsJob() {
			jobs.add(job)
		}
	}
	return jobs.ordered()
}

// nodeSet de-duplicates nodes by ID while preserving first-seen order.
type nodeSet struct {
	seen  map[string]bool
	nodes []*Node
}

func newNodeSet() *nodeSet {
	return &nodeSet{seen: make(map[string]bool)}
}

func (s *nodeSet) add(n *Node) {
	if s.seen[n.ID] {
		return
	}
	s.seen[n.ID] = true
	s.nodes = append(s.nodes, n)
}

func (s *nodeSet) ordered() []*Node { return s.nodes }
