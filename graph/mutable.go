package graph

// Mutable is the working graph of the generic binary partition tree builder.
// It starts as a copy of an Undirected graph, preserving vertex and edge
// ids, and then supports the three mutations agglomerative merging needs:
// growing a fresh vertex per merge, tombstoning edges, and rewiring a live
// edge to the merged vertex.
//
// Edge ids are never renumbered and tombstoned ids are never reused, so ids
// remain valid indices into caller-side per-edge arrays for the whole run.
//
// Incidence is kept as one intrusive doubly-linked list per vertex over
// edge halves (edge e contributes half 2e on its first endpoint and half
// 2e+1 on its second), which gives O(1) unlinking by edge id and a fully
// deterministic iteration order: original insertion order, with rewired
// edges appended at the tail of their new vertex in rewiring order.
type Mutable struct {
	// endpoints[e] holds the current endpoints of edge e; stale for
	// tombstoned edges.
	endpoints [][2]int
	// present[e] reports whether edge e is live.
	present []bool
	// next/prev chain edge halves within a vertex incidence list; -1 ends.
	next []int
	prev []int
	// head/tail of each vertex's incidence list; -1 when empty.
	head []int
	tail []int
	// numLive tracks the number of live edges.
	numLive int
}

// NewMutableFrom copies g into a fresh working graph with identical vertex
// and edge ids. The source is not referenced afterwards.
// Complexity: O(n + m).
func NewMutableFrom(g *Undirected) *Mutable {
	n, m := g.NumVertices(), g.NumEdges()
	mg := &Mutable{
		endpoints: make([][2]int, m),
		present:   make([]bool, m),
		next:      make([]int, 2*m),
		prev:      make([]int, 2*m),
		head:      make([]int, n),
		tail:      make([]int, n),
		numLive:   m,
	}
	for v := 0; v < n; v++ {
		mg.head[v] = -1
		mg.tail[v] = -1
	}
	// Re-link every edge in id order so the initial incidence order matches
	// the source graph's insertion order.
	for e := 0; e < m; e++ {
		u, v := g.Endpoints(e)
		mg.endpoints[e] = [2]int{u, v}
		mg.present[e] = true
		mg.link(2*e, u)
		mg.link(2*e+1, v)
	}

	return mg
}

// NumVertices returns the vertex count, including vertices added after
// construction. Complexity: O(1).
func (mg *Mutable) NumVertices() int { return len(mg.head) }

// NumEdges returns the size of the edge id table, tombstoned slots
// included. Complexity: O(1).
func (mg *Mutable) NumEdges() int { return len(mg.present) }

// NumLiveEdges returns the number of non-tombstoned edges. Complexity: O(1).
func (mg *Mutable) NumLiveEdges() int { return mg.numLive }

// EdgePresent reports whether edge e is live. Complexity: O(1).
func (mg *Mutable) EdgePresent(e int) bool {
	return e >= 0 && e < len(mg.present) && mg.present[e]
}

// AddVertex appends a fresh isolated vertex and returns its id. No edge id
// is invalidated. Complexity: amortised O(1).
func (mg *Mutable) AddVertex() int {
	v := len(mg.head)
	mg.head = append(mg.head, -1)
	mg.tail = append(mg.tail, -1)

	return v
}

// Endpoints returns the current endpoints of edge e and whether the edge is
// live. Tombstoned or out-of-range ids yield ok == false. Complexity: O(1).
func (mg *Mutable) Endpoints(e int) (u, v int, ok bool) {
	if !mg.EdgePresent(e) {
		return 0, 0, false
	}
	p := mg.endpoints[e]

	return p[0], p[1], true
}

// OtherEndpoint returns the endpoint of live edge e that is not v.
// Complexity: O(1).
func (mg *Mutable) OtherEndpoint(e, v int) int {
	p := mg.endpoints[e]
	if p[0] == v {
		return p[1]
	}

	return p[0]
}

// RemoveEdge tombstones edge e. Removing an already-absent edge is a no-op.
// Complexity: O(1).
func (mg *Mutable) RemoveEdge(e int) {
	if !mg.EdgePresent(e) {
		return
	}
	mg.unlink(2*e, mg.endpoints[e][0])
	mg.unlink(2*e+1, mg.endpoints[e][1])
	mg.present[e] = false
	mg.numLive--
}

// SetEdge relocates the live edge e so that it connects u and v. Both halves
// are unlinked from their current vertices and appended to the tails of the
// new ones, so a rewired edge iterates after the edges already incident to
// its new endpoints. The edge id is unchanged. Complexity: O(1).
func (mg *Mutable) SetEdge(e, u, v int) {
	mg.unlink(2*e, mg.endpoints[e][0])
	mg.unlink(2*e+1, mg.endpoints[e][1])
	mg.endpoints[e] = [2]int{u, v}
	mg.link(2*e, u)
	mg.link(2*e+1, v)
}

// VisitIncident calls fn for each live edge incident to v, in deterministic
// list order, until fn returns false. The graph must not be mutated during
// the walk. Complexity: O(degree(v)).
func (mg *Mutable) VisitIncident(v int, fn func(e int) bool) {
	for h := mg.head[v]; h != -1; h = mg.next[h] {
		if !fn(h / 2) {
			return
		}
	}
}

// IncidentEdges returns the live edges incident to v as a fresh slice, in
// deterministic list order. Complexity: O(degree(v)).
func (mg *Mutable) IncidentEdges(v int) []int {
	var edges []int
	mg.VisitIncident(v, func(e int) bool {
		edges = append(edges, e)

		return true
	})

	return edges
}

// link appends edge half h to the incidence list of vertex v.
func (mg *Mutable) link(h, v int) {
	mg.prev[h] = mg.tail[v]
	mg.next[h] = -1
	if mg.tail[v] != -1 {
		mg.next[mg.tail[v]] = h
	} else {
		mg.head[v] = h
	}
	mg.tail[v] = h
}

// unlink removes edge half h from the incidence list of vertex v.
func (mg *Mutable) unlink(h, v int) {
	if mg.prev[h] != -1 {
		mg.next[mg.prev[h]] = mg.next[h]
	} else {
		mg.head[v] = mg.next[h]
	}
	if mg.next[h] != -1 {
		mg.prev[mg.next[h]] = mg.prev[h]
	} else {
		mg.tail[v] = mg.prev[h]
	}
}
