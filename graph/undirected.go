package graph

// Undirected is an immutable-after-build undirected graph with dense integer
// vertex ids [0, n) and dense edge ids [0, m) assigned in insertion order.
// It is the read-only input contract of the hierarchy builders: edge ids
// index directly into caller-owned weight arrays.
//
// The zero value is not usable; construct with NewUndirected.
type Undirected struct {
	numVertices int
	// endpoints[e] holds the two endpoints of edge e, in insertion order.
	endpoints [][2]int
	// incidence[v] lists the edges incident to v, in insertion order.
	incidence [][]int
}

// NewUndirected creates a graph with n isolated vertices and no edges.
// Returns ErrVertexCount if n is negative.
// Complexity: O(n).
func NewUndirected(n int) (*Undirected, error) {
	if n < 0 {
		return nil, ErrVertexCount
	}

	return &Undirected{
		numVertices: n,
		incidence:   make([][]int, n),
	}, nil
}

// AddEdge inserts an undirected edge {u, v} and returns its id. Ids are
// assigned sequentially from 0 in insertion order and never change.
// Returns ErrVertexRange if an endpoint is out of range, ErrSelfLoop if
// u == v. Parallel edges are permitted and receive distinct ids.
// Complexity: amortised O(1).
func (g *Undirected) AddEdge(u, v int) (int, error) {
	// 1. Validate endpoints.
	if u < 0 || u >= g.numVertices || v < 0 || v >= g.numVertices {
		return 0, ErrVertexRange
	}
	if u == v {
		return 0, ErrSelfLoop
	}
	// 2. Record the edge and index it from both endpoints.
	e := len(g.endpoints)
	g.endpoints = append(g.endpoints, [2]int{u, v})
	g.incidence[u] = append(g.incidence[u], e)
	g.incidence[v] = append(g.incidence[v], e)

	return e, nil
}

// NumVertices returns the number of vertices. Complexity: O(1).
func (g *Undirected) NumVertices() int { return g.numVertices }

// NumEdges returns the number of edges. Complexity: O(1).
func (g *Undirected) NumEdges() int { return len(g.endpoints) }

// Endpoints returns the two endpoints of edge e, in the order they were
// passed to AddEdge. e must be a valid edge id in [0, NumEdges()).
// Complexity: O(1).
func (g *Undirected) Endpoints(e int) (int, int) {
	p := g.endpoints[e]

	return p[0], p[1]
}

// OtherEndpoint returns the endpoint of edge e that is not v.
// e must be a valid edge id and v one of its endpoints.
// Complexity: O(1).
func (g *Undirected) OtherEndpoint(e, v int) int {
	p := g.endpoints[e]
	if p[0] == v {
		return p[1]
	}

	return p[0]
}

// IncidentEdges returns the ids of the edges incident to v, in insertion
// order. The returned slice is the graph's internal index: callers must not
// modify it. Complexity: O(1).
func (g *Undirected) IncidentEdges(v int) []int {
	return g.incidence[v]
}

// Degree returns the number of edges incident to v. Complexity: O(1).
func (g *Undirected) Degree(v int) int {
	return len(g.incidence[v])
}
