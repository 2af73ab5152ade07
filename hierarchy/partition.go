// Package hierarchy: generic binary partition tree (heap-driven
// agglomeration with a pluggable weighting policy).
package hierarchy

import (
	"math"

	"github.com/katalvlaran/hierarch/binheap"
	"github.com/katalvlaran/hierarch/graph"
	"github.com/katalvlaran/hierarch/tree"
)

// NewNeighbour describes one vertex adjacent to a freshly merged pair, as
// handed to the Weighter. Edge1 is the edge linking the first-encountered
// merged region to the neighbour; Edge2 is the parallel edge from the other
// merged region, or -1 when only one exists. The Weighter must write
// NewWeight — the weight of the surviving edge between the merged region
// and this neighbour.
type NewNeighbour struct {
	// Neighbour is the adjacent vertex id.
	Neighbour int
	// Edge1 is the surviving edge id; it will be rewired to the new region.
	Edge1 int
	// Edge2 is the parallel edge id, or -1 if the neighbour touched only
	// one of the merged regions. It will be removed after weighting.
	Edge2 int
	// NewWeight is the output slot: the new weight of Edge1.
	NewWeight float64
}

// NumEdges returns how many edges linked the merged pair to this neighbour
// (1 or 2).
func (nn *NewNeighbour) NumEdges() int {
	if nn.Edge2 < 0 {
		return 1
	}

	return 2
}

// Weighter computes the new weights of the edges incident to a merged
// region. Apply receives the working graph (before rewiring), the fusion
// edge id, the new region id, the two merged region ids and the neighbour
// records; it must set NewWeight on every record. Implementations usually
// mirror per-edge state indexed by edge id and refresh it at Edge1 so later
// merges observe current values.
type Weighter interface {
	Apply(g *graph.Mutable, fusionEdge, newRegion, region1, region2 int, neighbours []NewNeighbour)
}

// BinaryPartitionTree computes a binary partition tree by iterated cheapest
// merges, re-weighting the edges around every merge through the supplied
// Weighter. With MinLinkage and all-distinct weights this reproduces
// BPTCanonical's hierarchy (at higher cost); when weights tie, a rewired edge
// keeps its own id as heap tie-break, so the merge order and the tree can
// differ from BPTCanonical's. With MaxLinkage and AverageLinkage it yields
// complete- and average-linkage agglomerative clustering.
//
// Steps, per merge (until n−1 merges have been performed):
//  1. Pop the cheapest live edge e* = {r1, r2}; lazily skip tombstones.
//  2. Create the region r_new = parent of r1 and r2 at altitude weight(e*).
//  3. Collect the neighbours of r1 and r2, pairing parallel edges, using a
//     scratch slot array that is reset before the weighting call.
//  4. Let the Weighter write the new edge weights.
//  5. Drop parallel duplicates, rewire each surviving edge to r_new, and
//     update its heap key.
//
// Error Conditions:
//   - ErrShapeMismatch     : len(weights) != g.NumEdges().
//   - ErrInvalidWeight     : NaN or infinite weight.
//   - ErrDisconnectedGraph : the heap drained before n−1 merges (also n = 0).
//   - ErrInvariant         : a popped live edge was absent from the graph.
//
// Complexity: O(m log m) heap operations plus the Weighter's own cost.
// Memory: O(n + m).
func BinaryPartitionTree(g *graph.Undirected, weights []float64, w Weighter, opts ...Option) (*PartitionResult, error) {
	o := applyOptions(opts)
	n, m := g.NumVertices(), g.NumEdges()

	// Entry validation: fail fast, return nothing partial.
	if len(weights) != m {
		return nil, ErrShapeMismatch
	}
	for _, wt := range weights {
		if math.IsNaN(wt) || math.IsInf(wt, 0) {
			return nil, ErrInvalidWeight
		}
	}
	if n == 0 {
		return nil, ErrDisconnectedGraph
	}

	// Working state: the mutable graph copy, the addressable heap with one
	// entry per edge, the lazy-deletion flags, and the tree arrays.
	numNodes := 2*n - 1
	mg := graph.NewMutableFrom(g)
	parents := make([]int, numNodes)
	for i := range parents {
		parents[i] = i
	}
	altitudes := make([]float64, numNodes)

	heap := binheap.New(m)
	handles := make([]binheap.Handle, m)
	active := make([]bool, m)
	for e := 0; e < m; e++ {
		handles[e] = heap.Push(weights[e], e)
		active[e] = true
	}

	// Scratch for the neighbour collection: slot[v] is the index of v's
	// record in the current neighbour list, or -1. It must read all-none
	// at the start of every merge.
	slot := make([]int, numNodes)
	for i := range slot {
		slot[i] = -1
	}
	neighbours := make([]NewNeighbour, 0, 8)

	merges := 0
	for !heap.Empty() && merges < n-1 {
		// 1. Pop the minimum; skip edges tombstoned since their last keying.
		fusionWeight, fusionEdge := heap.Key(heap.Top())
		heap.Pop()
		if !active[fusionEdge] {
			continue
		}
		active[fusionEdge] = false

		r1, r2, ok := mg.Endpoints(fusionEdge)
		if !ok {
			// An active edge must be present in the working graph.
			return nil, ErrInvariant
		}

		// 2. Materialize the merged region.
		rNew := mg.AddVertex()
		parents[r1] = rNew
		parents[r2] = rNew
		altitudes[rNew] = fusionWeight
		merges++
		mg.RemoveEdge(fusionEdge)

		// 3. Collect the neighbours of both merged regions, pairing the
		//    parallel edges onto a single record.
		neighbours = neighbours[:0]
		collect := func(region int) {
			mg.VisitIncident(region, func(e int) bool {
				nb := mg.OtherEndpoint(e, region)
				if s := slot[nb]; s >= 0 {
					neighbours[s].Edge2 = e
				} else {
					slot[nb] = len(neighbours)
					neighbours = append(neighbours, NewNeighbour{Neighbour: nb, Edge1: e, Edge2: -1})
				}

				return true
			})
		}
		collect(r1)
		collect(r2)
		// Scratch hygiene: the slot array must be all-none again before the
		// next merge.
		for i := range neighbours {
			slot[neighbours[i].Neighbour] = -1
		}

		if len(neighbours) == 0 {
			// Only possible at the final merge of a component.
			continue
		}

		// 4. Policy callback: compute the new weights.
		w.Apply(mg, fusionEdge, rNew, r1, r2, neighbours)

		// 5. Drop parallels, rewire survivors to the merged region, re-key.
		for i := range neighbours {
			nn := &neighbours[i]
			if nn.Edge2 >= 0 {
				active[nn.Edge2] = false
				mg.RemoveEdge(nn.Edge2)
			}
			mg.SetEdge(nn.Edge1, nn.Neighbour, rNew)
			heap.Update(handles[nn.Edge1], nn.NewWeight, nn.Edge1)
			active[nn.Edge1] = true
		}
	}

	if merges != n-1 {
		return nil, ErrDisconnectedGraph
	}

	t, err := tree.New(parents)
	if err != nil {
		return nil, errInvariantf(err)
	}
	if o.InvariantChecks {
		if err = checkAltitudes(t, altitudes); err != nil {
			return nil, err
		}
	}

	return &PartitionResult{Tree: t, Altitudes: altitudes}, nil
}
