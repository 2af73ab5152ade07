// Package hierarchy: canonical binary partition tree (Kruskal by altitude).
package hierarchy

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/hierarch/graph"
	"github.com/katalvlaran/hierarch/tree"
	"github.com/katalvlaran/hierarch/unionfind"
)

// BPTCanonical computes the binary partition tree by altitude ordering of a
// connected edge-weighted graph, together with the minimum spanning tree the
// merge sequence traces.
//
// Steps:
//  1. Validate: weights length equals the edge count, every weight finite.
//  2. Sort edge ids by (weight, id) ascending — the explicit id tie-break
//     makes the order total, so equal-weight runs are reproducible.
//  3. Kruskal scan with a union-find: the k-th component-joining edge
//     creates inner node n+k as parent of the two components' current
//     roots, at altitude equal to the edge weight, and contributes MST
//     edge k.
//  4. Stop after n−1 merges; if the edge list runs out first the graph was
//     disconnected.
//
// Error Conditions:
//   - ErrShapeMismatch     : len(weights) != g.NumEdges().
//   - ErrInvalidWeight     : NaN or infinite weight.
//   - ErrDisconnectedGraph : fewer than n−1 joins possible (also for n = 0).
//
// Complexity: O(m log m) for the sort + O((m+n)·α(n)) for the scan.
// Memory: O(n + m).
func BPTCanonical(g *graph.Undirected, weights []float64, opts ...Option) (*BPTResult, error) {
	o := applyOptions(opts)
	n, m := g.NumVertices(), g.NumEdges()

	// 1. Entry validation: fail fast, return nothing partial.
	if len(weights) != m {
		return nil, ErrShapeMismatch
	}
	for _, w := range weights {
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, ErrInvalidWeight
		}
	}
	if n == 0 {
		return nil, ErrDisconnectedGraph
	}

	// 2. Argsort edge ids by (weight, id). The comparator is a strict total
	//    order, so the result does not depend on the sort being stable.
	order := make([]int, m)
	for e := range order {
		order[e] = e
	}
	sort.Slice(order, func(a, b int) bool {
		ea, eb := order[a], order[b]
		if weights[ea] != weights[eb] {
			return weights[ea] < weights[eb]
		}

		return ea < eb
	})

	// 3. Kruskal scan. roots[c] is the current tree node of the component
	//    whose union-find representative is c.
	numNodes := 2*n - 1
	uf := unionfind.New(n)
	roots := make([]int, n)
	parents := make([]int, numNodes)
	for i := range parents {
		parents[i] = i
	}
	for i := range roots {
		roots[i] = i
	}
	altitudes := make([]float64, numNodes)

	mst, err := graph.NewUndirected(n)
	if err != nil {
		return nil, err
	}
	mstEdgeMap := make([]int, 0, n-1)

	merges := 0
	for _, e := range order {
		if merges == n-1 {
			break
		}
		u, v := g.Endpoints(e)
		cu, cv := uf.Find(u), uf.Find(v)
		if cu == cv {
			// Endpoints already in one region: e closes a cycle, skip.
			continue
		}
		// The merge creates inner node n+merges above both region roots.
		k := n + merges
		parents[roots[cu]] = k
		parents[roots[cv]] = k
		altitudes[k] = weights[e]
		roots[uf.Link(cu, cv)] = k
		// Record the MST edge and its provenance.
		if _, err = mst.AddEdge(u, v); err != nil {
			return nil, err
		}
		mstEdgeMap = append(mstEdgeMap, e)
		merges++
	}

	// 4. A connected graph yields exactly n−1 merges.
	if merges != n-1 {
		return nil, ErrDisconnectedGraph
	}

	t, err := tree.New(parents)
	if err != nil {
		return nil, errInvariantf(err)
	}

	res := &BPTResult{
		Tree:       t,
		Altitudes:  altitudes,
		MST:        mst,
		MSTEdgeMap: mstEdgeMap,
	}
	if o.InvariantChecks {
		if err = checkAltitudes(t, altitudes); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// checkAltitudes re-validates the altitude monotonicity invariant:
// leaf altitudes are zero and no node is born above its parent.
func checkAltitudes(t *tree.Tree, altitudes []float64) error {
	if len(altitudes) != t.NumNodes() {
		return ErrInvariant
	}
	for i := 0; i < t.NumLeaves(); i++ {
		if altitudes[i] != 0 {
			return ErrInvariant
		}
	}
	for i := 0; i < t.NumNodes(); i++ {
		if altitudes[t.Parent(i)] < altitudes[i] {
			return ErrInvariant
		}
	}

	return nil
}

// errInvariantf wraps an internal failure under the ErrInvariant sentinel.
func errInvariantf(err error) error {
	return fmt.Errorf("%w: %v", ErrInvariant, err)
}
