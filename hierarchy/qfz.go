// Package hierarchy: quasi-flat-zones hierarchy.
package hierarchy

import "github.com/katalvlaran/hierarch/graph"

// QuasiFlatZones computes the quasi-flat-zones hierarchy of an edge-weighted
// graph: the hierarchy of λ-connected components over all λ occurring in
// the weights.
//
// For a threshold λ, a set of vertices X is λ-connected when any two of its
// vertices are joined inside X by edges of weight at most λ; the
// λ-connected components of maximal extent partition the vertices. Sweeping
// λ through the distinct edge weights stacks these partitions into a
// hierarchy.
//
// The construction composes the canonical BPT with tree simplification: an
// inner node born at the same altitude as its parent bounds no new
// λ-partition and is collapsed. The result therefore depends only on the
// level sets of the weights, and induces the same saliency map as the BPT
// it came from.
//
// Error Conditions: those of BPTCanonical.
//
// Complexity: O(m log m). Memory: O(n + m).
func QuasiFlatZones(g *graph.Undirected, weights []float64, opts ...Option) (*QFZResult, error) {
	// 1. Canonical BPT.
	bpt, err := BPTCanonical(g, weights, opts...)
	if err != nil {
		return nil, err
	}
	t, altitudes := bpt.Tree, bpt.Altitudes

	// 2. Collapse plateau nodes: inner nodes at their parent's altitude.
	//    (The root is never consulted; its altitude trivially equals its
	//    own parent's.)
	simplified, nodeMap := t.Simplify(func(i int) bool {
		return altitudes[i] == altitudes[t.Parent(i)]
	})

	// 3. Gather the surviving altitudes through the node map.
	qfzAltitudes := make([]float64, simplified.NumNodes())
	for iNew, iOld := range nodeMap {
		qfzAltitudes[iNew] = altitudes[iOld]
	}

	return &QFZResult{
		Tree:      simplified,
		Altitudes: qfzAltitudes,
		NodeMap:   nodeMap,
	}, nil
}
