// Package hierarchy: saliency maps (hierarchy → edge weighting).
package hierarchy

import (
	"github.com/katalvlaran/hierarch/graph"
	"github.com/katalvlaran/hierarch/tree"
)

// SaliencyMap projects a hierarchy back onto the graph it was built from:
// the saliency of edge {u, v} is the altitude of the lowest common ancestor
// of u and v in the tree. The output has one entry per graph edge, in edge
// id order.
//
// The LCA index is built once per call and amortized over the m queries;
// hierarchies related by plateau collapse (BPT vs. quasi-flat zones of the
// same weights) produce identical maps.
//
// Error Conditions:
//   - ErrShapeMismatch : the tree's leaf count differs from the graph's
//     vertex count, or len(altitudes) != t.NumNodes().
//
// Complexity: O(N log N) index build + O(m) queries. Memory: O(N log N).
func SaliencyMap(g *graph.Undirected, t *tree.Tree, altitudes []float64) ([]float64, error) {
	// 1. Entry validation: the leaves must be exactly the graph vertices.
	if t.NumLeaves() != g.NumVertices() || len(altitudes) != t.NumNodes() {
		return nil, ErrShapeMismatch
	}

	// 2. One LCA query per edge, read through the altitudes.
	lca := tree.NewLCA(t)
	m := g.NumEdges()
	saliency := make([]float64, m)
	for e := 0; e < m; e++ {
		u, v := g.Endpoints(e)
		saliency[e] = altitudes[lca.Query(u, v)]
	}

	return saliency, nil
}
