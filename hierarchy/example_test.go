package hierarchy_test

import (
	"fmt"

	"github.com/katalvlaran/hierarch/graph"
	"github.com/katalvlaran/hierarch/hierarchy"
)

// ExampleBPTCanonical builds the altitude-ordered hierarchy of a 2×3 image
// graph and prints its structure.
func ExampleBPTCanonical() {
	// 1. The 4-adjacency graph of a 2×3 raster.
	g, err := graph.Grid4(2, 3)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	// 2. One weight per edge, in edge id order.
	weights := []float64{1, 0, 2, 1, 1, 1, 2}

	// 3. Build the canonical BPT.
	res, err := hierarchy.BPTCanonical(g, weights)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("parents:  ", res.Tree.Parents())
	fmt.Println("altitudes:", res.Altitudes)
	fmt.Println("mst edges:", res.MSTEdgeMap)

	// Output:
	// parents:   [6 7 9 6 8 9 7 8 10 10 10]
	// altitudes: [0 0 0 0 0 0 0 1 1 1 2]
	// mst edges: [1 0 3 4 2]
}

// ExampleBinaryPartitionTree runs complete-linkage clustering on a
// triangle: after the cheapest merge, the surviving edge carries the
// maximum of the two parallel weights.
func ExampleBinaryPartitionTree() {
	g, _ := graph.NewUndirected(3)
	g.AddEdge(0, 1) // weight 1
	g.AddEdge(1, 2) // weight 2
	g.AddEdge(0, 2) // weight 3
	weights := []float64{1, 2, 3}

	res, err := hierarchy.BinaryPartitionTree(g, weights, hierarchy.MaxLinkage(weights))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("parents:  ", res.Tree.Parents())
	fmt.Println("altitudes:", res.Altitudes)

	// Output:
	// parents:   [3 3 4 4 4]
	// altitudes: [0 0 0 1 3]
}

// ExampleQuasiFlatZones collapses the plateau nodes of the canonical BPT.
func ExampleQuasiFlatZones() {
	g, _ := graph.Grid4(2, 3)
	weights := []float64{1, 0, 2, 1, 1, 1, 2}

	res, err := hierarchy.QuasiFlatZones(g, weights)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("parents:  ", res.Tree.Parents())
	fmt.Println("altitudes:", res.Altitudes)

	// Output:
	// parents:   [6 7 8 6 7 8 7 9 9 9]
	// altitudes: [0 0 0 0 0 0 0 1 1 2]
}

// ExampleSaliencyMap recovers the edge weighting a hierarchy induces.
func ExampleSaliencyMap() {
	g, _ := graph.Grid4(2, 3)
	weights := []float64{1, 0, 2, 1, 1, 1, 2}

	res, _ := hierarchy.QuasiFlatZones(g, weights)
	sm, err := hierarchy.SaliencyMap(g, res.Tree, res.Altitudes)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("saliency:", sm)

	// Output:
	// saliency: [1 0 2 1 1 1 2]
}
