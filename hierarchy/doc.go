// Package hierarchy turns an edge-weighted undirected graph into a rooted
// hierarchy of regions. It provides the two binary partition tree builders,
// the classical linkage policies, the quasi-flat-zones hierarchy and
// saliency maps.
//
// What & Why
//
//   - What is a binary partition tree (BPT)?
//     Start from one region per vertex. Repeatedly merge the two regions
//     joined by the cheapest remaining edge; each merge creates a parent
//     node whose altitude is the weight of the fusion edge. After n−1
//     merges the regions form a binary tree of 2n−1 nodes whose leaves are
//     the graph vertices — a complete multi-scale segmentation of the
//     graph.
//
//   - Why two builders?
//
//   - BPTCanonical fixes the merge order once: edges are processed in
//     ascending weight (ties on edge id), exactly Kruskal's algorithm. The
//     tree, the minimum spanning tree and the map from MST edges back to
//     input edges all fall out of one O(m log m) pass. This is the
//     single-linkage hierarchy, and the fastest path to it.
//
//   - BinaryPartitionTree re-weights the surviving edges after every merge
//     through a caller-supplied Weighter, so the merge order depends on the
//     clustering policy: complete linkage, average linkage, or anything
//     else expressible as "given the two merged regions and their common
//     neighbour, produce the new edge weight". It runs the textbook
//     agglomerative loop over a mutable graph, an addressable heap and
//     lazy edge deletion.
//
//   - QuasiFlatZones collapses the canonical BPT: an inner node born at the
//     same altitude as its parent carries no new information and is
//     removed. The result is the hierarchy of λ-connected components, and
//     it induces the same saliency map as the BPT it came from.
//
//   - SaliencyMap inverts a hierarchy back onto the graph: the saliency of
//     edge {u, v} is the altitude of the lowest common ancestor of u and v.
//     Hierarchies that differ only by collapsed plateaus project to the
//     identical map.
//
// Determinism
//
//	Every builder breaks weight ties on ascending edge id — in the sort of
//	BPTCanonical and in the heap order of BinaryPartitionTree — so a given
//	input always produces the identical output, bit for bit.
//
// Error Conditions
//
//   - ErrShapeMismatch     : weights length differs from the edge count, or
//     average-linkage value/mass arrays disagree.
//   - ErrInvalidWeight     : a NaN or infinite input weight.
//   - ErrDisconnectedGraph : fewer than n−1 merges were possible. Callers
//     with possibly-disconnected inputs should split into connected
//     components first.
//   - ErrInvariant         : an internal consistency check failed; this
//     reports a bug in the library, not bad input.
//
// Complexity: BPTCanonical O(m log m); BinaryPartitionTree O(m log m)
// heap work plus weighter cost; QuasiFlatZones O(m log m);
// SaliencyMap O(N log N + m). Memory: O(n + m) each.
//
// For worked examples see example_test.go in this package.
package hierarchy
