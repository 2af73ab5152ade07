// Package hierarch turns edge-weighted undirected graphs into hierarchies
// of regions — binary partition trees, quasi-flat zones and saliency maps —
// the structures behind graph-based image segmentation and agglomerative
// clustering.
//
// 🚀 What is hierarch?
//
//	A compact, deterministic library that brings together:
//		• Graph primitives: static graphs with dense, stable edge ids + 4/8-adjacency grids
//		• Binary partition tree by altitude ordering (Kruskal-style), with the matching MST
//		• Generic binary partition tree with pluggable linkage (single, complete, average)
//		• Quasi-flat zones hierarchy
//		• Tree simplification with node remapping
//		• Saliency maps via constant-time LCA queries
//
// ✨ Why choose hierarch?
//
//   - Deterministic – every tie breaks on edge id; two runs give identical output
//   - Dense arrays everywhere – parent arrays and CSR children, never pointer nodes
//   - Explicit errors – sentinel errors, fail-fast entry validation, no partial results
//   - Pure Go – no cgo
//
// Under the hood, everything is organized under five subpackages:
//
//	unionfind/ — disjoint-set forest (union by rank, path compression)
//	binheap/   — addressable min-heap keyed by (weight, edge id) with update-key
//	graph/     — static Undirected graphs, Mutable working graphs, grid builders
//	tree/      — parent-array trees, ordered traversals, simplification, LCA index
//	hierarchy/ — BPT builders, linkage weighters, quasi-flat zones, saliency maps
//
// Quick ASCII example (a 2×3 grid, 4-adjacency):
//
//	    0───1───2
//	    │   │   │
//	    3───4───5
//
//	six pixels, seven edges; BPTCanonical merges them into an 11-node hierarchy.
//
// Dive into the package docs for full algorithm walkthroughs, complexity
// notes and worked examples.
//
//	go get github.com/katalvlaran/hierarch
package hierarch
