// Package graph provides the two graph representations consumed and produced
// by the hierarchy builders: an immutable Undirected graph with dense, stable
// edge ids, and a Mutable working graph that supports vertex growth and edge
// rewiring during agglomerative merging. It also ships the 4- and
// 8-adjacency grid constructors that turn image rasters into graphs.
//
// What & Why
//
//   - Undirected is the input contract: vertices are the integers [0, n),
//     edges are the integers [0, m) numbered in insertion order. Edge ids
//     index directly into caller-owned weight arrays, so iteration orders
//     and id assignment are rigidly deterministic.
//
//   - Mutable is the builder's scratch space. Agglomerative clustering
//     repeatedly merges two vertices into a fresh one, deletes the fusion
//     edge, and rewires the surviving incident edges to the merged vertex.
//     Edge ids must survive all of that: the heap keys carry raw edge ids,
//     and the linkage weighters mirror per-edge arrays indexed by them.
//     Mutable therefore tombstones removed edges instead of compacting, and
//     keeps per-vertex incidence as intrusive doubly-linked lists so that
//     deletion by edge id is O(1) and iteration order stays deterministic
//     (insertion order, then rewiring order) — a hash-set incidence would
//     make run-to-run output depend on map iteration.
//
//   - Grid4 and Grid8 build the pixel-adjacency graphs of image analysis.
//     Vertices are raster-scan pixel indices (row-major). For each pixel,
//     edges toward not-yet-visited neighbours are appended in a fixed scan
//     order (right, then down; diagonals interleaved for Grid8), so a given
//     shape always yields the identical edge numbering.
//
// Error Conditions
//
//   - ErrVertexCount : negative vertex count at construction.
//   - ErrVertexRange : an endpoint is outside [0, NumVertices()).
//   - ErrSelfLoop    : both endpoints of a new edge are equal.
//   - ErrEmptyGrid   : grid constructor given a non-positive dimension.
//
// Complexity: AddEdge amortised O(1); Endpoints, OtherEndpoint O(1);
// IncidentEdges O(degree); RemoveEdge, SetEdge O(1). Memory: O(n + m).
//
// For usage see example_test.go in this package.
package graph
