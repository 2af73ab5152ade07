// Package unionfind provides a disjoint-set forest (union-find) over dense
// integer elements, the bookkeeping core of Kruskal-style hierarchy builders.
//
// What & Why
//
//   - What is a disjoint-set forest?
//     A partition of [0, n) into groups, each represented by one canonical
//     element. Two operations evolve the partition: Find(x) locates the
//     canonical element of x's group, and Link(a, b) fuses two groups given
//     their canonical elements.
//
//   - Why it matters here:
//     Binary partition trees are built by scanning graph edges in ascending
//     weight and fusing the regions their endpoints belong to. The forest
//     answers "are these endpoints already in the same region?" in amortised
//     near-constant time, which keeps the whole construction at
//     O((m+n)·α(n)) beyond the sort.
//
// Guarantees
//
//   - Find uses full path compression: every node touched on the way to the
//     root is re-pointed directly at the root.
//   - Link uses union by rank: the shallower tree is attached under the
//     deeper one, and ranks grow only on equal-rank links.
//   - Together these give the classical inverse-Ackermann amortised bound.
//
// Contract
//
//   - Elements are the integers [0, n) fixed at construction.
//   - Link must be called with two distinct representatives (values returned
//     by Find). Linking non-representatives corrupts the forest; the builders
//     in hierarchy/ always Find first.
//   - No error surface: inputs are trusted, all operations total.
//
// Complexity: New O(n); Find, Link amortised O(α(n)). Memory: O(n).
//
// For usage see example_test.go in this package.
package unionfind
