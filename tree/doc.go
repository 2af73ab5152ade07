// Package tree provides the rooted-tree data model produced by the
// hierarchy builders: a dense parent-array representation with derived
// children lists, ordered traversals, predicate-driven simplification and a
// constant-time lowest-common-ancestor index.
//
// What & Why
//
//   - Representation. A tree of N nodes is a parent array p of length N
//     with p[root] = root. Leaves occupy the id prefix [0, numLeaves) and
//     inner nodes the suffix, with p[i] > i for every non-root node — a
//     node is always numbered before its parent. The hierarchy builders
//     emit exactly this layout (leaves first, fusions in merge order), and
//     every algorithm in this package leans on it: leaves-to-root order is
//     an ascending index scan, root-to-leaves a descending one.
//
//   - Children. The reverse of the parent relation is materialized once at
//     construction as a CSR-style index (offsets + flat child array), so
//     Children(i) is a zero-allocation slice view. No pointer-linked nodes
//     anywhere.
//
//   - Simplify removes inner nodes matching a predicate while preserving
//     every leaf, reattaching orphaned children to their nearest surviving
//     ancestor. It returns the new tree plus a node map from new ids to
//     original ids, strictly increasing, with leaf ids unchanged.
//
//   - LCA answers lowest-common-ancestor queries in O(1) after an
//     O(N log N) preprocessing: an Euler tour of the tree reduces LCA to a
//     range-minimum query over depths, answered by a sparse table. The
//     saliency computation issues one query per graph edge, so query cost
//     dominates and the tour + table wins over binary lifting.
//
// Error Conditions
//
//   - ErrEmptyParents    : the parent array has length zero.
//   - ErrInvalidParents  : parent ordering broken (p[i] <= i for a non-root),
//     the last node is not the root, or leaves are not a contiguous prefix.
//
// Complexity: New O(N); Parent, IsLeaf, Children O(1); traversals O(N);
// Simplify O(N); NewLCA O(N log N); LCA.Query O(1). Memory: O(N log N) for
// the LCA index, O(N) for everything else.
//
// For usage see example_test.go in this package.
package tree
