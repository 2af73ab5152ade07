// Package binheap provides an addressable binary min-heap keyed by
// (weight, edge id) pairs, the priority queue behind the generic binary
// partition tree builder.
//
// What & Why
//
//   - What is an addressable heap?
//     A min-heap whose elements can be revisited after insertion: Push
//     returns a Handle, and the key behind a live Handle may later be
//     changed with Update — both decreased and increased — in O(log n).
//     A plain container/heap gives no such surface: once an element sinks
//     into the slice, the caller has lost it.
//
//   - Why it matters here:
//     Agglomerative clustering re-weights edges incident to every freshly
//     merged region. Each such edge already sits in the queue; the builder
//     must adjust its priority in place rather than push a duplicate, or
//     the queue degenerates and determinism is lost.
//
// Design
//
//   - Handle indirection: every element lives in a slot table; the heap
//     slice stores slot indices and a position index maps slots back into
//     the slice. Sift operations move positions, never slots, so a Handle
//     stays valid across arbitrary Update calls and dies exactly when the
//     element leaves the heap (Pop or Remove). Freed slots are recycled.
//
//   - Total order: weight ascending, ties broken by edge id ascending.
//     Equal-weight edges therefore pop in a deterministic order, which the
//     hierarchy builders rely on for reproducible output.
//
// The amortised bounds match the Fibonacci-heap variant used by the original
// formulation closely enough in practice: Push, Pop, Update and Remove are
// O(log n); Top, Empty and Len are O(1).
//
// For usage see example_test.go in this package.
package binheap
