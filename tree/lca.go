package tree

import "math/bits"

// LCA answers lowest-common-ancestor queries on a Tree in O(1) after an
// O(N log N) preprocessing pass: an Euler tour of the tree turns LCA(u, v)
// into a range-minimum query over tour depths, which a sparse table answers
// by overlapping two power-of-two windows.
//
// The index holds no reference to mutable state and is safe for concurrent
// queries once built.
type LCA struct {
	// euler[k] is the node visited at tour step k (2N-1 steps).
	euler []int
	// depth[k] is the depth of euler[k].
	depth []int
	// first[i] is the first tour step at which node i appears.
	first []int
	// table[l] holds, for each window start k, the tour step of the minimum
	// depth within [k, k+2^l); table[0] is the identity layer.
	table [][]int
}

// NewLCA builds the Euler-tour + sparse-table index for t.
// Complexity: O(N log N) time and memory.
func NewLCA(t *Tree) *LCA {
	n := t.NumNodes()
	tourLen := 2*n - 1
	idx := &LCA{
		euler: make([]int, 0, tourLen),
		depth: make([]int, 0, tourLen),
		first: make([]int, n),
	}
	for i := range idx.first {
		idx.first[i] = -1
	}

	// 1. Iterative Euler tour: every edge is walked down and up once, so a
	//    node with c children appears c+1 times. An explicit stack keeps the
	//    walk safe on degenerate (path-shaped) hierarchies.
	type frame struct {
		node  int
		depth int
		next  int // index of the next child to descend into
	}
	stack := make([]frame, 0, 64)
	stack = append(stack, frame{node: t.Root()})
	for len(stack) > 0 {
		f := &stack[len(stack)-1]
		// Record the visit (first arrival or return from a child).
		idx.euler = append(idx.euler, f.node)
		idx.depth = append(idx.depth, f.depth)
		if idx.first[f.node] == -1 {
			idx.first[f.node] = len(idx.euler) - 1
		}
		children := t.Children(f.node)
		if f.next < len(children) {
			child := children[f.next]
			f.next++
			stack = append(stack, frame{node: child, depth: f.depth + 1})
		} else {
			stack = stack[:len(stack)-1]
		}
	}

	// 2. Sparse table over tour depths. Layer l answers windows of 2^l.
	levels := 1
	for (1 << levels) <= len(idx.euler) {
		levels++
	}
	idx.table = make([][]int, levels)
	base := make([]int, len(idx.euler))
	for k := range base {
		base[k] = k
	}
	idx.table[0] = base
	for l := 1; l < levels; l++ {
		span := 1 << l
		prev := idx.table[l-1]
		cur := make([]int, len(idx.euler)-span+1)
		for k := range cur {
			a, b := prev[k], prev[k+span/2]
			if idx.depth[b] < idx.depth[a] {
				a = b
			}
			cur[k] = a
		}
		idx.table[l] = cur
	}

	return idx
}

// Query returns the lowest common ancestor of nodes u and v.
// Complexity: O(1).
func (idx *LCA) Query(u, v int) int {
	l, r := idx.first[u], idx.first[v]
	if l > r {
		l, r = r, l
	}
	// Cover [l, r] with two overlapping power-of-two windows.
	k := bits.Len(uint(r-l+1)) - 1
	a := idx.table[k][l]
	b := idx.table[k][r-(1<<k)+1]
	if idx.depth[b] < idx.depth[a] {
		a = b
	}

	return idx.euler[a]
}

// QueryPairs answers a batch of queries; pairs[k] holds the two nodes of
// query k and the result slice preserves the input order.
// Complexity: O(len(pairs)).
func (idx *LCA) QueryPairs(pairs [][2]int) []int {
	out := make([]int, len(pairs))
	for k, p := range pairs {
		out[k] = idx.Query(p[0], p[1])
	}

	return out
}
