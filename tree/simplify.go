package tree

// Simplify returns a copy of the tree in which every inner non-root node i
// with remove(i) == true has been deleted, its children reattached to its
// nearest surviving ancestor. Leaves and the root are never deleted and the
// predicate is not consulted for them.
//
// The second result maps new node ids to original ids: nodeMap[iNew] is the
// id the surviving node carried in the source tree. It is strictly
// increasing, and leaf ids are preserved verbatim.
//
// The deletion runs root-to-leaves: thanks to the parent-ordering invariant
// (parent[i] > i), by the time node i is visited its parent has already been
// resolved to its final surviving ancestor, so one pass suffices.
// Complexity: O(N).
func (t *Tree) Simplify(remove func(i int) bool) (*Tree, []int) {
	n := len(t.parents)
	root := n - 1

	// Working copy of the parent relation; rewritten in place as nodes die.
	parent := append([]int(nil), t.parents...)

	// 1. Root-to-leaves over inner non-root nodes: drop matching nodes,
	//    reattaching children to the (already final) parent. For inner
	//    non-root i, deletedAfter[i] counts deletions among nodes >= i; the
	//    leaf and root entries stay 0.
	deleted := 0
	deletedAfter := make([]int, n)
	for i := root - 1; i >= t.numLeaves; i-- {
		if remove(i) {
			for _, c := range t.Children(i) {
				parent[c] = parent[i]
			}
			deleted++
		}
		deletedAfter[i] = deleted
	}

	// 2. Convert the suffix counts into per-node shifts: a surviving inner or
	//    root node i moves down by the number of deletions below it,
	//    deleted - deletedAfter[i]. Leaf entries are never read: a leaf is
	//    never a parent, and leaves keep their ids.
	shift := deletedAfter
	for i := 0; i < n; i++ {
		shift[i] = deleted - shift[i]
	}

	// 3. Leaves-to-root over survivors (root handled last): emit the
	//    remapped parent and the node map in ascending old-id order.
	newN := n - deleted
	newParents := make([]int, newN)
	nodeMap := make([]int, newN)
	k := 0
	for i := 0; i < root; i++ {
		if i >= t.numLeaves && remove(i) {
			continue
		}
		newParents[k] = parent[i] - shift[parent[i]]
		nodeMap[k] = i
		k++
	}
	// The last slot is always the root.
	newParents[newN-1] = newN - 1
	nodeMap[newN-1] = root

	// The source tree already satisfied every invariant New checks, and the
	// rewrite preserves them, so the reconstruction cannot fail.
	nt, err := New(newParents)
	if err != nil {
		panic("tree: simplify produced an invalid tree: " + err.Error())
	}

	return nt, nodeMap
}
