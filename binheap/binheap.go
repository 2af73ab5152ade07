package binheap

// Handle addresses a live heap element. It is returned by Push and remains
// valid until the element leaves the heap via Pop or Remove; after that the
// slot may be recycled for a future Push.
type Handle int

// None is the "no handle" marker. Valid handles are >= 0.
const None Handle = -1

// slot holds one element of the heap together with its current position in
// the heap slice. pos == -1 marks a dead (recycled) slot.
type slot struct {
	weight float64
	edge   int
	pos    int
}

// Heap is an addressable binary min-heap over (weight, edge) keys.
// Elements compare by weight first, then by edge id, so the order is total
// and deterministic. The zero value is not usable; construct with New.
type Heap struct {
	slots []slot   // element storage addressed by Handle
	heap  []Handle // binary heap of live handles, ordered by slot keys
	free  []Handle // recycled slots available for reuse
}

// New creates an empty heap with storage preallocated for capacity elements.
// Complexity: O(capacity) allocation, O(1) otherwise.
func New(capacity int) *Heap {
	if capacity < 0 {
		capacity = 0
	}

	return &Heap{
		slots: make([]slot, 0, capacity),
		heap:  make([]Handle, 0, capacity),
	}
}

// Len returns the number of live elements. Complexity: O(1).
func (h *Heap) Len() int { return len(h.heap) }

// Empty reports whether the heap holds no elements. Complexity: O(1).
func (h *Heap) Empty() bool { return len(h.heap) == 0 }

// Push inserts a (weight, edge) key and returns its Handle.
// Complexity: O(log n) amortised.
func (h *Heap) Push(weight float64, edge int) Handle {
	// 1. Acquire a slot: recycle a freed one if available, else grow.
	var hd Handle
	if k := len(h.free); k > 0 {
		hd = h.free[k-1]
		h.free = h.free[:k-1]
		h.slots[hd] = slot{weight: weight, edge: edge}
	} else {
		hd = Handle(len(h.slots))
		h.slots = append(h.slots, slot{weight: weight, edge: edge})
	}
	// 2. Append at the bottom and restore the heap property upward.
	h.slots[hd].pos = len(h.heap)
	h.heap = append(h.heap, hd)
	h.up(h.slots[hd].pos)

	return hd
}

// Top returns the handle of the minimum element. The heap must be non-empty.
// Complexity: O(1).
func (h *Heap) Top() Handle { return h.heap[0] }

// Key returns the (weight, edge) key behind a live handle. Complexity: O(1).
func (h *Heap) Key(hd Handle) (float64, int) {
	return h.slots[hd].weight, h.slots[hd].edge
}

// Pop removes the minimum element, invalidating its handle.
// The heap must be non-empty. Complexity: O(log n).
func (h *Heap) Pop() {
	h.Remove(h.heap[0])
}

// Remove deletes the element behind hd, invalidating the handle.
// Complexity: O(log n).
func (h *Heap) Remove(hd Handle) {
	i := h.slots[hd].pos
	last := len(h.heap) - 1
	// 1. Swap the victim with the last element and truncate.
	if i != last {
		h.swap(i, last)
	}
	h.heap = h.heap[:last]
	// 2. The displaced element may violate the property in either direction.
	if i != last {
		h.down(i)
		h.up(i)
	}
	// 3. Retire the slot.
	h.slots[hd].pos = -1
	h.free = append(h.free, hd)
}

// Update replaces the key behind a live handle and restores ordering.
// Both decrease and increase are supported. Complexity: O(log n).
func (h *Heap) Update(hd Handle, weight float64, edge int) {
	h.slots[hd].weight = weight
	h.slots[hd].edge = edge
	i := h.slots[hd].pos
	h.down(i)
	h.up(i)
}

// less orders heap positions i, j by (weight, edge) ascending.
func (h *Heap) less(i, j int) bool {
	a, b := &h.slots[h.heap[i]], &h.slots[h.heap[j]]
	if a.weight != b.weight {
		return a.weight < b.weight
	}

	return a.edge < b.edge
}

// swap exchanges heap positions i and j and fixes the position index.
func (h *Heap) swap(i, j int) {
	h.heap[i], h.heap[j] = h.heap[j], h.heap[i]
	h.slots[h.heap[i]].pos = i
	h.slots[h.heap[j]].pos = j
}

// up sifts position i toward the root while it beats its parent.
func (h *Heap) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !h.less(i, parent) {
			break
		}
		h.swap(i, parent)
		i = parent
	}
}

// down sifts position i toward the leaves while a child beats it.
func (h *Heap) down(i int) {
	n := len(h.heap)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		// Pick the smaller of the two children.
		small := left
		if right := left + 1; right < n && h.less(right, left) {
			small = right
		}
		if !h.less(small, i) {
			break
		}
		h.swap(i, small)
		i = small
	}
}
