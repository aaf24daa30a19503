package pqueue

// Scorer is anything the heap can order by an ascending numeric key. The
// router pushes *grid.Node values, ordered by F (spec.md §4.5).
type Scorer interface {
	Score() float64
}

// Heap is an array-backed binary min-heap keyed by Scorer.Score, ordered
// ascending. Unlike container/heap, it exposes RescoreElement: since A*
// only ever decreases a node's score once it's queued (spec.md §9, "Heap
// rescoring"), sifting the element up in place is sufficient — there is no
// need to track each element's live index to support an arbitrary
// decrease-key, so a plain identity scan is used instead.
type Heap struct {
	data []Scorer
}

// New returns an empty Heap.
func New() *Heap {
	return &Heap{}
}

// Len returns the number of elements currently queued.
func (h *Heap) Len() int { return len(h.data) }

// Push adds x to the heap, restoring the min-heap invariant.
func (h *Heap) Push(x Scorer) {
	h.data = append(h.data, x)
	h.siftUp(len(h.data) - 1)
}

// Pop removes and returns the element with the smallest score. It panics if
// the heap is empty; callers check Len first, mirroring the teacher's
// container/heap-backed queues where Pop on an empty heap is a caller bug.
func (h *Heap) Pop() Scorer {
	n := len(h.data)
	top := h.data[0]
	h.data[0] = h.data[n-1]
	h.data = h.data[:n-1]
	if len(h.data) > 0 {
		h.siftDown(0)
	}
	return top
}

// RescoreElement locates x by identity and sifts it up to restore the
// min-heap invariant after x.Score() has decreased. It is a no-op if x is
// not currently queued.
func (h *Heap) RescoreElement(x Scorer) {
	for i, e := range h.data {
		if e == x {
			h.siftUp(i)
			return
		}
	}
}

func (h *Heap) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.data[parent].Score() <= h.data[i].Score() {
			break
		}
		h.data[parent], h.data[i] = h.data[i], h.data[parent]
		i = parent
	}
}

func (h *Heap) siftDown(i int) {
	n := len(h.data)
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < n && h.data[left].Score() < h.data[smallest].Score() {
			smallest = left
		}
		if right < n && h.data[right].Score() < h.data[smallest].Score() {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.data[i], h.data[smallest] = h.data[smallest], h.data[i]
		i = smallest
	}
}
