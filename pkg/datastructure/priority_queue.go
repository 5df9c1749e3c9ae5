package datastructure

type PriorityQueueNode[T any] struct {
	Rank float64
	Item T
}

func NewPriorityQueueNode[T any](rank float64, item T) PriorityQueueNode[T] {
	return PriorityQueueNode[T]{Rank: rank, Item: item}
}

// MinHeap binary heap priorityqueue. item yang sama boleh masuk berkali-kali (stale entry), caller yang buang.
type MinHeap[T any] struct {
	heap []PriorityQueueNode[T]
}

func NewMinHeap[T any]() *MinHeap[T] {
	return &MinHeap[T]{
		heap: make([]PriorityQueueNode[T], 0),
	}
}

// parent get index dari parent
func (h *MinHeap[T]) parent(index int) int {
	return (index - 1) / 2
}

// leftChild get index dari left child
func (h *MinHeap[T]) leftChild(index int) int {
	return 2*index + 1
}

// rightChild get index dari right child
func (h *MinHeap[T]) rightChild(index int) int {
	return 2*index + 2
}

// heapifyUp swap dengan parent selama rank parent lebih besar. O(logN).
func (h *MinHeap[T]) heapifyUp(index int) {
	for index != 0 && h.heap[index].Rank < h.heap[h.parent(index)].Rank {
		p := h.parent(index)
		h.heap[index], h.heap[p] = h.heap[p], h.heap[index]
		index = p
	}
}

// heapifyDown swap dengan child terkecil selama child lebih kecil. O(logN).
func (h *MinHeap[T]) heapifyDown(index int) {
	for {
		smallest := index
		left := h.leftChild(index)
		right := h.rightChild(index)

		if left < len(h.heap) && h.heap[left].Rank < h.heap[smallest].Rank {
			smallest = left
		}
		if right < len(h.heap) && h.heap[right].Rank < h.heap[smallest].Rank {
			smallest = right
		}
		if smallest == index {
			return
		}
		h.heap[index], h.heap[smallest] = h.heap[smallest], h.heap[index]
		index = smallest
	}
}

func (h *MinHeap[T]) IsEmpty() bool {
	return len(h.heap) == 0
}

func (h *MinHeap[T]) Size() int {
	return len(h.heap)
}

// GetMin mendapatkan nilai minimum dari min-heap (index 0) tanpa pop
func (h *MinHeap[T]) GetMin() (PriorityQueueNode[T], bool) {
	if h.IsEmpty() {
		return PriorityQueueNode[T]{}, false
	}
	return h.heap[0], true
}

// Insert append item baru di akhir, lalu heapifyUp. O(logN)
func (h *MinHeap[T]) Insert(node PriorityQueueNode[T]) {
	h.heap = append(h.heap, node)
	h.heapifyUp(len(h.heap) - 1)
}

// ExtractMin ambil & pop nilai minimum. root diganti elemen terakhir lalu heapifyDown(0). O(logN)
func (h *MinHeap[T]) ExtractMin() (PriorityQueueNode[T], bool) {
	if h.IsEmpty() {
		return PriorityQueueNode[T]{}, false
	}
	root := h.heap[0]
	last := len(h.heap) - 1
	h.heap[0] = h.heap[last]
	h.heap[last] = PriorityQueueNode[T]{}
	h.heap = h.heap[:last]
	if len(h.heap) > 0 {
		h.heapifyDown(0)
	}
	return root, true
}
