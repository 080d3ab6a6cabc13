package prim_kruskal

import "container/heap"

// indexPQ is a min-heap over vertex indices [0, n) keyed by float64, with
// decrease-key. Ties are broken by vertex index.
type indexPQ struct {
	heap []int     // heap of vertex indices
	pos  []int     // pos[v] = index of v in heap, -1 when absent
	key  []float64 // key[v], valid while v is in the heap
}

func newIndexPQ(n int) *indexPQ {
	pq := &indexPQ{pos: make([]int, n), key: make([]float64, n)}
	for i := range pq.pos {
		pq.pos[i] = -1
	}

	return pq
}

func (pq *indexPQ) Len() int { return len(pq.heap) }

func (pq *indexPQ) Less(i, j int) bool {
	a, b := pq.heap[i], pq.heap[j]
	if pq.key[a] != pq.key[b] {
		return pq.key[a] < pq.key[b]
	}

	return a < b
}

func (pq *indexPQ) Swap(i, j int) {
	pq.heap[i], pq.heap[j] = pq.heap[j], pq.heap[i]
	pq.pos[pq.heap[i]] = i
	pq.pos[pq.heap[j]] = j
}

func (pq *indexPQ) Push(x interface{}) {
	v := x.(int)
	pq.pos[v] = len(pq.heap)
	pq.heap = append(pq.heap, v)
}

func (pq *indexPQ) Pop() interface{} {
	n := len(pq.heap)
	v := pq.heap[n-1]
	pq.heap = pq.heap[:n-1]
	pq.pos[v] = -1

	return v
}

// pushOrLower inserts v with key k, or lowers its key when k is smaller.
// Reports whether v's key changed. A vertex that was already popped is
// inserted again; callers skip tree vertices before calling.
func (pq *indexPQ) pushOrLower(v int, k float64) bool {
	if i := pq.pos[v]; i >= 0 {
		if k >= pq.key[v] {
			return false
		}
		pq.key[v] = k
		heap.Fix(pq, i)

		return true
	}
	pq.key[v] = k
	heap.Push(pq, v)

	return true
}

// popMin removes and returns the vertex with the smallest key.
func (pq *indexPQ) popMin() int {
	return heap.Pop(pq).(int)
}
