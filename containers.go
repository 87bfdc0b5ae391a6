package aoc

import (
	"container/heap"
	"fmt"
)

// PQI is an item in a PQ. V is the payload and P its priority.
type PQI[T any] struct {
	V T
	P int
}

func (i *PQI[T]) String() string {
	return fmt.Sprintf("%v:%v", i.V, i.P)
}

// PQ is a priority queue that pops the lowest priority first. Items of
// equal priority pop in no particular order.
type PQ[T any] struct {
	h pqHeap[T]
}

// MinQueue returns an empty PQ.
func MinQueue[T any]() *PQ[T] {
	return &PQ[T]{}
}

func (pq *PQ[T]) Push(v *PQI[T]) {
	heap.Push(&pq.h, v)
}

// Pop removes and returns the lowest priority item. It panics if the queue
// is empty.
func (pq *PQ[T]) Pop() *PQI[T] {
	return heap.Pop(&pq.h).(*PQI[T])
}

func (pq *PQ[T]) Len() int {
	return len(pq.h)
}

type pqHeap[T any] []*PQI[T]

func (h pqHeap[T]) Len() int           { return len(h) }
func (h pqHeap[T]) Less(i, j int) bool { return h[i].P < h[j].P }
func (h pqHeap[T]) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *pqHeap[T]) Push(x any) {
	*h = append(*h, x.(*PQI[T]))
}

func (h *pqHeap[T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}
