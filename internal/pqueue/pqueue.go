// Package pqueue implements a binary min-heap of (distance, node) pairs.
//
// Push sifts the new item up; Pop swaps the root with the last element,
// shrinks the heap and sifts the new root down. Every parent's Dist is less
// than or equal to the Dist of both of its children.
package pqueue

import "container/heap"

// Item is a node keyed by its tentative distance.
type Item struct {
	Dist int
	Node int
}

// items satisfies heap.Interface, ordered by Dist ascending.
type items []Item

func (h items) Len() int           { return len(h) }
func (h items) Less(i, j int) bool { return h[i].Dist < h[j].Dist }
func (h items) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }

func (h *items) Push(x any) { *h = append(*h, x.(Item)) }

func (h *items) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	*h = old[:n-1]
	return it
}

// Queue is a min-priority queue. The zero value is ready to use.
type Queue struct {
	h items
}

// New returns an empty queue with room for capacity items.
func New(capacity int) *Queue {
	return &Queue{h: make(items, 0, capacity)}
}

// Push adds an item.
func (q *Queue) Push(dist, node int) {
	heap.Push(&q.h, Item{Dist: dist, Node: node})
}

// Pop removes and returns the item with the smallest Dist.
// ok is false when the queue is empty.
func (q *Queue) Pop() (it Item, ok bool) {
	if len(q.h) == 0 {
		return Item{}, false
	}
	return heap.Pop(&q.h).(Item), true
}

// Peek returns the smallest item without removing it.
func (q *Queue) Peek() (Item, bool) {
	if len(q.h) == 0 {
		return Item{}, false
	}
	return q.h[0], true
}

func (q *Queue) Len() int { return len(q.h) }

func (q *Queue) Empty() bool { return len(q.h) == 0 }
