package collections

import (
	"fmt"

	"github.com/hyperryzen/Ochered/utils/math"
)

const (
	DefaultRingBufferCapacity = 10
	// growth factor is ringGrowNum/ringGrowDen (1.5x)
	ringGrowNum = 3
	ringGrowDen = 2
)

var _ Queue[int] = (*RingBufferQueue[int])(nil)

// RingBufferQueue is a Queue over a circular slice that grows by 1.5x when full.
// Logical element i lives at entries[(front+i) % len(entries)].
type RingBufferQueue[V any] struct {
	entries []V
	front   int // next slot to dequeue
	rear    int // next free slot
	count   int
	equals  EqualsFunc[V]
}

func NewRingBufferQueue[V comparable]() *RingBufferQueue[V] {
	q, _ := NewRingBufferQueueFunc[V](DefaultRingBufferCapacity, comparableEquals[V])
	return q
}

func NewRingBufferQueueWithCapacity[V comparable](capacity int) (*RingBufferQueue[V], error) {
	return NewRingBufferQueueFunc[V](capacity, comparableEquals[V])
}

// NewRingBufferQueueFunc creates a queue whose Contains uses equals.
// Use it for element types that are not comparable, or whose == is identity.
func NewRingBufferQueueFunc[V any](capacity int, equals EqualsFunc[V]) (*RingBufferQueue[V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidArgument, capacity)
	}
	if equals == nil {
		return nil, fmt.Errorf("%w: nil equals func", ErrInvalidArgument)
	}
	return &RingBufferQueue[V]{
		entries: make([]V, capacity),
		equals:  equals,
	}, nil
}

func (q *RingBufferQueue[V]) Enqueue(v V) {
	if q.count == len(q.entries) {
		q.grow()
	}
	q.entries[q.rear] = v
	q.rear = q.wrapIndex(q.rear + 1)
	q.count++
}

func (q *RingBufferQueue[V]) Dequeue() (v V, err error) {
	if q.count == 0 {
		return v, ErrEmptyCollection
	}
	var zero V
	ret := q.entries[q.front]
	q.entries[q.front] = zero
	q.front = q.wrapIndex(q.front + 1)
	q.count--
	return ret, nil
}

func (q *RingBufferQueue[V]) Peek() (v V, err error) {
	if q.count == 0 {
		return v, ErrEmptyCollection
	}
	return q.entries[q.front], nil
}

func (q *RingBufferQueue[V]) IsEmpty() bool {
	return q.count == 0
}

func (q *RingBufferQueue[V]) Size() int {
	return q.count
}

// Capacity returns the length of the backing slice.
func (q *RingBufferQueue[V]) Capacity() int {
	return len(q.entries)
}

// Clear drops every element but keeps the backing slice.
func (q *RingBufferQueue[V]) Clear() {
	var zero V
	for i := range q.entries {
		q.entries[i] = zero
	}
	q.front = 0
	q.rear = 0
	q.count = 0
}

func (q *RingBufferQueue[V]) Contains(v V) bool {
	for i := 0; i < q.count; i++ {
		if q.equals(q.entries[q.wrapIndex(q.front+i)], v) {
			return true
		}
	}
	return false
}

func (q *RingBufferQueue[V]) Entries() []V {
	arr := make([]V, 0, q.count)
	for i := 0; i < q.count; i++ {
		arr = append(arr, q.entries[q.wrapIndex(q.front+i)])
	}
	return arr
}

func (q *RingBufferQueue[V]) String() string {
	return formatQueue(q.Entries())
}

func (q *RingBufferQueue[V]) wrapIndex(idx int) int {
	return idx % len(q.entries)
}

// grow reflows the live elements to the start of a larger slice.
// floor(1*1.5) == 1, so the new capacity is at least one more than the old.
func (q *RingBufferQueue[V]) grow() {
	oldCap := len(q.entries)
	newCap := math.Max(math.ScaleFloor(oldCap, ringGrowNum, ringGrowDen), oldCap+1)
	entries := make([]V, newCap)
	for i := 0; i < q.count; i++ {
		entries[i] = q.entries[q.wrapIndex(q.front+i)]
	}
	q.entries = entries
	q.front = 0
	q.rear = q.count
}
