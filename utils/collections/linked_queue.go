package collections

import "fmt"

var _ Queue[int] = (*LinkedQueue[int])(nil)

type node[V any] struct {
	value V
	next  *node[V]
}

// LinkedQueue is a Queue over a singly-linked chain of nodes.
// front and rear are both nil iff the queue is empty.
type LinkedQueue[V any] struct {
	front  *node[V]
	rear   *node[V]
	count  int
	equals EqualsFunc[V]
}

func NewLinkedQueue[V comparable]() *LinkedQueue[V] {
	return &LinkedQueue[V]{
		equals: comparableEquals[V],
	}
}

func NewLinkedQueueFunc[V any](equals EqualsFunc[V]) (*LinkedQueue[V], error) {
	if equals == nil {
		return nil, fmt.Errorf("%w: nil equals func", ErrInvalidArgument)
	}
	return &LinkedQueue[V]{
		equals: equals,
	}, nil
}

func (q *LinkedQueue[V]) Enqueue(v V) {
	n := &node[V]{value: v}
	if q.rear == nil {
		q.front = n
	} else {
		q.rear.next = n
	}
	q.rear = n
	q.count++
}

func (q *LinkedQueue[V]) Dequeue() (v V, err error) {
	if q.front == nil {
		return v, ErrEmptyCollection
	}
	old := q.front
	q.front = old.next
	if q.front == nil {
		q.rear = nil
	}
	q.count--
	var zero V
	ret := old.value
	// detach so a retained node does not pin the rest of the chain
	old.next = nil
	old.value = zero
	return ret, nil
}

func (q *LinkedQueue[V]) Peek() (v V, err error) {
	if q.front == nil {
		return v, ErrEmptyCollection
	}
	return q.front.value, nil
}

func (q *LinkedQueue[V]) IsEmpty() bool {
	return q.front == nil
}

func (q *LinkedQueue[V]) Size() int {
	return q.count
}

// Clear releases the whole chain at once; the garbage collector reclaims the nodes.
func (q *LinkedQueue[V]) Clear() {
	q.front = nil
	q.rear = nil
	q.count = 0
}

func (q *LinkedQueue[V]) Contains(v V) bool {
	for cur := q.front; cur != nil; cur = cur.next {
		if q.equals(cur.value, v) {
			return true
		}
	}
	return false
}

func (q *LinkedQueue[V]) Entries() []V {
	arr := make([]V, 0, q.count)
	for cur := q.front; cur != nil; cur = cur.next {
		arr = append(arr, cur.value)
	}
	return arr
}

func (q *LinkedQueue[V]) String() string {
	return formatQueue(q.Entries())
}
