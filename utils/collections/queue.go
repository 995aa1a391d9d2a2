package collections

import (
	"fmt"
	"strings"
)

// Queue is a FIFO collection. Implementations are not safe for concurrent use.
type Queue[V any] interface {
	Enqueue(V)
	// Dequeue removes the front element, or returns ErrEmptyCollection.
	Dequeue() (V, error)
	// Peek returns the front element without removing it, or returns ErrEmptyCollection.
	Peek() (V, error)
	IsEmpty() bool
	Size() int
	Clear()
	Contains(V) bool
	// Entries returns the elements front to rear.
	Entries() []V
	String() string
}

// EqualsFunc reports whether two elements hold the same value.
type EqualsFunc[V any] func(a, b V) bool

func comparableEquals[V comparable](a, b V) bool {
	return a == b
}

func formatQueue[V any](entries []V) string {
	ss := make([]string, 0, len(entries))
	for _, v := range entries {
		ss = append(ss, fmt.Sprint(v))
	}
	return "Queue: [" + strings.Join(ss, ", ") + "]"
}
