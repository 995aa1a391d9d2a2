package collections

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinkedQueue(t *testing.T) {
	q := NewLinkedQueue[string]()
	q.Enqueue("First")
	q.Enqueue("Second")
	q.Enqueue("Third")
	q.Enqueue("Fourth")
	require.Equal(t, 4, q.Size())
	peek, err := q.Peek()
	require.Nil(t, err)
	require.Equal(t, "First", peek)
	v, err := q.Dequeue()
	require.Nil(t, err)
	require.Equal(t, "First", v)
	v, err = q.Dequeue()
	require.Nil(t, err)
	require.Equal(t, "Second", v)
	q.Enqueue("Fifth")
	q.Enqueue("Sixth")
	require.Equal(t, []string{"Third", "Fourth", "Fifth", "Sixth"}, q.Entries())
	q.Clear()
	require.Equal(t, true, q.IsEmpty())
	require.Equal(t, 0, q.Size())
}

func TestLinkedQueueChain(t *testing.T) {
	q := NewLinkedQueue[int]()
	require.Nil(t, q.front)
	require.Nil(t, q.rear)
	for i := 0; i < 5; i++ {
		q.Enqueue(i)
	}
	// count-1 hops from front reach rear, whose next is nil
	cur := q.front
	for i := 0; i < q.count-1; i++ {
		cur = cur.next
	}
	require.Equal(t, q.rear, cur)
	require.Nil(t, q.rear.next)
	for i := 0; i < 5; i++ {
		_, err := q.Dequeue()
		require.Nil(t, err)
	}
	require.Nil(t, q.front)
	require.Nil(t, q.rear)
	q.Enqueue(42)
	require.Equal(t, q.front, q.rear)
	v, err := q.Dequeue()
	require.Nil(t, err)
	require.Equal(t, 42, v)
}

func TestLinkedQueueDequeueDetachesNode(t *testing.T) {
	q := NewLinkedQueue[int]()
	q.Enqueue(1)
	q.Enqueue(2)
	old := q.front
	_, err := q.Dequeue()
	require.Nil(t, err)
	require.Nil(t, old.next)
	require.Equal(t, 0, old.value)
}

func TestLinkedQueueEqualsFunc(t *testing.T) {
	type Mock struct {
		A string
		B int
	}
	Equals := func(a, b *Mock) bool {
		if a == b {
			return true
		}
		if a == nil || b == nil {
			return false
		}
		return a.A == b.A && a.B == b.B
	}
	_, err := NewLinkedQueueFunc[*Mock](nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
	q, err := NewLinkedQueueFunc[*Mock](Equals)
	require.Nil(t, err)
	q.Enqueue(&Mock{A: "aa", B: 22})
	q.Enqueue(&Mock{A: "bb", B: 55})
	require.Equal(t, true, q.Contains(&Mock{A: "aa", B: 22}))
	require.Equal(t, true, q.Contains(&Mock{A: "bb", B: 55}))
	require.Equal(t, false, q.Contains(&Mock{A: "aa", B: 55}))
	require.Equal(t, false, q.Contains(nil))
	// plain == on pointers is identity, so a fresh copy is not found
	identity := NewLinkedQueue[*Mock]()
	identity.Enqueue(&Mock{A: "aa", B: 22})
	require.Equal(t, false, identity.Contains(&Mock{A: "aa", B: 22}))
}
