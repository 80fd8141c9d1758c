package queue_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/lanrat/keysort/queue"
)

func intCompareFunc(a, b int) int {
	return a - b
}

func TestQueueOrder(t *testing.T) {
	pq := queue.NewPriorityQueue(intCompareFunc)
	input := []int{5, 1, 9, 3, 3, 7}
	for _, v := range input {
		pq.Push(v)
	}
	if pq.Len() != len(input) {
		t.Fatalf("Len = %d, want %d", pq.Len(), len(input))
	}

	sorted := append([]int{}, input...)
	sort.Ints(sorted)
	for i, want := range sorted {
		if got := pq.Peek(); got != want {
			t.Fatalf("Peek %d = %d, want %d", i, got, want)
		}
		if got := pq.Pop(); got != want {
			t.Fatalf("Pop %d = %d, want %d", i, got, want)
		}
	}
	if pq.Len() != 0 {
		t.Errorf("queue not empty after draining: %d", pq.Len())
	}
}

func TestQueueRandom(t *testing.T) {
	pq := queue.NewPriorityQueue(intCompareFunc)
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		pq.Push(rnd.Intn(100))
	}
	prev := pq.Pop()
	for pq.Len() > 0 {
		next := pq.Pop()
		if next < prev {
			t.Fatalf("out of order: %d after %d", next, prev)
		}
		prev = next
	}
}

func TestQueuePushAfterPop(t *testing.T) {
	pq := queue.NewPriorityQueue(intCompareFunc)
	pq.Push(5)
	pq.Push(8)
	if got := pq.Pop(); got != 5 {
		t.Fatalf("Pop = %d, want 5", got)
	}
	// a newly pushed minimum must surface immediately
	pq.Push(1)
	if got := pq.Peek(); got != 1 {
		t.Fatalf("Peek = %d, want 1", got)
	}
	pq.Push(0)
	for _, want := range []int{0, 1, 8} {
		if got := pq.Pop(); got != want {
			t.Fatalf("Pop = %d, want %d", got, want)
		}
	}
}

type cursor struct {
	key int
}

func TestQueuePeekUpdate(t *testing.T) {
	pq := queue.NewPriorityQueue(func(a, b *cursor) int {
		return a.key - b.key
	})
	a := &cursor{key: 1}
	b := &cursor{key: 2}
	pq.Push(a)
	pq.Push(b)

	if pq.Peek() != a {
		t.Fatal("expected a first")
	}
	// raising the head's priority and fixing must reorder the heap
	a.key = 10
	pq.PeekUpdate()
	if pq.Peek() != b {
		t.Fatal("expected b first after PeekUpdate")
	}
	if pq.Pop() != b || pq.Pop() != a {
		t.Fatal("pop order wrong after PeekUpdate")
	}
}
