package main

import "testing"

func TestCircularQueueWraps(t *testing.T) {
	q := NewCircularQueue[int](3)

	q.Enqueue(1)
	q.Enqueue(2)
	q.Enqueue(3)
	q.Enqueue(4) // overwrites the oldest

	if !q.IsFull() {
		t.Fatal("queue should be full")
	}
	if got := q.PeekFirst(); got != 2 {
		t.Fatalf("PeekFirst = %v, want 2", got)
	}
	if got := q.PeekLast(); got != 4 {
		t.Fatalf("PeekLast = %v, want 4", got)
	}
	if got := q.At(1); got != 3 {
		t.Fatalf("At(1) = %v, want 3", got)
	}

	q.Clear()
	if !q.IsEmpty() {
		t.Fatal("queue should be empty after Clear")
	}
}
