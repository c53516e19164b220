// File: core/fifo/queue.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Intrusive lock-free linked FIFO, Vyukov MPSC scheme: push is a single
// XCHG on tail and never waits, pop is single-consumer. Items carry their
// own link via an embedded Node, so steady-state operation performs zero
// allocations. Push and pop may run concurrently across the interrupt/
// application boundary; FIFO order is preserved per queue.

package fifo

import "sync/atomic"

const cacheLinePad = 64

// Node is the intrusive link. Embed one in any type managed by a Queue;
// it is owned by the queue while the item is resident and must not be
// touched by the item's owner.
type Node[T any] struct {
	next atomic.Pointer[T]
}

// Queue is an intrusive FIFO of *T. One consumer at a time may call Pop;
// any context, including interrupt context, may call Push.
type Queue[T any] struct {
	tail atomic.Pointer[T]
	_    [cacheLinePad]byte
	head *T
	_    [cacheLinePad]byte
	size atomic.Int64
	stub T
	link func(*T) *Node[T]
}

// New builds an empty queue. link must return the embedded Node of an
// item; it is captured once and called on every push/pop.
func New[T any](link func(*T) *Node[T]) *Queue[T] {
	q := &Queue[T]{link: link}
	q.head = &q.stub
	q.tail.Store(&q.stub)
	return q
}

// Push appends item to the tail. Wait-free; safe from interrupt context.
// A nil item is ignored.
func (q *Queue[T]) Push(item *T) {
	if item == nil {
		return
	}
	q.push(item)
	q.size.Add(1)
}

func (q *Queue[T]) push(item *T) {
	q.link(item).next.Store(nil)
	prev := q.tail.Swap(item)
	q.link(prev).next.Store(item)
}

// Pop removes and returns the head, or nil when the queue is empty. A nil
// result is advisory: a concurrent push may be mid-flight, in which case
// the item is observable on a later Pop. Single consumer only.
func (q *Queue[T]) Pop() *T {
	head := q.head
	next := q.link(head).next.Load()
	if head == &q.stub {
		if next == nil {
			return nil
		}
		q.head = next
		head = next
		next = q.link(head).next.Load()
	}
	if next != nil {
		return q.take(head, next)
	}
	if head != q.tail.Load() {
		// Producer mid-push; the linked item is not visible yet.
		return nil
	}
	q.push(&q.stub)
	if next = q.link(head).next.Load(); next != nil {
		return q.take(head, next)
	}
	return nil
}

func (q *Queue[T]) take(head, next *T) *T {
	q.head = next
	q.size.Add(-1)
	q.link(head).next.Store(nil)
	return head
}

// Len reports the current item count. Advisory: stale by the time the
// caller acts on it; control decisions must re-check after acting.
func (q *Queue[T]) Len() int {
	if n := q.size.Load(); n > 0 {
		return int(n)
	}
	return 0
}

// Empty reports whether the queue appears empty. Advisory, like Len.
func (q *Queue[T]) Empty() bool {
	return q.Len() == 0
}
