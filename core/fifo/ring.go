// File: core/fifo/ring.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Bounded MPMC ring using per-cell sequence numbers, based on the pattern
// by Dmitry Vyukov. Used for interrupt-to-application event hand-off
// where dropping under backpressure is acceptable.

package fifo

import "sync/atomic"

// Ring is a bounded queue with capacity rounded up to a power of two.
type Ring[T any] struct {
	head  uint64
	_     [cacheLinePad]byte
	tail  uint64
	_     [cacheLinePad]byte
	mask  uint64
	cells []ringCell[T]
}

type ringCell[T any] struct {
	sequence atomic.Uint64
	data     T
}

// NewRing creates a ring with at least the requested capacity.
func NewRing[T any](capacity int) *Ring[T] {
	size := 2
	for size < capacity {
		size <<= 1
	}
	r := &Ring[T]{
		mask:  uint64(size - 1),
		cells: make([]ringCell[T], size),
	}
	for i := range r.cells {
		r.cells[i].sequence.Store(uint64(i))
	}
	return r
}

// Enqueue adds val; returns false if the ring is full.
func (r *Ring[T]) Enqueue(val T) bool {
	for {
		tail := atomic.LoadUint64(&r.tail)
		c := &r.cells[tail&r.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(tail)
		switch {
		case dif == 0:
			if atomic.CompareAndSwapUint64(&r.tail, tail, tail+1) {
				c.data = val
				c.sequence.Store(tail + 1)
				return true
			}
		case dif < 0:
			return false // full
		}
		// tail moved, retry
	}
}

// Dequeue removes and returns an item; ok is false when empty.
func (r *Ring[T]) Dequeue() (item T, ok bool) {
	for {
		head := atomic.LoadUint64(&r.head)
		c := &r.cells[head&r.mask]
		seq := c.sequence.Load()
		dif := int64(seq) - int64(head+1)
		switch {
		case dif == 0:
			if atomic.CompareAndSwapUint64(&r.head, head, head+1) {
				item = c.data
				c.sequence.Store(head + r.mask + 1)
				return item, true
			}
		case dif < 0:
			return item, false // empty
		}
		// head moved, retry
	}
}

// Len returns the approximate number of queued items.
func (r *Ring[T]) Len() int {
	tail := atomic.LoadUint64(&r.tail)
	head := atomic.LoadUint64(&r.head)
	if tail < head {
		return 0
	}
	return int(tail - head)
}

// Cap returns the ring's capacity.
func (r *Ring[T]) Cap() int {
	return len(r.cells)
}
