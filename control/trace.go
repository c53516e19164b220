// File: control/trace.go
// Author: momentics <momentics@gmail.com>
//
// Engine event trace. The completion path enqueues into a bounded
// lock-free ring (lossy under backpressure); application context drains
// the ring into an unbounded history queue for inspection. The split
// keeps the interrupt side allocation-free while the history side can
// grow.

package control

import (
	"sync"
	"sync/atomic"

	"github.com/eapache/queue"

	"github.com/momentics/hioload-stream/core/fifo"
	"github.com/momentics/hioload-stream/engine"
)

// Tracer records engine transitions. Implements engine.Observer.
type Tracer struct {
	ring    *fifo.Ring[engine.Event]
	dropped atomic.Uint64

	mu      sync.Mutex
	history *queue.Queue
	maxHist int
}

// NewTracer creates a tracer with the given ring capacity and history
// bound. History keeps the most recent maxHistory drained events.
func NewTracer(ringCap, maxHistory int) *Tracer {
	return &Tracer{
		ring:    fifo.NewRing[engine.Event](ringCap),
		history: queue.New(),
		maxHist: maxHistory,
	}
}

// EngineEvent enqueues one event. Interrupt-safe: lock-free, never
// blocks; drops and counts when the ring is full.
func (t *Tracer) EngineEvent(ev engine.Event) {
	if !t.ring.Enqueue(ev) {
		t.dropped.Add(1)
	}
}

// Drain moves pending events from the ring into history and returns
// them in FIFO order. Application context only.
func (t *Tracer) Drain() []engine.Event {
	var out []engine.Event
	for {
		ev, ok := t.ring.Dequeue()
		if !ok {
			break
		}
		out = append(out, ev)
	}
	t.mu.Lock()
	for _, ev := range out {
		t.history.Add(ev)
		for t.history.Length() > t.maxHist {
			t.history.Remove()
		}
	}
	t.mu.Unlock()
	return out
}

// History returns a snapshot of drained events, oldest first.
func (t *Tracer) History() []engine.Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]engine.Event, 0, t.history.Length())
	for i := 0; i < t.history.Length(); i++ {
		out = append(out, t.history.Get(i).(engine.Event))
	}
	return out
}

// Dropped returns the number of events lost to ring backpressure.
func (t *Tracer) Dropped() uint64 {
	return t.dropped.Load()
}

var _ engine.Observer = (*Tracer)(nil)
