// File: pool/pool.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fixed-capacity buffer pool over one cache-aligned memory region. The
// pool owns the region and the descriptor array; callers and the engine
// move descriptors between the free and ready queues through the
// lock-free FIFO, so every operation here is safe on the completion
// path. The region's shape is immutable after construction; only queue
// membership and per-buffer metadata mutate.

package pool

import (
	"sync/atomic"
	"unsafe"

	"github.com/momentics/hioload-stream/api"
	"github.com/momentics/hioload-stream/core/fifo"
	"github.com/momentics/hioload-stream/core/mem"
)

// Option customizes pool construction.
type Option func(*options)

type options struct {
	align int
	maint mem.Maintainer
}

// WithAlignment overrides the slot alignment (default cache-line size).
// Must be a power of two; construction fails otherwise.
func WithAlignment(align int) Option {
	return func(o *options) { o.align = align }
}

// WithMaintainer installs a cache Maintainer for non-coherent memory
// systems. Default is mem.Coherent.
func WithMaintainer(m mem.Maintainer) Option {
	return func(o *options) { o.maint = m }
}

// Pool owns an aligned sample region carved into buffers equal slots and
// the fixed set of Buffer descriptors pointing into them.
type Pool[T api.Sample] struct {
	region *mem.Region
	maint  mem.Maintainer
	bufs   []Buffer[T]
	freeq  *fifo.Queue[Buffer[T]]
	readyq *fifo.Queue[Buffer[T]]
	seq    atomic.Uint64
	closed atomic.Bool
}

// New builds a pool of buffers descriptors, each with capacity
// samples × channels elements, all carved from a single aligned region.
// Every slot starts on an alignment boundary so per-buffer cache
// maintenance never touches a neighbor. On error the pool is unusable
// and nil is returned.
func New[T api.Sample](samples, channels, buffers int, opts ...Option) (*Pool[T], error) {
	if samples <= 0 || channels <= 0 || buffers <= 0 {
		return nil, api.ErrInvalidConfig
	}
	o := options{align: mem.CacheLineSize, maint: mem.Coherent{}}
	for _, opt := range opts {
		opt(&o)
	}

	var elem T
	slot := mem.RoundUp(samples*channels*int(unsafe.Sizeof(elem)), o.align)
	region, err := mem.Alloc(buffers*slot, o.align)
	if err != nil {
		return nil, err
	}

	link := func(b *Buffer[T]) *fifo.Node[Buffer[T]] { return &b.node }
	p := &Pool[T]{
		region: region,
		maint:  o.maint,
		bufs:   make([]Buffer[T], buffers),
		freeq:  fifo.New(link),
		readyq: fifo.New(link),
	}
	raw := region.Bytes()
	for i := range p.bufs {
		base := &raw[i*slot]
		p.bufs[i] = Buffer[T]{
			owner:    p,
			data:     unsafe.Slice((*T)(unsafe.Pointer(base)), samples*channels),
			samples:  samples,
			channels: channels,
		}
		p.freeq.Push(&p.bufs[i])
	}
	return p, nil
}

// Acquire pops a buffer from the free queue, or nil when none is
// available or the pool is closed. Non-blocking; callers decide whether
// to poll-wait.
func (p *Pool[T]) Acquire() *Buffer[T] {
	if p == nil || p.closed.Load() {
		return nil
	}
	return p.freeq.Pop()
}

// Writable reports whether a free buffer appears available. Advisory.
func (p *Pool[T]) Writable() bool {
	return p != nil && !p.closed.Load() && !p.freeq.Empty()
}

// Readable returns the apparent ready-queue depth. Advisory.
func (p *Pool[T]) Readable() int {
	if p == nil || p.closed.Load() {
		return 0
	}
	return p.readyq.Len()
}

// Submit pushes a filled, flushed buffer onto the ready queue and stamps
// it with a monotonic submission sequence unless the caller already set
// a timestamp.
func (p *Pool[T]) Submit(b *Buffer[T]) {
	if p == nil || b == nil || p.closed.Load() {
		return
	}
	if b.ts == 0 {
		b.ts = p.seq.Add(1)
	}
	p.readyq.Push(b)
}

// NextReady pops the next buffer from the ready queue for hardware
// consumption, or nil when none is pending. Safe from interrupt context.
func (p *Pool[T]) NextReady() *Buffer[T] {
	if p == nil || p.closed.Load() {
		return nil
	}
	return p.readyq.Pop()
}

// Release returns a finished buffer to the free queue, clearing flags
// and timestamp. Safe from interrupt context.
func (p *Pool[T]) Release(b *Buffer[T]) {
	if p == nil || b == nil || p.closed.Load() {
		return
	}
	b.flags = 0
	b.ts = 0
	p.freeq.Push(b)
}

// Buffers returns the pool's fixed descriptor count.
func (p *Pool[T]) Buffers() int {
	if p == nil {
		return 0
	}
	return len(p.bufs)
}

// Close tears the pool down and releases the region. The only path that
// invalidates outstanding descriptors; callers must stop the engine
// first so no completion can fire afterwards. All later operations on
// the pool are no-ops.
func (p *Pool[T]) Close() {
	if p == nil || !p.closed.CompareAndSwap(false, true) {
		return
	}
	for i := range p.bufs {
		p.bufs[i].data = nil
		p.bufs[i].owner = nil
	}
	p.region.Free()
}
