// File: stream/writer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package stream

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/momentics/hioload-stream/api"
	"github.com/momentics/hioload-stream/control"
	"github.com/momentics/hioload-stream/core/mem"
	"github.com/momentics/hioload-stream/engine"
	"github.com/momentics/hioload-stream/pool"
)

const defaultPollInterval = 50 * time.Microsecond

// Option customizes writer construction.
type Option[T api.Sample] func(*Writer[T])

// WithMaintainer installs a cache maintainer on the writer's pool.
func WithMaintainer[T api.Sample](m mem.Maintainer) Option[T] {
	return func(w *Writer[T]) { w.maint = m }
}

// WithObserver installs an engine observer (metrics, tracer).
func WithObserver[T api.Sample](obs engine.Observer) Option[T] {
	return func(w *Writer[T]) { w.obs = obs }
}

// WithPollInterval tunes the Acquire sleep between free-queue checks.
func WithPollInterval[T api.Sample](d time.Duration) Option[T] {
	return func(w *Writer[T]) { w.poll = d }
}

// Writer is one output stream channel. Construct with NewWriter, wire
// the device's completion interrupt to OnComplete, then acquire, fill
// and write buffers; the engine primes and starts the device once three
// buffers are pending.
type Writer[T api.Sample] struct {
	pool   *pool.Pool[T]
	eng    *engine.Engine[T]
	null   pool.Buffer[T]
	maint  mem.Maintainer
	obs    engine.Observer
	poll   time.Duration
	closed atomic.Bool
}

// NewWriter validates cfg and builds the pool and engine for one device
// channel.
func NewWriter[T api.Sample](dev api.Device[T], pacer api.Pacer, cfg control.Config, opts ...Option[T]) (*Writer[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &Writer[T]{poll: defaultPollInterval}
	for _, opt := range opts {
		opt(w)
	}

	var popts []pool.Option
	if w.maint != nil {
		popts = append(popts, pool.WithMaintainer(w.maint))
	}
	p, err := pool.New[T](cfg.Samples, cfg.Channels, cfg.Buffers, popts...)
	if err != nil {
		return nil, err
	}
	w.pool = p

	var eopts []engine.Option[T]
	if w.obs != nil {
		eopts = append(eopts, engine.WithObserver[T](w.obs))
	}
	if pacer == nil {
		pacer = api.NopPacer{}
	}
	w.eng = engine.New(dev, pacer, p, eopts...)
	return w, nil
}

// Available reports whether a free buffer appears ready for acquisition.
// Advisory.
func (w *Writer[T]) Available() bool {
	return !w.closed.Load() && w.pool.Writable()
}

// TryAcquire returns a free buffer or nil without waiting.
func (w *Writer[T]) TryAcquire() *pool.Buffer[T] {
	if w.closed.Load() {
		return nil
	}
	return w.pool.Acquire()
}

// Acquire polls the free queue until a buffer is available or ctx ends.
// The only blocking point in the library; a completion retiring a buffer
// always unblocks it. On a closed writer the null buffer is returned
// with ErrWriterClosed; its Release is a no-op.
func (w *Writer[T]) Acquire(ctx context.Context) (*pool.Buffer[T], error) {
	for {
		if w.closed.Load() {
			return &w.null, api.ErrWriterClosed
		}
		if b := w.pool.Acquire(); b != nil {
			return b, nil
		}
		select {
		case <-ctx.Done():
			return &w.null, ctx.Err()
		case <-time.After(w.poll):
		}
	}
}

// Write flushes the filled buffer, submits it to the ready queue and
// starts the engine once the priming threshold is exceeded.
func (w *Writer[T]) Write(b *pool.Buffer[T]) error {
	if w.closed.Load() {
		return api.ErrWriterClosed
	}
	if b == nil || b == &w.null {
		return nil
	}
	b.Flush()
	w.pool.Submit(b)
	_, err := w.eng.TryStart()
	return err
}

// Pending returns the apparent ready-queue depth. Advisory.
func (w *Writer[T]) Pending() int {
	return w.pool.Readable()
}

// State returns the engine state.
func (w *Writer[T]) State() engine.State {
	return w.eng.State()
}

// OnComplete is the completion handler to wire to the device's
// interrupt. Interrupt context.
func (w *Writer[T]) OnComplete() {
	w.eng.OnComplete()
}

// Stop halts streaming and returns bound buffers to the pool. The
// writer stays usable; re-submission past the threshold restarts it.
func (w *Writer[T]) Stop() {
	w.eng.Stop()
}

// Close stops the stream and tears down the pool. Outstanding buffer
// handles become invalid; all further operations fail or no-op.
func (w *Writer[T]) Close() {
	if !w.closed.CompareAndSwap(false, true) {
		return
	}
	w.eng.Close()
}
