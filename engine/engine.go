// File: engine/engine.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The completion path performs only lock-free queue operations and a
// single slot rebind. No locks, no allocation, no cache maintenance,
// no blocking: every completion-context operation is total.

package engine

import (
	"sync/atomic"

	"github.com/momentics/hioload-stream/api"
	"github.com/momentics/hioload-stream/pool"
)

// PrimeThreshold is the ready-queue depth that must be exceeded before
// the engine starts: one more than the two slots being primed, so the
// first completion always finds a replacement queued.
const PrimeThreshold = 2

// Option customizes engine construction.
type Option[T api.Sample] func(*Engine[T])

// WithObserver installs an Observer for engine transitions.
func WithObserver[T api.Sample](obs Observer) Option[T] {
	return func(e *Engine[T]) { e.obs = obs }
}

// Engine drives one device channel in double-buffer mode from a pool's
// ready queue. Application context calls TryStart and Stop; the driver's
// completion interrupt calls OnComplete.
type Engine[T api.Sample] struct {
	dev   api.Device[T]
	pacer api.Pacer
	pool  *pool.Pool[T]
	obs   Observer
	state atomic.Int32
	slots [api.NumSlots]*pool.Buffer[T]
}

// New builds an engine bound to one device channel and one pool.
func New[T api.Sample](dev api.Device[T], pacer api.Pacer, p *pool.Pool[T], opts ...Option[T]) *Engine[T] {
	e := &Engine[T]{dev: dev, pacer: pacer, pool: p, obs: nopObserver{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// State returns the current engine state.
func (e *Engine[T]) State() State {
	return State(e.state.Load())
}

// TryStart primes and starts the stream when the ready queue is deep
// enough and the engine is Idle or Starved. Called after every submit;
// a no-op otherwise. Returns whether the engine transitioned to Running.
func (e *Engine[T]) TryStart() (bool, error) {
	if e.pool.Readable() <= PrimeThreshold {
		return false, nil
	}
	st := e.state.Load()
	if State(st) != Idle && State(st) != Starved {
		return false, nil
	}
	if !e.state.CompareAndSwap(st, int32(Priming)) {
		return false, nil
	}

	b0 := e.pool.NextReady()
	b1 := e.pool.NextReady()
	if b0 == nil || b1 == nil {
		// Unreachable under the depth guarantee: only the priming winner
		// pops the ready queue. Restore and bail.
		e.pool.Submit(b0)
		e.pool.Submit(b1)
		e.state.Store(st)
		return false, nil
	}

	if err := e.dev.Start(b0.Data(), b1.Data()); err != nil {
		b0.Release()
		b1.Release()
		e.state.Store(int32(Idle))
		return false, api.ErrDeviceRejected
	}
	e.slots[0] = b0
	e.slots[1] = b1
	e.pacer.Start()
	e.state.Store(int32(Running))
	e.obs.EngineEvent(Event{Kind: EventPrimed, State: Running})
	return true, nil
}

// OnComplete is the hardware completion handler. The device reports the
// slot it is currently consuming; the finished slot is the other one.
// Retires the finished buffer and rebinds only the idle slot, leaving
// the active transfer undisturbed, or fail-stops on starvation.
// Interrupt context: bounded, non-blocking, total.
func (e *Engine[T]) OnComplete() {
	if State(e.state.Load()) != Running {
		return
	}
	// Two-slot inversion: the reported slot is still in progress.
	finished := 1 - e.dev.CurrentSlot()
	if finished != 0 && finished != 1 {
		return
	}

	next := e.pool.NextReady()
	if next == nil {
		// Deliberate fail-stop rather than repeating stale data.
		e.halt(Starved, EventStarved)
		return
	}

	old := e.slots[finished]
	e.slots[finished] = next
	e.dev.Bind(finished, next.Data())
	ts := old.Timestamp()
	old.Release()
	e.obs.EngineEvent(Event{Kind: EventRetired, State: Running, Timestamp: ts})
}

// Stop halts the stream from application context: pacing and interrupt
// source first, slot release after, so no completion can race a cleared
// slot. Safe in any state; the engine returns to Idle.
func (e *Engine[T]) Stop() {
	e.halt(Idle, EventStopped)
}

func (e *Engine[T]) halt(to State, kind EventKind) {
	e.pacer.Stop()
	e.dev.Stop()
	for i, b := range e.slots {
		if b != nil {
			e.slots[i] = nil
			b.Release()
		}
	}
	e.state.Store(int32(to))
	e.obs.EngineEvent(Event{Kind: kind, State: to})
}

// Close stops the stream and tears down the pool. The only path that
// invalidates outstanding descriptors.
func (e *Engine[T]) Close() {
	e.Stop()
	e.pool.Close()
}
