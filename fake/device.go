// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake device, pacer and cache maintainer for testing the streaming
// core without hardware. The fake device models the alternating-slot
// register contract: it consumes the active slot, flips to the other
// slot, and only then reports completion, so the engine's finished-slot
// inversion is exercised exactly as on hardware.

package fake

import (
	"errors"
	"sync"

	"github.com/momentics/hioload-stream/api"
)

// Bind records one slot reprogram.
type Bind[T api.Sample] struct {
	Slot int
	Data []T
}

// Device is a fake api.Device implementation.
type Device[T api.Sample] struct {
	mu         sync.Mutex
	started    bool
	current    int
	slots      [api.NumSlots][]T
	handler    func()
	FailStart  bool
	StartCalls int
	StopCalls  int
	BindCalls  []Bind[T]
	Captured   [][]T
}

// NewDevice creates a stopped fake device.
func NewDevice[T api.Sample]() *Device[T] {
	return &Device[T]{}
}

// OnCompletion registers the completion handler, the fake stand-in for
// wiring an interrupt vector. Complete invokes it.
func (d *Device[T]) OnCompletion(fn func()) {
	d.mu.Lock()
	d.handler = fn
	d.mu.Unlock()
}

// Start arms alternating mode with the two initial target regions.
func (d *Device[T]) Start(slot0, slot1 []T) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.StartCalls++
	if d.FailStart {
		return errors.New("fake device: start refused")
	}
	d.slots[0] = slot0
	d.slots[1] = slot1
	d.current = 0
	d.started = true
	return nil
}

// Bind reprograms one idle slot's target region.
func (d *Device[T]) Bind(slot int, data []T) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.BindCalls = append(d.BindCalls, Bind[T]{Slot: slot, Data: data})
	if slot >= 0 && slot < api.NumSlots {
		d.slots[slot] = data
	}
}

// CurrentSlot reports the slot presently being consumed.
func (d *Device[T]) CurrentSlot() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.current
}

// Stop halts consumption; no completion fires afterwards.
func (d *Device[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.StopCalls++
	d.started = false
}

// Started reports whether the device is armed.
func (d *Device[T]) Started() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.started
}

// Complete simulates one hardware completion: the active slot's data is
// captured as consumed, the hardware flips to the other slot, and the
// completion handler runs with CurrentSlot already pointing at the new
// active slot (the finished slot is the other one).
func (d *Device[T]) Complete() {
	d.mu.Lock()
	if !d.started {
		d.mu.Unlock()
		return
	}
	finished := d.current
	data := d.slots[finished]
	snapshot := make([]T, len(data))
	copy(snapshot, data)
	d.Captured = append(d.Captured, snapshot)
	d.current = 1 - finished
	handler := d.handler
	d.mu.Unlock()

	if handler != nil {
		handler()
	}
}

// Slot returns the region currently programmed into a slot.
func (d *Device[T]) Slot(i int) []T {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i < 0 || i >= api.NumSlots {
		return nil
	}
	return d.slots[i]
}

// Binds returns the number of Bind calls so far.
func (d *Device[T]) Binds() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.BindCalls)
}

var _ api.Device[uint16] = (*Device[uint16])(nil)
