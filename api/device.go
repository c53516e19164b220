// File: api/device.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Hardware contract for double-buffered (alternating) streaming devices.
// The driver layer implements these interfaces; the core never touches
// device registers directly.

package api

// Sample constrains the element types a streaming device can consume.
// The resolved element size, channel count and resolution code are
// decided by the driver layer before a pool is built.
type Sample interface {
	~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~float32
}

// NumSlots is the number of hardware target slots in alternating mode.
// The finished-slot inversion in the engine assumes exactly two.
const NumSlots = 2

// Device is one streaming channel of a peripheral operating in
// double-buffer (alternating) mode. Start and Stop execute in application
// context; Bind and CurrentSlot must be callable from interrupt context
// and must not block or allocate.
type Device[T Sample] interface {
	// Start arms alternating mode with the two initial target regions and
	// begins consuming from slot 0. The device reports completions through
	// the handler registered by the engine.
	Start(slot0, slot1 []T) error

	// Bind reprograms a single idle slot's target region while the other
	// slot's transfer is in progress.
	Bind(slot int, data []T)

	// CurrentSlot reports which slot the hardware is presently consuming.
	// The slot that just finished is the other one.
	CurrentSlot() int

	// Stop halts consumption and disables completion interrupts. After
	// Stop returns no further completions are delivered.
	Stop()
}

// Pacer is the timing source that drives the device's consumption rate,
// typically a sample-rate timer. Opaque to the core.
type Pacer interface {
	Start()
	Stop()
}

// NopPacer is a Pacer for devices that self-pace.
type NopPacer struct{}

func (NopPacer) Start() {}
func (NopPacer) Stop()  {}
