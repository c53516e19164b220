// File: engine/state.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Engine state word and observer contract.

package engine

// State is the engine lifecycle state, held in a single atomic word.
type State int32

const (
	// Idle: no slots bound, device stopped, awaiting priming.
	Idle State = iota
	// Priming: transient; exactly one starter is pulling the two initial
	// buffers and arming the device.
	Priming
	// Running: both slots bound, device consuming, completions expected.
	Running
	// Starved: fail-stop after a completion found the ready queue empty.
	// Requires explicit re-priming; the engine never auto-resumes.
	Starved
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Priming:
		return "priming"
	case Running:
		return "running"
	case Starved:
		return "starved"
	}
	return "unknown"
}

// EventKind classifies engine transitions reported to an Observer.
type EventKind uint8

const (
	EventPrimed EventKind = iota
	EventRetired
	EventStarved
	EventStopped
)

func (k EventKind) String() string {
	switch k {
	case EventPrimed:
		return "primed"
	case EventRetired:
		return "retired"
	case EventStarved:
		return "starved"
	case EventStopped:
		return "stopped"
	}
	return "unknown"
}

// Event is one engine transition. Timestamp carries the retired buffer's
// submission stamp for EventRetired and is zero otherwise.
type Event struct {
	Kind      EventKind
	State     State
	Timestamp uint64
}

// Observer receives engine events. Implementations are invoked from the
// completion path and must be non-blocking and allocation-free.
type Observer interface {
	EngineEvent(ev Event)
}

type nopObserver struct{}

func (nopObserver) EngineEvent(Event) {}
