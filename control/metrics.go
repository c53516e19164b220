// File: control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Stream metrics collector. Counters are plain atomics so the engine's
// completion path can bump them without locks; GetSnapshot materializes
// them into a registry-style map for monitoring surfaces.

package control

import (
	"sync/atomic"

	"github.com/momentics/hioload-stream/engine"
)

// Metrics counts engine transitions. Implements engine.Observer; all
// updates are lock-free and allocation-free.
type Metrics struct {
	Primes      atomic.Uint64
	Retires     atomic.Uint64
	Starvations atomic.Uint64
	Stops       atomic.Uint64
}

// NewMetrics creates a zeroed metrics collector.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// EngineEvent updates the counter for one engine transition.
func (m *Metrics) EngineEvent(ev engine.Event) {
	switch ev.Kind {
	case engine.EventPrimed:
		m.Primes.Add(1)
	case engine.EventRetired:
		m.Retires.Add(1)
	case engine.EventStarved:
		m.Starvations.Add(1)
	case engine.EventStopped:
		m.Stops.Add(1)
	}
}

// GetSnapshot returns the current counter values.
func (m *Metrics) GetSnapshot() map[string]uint64 {
	return map[string]uint64{
		"primes":      m.Primes.Load(),
		"retires":     m.Retires.Load(),
		"starvations": m.Starvations.Load(),
		"stops":       m.Stops.Load(),
	}
}

var _ engine.Observer = (*Metrics)(nil)

// Fanout multiplexes engine events to several observers.
func Fanout(obs ...engine.Observer) engine.Observer {
	return fanout(obs)
}

type fanout []engine.Observer

func (f fanout) EngineEvent(ev engine.Event) {
	for _, o := range f {
		o.EngineEvent(ev)
	}
}
