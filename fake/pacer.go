// File: fake/pacer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fake pacing source recording start/stop ordering.

package fake

import "sync"

// Pacer is a fake api.Pacer that records calls.
type Pacer struct {
	mu         sync.Mutex
	running    bool
	StartCalls int
	StopCalls  int
}

func (p *Pacer) Start() {
	p.mu.Lock()
	p.running = true
	p.StartCalls++
	p.mu.Unlock()
}

func (p *Pacer) Stop() {
	p.mu.Lock()
	p.running = false
	p.StopCalls++
	p.mu.Unlock()
}

// Running reports whether the pacer is started.
func (p *Pacer) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.running
}
