// File: core/mem/cache.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Cache maintenance abstraction. The call sites are contractual: the
// producer cleans a buffer after filling and before submission, the
// consumer invalidates before reading device-written data. On cache-
// coherent hosts both operations are no-ops, but the engine and pool
// still issue them so a non-coherent Maintainer can be dropped in
// without touching call sites.

package mem

// Maintainer performs cache maintenance on a memory range. Clean and
// Invalidate must only be handed ranges that start and end on cache-line
// boundaries; Pool guarantees that by rounding every slot with RoundUp.
type Maintainer interface {
	// Clean writes dirty cache lines covering p back to memory.
	Clean(p []byte)

	// Invalidate discards cache lines covering p so the next CPU read
	// fetches from memory.
	Invalidate(p []byte)
}

// Coherent is the Maintainer for fully coherent memory systems.
type Coherent struct{}

func (Coherent) Clean(p []byte)      {}
func (Coherent) Invalidate(p []byte) {}

var _ Maintainer = Coherent{}
