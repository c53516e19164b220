// File: fake/cache.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Recording cache maintainer for asserting the flush-before-submit and
// invalidate-before-read contracts.

package fake

import (
	"sync"

	"github.com/momentics/hioload-stream/core/mem"
)

// CacheRecorder counts cache maintenance calls per operation.
type CacheRecorder struct {
	mu          sync.Mutex
	Cleans      int
	Invalidates int
}

func (c *CacheRecorder) Clean(p []byte) {
	c.mu.Lock()
	c.Cleans++
	c.mu.Unlock()
}

func (c *CacheRecorder) Invalidate(p []byte) {
	c.mu.Lock()
	c.Invalidates++
	c.mu.Unlock()
}

// Counts returns the clean and invalidate call counts.
func (c *CacheRecorder) Counts() (cleans, invalidates int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Cleans, c.Invalidates
}

var _ mem.Maintainer = (*CacheRecorder)(nil)
