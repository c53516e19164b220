// Package pool
// Author: momentics <momentics@gmail.com>
//
// Fixed-capacity, cache-aware sample buffer pooling for hioload-stream.
// One aligned memory region, a fixed descriptor array, and two lock-free
// hand-off queues (free and ready) mediate every buffer movement between
// the application and the streaming engine's completion interrupt. No
// allocation happens after construction; conservation of descriptors is
// the package's core invariant. See buffer.go and pool.go.
package pool
