// Package control
// Author: momentics <momentics@gmail.com>
//
// Ambient layer for hioload-stream: stream configuration with JSON codec
// and hot-reload store, lock-free engine metrics, and the event tracer
// bridging interrupt-context transitions into application-context
// history. Nothing here sits on the streaming hot path except the
// bounded, lossy enqueue side of the tracer and the metric atomics.
package control
