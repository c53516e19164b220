// File: pool/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer is the fixed descriptor for one slot of a pool's aligned sample
// region. Descriptors are constructed once at pool creation and live for
// the life of the pool; ownership moves between the free queue, the
// caller, the ready queue and the hardware slots, never overlapping.

package pool

import (
	"unsafe"

	"github.com/momentics/hioload-stream/api"
	"github.com/momentics/hioload-stream/core/fifo"
)

// Flag bits carried by a buffer while owned by a caller or in flight.
type Flag uint32

const (
	// Discontinuous marks a gap in the sample stream before this buffer.
	Discontinuous Flag = 1 << iota
	// Interleaved marks channel-interleaved sample layout.
	Interleaved
)

// Buffer describes one fixed-capacity slot of sample storage. The zero
// value is the null buffer: no storage, no owner, every operation a
// no-op. The storage itself belongs to the pool; a Buffer handed to a
// caller is borrowed until Release.
type Buffer[T api.Sample] struct {
	node     fifo.Node[Buffer[T]]
	owner    *Pool[T]
	data     []T
	samples  int
	channels int
	ts       uint64
	flags    Flag
}

// Data returns the sample storage. Valid only while the caller owns the
// buffer; the view is read-only from the device's side once submitted.
func (b *Buffer[T]) Data() []T { return b.data }

// Len returns the buffer extent in samples across all channels.
func (b *Buffer[T]) Len() int { return b.samples * b.channels }

// Bytes returns the buffer extent in bytes.
func (b *Buffer[T]) Bytes() int {
	var elem T
	return b.Len() * int(unsafe.Sizeof(elem))
}

// Samples returns the per-channel sample capacity.
func (b *Buffer[T]) Samples() int { return b.samples }

// Channels returns the channel count.
func (b *Buffer[T]) Channels() int { return b.channels }

// Timestamp returns the submission stamp.
func (b *Buffer[T]) Timestamp() uint64 { return b.ts }

// SetTimestamp overrides the stamp assigned at submission.
func (b *Buffer[T]) SetTimestamp(ts uint64) { b.ts = ts }

// SetFlags sets the given flag bits.
func (b *Buffer[T]) SetFlags(f Flag) { b.flags |= f }

// HasFlags reports whether all given flag bits are set.
func (b *Buffer[T]) HasFlags(f Flag) bool { return b.flags&f == f }

// ClearFlags clears the given flag bits; with no argument semantics use
// ClearAllFlags.
func (b *Buffer[T]) ClearFlags(f Flag) { b.flags &^= f }

// ClearAllFlags clears every flag bit.
func (b *Buffer[T]) ClearAllFlags() { b.flags = 0 }

// Flush cleans the cache lines covering the buffer so memory-resident
// writes are visible to the device. Producers call it after filling and
// before Submit.
func (b *Buffer[T]) Flush() {
	if b.owner != nil && len(b.data) > 0 {
		b.owner.maint.Clean(b.raw())
	}
}

// Invalidate discards cache lines covering the buffer so subsequent CPU
// reads observe device-written data. Input-direction counterpart of
// Flush.
func (b *Buffer[T]) Invalidate() {
	if b.owner != nil && len(b.data) > 0 {
		b.owner.maint.Invalidate(b.raw())
	}
}

// Release returns the buffer to its owning pool's free queue, clearing
// flag bits. No-op on the null buffer.
func (b *Buffer[T]) Release() {
	if b.owner != nil && b.data != nil {
		b.owner.Release(b)
	}
}

// raw reinterprets the sample storage as bytes for cache maintenance.
func (b *Buffer[T]) raw() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(&b.data[0])), b.Bytes())
}
