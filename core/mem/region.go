// File: core/mem/region.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Aligned block allocator. The underlying allocation is oversized by
// align-1 bytes, the returned view starts at the first aligned address
// inside it, and the Region retains the original allocation so Free can
// release it (the Go rendition of the stash-the-origin-pointer scheme).

package mem

import (
	"unsafe"

	"github.com/momentics/hioload-stream/api"
)

// CacheLineSize is the coherency granule assumed for buffer slot rounding.
const CacheLineSize = 64

// Region is one aligned memory region. The zero value is an empty region;
// Free on it is a no-op.
type Region struct {
	data   []byte // aligned view, len == requested size
	origin []byte // full raw allocation, kept for Free
	mapped bool   // origin came from mmap, not the heap
}

// RoundUp rounds size up to the next multiple of align. align must be a
// power of two; callers validate through Alloc before relying on it.
func RoundUp(size, align int) int {
	return (size + align - 1) &^ (align - 1)
}

// Alloc returns a Region of exactly size bytes whose base address is a
// multiple of align. Fails if align is not a power of two or the
// underlying allocation fails. The region's contents are zeroed.
func Alloc(size, align int) (*Region, error) {
	if align <= 0 || align&(align-1) != 0 {
		return nil, api.ErrBadAlignment
	}
	if size <= 0 {
		return nil, api.ErrAllocFailed
	}
	raw, mapped := sysAlloc(size + align - 1)
	if raw == nil {
		return nil, api.ErrAllocFailed
	}
	base := uintptr(unsafe.Pointer(&raw[0]))
	off := int((uintptr(align) - base&(uintptr(align)-1)) & (uintptr(align) - 1))
	return &Region{
		data:   raw[off : off+size : off+size],
		origin: raw,
		mapped: mapped,
	}, nil
}

// Bytes returns the aligned view. Nil after Free.
func (r *Region) Bytes() []byte {
	if r == nil {
		return nil
	}
	return r.data
}

// Size returns the usable length of the region.
func (r *Region) Size() int {
	if r == nil {
		return 0
	}
	return len(r.data)
}

// Free releases the original allocation. No-op on a nil or already-freed
// region. The aligned view must not be used afterwards.
func (r *Region) Free() {
	if r == nil || r.origin == nil {
		return
	}
	if r.mapped {
		sysFree(r.origin)
	}
	r.data = nil
	r.origin = nil
}
