// File: core/mem/region_linux.go
//go:build linux
// +build linux

//
// Linux backing for Region: anonymous private mmap, falling back to the
// Go heap when the mapping is refused. Mapped regions are page-aligned,
// which already satisfies every cache-line alignment request; the
// offset computation in Alloc still runs so both backings behave the
// same.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mem

import "golang.org/x/sys/unix"

// sysAlloc maps or allocates exactly n bytes. The bool reports whether
// the memory is mmap-backed and must be released through sysFree.
func sysAlloc(n int) ([]byte, bool) {
	data, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANONYMOUS|unix.MAP_PRIVATE)
	if err != nil {
		return make([]byte, n), false
	}
	return data, true
}

// sysFree returns mmap-backed memory to the OS.
func sysFree(raw []byte) {
	_ = unix.Munmap(raw)
}
