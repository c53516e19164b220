// File: core/mem/region_stub.go
//go:build !linux
// +build !linux

//
// Heap backing for Region on platforms without the mmap path.
//
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package mem

func sysAlloc(n int) ([]byte, bool) {
	return make([]byte, n), false
}

func sysFree(raw []byte) {
	// Heap memory is reclaimed by the GC once the Region drops it.
	_ = raw
}
