// Package mem
// Author: momentics <momentics@gmail.com>
//
// Aligned region allocation and cache-maintenance abstraction for the
// streaming core. Every buffer slot carved out of a Region starts on a
// cache-line boundary so per-buffer clean/invalidate never touches a
// neighboring buffer's lines. Platform-specific backing (mmap vs heap)
// lives in region_linux.go and region_stub.go.
package mem
