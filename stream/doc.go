// Package stream
// Author: momentics <momentics@gmail.com>
//
// User-facing writer facade over pool + engine: acquire a buffer, fill
// it, write it back, and the engine streams it to the device in
// double-buffer mode. Acquire is the library's only blocking point and
// is context-interruptible; everything downstream is non-blocking.
package stream
