// File: api/errors.go
// Author: momentics <momentics@gmail.com>
//
// Common error types for the hioload-stream library.

package api

import "errors"

// Common errors used across the library.
var (
	ErrBadAlignment   = errors.New("alignment must be a power of two")
	ErrAllocFailed    = errors.New("region allocation failed")
	ErrInvalidConfig  = errors.New("invalid stream configuration")
	ErrPoolClosed     = errors.New("buffer pool is closed")
	ErrPoolExhausted  = errors.New("no free buffer available")
	ErrEngineRunning  = errors.New("engine already running")
	ErrWriterClosed   = errors.New("stream writer is closed")
	ErrDeviceRejected = errors.New("device rejected stream start")
)
