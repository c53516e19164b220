// Package engine
// Author: momentics <momentics@gmail.com>
//
// Double-buffer streaming engine. Binds two pool buffers to a device's
// alternating target slots, retires the finished buffer on every
// completion interrupt and rebinds the idle slot with the next ready
// buffer, fail-stopping on starvation instead of repeating stale data.
// One Engine is one hardware channel; there is no global channel table,
// construct one per channel and pass it where needed.
package engine
