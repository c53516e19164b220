// Package fifo
// Author: momentics <momentics@gmail.com>
//
// Lock-free FIFO primitives for hand-off between application context and
// interrupt context. Queue is an intrusive unbounded linked FIFO with
// wait-free push and single-consumer pop; Ring is a bounded sequence-cell
// ring for lossy event hand-off. Neither allocates after construction and
// neither ever blocks, so both sides are safe to drive from a completion
// interrupt.
package fifo
