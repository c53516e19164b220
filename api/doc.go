// Package api
// Author: momentics <momentics@gmail.com>
//
// Pure contracts for the hioload-stream core: the sample element constraint,
// the two-slot alternating device interface, the pacing source, and the
// common error set. No package in api carries state or platform code; the
// core consumes devices purely through these interfaces so the same engine
// drives real peripherals and the test fakes unchanged.
package api
