// Package fail reports runtime failures.
//
// Every failure detected by the runtime is fatal by default: a single diagnostic
// line is written to the diagnostic stream and the process terminates with the
// platform's abort status. The line has the form
//
//	<file>:<line>[:<col>]: <kind>: <message>
//
// or "<kind>: <message>" when no source location is known.
//
// # Recoverable boundary
//
// Try runs a function with failures surfaced as a returned *Error instead of
// terminating the process:
//
//	err := fail.Try(func() {
//	    v := list.Get(10)
//	    use(v)
//	})
//	if fail.Is(err, fail.OutOfBounds) {
//	    // handle
//	}
//
// Outside of Try the fatal default applies.
//
// # Thread Safety
//
// The runtime is single-threaded. Try frames are counted process-wide, so a
// failure raised on another goroutine while a Try is active panics with the
// *Error instead of exiting. That panic is still fatal unless recovered.
package fail
