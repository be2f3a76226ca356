//go:build !(linux || darwin || freebsd)

package host

import "time"

var origin = time.Now()

// Now returns monotonic seconds since an arbitrary origin. Only differences
// between two readings are meaningful.
func Now() float64 {
	return time.Since(origin).Seconds()
}
