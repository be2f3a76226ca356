//go:build linux || darwin || freebsd

package host

import (
	"time"

	"golang.org/x/sys/unix"
)

// Now returns monotonic seconds since an arbitrary origin. Only differences
// between two readings are meaningful.
func Now() float64 {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return time.Since(origin).Seconds()
	}
	return float64(ts.Sec) + float64(ts.Nsec)/1e9
}

var origin = time.Now()
