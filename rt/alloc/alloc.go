package alloc

import (
	"unsafe"

	"github.com/joshuapare/rtcore/internal/buf"
	"github.com/joshuapare/rtcore/rt/fail"
)

// MaxAlloc is the largest single allocation in bytes.
const MaxAlloc = 1 << (30 + 10*(^uint(0)>>63))

// Bytes allocates n zeroed bytes.
func Bytes(n int) []byte {
	checkBytes(n, 2)
	return make([]byte, n)
}

// Zeroed allocates count*size zeroed bytes.
func Zeroed(count, size int) []byte {
	total, ok := buf.MulSizeSafe(count, size)
	if !ok {
		fail.Fail(fail.Allocation, fail.Here(1), "out of memory (%d x %d bytes)", count, size)
	}
	checkBytes(total, 2)
	return make([]byte, total)
}

// Realloc returns a slice of length n holding the common prefix of b.
// When n fits in cap(b) the backing array is reused.
func Realloc(b []byte, n int) []byte {
	checkBytes(n, 2)
	if n <= cap(b) {
		b = b[:n]
		return b
	}
	nb := make([]byte, n)
	copy(nb, b)
	return nb
}

// Make allocates a []T of length n and capacity c.
func Make[T any](n, c int) []T {
	if n < 0 || c < n {
		fail.Fail(fail.Allocation, fail.Here(1), "invalid allocation (len %d, cap %d)", n, c)
	}
	checkElems[T](c, 2)
	return make([]T, n, c)
}

// Grow returns s with capacity of at least need, doubling the current
// capacity (minimum 1) until it is large enough. Length and contents are kept.
func Grow[T any](s []T, need int) []T {
	if need <= cap(s) {
		return s
	}
	c := cap(s)
	if c == 0 {
		c = 1
	}
	for c < need {
		next, ok := buf.AddOverflowSafe(c, c)
		if !ok {
			fail.Fail(fail.Allocation, fail.Here(1), "out of memory (capacity overflow)")
		}
		c = next
	}
	checkElems[T](c, 2)
	ns := make([]T, len(s), c)
	copy(ns, s)
	return ns
}

// checkBytes fails when n bytes cannot be allocated. skip locates the caller
// that requested the memory.
func checkBytes(n int, skip int) {
	if n < 0 || n > MaxAlloc {
		fail.Fail(fail.Allocation, fail.Here(skip), "out of memory (%d bytes)", n)
	}
}

func checkElems[T any](count int, skip int) {
	var zero T
	total, ok := buf.MulSizeSafe(count, int(unsafe.Sizeof(zero)))
	if !ok || total > MaxAlloc {
		fail.Fail(fail.Allocation, fail.Here(skip), "out of memory (%d elements of %d bytes)", count, unsafe.Sizeof(zero))
	}
}
