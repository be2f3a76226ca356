// Package alloc provides checked allocation for the runtime.
//
// # Overview
//
// Every allocation made by the runtime's containers goes through this package
// so that impossible requests fail the same way everywhere: an Allocation-kind
// fatal error carrying the location of the call that asked for the memory.
// There is no recoverable out-of-memory path.
//
//   - Bytes(n): n bytes
//   - Zeroed(count, size): count*size zeroed bytes
//   - Realloc(b, n): resize b, preserving the common prefix
//   - Make[T](n, c): a []T with length n and capacity c
//   - Grow[T](s, need): doubling growth used by every growable container
//
// # Limits
//
// Requests are rejected when a size is negative, when count*size overflows,
// or when the byte size exceeds MaxAlloc (1 TiB on 64-bit platforms, 1 GiB on
// 32-bit). Exhaustion inside the Go allocator itself is already fatal.
//
// # Growth
//
// Grow doubles capacity until it covers the requested length:
//
//	s = alloc.Grow(s, len(s)+1) // cap 8 -> 16 -> 32 ...
//
// Capacity is never reduced.
package alloc
