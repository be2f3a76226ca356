// Package hash provides the two 64-bit hash functions used by the runtime's
// maps. Neither ever returns 0, so a map can reserve 0 for "no hash".
package hash

// FNV-1a constants
const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// Bytes returns the FNV-1a hash of b.
func Bytes(b []byte) uint64 {
	h := uint64(fnvOffset64)
	for _, c := range b {
		h ^= uint64(c)
		h *= fnvPrime64
	}
	if h == 0 {
		return 1
	}
	return h
}

// String is Bytes for a Go string without the conversion copy.
func String(s string) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= fnvPrime64
	}
	if h == 0 {
		return 1
	}
	return h
}

// U64 mixes an integer key with the Murmur3 64-bit finalizer.
func U64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	if x == 0 {
		return 1
	}
	return x
}
