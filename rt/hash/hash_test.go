package hash

import (
	"hash/fnv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytes_MatchesFNV1a(t *testing.T) {
	for _, in := range []string{"", "a", "hello", "the quick brown fox", "\x00\x01\x02"} {
		ref := fnv.New64a()
		ref.Write([]byte(in))
		assert.Equal(t, ref.Sum64(), Bytes([]byte(in)), "%q", in)
		assert.Equal(t, Bytes([]byte(in)), String(in), "%q", in)
	}
}

func TestBytes_EmbeddedZero(t *testing.T) {
	assert.NotEqual(t, Bytes([]byte("a\x00b")), Bytes([]byte("a\x00c")))
	assert.NotEqual(t, Bytes([]byte("a")), Bytes([]byte("a\x00")))
}

func TestU64_NeverZero(t *testing.T) {
	// The finalizer maps 0 to 0; it must be remapped.
	assert.Equal(t, uint64(1), U64(0))
	for _, x := range []uint64{1, 2, 42, 1 << 63, ^uint64(0)} {
		assert.NotZero(t, U64(x))
	}
}

func TestU64_Spreads(t *testing.T) {
	// Consecutive keys land in different buckets of a small table.
	seen := make(map[uint64]bool)
	for x := range uint64(16) {
		seen[U64(x)&63] = true
	}
	assert.Greater(t, len(seen), 8)
}

func BenchmarkBytes(b *testing.B) {
	key := []byte("benchmark-key-of-moderate-length")
	for b.Loop() {
		Bytes(key)
	}
}

func BenchmarkU64(b *testing.B) {
	var x uint64
	for b.Loop() {
		x = U64(x)
	}
}
