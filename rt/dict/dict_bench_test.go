package dict

import (
	"fmt"
	"testing"

	"github.com/joshuapare/rtcore/rt/own"
	"github.com/joshuapare/rtcore/rt/str"
)

func strKeys(b *testing.B, n int) []*str.Str {
	b.Helper()
	keys := make([]*str.Str, n)
	for i := range keys {
		keys[i] = str.FromString(fmt.Sprintf("key-%d", i))
	}
	b.Cleanup(func() {
		for _, k := range keys {
			k.Release()
		}
	})
	return keys
}

// BenchmarkStrMapSet measures building a 1024-entry string-keyed map from empty.
func BenchmarkStrMapSet(b *testing.B) {
	keys := strKeys(b, 1024)

	b.ResetTimer()
	b.ReportAllocs()

	for range b.N {
		m := NewStr(own.Prim[int]())
		for i, k := range keys {
			m.Set(k, i)
		}
		m.Release()
	}
}

// BenchmarkStrMapGet measures hits on a populated string-keyed map.
func BenchmarkStrMapGet(b *testing.B) {
	keys := strKeys(b, 1024)
	m := NewStr(own.Prim[int]())
	defer m.Release()
	for i, k := range keys {
		m.Set(k, i)
	}

	b.ResetTimer()
	b.ReportAllocs()

	for i := range b.N {
		_ = m.Get(keys[i&1023])
	}
}

func BenchmarkIntMapSet(b *testing.B) {
	b.ReportAllocs()

	for range b.N {
		m := New(own.IntKeys[int64](), own.Prim[int64]())
		for i := range int64(1024) {
			m.Set(i, i)
		}
		m.Release()
	}
}

// BenchmarkIntMapChurn measures insert/delete cycles, which rehash in place.
func BenchmarkIntMapChurn(b *testing.B) {
	m := New(own.IntKeys[int64](), own.Prim[int64]())
	defer m.Release()

	b.ResetTimer()
	b.ReportAllocs()

	for i := range int64(b.N) {
		m.Set(i, i)
		m.Delete(i)
	}
}
