package dict

import (
	"fmt"
	"testing"

	"github.com/joshuapare/rtcore/rt/fail"
	"github.com/joshuapare/rtcore/rt/leak"
	"github.com/joshuapare/rtcore/rt/own"
	"github.com/joshuapare/rtcore/rt/str"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identityKeys places key k in slot k & (cap-1) so tests can force
// collisions.
func identityKeys() own.KeyHooks[int] {
	return own.KeyHooks[int]{
		Hash:  func(k int) uint64 { return uint64(k) },
		Equal: func(a, b int) bool { return a == b },
	}
}

func TestSetGet_Int(t *testing.T) {
	m := New(own.IntKeys[int64](), own.Prim[string]())
	m.Set(1, "one")
	m.Set(-2, "minus two")
	m.Set(0, "zero")

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, "one", m.Get(1))
	assert.Equal(t, "minus two", m.Get(-2))
	assert.Equal(t, "zero", m.Get(0))
	assert.True(t, m.Has(0))
	assert.False(t, m.Has(7))
}

func TestSet_UpdateKeepsLength(t *testing.T) {
	m := New(own.IntKeys[int](), own.Prim[int]())
	m.Set(5, 1)
	m.Set(5, 2)
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 2, m.Get(5))
}

func TestGet_Missing(t *testing.T) {
	m := New(own.IntKeys[int](), own.Prim[int]())
	err := fail.Try(func() { m.Get(42) })
	require.Error(t, err)
	assert.True(t, fail.Is(err, fail.Key))
	assert.Contains(t, err.Error(), "missing dict key")

	v, ok := m.Lookup(42)
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestNullKey(t *testing.T) {
	m := NewStr(own.Prim[int]())

	err := fail.Try(func() { m.Set(nil, 1) })
	assert.True(t, fail.Is(err, fail.Key))
	assert.Contains(t, err.Error(), "dict key is nil")

	assert.False(t, m.Has(nil))
	assert.False(t, m.Delete(nil))
	err = fail.Try(func() { m.Get(nil) })
	assert.True(t, fail.Is(err, fail.Key))
}

func TestGrowth(t *testing.T) {
	m := New(own.IntKeys[int](), own.Prim[int]())
	require.Equal(t, 16, m.Cap())

	for i := range 10 {
		m.Set(i, i*i)
	}
	assert.Equal(t, 16, m.Cap(), "10 keys stay below the 2/3 threshold")

	m.Set(10, 100)
	assert.Equal(t, 32, m.Cap())

	for i := 11; i < 1000; i++ {
		m.Set(i, i*i)
	}
	assert.Equal(t, 1000, m.Len())
	for i := range 1000 {
		require.Equal(t, i*i, m.Get(i), "key %d", i)
	}
	st := m.Stats()
	assert.Less(t, st.LoadFactor(), 2.0/3)
	assert.Equal(t, 0, st.Cap&(st.Cap-1), "capacity is a power of two")
}

func TestDelete(t *testing.T) {
	m := New(own.IntKeys[int](), own.Prim[int]())
	m.Set(1, 10)
	m.Set(2, 20)

	assert.True(t, m.Delete(1))
	assert.False(t, m.Delete(1))
	assert.False(t, m.Has(1))
	assert.Equal(t, 20, m.Get(2))
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, 1, m.Stats().Tombstones)
}

func TestDelete_TombstoneKeepsProbeChain(t *testing.T) {
	m := New(identityKeys(), own.Prim[string]())
	m.Set(1, "a")
	m.Set(17, "b")
	m.Set(33, "c")

	m.Delete(17)
	assert.Equal(t, "c", m.Get(33), "lookup walks past the tombstone")
}

func TestSet_ReusesFirstTombstone(t *testing.T) {
	m := New(identityKeys(), own.Prim[string]())
	m.Set(1, "a")
	m.Set(17, "b")
	m.Delete(1)

	m.Set(33, "c")
	assert.Equal(t, 0, m.Stats().Tombstones)

	var keys []int
	for k := range m.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []int{33, 17}, keys, "33 took slot 1 ahead of 17")
}

func TestSet_ExistingKeyBehindTombstone(t *testing.T) {
	m := New(identityKeys(), own.Prim[string]())
	m.Set(1, "a")
	m.Set(17, "b")
	m.Delete(1)

	m.Set(17, "B")
	assert.Equal(t, 1, m.Len())
	assert.Equal(t, "B", m.Get(17))
	assert.Equal(t, 1, m.Stats().Tombstones)
}

func TestGrowth_DropsTombstones(t *testing.T) {
	m := New(identityKeys(), own.Prim[int]())
	for i := range 9 {
		m.Set(i, i)
	}
	m.Delete(5)
	m.Set(9, 9)
	require.Equal(t, 16, m.Cap())
	require.Equal(t, 1, m.Stats().Tombstones)

	m.Set(10, 10)
	st := m.Stats()
	assert.Equal(t, 16, st.Cap, "live keys fit, rebuilt in place")
	assert.Equal(t, 0, st.Tombstones)
	assert.Equal(t, 10, st.Len)
	assert.False(t, m.Has(5))

	m.Set(11, 11)
	assert.Equal(t, 32, m.Cap())
	for i := range 12 {
		assert.Equal(t, i != 5, m.Has(i), "key %d", i)
	}
}

func TestChurn_CapacityBounded(t *testing.T) {
	m := New(own.IntKeys[int64](), own.Prim[int64]())
	for i := range int64(100_000) {
		m.Set(i, i)
		m.Delete(i)
	}
	assert.Equal(t, 0, m.Len())
	assert.Equal(t, 16, m.Cap())

	for i := range int64(100_000) {
		m.Set(i%8, i)
		m.Set(1000+i, i)
		m.Delete(1000 + i)
	}
	assert.Equal(t, 8, m.Len())
	assert.Equal(t, 16, m.Cap())
	for k := range int64(8) {
		assert.Equal(t, 99_992+k, m.Get(k))
	}
}

func TestStats_Probe(t *testing.T) {
	m := New(identityKeys(), own.Prim[int]())
	m.Set(3, 0)
	m.Set(19, 0)
	m.Set(35, 0)

	st := m.Stats()
	assert.Equal(t, 2, st.MaxProbe)
	assert.InDelta(t, 1.0, st.AvgProbe, 1e-9)
}

func TestStats_ProbeWrapsAround(t *testing.T) {
	m := New(identityKeys(), own.Prim[int]())
	m.Set(15, 0)
	m.Set(31, 0)
	assert.Equal(t, 1, m.Stats().MaxProbe)
}

func TestStrMap_RefCounts(t *testing.T) {
	m := NewStr(str.Hooks)
	k := str.FromString("key")
	v1 := str.FromString("v1")
	v2 := str.FromString("v2")

	m.Set(k, v1)
	assert.Equal(t, uint32(2), k.Count())
	assert.Equal(t, uint32(2), v1.Count())

	// A different key object with equal bytes updates the value only.
	k2 := str.FromString("key")
	m.Set(k2, v2)
	assert.Equal(t, uint32(1), k2.Count())
	assert.Equal(t, uint32(1), v1.Count())
	assert.Equal(t, uint32(2), v2.Count())
	assert.Same(t, v2, m.Get(k))

	assert.True(t, m.Delete(k2))
	assert.Equal(t, uint32(1), k.Count())
	assert.Equal(t, uint32(1), v2.Count())
}

func TestKeys(t *testing.T) {
	tr := leak.New(leak.Options{})
	t.Cleanup(tr.Install())

	m := NewStr(own.Prim[int]())
	for i := range 5 {
		k := str.FromString(fmt.Sprintf("k%d", i))
		m.Set(k, i)
		k.Release()
	}

	keys := m.Keys()
	assert.Equal(t, 5, keys.Len())
	seen := map[string]bool{}
	for _, k := range keys.All() {
		seen[k.String()] = true
		assert.Equal(t, uint32(2), k.Count())
		assert.True(t, m.Has(k))
	}
	assert.Len(t, seen, 5)

	var site fail.Src
	for _, e := range tr.Live() {
		if e.Type == "Seq" {
			site = e.Site
		}
	}
	assert.Contains(t, site.File, "dict_test.go", "the key sequence is attributed to the caller")

	keys.Release()
	m.Release()
	assert.Equal(t, 0, tr.Len())
}

func TestRelease_DropsEntries(t *testing.T) {
	tr := leak.New(leak.Options{})
	t.Cleanup(tr.Install())

	m := NewStr(str.Hooks)
	for i := range 20 {
		k := str.FromString(fmt.Sprintf("k%d", i))
		v := str.FromInt(int64(i))
		m.Set(k, v)
		k.Release()
		v.Release()
	}
	m.Delete(str.Lit("k3"))
	require.Equal(t, 1+19*2, tr.Len())

	m.Retain()
	m.Release()
	assert.Equal(t, 1+19*2, tr.Len())
	m.Release()
	assert.Equal(t, 0, tr.Len())
}

func TestNestedMaps(t *testing.T) {
	outer := New(own.IntKeys[int](), Hooks[int, int]())
	inner := New(own.IntKeys[int](), own.Prim[int]())
	inner.Set(1, 2)
	outer.Set(0, inner)
	inner.Release()

	assert.Equal(t, 2, outer.Get(0).Get(1))
	assert.Equal(t, uint32(1), inner.Count())
	outer.Release()
	assert.Equal(t, uint32(0), inner.Count())
}

func TestAll_Break(t *testing.T) {
	m := New(own.IntKeys[int](), own.Prim[int]())
	for i := range 8 {
		m.Set(i, i)
	}
	n := 0
	for range m.All() {
		n++
		if n == 3 {
			break
		}
	}
	assert.Equal(t, 3, n)
}

func TestBoolKeys(t *testing.T) {
	m := New(own.BoolKeys(), own.Prim[string]())
	m.Set(true, "yes")
	m.Set(false, "no")
	assert.Equal(t, "yes", m.Get(true))
	assert.Equal(t, "no", m.Get(false))
}
