package own

import (
	"testing"

	"github.com/joshuapare/rtcore/rt/hash"
	"github.com/joshuapare/rtcore/rt/rc"
	"github.com/stretchr/testify/assert"
)

type box struct {
	rc.Header
	dead bool
}

func (b *box) destroy() { b.dead = true }

func TestPrim_Noop(t *testing.T) {
	h := Prim[int]()
	assert.Equal(t, 7, h.CloneValue(7))
	h.DropValue(7)
}

func TestRef_RetainsAndReleases(t *testing.T) {
	h := Ref((*box).destroy)
	b := &box{}
	b.Init()

	c := h.CloneValue(b)
	assert.Same(t, b, c)
	assert.Equal(t, uint32(2), b.Count())

	h.DropValue(c)
	assert.False(t, b.dead)
	h.DropValue(b)
	assert.True(t, b.dead)
}

func TestRef_Nil(t *testing.T) {
	h := Ref((*box).destroy)
	assert.Nil(t, h.CloneValue(nil))
	h.DropValue(nil)
}

func TestIntKeys(t *testing.T) {
	kh := IntKeys[int64]()
	assert.Equal(t, hash.U64(42), kh.Hash(42))
	assert.Equal(t, uint64(1), kh.Hash(0))
	assert.True(t, kh.Equal(-1, -1))
	assert.False(t, kh.Equal(1, 2))
	assert.False(t, kh.Null(0), "integer keys have no null")
}

func TestBoolKeys(t *testing.T) {
	kh := BoolKeys()
	assert.NotEqual(t, kh.Hash(true), kh.Hash(false))
	assert.NotZero(t, kh.Hash(false))
	assert.True(t, kh.Equal(true, true))
}

func TestKeyHooks_Null(t *testing.T) {
	kh := KeyHooks[*box]{IsNull: func(b *box) bool { return b == nil }}
	assert.True(t, kh.Null(nil))
	assert.False(t, kh.Null(&box{}))
}
