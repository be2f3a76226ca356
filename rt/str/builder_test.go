package str

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Append(t *testing.T) {
	b := NewBuilder()
	require.Equal(t, 64, b.Cap())

	b.AppendString("n=")
	b.AppendInt(-3)
	b.AppendByte(' ')
	b.AppendFloat(0.5)
	b.AppendByte(' ')
	b.AppendBool(true)
	b.AppendStr(nil)
	b.AppendStr(FromString("!"))

	assert.Equal(t, "n=-3 0.5 true!", b.Build().String())
	assert.Equal(t, 14, b.Len())
}

func TestBuilder_Growth(t *testing.T) {
	b := NewBuilder()
	b.AppendBytes(make([]byte, 63))
	assert.Equal(t, 64, b.Cap(), "63 bytes plus terminator fit")
	b.AppendByte('x')
	assert.Equal(t, 128, b.Cap())
	b.AppendBytes(make([]byte, 300))
	assert.Equal(t, 512, b.Cap())
	assert.Equal(t, 364, b.Len())
}

func TestBuilder_BuildDoesNotReset(t *testing.T) {
	b := NewBuilder()
	b.AppendString("abc")
	first := b.Build()
	b.AppendString("def")
	assert.Equal(t, "abc", first.String())
	assert.Equal(t, "abcdef", b.Build().String())
}

func TestBuilder_ClearKeepsCapacity(t *testing.T) {
	b := NewBuilder()
	b.AppendBytes(make([]byte, 200))
	c := b.Cap()
	b.Clear()
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, c, b.Cap())
	assert.Equal(t, "", b.Build().String())
}

func TestBuilder_Writer(t *testing.T) {
	b := NewBuilder()
	fmt.Fprintf(b, "%s-%d", "w", 7)
	assert.Equal(t, "w-7", b.Build().String())
}

func TestBuilder_Refcount(t *testing.T) {
	b := NewBuilder()
	b.Retain()
	b.Release()
	assert.Equal(t, 0, b.Len())
	b.AppendString("still alive")
	b.Release()
	assert.Equal(t, uint32(0), b.Count())
}
