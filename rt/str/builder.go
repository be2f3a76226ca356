package str

import (
	"strconv"

	"github.com/joshuapare/rtcore/rt/alloc"
	"github.com/joshuapare/rtcore/rt/fail"
	"github.com/joshuapare/rtcore/rt/rc"
)

// BuilderTypeName is the tag reported to the leak detector.
const BuilderTypeName = "Builder"

const builderInitialCap = 64

// Builder accumulates bytes for a new Str. It is reference counted like
// every managed object.
type Builder struct {
	rc.Header
	buf []byte
}

// NewBuilder returns an empty builder with room for 64 bytes.
func NewBuilder() *Builder {
	b := &Builder{buf: alloc.Make[byte](0, builderInitialCap)}
	rc.Init(&b.Header, BuilderTypeName, 1)
	return b
}

// grow makes room for n more bytes plus a terminator, doubling capacity.
func (b *Builder) grow(n int) {
	need, ok := addLen(len(b.buf), n)
	if ok {
		need, ok = addLen(need, 1)
	}
	if !ok {
		fail.Fail(fail.Allocation, fail.Here(2), "string builder: length overflow")
	}
	b.buf = alloc.Grow(b.buf, need)
}

// AppendBytes appends p.
func (b *Builder) AppendBytes(p []byte) {
	b.grow(len(p))
	b.buf = append(b.buf, p...)
}

// AppendString appends s.
func (b *Builder) AppendString(s string) {
	b.grow(len(s))
	b.buf = append(b.buf, s...)
}

// AppendStr appends the bytes of s. A nil s appends nothing.
func (b *Builder) AppendStr(s *Str) {
	if s == nil {
		return
	}
	b.AppendBytes(s.Bytes())
}

// AppendByte appends a single byte.
func (b *Builder) AppendByte(c byte) {
	b.grow(1)
	b.buf = append(b.buf, c)
}

// AppendInt appends v in decimal.
func (b *Builder) AppendInt(v int64) {
	var tmp [24]byte
	b.AppendBytes(strconv.AppendInt(tmp[:0], v, 10))
}

// AppendUint appends v in decimal.
func (b *Builder) AppendUint(v uint64) {
	var tmp [24]byte
	b.AppendBytes(strconv.AppendUint(tmp[:0], v, 10))
}

// AppendFloat appends v with 17 significant digits.
func (b *Builder) AppendFloat(v float64) {
	var tmp [32]byte
	b.AppendBytes(AppendFloat(tmp[:0], v, 17))
}

// AppendBool appends "true" or "false".
func (b *Builder) AppendBool(v bool) {
	if v {
		b.AppendString("true")
		return
	}
	b.AppendString("false")
}

// Write implements io.Writer. It never fails.
func (b *Builder) Write(p []byte) (int, error) {
	b.AppendBytes(p)
	return len(p), nil
}

// Build returns a new string with the current contents. The builder is not
// reset.
func (b *Builder) Build() *Str { return newStr(b.buf, 1) }

// Clear empties the builder and keeps its capacity.
func (b *Builder) Clear() { b.buf = b.buf[:0] }

// Bytes returns the current contents. They are valid until the next append
// or Clear.
func (b *Builder) Bytes() []byte { return b.buf }

// Len returns the number of bytes appended since the last Clear.
func (b *Builder) Len() int { return len(b.buf) }

// Cap returns the current capacity.
func (b *Builder) Cap() int { return cap(b.buf) }

// Retain adds a reference.
func (b *Builder) Retain() { rc.Retain(b) }

// Release drops a reference, freeing the buffer with the last one.
func (b *Builder) Release() { rc.Release(b, (*Builder).destroy) }

func (b *Builder) destroy() { b.buf = nil }
