// Package codec implements a growable byte buffer for binary encoding and
// decoding.
//
// Writes append at the end of the written data; reads consume from a
// separate cursor. Multi-byte values take an explicit binary.ByteOrder.
//
//	b := codec.New()
//	b.WriteI32(-7, binary.LittleEndian)
//	b.WriteStrZ(name)
//	v := b.ReadI32(binary.LittleEndian) // -7
//	s := b.ReadStrZ()                   // name
package codec

import (
	"encoding/binary"
	"math"

	"github.com/joshuapare/rtcore/internal/buf"
	"github.com/joshuapare/rtcore/rt/alloc"
	"github.com/joshuapare/rtcore/rt/fail"
	"github.com/joshuapare/rtcore/rt/rc"
	"github.com/joshuapare/rtcore/rt/str"
)

// TypeName is the tag reported to the leak detector.
const TypeName = "Buffer"

const initialCap = 256

// Buffer is a byte buffer with a read cursor.
type Buffer struct {
	rc.Header
	data []byte // len is the write position
	pos  int    // read cursor
}

// New returns an empty buffer with room for 256 bytes.
func New() *Buffer {
	b := &Buffer{data: alloc.Make[byte](0, initialCap)}
	rc.Init(&b.Header, TypeName, 1)
	return b
}

// FromStr returns a buffer holding a copy of s, positioned at its start.
func FromStr(s *str.Str) *Buffer {
	b := &Buffer{data: alloc.Make[byte](0, initialCap)}
	rc.Init(&b.Header, TypeName, 1)
	b.append(s.Bytes())
	return b
}

// Len returns the number of bytes written.
func (b *Buffer) Len() int { return len(b.data) }

// Cap returns the capacity.
func (b *Buffer) Cap() int { return cap(b.data) }

// Pos returns the read cursor.
func (b *Buffer) Pos() int { return b.pos }

// Remaining returns the number of unread bytes.
func (b *Buffer) Remaining() int { return len(b.data) - b.pos }

// SetPos moves the read cursor to pos, which must lie in [0, Len].
func (b *Buffer) SetPos(pos int64) {
	if pos > int64(len(b.data)) || !buf.Has(b.data, 0, int(pos)) {
		fail.Panicf(fail.Here(1), "buffer: seek out of bounds")
	}
	b.pos = int(pos)
}

// Reset moves the read cursor back to the start.
func (b *Buffer) Reset() { b.pos = 0 }

// Clear discards the contents and keeps the capacity.
func (b *Buffer) Clear() {
	b.data = b.data[:0]
	b.pos = 0
}

// Bytes returns the written bytes. The caller must not modify them.
func (b *Buffer) Bytes() []byte { return b.data }

// Retain adds a reference.
func (b *Buffer) Retain() { rc.Retain(b) }

// Release drops a reference, freeing the storage with the last one.
func (b *Buffer) Release() { rc.Release(b, (*Buffer).destroy) }

func (b *Buffer) destroy() {
	b.data = nil
	b.pos = 0
}

// reserve extends the written length by n and returns the new region.
func (b *Buffer) reserve(n int) []byte {
	end, ok := buf.AddOverflowSafe(len(b.data), n)
	if !ok {
		fail.Fail(fail.Allocation, fail.Here(2), "buffer: length overflow")
	}
	b.data = alloc.Grow(b.data, end)
	start := len(b.data)
	b.data = b.data[:end]
	return b.data[start:end]
}

func (b *Buffer) append(p []byte) {
	if len(p) == 0 {
		return
	}
	copy(b.reserve(len(p)), p)
}

// take consumes n bytes at the cursor. skip 0 locates the caller of take.
func (b *Buffer) take(n int, skip int) []byte {
	p, ok := buf.Slice(b.data, b.pos, n)
	if !ok {
		fail.Panicf(fail.Here(skip+1), "buffer: read past end")
	}
	b.pos += n
	return p
}

// newStr copies p into a string attributed to the caller's caller.
func newStr(p []byte) *str.Str {
	site := fail.NoSrc
	if rc.Observed() {
		site = fail.Here(2)
	}
	return str.NewAt(p, site)
}

// Write implements io.Writer. It never fails.
func (b *Buffer) Write(p []byte) (int, error) {
	b.append(p)
	return len(p), nil
}

// WriteU8 appends the low eight bits of v.
func (b *Buffer) WriteU8(v int64) {
	b.reserve(1)[0] = byte(v)
}

// WriteBytes appends the bytes of s. A nil s writes nothing.
func (b *Buffer) WriteBytes(s *str.Str) {
	b.append(s.Bytes())
}

// WriteStrZ appends s followed by a NUL. A nil s writes only the NUL.
func (b *Buffer) WriteStrZ(s *str.Str) {
	b.append(s.Bytes())
	b.reserve(1)[0] = 0
}

func (b *Buffer) putUint(width int, order binary.ByteOrder, v uint64) {
	buf.PutUint(b.reserve(width), width, order, v)
}

// WriteI16 appends the low 16 bits of v.
func (b *Buffer) WriteI16(v int64, order binary.ByteOrder) { b.putUint(2, order, uint64(v)) }

// WriteI32 appends the low 32 bits of v.
func (b *Buffer) WriteI32(v int64, order binary.ByteOrder) { b.putUint(4, order, uint64(v)) }

// WriteI64 appends v.
func (b *Buffer) WriteI64(v int64, order binary.ByteOrder) { b.putUint(8, order, uint64(v)) }

// WriteF32 appends v narrowed to an IEEE 754 single.
func (b *Buffer) WriteF32(v float64, order binary.ByteOrder) {
	b.putUint(4, order, uint64(math.Float32bits(float32(v))))
}

// WriteF64 appends v as an IEEE 754 double.
func (b *Buffer) WriteF64(v float64, order binary.ByteOrder) {
	b.putUint(8, order, math.Float64bits(v))
}

// ReadU8 reads an unsigned byte.
func (b *Buffer) ReadU8() int64 { return int64(b.take(1, 1)[0]) }

// ReadI8 reads a signed byte.
func (b *Buffer) ReadI8() int64 { return int64(int8(b.take(1, 1)[0])) }

// ReadBytes reads n bytes into a new string.
func (b *Buffer) ReadBytes(n int64) *str.Str {
	if n < 0 {
		fail.Panicf(fail.Here(1), "buffer: negative read length")
	}
	if n > int64(b.Remaining()) {
		fail.Panicf(fail.Here(1), "buffer: read past end")
	}
	return newStr(b.take(int(n), 1))
}

// ReadStrZ reads up to the next NUL and consumes it. Without a NUL the rest
// of the buffer is returned.
func (b *Buffer) ReadStrZ() *str.Str {
	start := b.pos
	for b.pos < len(b.data) && b.data[b.pos] != 0 {
		b.pos++
	}
	s := newStr(b.data[start:b.pos])
	if b.pos < len(b.data) {
		b.pos++
	}
	return s
}

// ReadU16 reads an unsigned 16-bit integer.
func (b *Buffer) ReadU16(order binary.ByteOrder) int64 {
	return int64(buf.Uint(b.take(2, 1), 2, order))
}

// ReadU32 reads an unsigned 32-bit integer.
func (b *Buffer) ReadU32(order binary.ByteOrder) int64 {
	return int64(buf.Uint(b.take(4, 1), 4, order))
}

// ReadI16 reads a signed 16-bit integer.
func (b *Buffer) ReadI16(order binary.ByteOrder) int64 {
	return buf.Int(b.take(2, 1), 2, order)
}

// ReadI32 reads a signed 32-bit integer.
func (b *Buffer) ReadI32(order binary.ByteOrder) int64 {
	return buf.Int(b.take(4, 1), 4, order)
}

// ReadI64 reads a signed 64-bit integer.
func (b *Buffer) ReadI64(order binary.ByteOrder) int64 {
	return buf.Int(b.take(8, 1), 8, order)
}

// ReadF32 reads an IEEE 754 single widened to float64.
func (b *Buffer) ReadF32(order binary.ByteOrder) float64 {
	return float64(math.Float32frombits(uint32(buf.Uint(b.take(4, 1), 4, order))))
}

// ReadF64 reads an IEEE 754 double.
func (b *Buffer) ReadF64(order binary.ByteOrder) float64 {
	return math.Float64frombits(buf.Uint(b.take(8, 1), 8, order))
}

// ToStr copies the written bytes into a new string. The cursor is ignored.
func (b *Buffer) ToStr() *str.Str { return newStr(b.data) }

// Slice copies n written bytes starting at start into a new string.
func (b *Buffer) Slice(start, n int64) *str.Str {
	p, ok := buf.Slice(b.data, int(start), int(n))
	if !ok || int64(int(start)) != start || int64(int(n)) != n {
		fail.Panicf(fail.Here(1), "buffer: slice out of bounds")
	}
	return newStr(p)
}
