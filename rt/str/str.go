// Package str implements the runtime's immutable, reference-counted byte
// string and its mutable builder.
//
// A Str has an explicit length and may contain zero bytes. Its storage
// always carries one trailing NUL so the payload can be handed to host APIs
// that expect a C string; Bytes never exposes it.
package str

import (
	"bytes"

	"github.com/joshuapare/rtcore/rt/alloc"
	"github.com/joshuapare/rtcore/rt/fail"
	"github.com/joshuapare/rtcore/rt/hash"
	"github.com/joshuapare/rtcore/rt/own"
	"github.com/joshuapare/rtcore/rt/rc"
)

// TypeName is the tag reported to the leak detector.
const TypeName = "Str"

// Str is an immutable byte string.
type Str struct {
	rc.Header
	data []byte // payload followed by NUL
}

// newStr copies b into a new string. skip 0 locates the caller of newStr.
func newStr(b []byte, skip int) *Str {
	data := alloc.Bytes(len(b) + 1)
	copy(data, b)
	data[len(b)] = 0
	s := &Str{data: data}
	rc.Init(&s.Header, TypeName, skip+1)
	return s
}

// New returns a string holding a copy of b.
func New(b []byte) *Str { return newStr(b, 1) }

// NewAt is New with an explicit allocation site, for packages that create
// strings on behalf of their caller.
func NewAt(b []byte, site fail.Src) *Str {
	data := alloc.Bytes(len(b) + 1)
	copy(data, b)
	data[len(b)] = 0
	return rc.Track(&Str{data: data}, TypeName, site)
}

// FromString returns a string holding the bytes of s.
func FromString(s string) *Str { return newStr([]byte(s), 1) }

// FromCString returns a string holding b up to its first NUL.
func FromCString(b []byte) *Str {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return newStr(b, 1)
}

// Chr returns a one-byte string holding the low eight bits of v.
func Chr(v int64) *Str { return newStr([]byte{byte(v)}, 1) }

// Lit returns an immortal string. Literals are never counted and never
// reported as leaks.
func Lit(s string) *Str {
	data := append([]byte(s), 0)
	l := &Str{data: data}
	l.SetImmortal()
	return l
}

// Len returns the length in bytes. A nil string has length 0.
func (s *Str) Len() int {
	if s == nil {
		return 0
	}
	return len(s.data) - 1
}

// Bytes returns the payload without the trailing NUL. The caller must not
// modify it.
func (s *Str) Bytes() []byte {
	if s == nil {
		return nil
	}
	return s.data[:len(s.data)-1]
}

// CString returns the payload including the trailing NUL.
func (s *Str) CString() []byte {
	if s == nil {
		return []byte{0}
	}
	return s.data
}

func (s *Str) String() string {
	if s == nil {
		return ""
	}
	return string(s.Bytes())
}

// At returns the byte at index i.
func (s *Str) At(i int64) int64 {
	if s == nil {
		fail.Panicf(fail.Here(1), "str_get: string is nil")
	}
	if i < 0 || i >= int64(s.Len()) {
		fail.OOB(fail.Here(1), "str_get: index out of range")
	}
	return int64(s.data[i])
}

// Hash returns the FNV-1a hash of the payload.
func (s *Str) Hash() uint64 { return hash.Bytes(s.Bytes()) }

// Retain adds a reference.
func (s *Str) Retain() { rc.Retain(s) }

// Release drops a reference, freeing the payload with the last one.
func (s *Str) Release() { rc.Release(s, (*Str).destroy) }

func (s *Str) destroy() { s.data = nil }

// Equal reports whether a and b hold the same bytes. Two nil strings are
// equal; a nil and a non-nil string are not.
func Equal(a, b *Str) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return bytes.Equal(a.Bytes(), b.Bytes())
}

// Compare orders strings bytewise. nil sorts before every string.
func Compare(a, b *Str) int {
	switch {
	case a == b:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return bytes.Compare(a.Bytes(), b.Bytes())
}

// Sub returns n bytes of s starting at start. start is clamped to [0, len]
// and n so the range stays inside s.
func Sub(s *Str, start, n int64) *Str {
	if s == nil {
		fail.Panicf(fail.Here(1), "str_sub: string is nil")
	}
	size := int64(s.Len())
	start = min(max(start, 0), size)
	n = min(max(n, 0), size-start)
	return newStr(s.data[start:start+n], 1)
}

// Find returns the index of the first occurrence of needle in h, or -1.
// An empty needle is found at 0. Embedded zero bytes are matched like any
// other byte.
func Find(h, needle *Str) int64 {
	if h == nil || needle == nil {
		return -1
	}
	return int64(bytes.Index(h.Bytes(), needle.Bytes()))
}

// Concat returns a new string holding a followed by b.
func Concat(a, b *Str) *Str {
	if a == nil {
		fail.Panicf(fail.Here(1), "str_concat: lhs is nil")
	}
	if b == nil {
		fail.Panicf(fail.Here(1), "str_concat: rhs is nil")
	}
	total, ok := addLen(a.Len(), b.Len())
	if !ok {
		fail.Fail(fail.Allocation, fail.Here(1), "str_concat: length overflow")
	}
	data := alloc.Bytes(total + 1)
	n := copy(data, a.Bytes())
	copy(data[n:], b.Bytes())
	data[total] = 0
	s := &Str{data: data}
	rc.Init(&s.Header, TypeName, 1)
	return s
}

func addLen(a, b int) (int, bool) {
	if a > alloc.MaxAlloc-b {
		return 0, false
	}
	return a + b, true
}

// Hooks shares strings between containers.
var Hooks = own.Ref((*Str).destroy)

// KeyHooks makes strings usable as hash map keys. nil is the null key.
var KeyHooks = own.KeyHooks[*Str]{
	Hooks:  Hooks,
	Hash:   (*Str).Hash,
	Equal:  Equal,
	IsNull: func(s *Str) bool { return s == nil },
}
