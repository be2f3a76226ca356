// Package rc implements the intrusive reference-counting header shared by
// every managed object.
//
// A managed object embeds Header as its first field:
//
//	type Node struct {
//	    rc.Header
//	    next *Node
//	}
//
//	n := &Node{}
//	rc.Init(&n.Header, "Node", 1)
//	rc.Retain(n)
//	rc.Release(n, (*Node).destroy) // count 2 -> 1
//	rc.Release(n, (*Node).destroy) // count 1 -> 0, destroy runs
//
// Counters are plain integers: retain and release assume exclusive,
// sequential access to the object.
package rc

import (
	"math"

	"github.com/joshuapare/rtcore/rt/fail"
)

// Immortal is the count of an object that is never freed.
const Immortal uint32 = math.MaxUint32

// Header is the ownership header. The zero value has count 0 and is not yet
// alive; call Init (or SetImmortal for literals).
type Header struct {
	count uint32
}

// Init sets the count to 1.
func (h *Header) Init() { h.count = 1 }

// SetImmortal exempts the object from counting. It is never undone.
func (h *Header) SetImmortal() { h.count = Immortal }

// Count returns the current count.
func (h *Header) Count() uint32 { return h.count }

// IsImmortal reports whether the object is never freed.
func (h *Header) IsImmortal() bool { return h.count == Immortal }

// RC returns the header. Embedding Header promotes it, which is what makes a
// struct pointer an Object.
func (h *Header) RC() *Header { return h }

// Managed is implemented by pointers to structs that embed Header.
type Managed interface {
	RC() *Header
}

// Object is the constraint used by Retain and Release. Comparability lets a
// nil reference be detected without reflection.
type Object interface {
	comparable
	Managed
}

// Init initializes h and reports the allocation to the installed observer.
// skip locates the allocation site: 0 is the caller of Init.
func Init(h *Header, typ string, skip int) {
	h.count = 1
	if obs != nil {
		obs.Allocated(h, typ, fail.Here(skip+1))
	}
}

// Track initializes the header of o and reports it with an explicit
// allocation site. Generated code that knows its own position uses Track;
// everything else uses Init.
func Track[T Object](o T, typ string, site fail.Src) T {
	h := o.RC()
	h.count = 1
	if obs != nil {
		obs.Allocated(h, typ, site)
	}
	return o
}

// Retain increments the count of o. Nil and immortal objects are ignored.
func Retain[T Object](o T) {
	var zero T
	if o == zero {
		return
	}
	h := o.RC()
	if h.count == Immortal {
		return
	}
	if h.count == Immortal-1 {
		fail.Fail(fail.Panic, fail.Here(1), "reference count overflow")
	}
	h.count++
}

// Release decrements the count of o and runs dtor when it reaches zero.
// It reports whether dtor ran. Nil and immortal objects are ignored, and so
// is an object whose count is already zero.
func Release[T Object](o T, dtor func(T)) bool {
	var zero T
	if o == zero {
		return false
	}
	h := o.RC()
	if h.count == Immortal || h.count == 0 {
		return false
	}
	h.count--
	if h.count != 0 {
		return false
	}
	if obs != nil {
		obs.Freed(h)
	}
	if dtor != nil {
		dtor(o)
	}
	return true
}
