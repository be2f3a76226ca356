// Package own describes how containers copy and discard their elements.
//
// A container is instantiated once with a hook set and calls Clone when a
// value enters it and Drop when a value leaves it. For plain values both
// hooks are nil; for managed objects Clone retains and Drop releases.
package own

import (
	"github.com/joshuapare/rtcore/rt/hash"
	"github.com/joshuapare/rtcore/rt/rc"
)

// Hooks is the value ownership contract. A nil func is a no-op.
type Hooks[T any] struct {
	Clone func(T) T
	Drop  func(T)
}

// CloneValue returns the container's own copy of v.
func (h Hooks[T]) CloneValue(v T) T {
	if h.Clone == nil {
		return v
	}
	return h.Clone(v)
}

// DropValue gives up the container's copy of v.
func (h Hooks[T]) DropValue(v T) {
	if h.Drop != nil {
		h.Drop(v)
	}
}

// KeyHooks extends Hooks with what a hash map needs from its keys.
// IsNull may be nil when the key type has no null value.
type KeyHooks[K any] struct {
	Hooks[K]
	Hash   func(K) uint64
	Equal  func(a, b K) bool
	IsNull func(K) bool
}

// Null reports whether k is the null key.
func (h KeyHooks[K]) Null(k K) bool {
	return h.IsNull != nil && h.IsNull(k)
}

// Prim returns no-op hooks for plain values.
func Prim[T any]() Hooks[T] { return Hooks[T]{} }

// Ref returns hooks that share managed objects: Clone retains, Drop releases
// and runs dtor when the last reference goes.
func Ref[T rc.Object](dtor func(T)) Hooks[T] {
	return Hooks[T]{
		Clone: func(v T) T {
			rc.Retain(v)
			return v
		},
		Drop: func(v T) {
			rc.Release(v, dtor)
		},
	}
}

// Integer is the set of key types hashed with hash.U64.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// IntKeys returns key hooks for integer keys.
func IntKeys[K Integer]() KeyHooks[K] {
	return KeyHooks[K]{
		Hash:  func(k K) uint64 { return hash.U64(uint64(k)) },
		Equal: func(a, b K) bool { return a == b },
	}
}

// BoolKeys returns key hooks for bool keys.
func BoolKeys() KeyHooks[bool] {
	return KeyHooks[bool]{
		Hash: func(k bool) uint64 {
			if k {
				return hash.U64(1)
			}
			return hash.U64(0)
		},
		Equal: func(a, b bool) bool { return a == b },
	}
}
