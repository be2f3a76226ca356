// Package seq implements the runtime's growable, reference-counted sequence.
//
// A Seq owns its backing store and shares its elements according to the
// own.Hooks it was created with: values entering the sequence are cloned,
// values leaving it are dropped.
package seq

import (
	"iter"
	"math"

	"github.com/joshuapare/rtcore/rt/alloc"
	"github.com/joshuapare/rtcore/rt/fail"
	"github.com/joshuapare/rtcore/rt/own"
	"github.com/joshuapare/rtcore/rt/rc"
)

// TypeName is the tag reported to the leak detector.
const TypeName = "Seq"

const initialCap = 8

// Seq is a contiguous sequence of T.
type Seq[T any] struct {
	rc.Header
	hooks own.Hooks[T]
	data  []T
}

// New returns an empty sequence with room for 8 elements.
func New[T any](hooks own.Hooks[T]) *Seq[T] {
	return newSeq(hooks, 1)
}

func newSeq[T any](hooks own.Hooks[T], skip int) *Seq[T] {
	s := &Seq[T]{hooks: hooks, data: alloc.Make[T](0, initialCap)}
	rc.Init(&s.Header, TypeName, skip+1)
	return s
}

// NewAt is New with an explicit allocation site, for containers that
// create sequences on behalf of their caller.
func NewAt[T any](hooks own.Hooks[T], site fail.Src) *Seq[T] {
	s := &Seq[T]{hooks: hooks, data: alloc.Make[T](0, initialCap)}
	return rc.Track(s, TypeName, site)
}

// Hooks returns hooks that share sequences as elements of other containers.
func Hooks[T any]() own.Hooks[*Seq[T]] {
	return own.Ref((*Seq[T]).destroy)
}

// Len returns the number of elements.
func (s *Seq[T]) Len() int { return len(s.data) }

// Cap returns the capacity of the backing store.
func (s *Seq[T]) Cap() int { return cap(s.data) }

// Push appends a clone of v, doubling the capacity when full.
func (s *Seq[T]) Push(v T) {
	s.data = alloc.Grow(s.data, len(s.data)+1)
	s.data = append(s.data, s.hooks.CloneValue(v))
}

func (s *Seq[T]) check(i int64, msg string) int {
	if i < 0 || i >= int64(len(s.data)) {
		fail.OOB(fail.Here(2), msg)
	}
	return int(i)
}

// Get returns the element at i. The element is borrowed: it stays owned by
// the sequence.
func (s *Seq[T]) Get(i int64) T {
	return s.data[s.check(i, "list index out of range")]
}

// Set replaces the element at i, dropping the previous one.
func (s *Seq[T]) Set(i int64, v T) {
	idx := s.check(i, "list index out of range")
	s.hooks.DropValue(s.data[idx])
	s.data[idx] = s.hooks.CloneValue(v)
}

// Pop removes and returns the last element. The caller owns the result.
func (s *Seq[T]) Pop() T {
	n := len(s.data)
	if n == 0 {
		fail.OOB(fail.Here(1), "pop from empty list")
	}
	last := s.data[n-1]
	v := s.hooks.CloneValue(last)
	s.hooks.DropValue(last)
	var zero T
	s.data[n-1] = zero
	s.data = s.data[:n-1]
	return v
}

// Remove deletes the element at i and shifts the tail left.
func (s *Seq[T]) Remove(i int64) {
	idx := s.check(i, "list remove index out of range")
	s.hooks.DropValue(s.data[idx])
	n := len(s.data)
	copy(s.data[idx:], s.data[idx+1:])
	var zero T
	s.data[n-1] = zero
	s.data = s.data[:n-1]
}

// All iterates over index/element pairs. Elements are borrowed.
func (s *Seq[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range s.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Slice returns a copy of the elements. The elements themselves are
// borrowed, not cloned.
func (s *Seq[T]) Slice() []T {
	out := make([]T, len(s.data))
	copy(out, s.data)
	return out
}

// Retain adds a reference.
func (s *Seq[T]) Retain() { rc.Retain(s) }

// Release drops a reference. The last one drops every element.
func (s *Seq[T]) Release() { rc.Release(s, (*Seq[T]).destroy) }

func (s *Seq[T]) destroy() {
	for _, v := range s.data {
		s.hooks.DropValue(v)
	}
	s.data = nil
}

// Range returns the integers from start towards end (exclusive) by step.
// A negative step counts down.
func Range(start, end, step int64) *Seq[int64] {
	if step == 0 {
		fail.Panicf(fail.Here(1), "range(): step must not be 0")
	}
	s := newSeq(own.Prim[int64](), 1)
	if step > 0 {
		for v := start; v < end; v += step {
			s.Push(v)
			if v > math.MaxInt64-step {
				break
			}
		}
	} else {
		for v := start; v > end; v += step {
			s.Push(v)
			if v < math.MinInt64-step {
				break
			}
		}
	}
	return s
}
