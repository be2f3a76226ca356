package dict

import (
	"iter"

	"github.com/joshuapare/rtcore/rt/alloc"
	"github.com/joshuapare/rtcore/rt/fail"
	"github.com/joshuapare/rtcore/rt/own"
	"github.com/joshuapare/rtcore/rt/rc"
	"github.com/joshuapare/rtcore/rt/seq"
	"github.com/joshuapare/rtcore/rt/str"
)

// TypeName is the tag reported to the leak detector.
const TypeName = "Map"

const initialCap = 16

type slotState uint8

const (
	slotEmpty slotState = iota
	slotFull
	slotTomb
)

type slot[K, V any] struct {
	state slotState
	hash  uint64
	key   K
	value V
}

// Map is an open-addressing hash map from K to V.
type Map[K, V any] struct {
	rc.Header
	kh    own.KeyHooks[K]
	vh    own.Hooks[V]
	slots []slot[K, V]
	len   int
	tombs int
}

// StrMap is a map keyed by byte strings.
type StrMap[V any] = Map[*str.Str, V]

// New returns an empty map with 16 slots.
func New[K, V any](kh own.KeyHooks[K], vh own.Hooks[V]) *Map[K, V] {
	return newMap(kh, vh, 1)
}

// NewStr returns an empty string-keyed map.
func NewStr[V any](vh own.Hooks[V]) *StrMap[V] {
	return newMap(str.KeyHooks, vh, 1)
}

func newMap[K, V any](kh own.KeyHooks[K], vh own.Hooks[V], skip int) *Map[K, V] {
	m := &Map[K, V]{
		kh:    kh,
		vh:    vh,
		slots: alloc.Make[slot[K, V]](initialCap, initialCap),
	}
	rc.Init(&m.Header, TypeName, skip+1)
	return m
}

// Hooks returns hooks that share maps as elements of other containers.
func Hooks[K, V any]() own.Hooks[*Map[K, V]] {
	return own.Ref((*Map[K, V]).destroy)
}

// Len returns the number of keys.
func (m *Map[K, V]) Len() int { return m.len }

// Cap returns the number of slots.
func (m *Map[K, V]) Cap() int { return len(m.slots) }

// find returns the slot holding key, or the slot a new key would take.
func (m *Map[K, V]) find(h uint64, key K) (idx int, found bool) {
	mask := uint64(len(m.slots) - 1)
	i := h & mask
	firstTomb := -1
	for {
		s := &m.slots[i]
		switch s.state {
		case slotEmpty:
			if firstTomb >= 0 {
				return firstTomb, false
			}
			return int(i), false
		case slotTomb:
			if firstTomb < 0 {
				firstTomb = int(i)
			}
		default:
			if s.hash == h && m.kh.Equal(s.key, key) {
				return int(i), true
			}
		}
		i = (i + 1) & mask
	}
}

func (m *Map[K, V]) rehash(newCap int) {
	old := m.slots
	m.slots = alloc.Make[slot[K, V]](newCap, newCap)
	m.tombs = 0
	mask := uint64(newCap - 1)
	for i := range old {
		if old[i].state != slotFull {
			continue
		}
		j := old[i].hash & mask
		for m.slots[j].state != slotEmpty {
			j = (j + 1) & mask
		}
		m.slots[j] = old[i]
	}
}

// growCap sizes the next rehash from live keys. When tombstones alone pushed
// the table over the threshold, it is rebuilt at the same capacity.
func (m *Map[K, V]) growCap() int {
	if (m.len+1)*3 < len(m.slots)*2 {
		return len(m.slots)
	}
	return len(m.slots) * 2
}

// Set associates v with k. An existing key keeps its stored key object and
// has its value replaced; the previous value is dropped.
func (m *Map[K, V]) Set(k K, v V) {
	if m.kh.Null(k) {
		fail.KeyErr(fail.Here(1), "dict key is nil")
	}
	if (m.len+m.tombs+1)*3 >= len(m.slots)*2 {
		m.rehash(m.growCap())
	}
	h := m.kh.Hash(k)
	idx, found := m.find(h, k)
	s := &m.slots[idx]
	if found {
		m.vh.DropValue(s.value)
		s.value = m.vh.CloneValue(v)
		return
	}
	if s.state == slotTomb {
		m.tombs--
	}
	s.state = slotFull
	s.hash = h
	s.key = m.kh.CloneValue(k)
	s.value = m.vh.CloneValue(v)
	m.len++
}

// Has reports whether k is present. It never fails.
func (m *Map[K, V]) Has(k K) bool {
	if m.kh.Null(k) {
		return false
	}
	_, found := m.find(m.kh.Hash(k), k)
	return found
}

// Get returns the value for k, failing with a key error when k is absent.
// The value is borrowed.
func (m *Map[K, V]) Get(k K) V {
	if !m.kh.Null(k) {
		if idx, found := m.find(m.kh.Hash(k), k); found {
			return m.slots[idx].value
		}
	}
	fail.KeyErr(fail.Here(1), "missing dict key")
	var zero V
	return zero
}

// Lookup returns the value for k and whether it was present.
func (m *Map[K, V]) Lookup(k K) (V, bool) {
	var zero V
	if m.kh.Null(k) {
		return zero, false
	}
	idx, found := m.find(m.kh.Hash(k), k)
	if !found {
		return zero, false
	}
	return m.slots[idx].value, true
}

// Delete removes k and reports whether it was present. The slot becomes a
// tombstone until the next growth.
func (m *Map[K, V]) Delete(k K) bool {
	if m.kh.Null(k) {
		return false
	}
	idx, found := m.find(m.kh.Hash(k), k)
	if !found {
		return false
	}
	s := &m.slots[idx]
	key, value := s.key, s.value
	*s = slot[K, V]{state: slotTomb}
	m.len--
	m.tombs++
	m.kh.DropValue(key)
	m.vh.DropValue(value)
	return true
}

// Keys returns a new sequence of the keys in slot order. The caller owns
// the sequence; each key is cloned into it.
func (m *Map[K, V]) Keys() *seq.Seq[K] {
	site := fail.NoSrc
	if rc.Observed() {
		site = fail.Here(1)
	}
	out := seq.NewAt(m.kh.Hooks, site)
	for i := range m.slots {
		if m.slots[i].state == slotFull {
			out.Push(m.slots[i].key)
		}
	}
	return out
}

// All iterates over key/value pairs in slot order. Both are borrowed.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.slots {
			s := &m.slots[i]
			if s.state != slotFull {
				continue
			}
			if !yield(s.key, s.value) {
				return
			}
		}
	}
}

// Retain adds a reference.
func (m *Map[K, V]) Retain() { rc.Retain(m) }

// Release drops a reference. The last one drops every key and value.
func (m *Map[K, V]) Release() { rc.Release(m, (*Map[K, V]).destroy) }

func (m *Map[K, V]) destroy() {
	for i := range m.slots {
		s := &m.slots[i]
		if s.state != slotFull {
			continue
		}
		m.kh.DropValue(s.key)
		m.vh.DropValue(s.value)
	}
	m.slots = nil
	m.len = 0
	m.tombs = 0
}
