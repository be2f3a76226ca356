// Package dict implements the runtime's reference-counted hash map.
//
// # Layout
//
// The map is an open-addressing table of slots. Each slot is empty, full or
// a tombstone left behind by Delete. Full slots cache the key's hash.
//
//   - Capacity starts at 16 and is always a power of two.
//   - A probe starts at hash & (cap-1) and walks linearly.
//   - A new key lands in the first tombstone seen on its probe path, or in
//     the terminating empty slot when there was none.
//   - Before an insert, the table is rehashed when (used+1)*3 >= cap*2,
//     where used counts full slots and tombstones. The rehash drops every
//     tombstone. It doubles the capacity unless the live keys alone stay
//     under the threshold, in which case the size is kept.
//
// # Ownership
//
// Keys and values are cloned into the map and dropped when they leave it,
// following the own.KeyHooks and own.Hooks given to New. Lookups return
// borrowed values.
//
// # Usage
//
//	m := dict.NewStr(own.Prim[int64]())
//	defer m.Release()
//
//	k := str.FromString("hits")
//	n, _ := m.Lookup(k)
//	m.Set(k, n+1)
//	k.Release()
package dict
