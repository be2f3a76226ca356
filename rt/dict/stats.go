package dict

// Stats reports table occupancy and probe lengths.
type Stats struct {
	Len        int     // Full slots
	Cap        int     // Total slots
	Tombstones int     // Deleted slots awaiting the next growth
	MaxProbe   int     // Longest distance from a key's home slot
	AvgProbe   float64 // Mean distance from home over all keys
}

// LoadFactor returns the share of slots that are full or tombstones.
func (s Stats) LoadFactor() float64 {
	if s.Cap == 0 {
		return 0
	}
	return float64(s.Len+s.Tombstones) / float64(s.Cap)
}

// Stats walks the table and reports its shape.
func (m *Map[K, V]) Stats() Stats {
	st := Stats{Len: m.len, Cap: len(m.slots), Tombstones: m.tombs}
	if m.len == 0 {
		return st
	}
	mask := uint64(len(m.slots) - 1)
	total := 0
	for i := range m.slots {
		if m.slots[i].state != slotFull {
			continue
		}
		home := m.slots[i].hash & mask
		dist := int((uint64(i) - home) & mask)
		total += dist
		st.MaxProbe = max(st.MaxProbe, dist)
	}
	st.AvgProbe = float64(total) / float64(m.len)
	return st
}
