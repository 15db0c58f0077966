package scene

// StorageStats summarizes the contents of a Storage
type StorageStats struct {
	EntityCount int
	ActiveCount int
	FreeSlots   int
	SlotCount   int
	RefCount    int
	KindCounts  map[Kind]int
}

// CollectStats walks the storage and returns a snapshot of its contents
func (s *Storage) CollectStats() StorageStats {
	stats := StorageStats{
		EntityCount: s.Len(),
		FreeSlots:   len(s.freeSlots),
		SlotCount:   s.nextIndex,
		RefCount:    s.refs.Len(),
		KindCounts:  make(map[Kind]int),
	}

	for _, obj := range s.Iter() {
		e := obj.Base()
		stats.KindCounts[e.Kind]++
		if e.Active {
			stats.ActiveCount++
		}
	}

	return stats
}
