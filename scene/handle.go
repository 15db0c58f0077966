package scene

// Handle addresses one slot of a Storage. The upper 32 bits hold the slot
// generation and the lower 32 bits the slot index. The zero Handle is never
// issued.
type Handle uint64

// NewHandle creates a Handle from a slot generation and index
func NewHandle(generation uint32, index uint32) Handle {
	return Handle(uint64(generation)<<32 | uint64(index))
}

// Generation extracts the slot generation from the handle
func (h Handle) Generation() uint32 {
	return uint32(h >> 32)
}

// Index extracts the slot index from the handle
func (h Handle) Index() uint32 {
	return uint32(h & 0xFFFFFFFF)
}

// EntityRef is a stable reference to an entity. Storage clears Handle when
// the entity is deleted, so holders never observe a reused slot.
type EntityRef struct {
	Handle Handle
}

// Valid reports whether the ref still points at a live entity
func (r *EntityRef) Valid() bool {
	return r != nil && r.Handle != 0
}
