package scene

import (
	"iter"
	"slices"
	"weak"

	"github.com/kamstrup/intmap"
)

const blockSize = 64

// Storage is the entity arena of a scene. Objects live in fixed-size blocks
// addressed by slot index; each slot carries a generation so stale handles
// resolve to nothing after the slot is reused. Iteration follows insertion
// order.
type Storage struct {
	blocks    [][blockSize]Object
	gens      [][blockSize]uint32
	filled    [][blockSize]bool
	freeSlots []int
	nextIndex int

	order   []Handle
	refs    *intmap.Map[Handle, weak.Pointer[EntityRef]]
	version uint64
}

// NewStorage creates an empty storage
func NewStorage() *Storage {
	return &Storage{
		refs: intmap.New[Handle, weak.Pointer[EntityRef]](64),
	}
}

// Spawn stores obj and returns its handle. The object is appended to the
// iteration order.
func (s *Storage) Spawn(obj Object) Handle {
	if obj == nil {
		panic("cannot spawn a nil object")
	}

	var index int
	if len(s.freeSlots) > 0 {
		index = s.freeSlots[len(s.freeSlots)-1]
		s.freeSlots = s.freeSlots[:len(s.freeSlots)-1]
	} else {
		index = s.nextIndex
		s.nextIndex++
		if index/blockSize >= len(s.blocks) {
			s.blocks = append(s.blocks, [blockSize]Object{})
			s.gens = append(s.gens, [blockSize]uint32{})
			s.filled = append(s.filled, [blockSize]bool{})
		}
	}

	blockIdx := index / blockSize
	slotIdx := index % blockSize

	s.gens[blockIdx][slotIdx]++
	if s.gens[blockIdx][slotIdx] == 0 {
		s.gens[blockIdx][slotIdx] = 1
	}
	s.blocks[blockIdx][slotIdx] = obj
	s.filled[blockIdx][slotIdx] = true

	h := NewHandle(s.gens[blockIdx][slotIdx], uint32(index))
	s.order = append(s.order, h)
	s.version++
	return h
}

// Get returns the object behind h, or nil if h is stale
func (s *Storage) Get(h Handle) Object {
	blockIdx, slotIdx, ok := s.locate(h)
	if !ok {
		return nil
	}
	return s.blocks[blockIdx][slotIdx]
}

// Has reports whether h addresses a live object
func (s *Storage) Has(h Handle) bool {
	_, _, ok := s.locate(h)
	return ok
}

func (s *Storage) locate(h Handle) (int, int, bool) {
	if h == 0 {
		return 0, 0, false
	}
	index := int(h.Index())
	blockIdx := index / blockSize
	slotIdx := index % blockSize

	if blockIdx >= len(s.blocks) {
		return 0, 0, false
	}
	if !s.filled[blockIdx][slotIdx] || s.gens[blockIdx][slotIdx] != h.Generation() {
		return 0, 0, false
	}
	return blockIdx, slotIdx, true
}

// Delete removes the object behind h. Any EntityRef to it is cleared.
// Returns false if h was already stale.
func (s *Storage) Delete(h Handle) bool {
	blockIdx, slotIdx, ok := s.locate(h)
	if !ok {
		return false
	}

	if weakPtr, ok := s.refs.Get(h); ok {
		if ref := weakPtr.Value(); ref != nil {
			ref.Handle = 0
		}
		s.refs.Del(h)
	}

	s.blocks[blockIdx][slotIdx] = nil
	s.filled[blockIdx][slotIdx] = false
	s.freeSlots = append(s.freeSlots, int(h.Index()))

	if i := slices.Index(s.order, h); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	s.version++
	return true
}

// Len returns the number of live objects
func (s *Storage) Len() int {
	return len(s.order)
}

// Version changes every time an object is spawned or deleted
func (s *Storage) Version() uint64 {
	return s.version
}

// Iter yields live objects in insertion order
func (s *Storage) Iter() iter.Seq2[Handle, Object] {
	return func(yield func(Handle, Object) bool) {
		for _, h := range s.order {
			obj := s.Get(h)
			if obj == nil {
				continue
			}
			if !yield(h, obj) {
				return
			}
		}
	}
}

// Handles returns a snapshot of the live handles in insertion order
func (s *Storage) Handles() []Handle {
	return slices.Clone(s.order)
}

// FindFirst returns the first object in insertion order with the given name
func (s *Storage) FindFirst(name string) (Handle, Object) {
	for h, obj := range s.Iter() {
		if obj.Base().Name == name {
			return h, obj
		}
	}
	return 0, nil
}

// CreateEntityRef returns the shared ref for h, creating it on first use.
// Returns nil if h is stale.
func (s *Storage) CreateEntityRef(h Handle) *EntityRef {
	if !s.Has(h) {
		return nil
	}

	if weakPtr, ok := s.refs.Get(h); ok {
		if ref := weakPtr.Value(); ref != nil {
			return ref
		}
		// Weak pointer is dead, remove it
		s.refs.Del(h)
	}

	ref := &EntityRef{Handle: h}
	s.refs.Put(h, weak.Make(ref))
	return ref
}

// ResolveEntityRef returns the handle a ref points at, if it is still live
func (s *Storage) ResolveEntityRef(ref *EntityRef) (Handle, bool) {
	if !ref.Valid() || !s.Has(ref.Handle) {
		return 0, false
	}
	return ref.Handle, true
}

// InvalidateEntityRef detaches a ref from its entity without deleting the entity
func (s *Storage) InvalidateEntityRef(ref *EntityRef) bool {
	if !ref.Valid() {
		return false
	}
	s.refs.Del(ref.Handle)
	ref.Handle = 0
	return true
}
