package scene_test

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/plus3/pasture/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleEncoding(t *testing.T) {
	tests := []struct {
		generation uint32
		index      uint32
	}{
		{1, 0},
		{0xFFFFFFFF, 0xFFFFFFFF},
		{0x12345678, 0x9ABCDEF0},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("gen=%d,index=%d", tt.generation, tt.index), func(t *testing.T) {
			h := scene.NewHandle(tt.generation, tt.index)
			assert.Equal(t, tt.generation, h.Generation())
			assert.Equal(t, tt.index, h.Index())
		})
	}
}

func TestStorageSpawnGet(t *testing.T) {
	storage := scene.NewStorage()

	a := newMarker("a")
	b := newMarker("b")
	ha := storage.Spawn(a)
	hb := storage.Spawn(b)

	assert.NotEqual(t, scene.Handle(0), ha)
	assert.NotEqual(t, ha, hb)
	assert.Same(t, a, storage.Get(ha))
	assert.Same(t, b, storage.Get(hb))
	assert.Equal(t, 2, storage.Len())
	assert.Nil(t, storage.Get(0))

	assert.Panics(t, func() { storage.Spawn(nil) })
}

func TestStorageDelete(t *testing.T) {
	storage := scene.NewStorage()

	ha := storage.Spawn(newMarker("a"))
	hb := storage.Spawn(newMarker("b"))

	assert.True(t, storage.Delete(ha))
	assert.False(t, storage.Delete(ha), "second delete is a no-op")
	assert.False(t, storage.Has(ha))
	assert.True(t, storage.Has(hb))
	assert.Equal(t, 1, storage.Len())

	t.Run("slot reuse bumps the generation", func(t *testing.T) {
		hc := storage.Spawn(newMarker("c"))
		assert.Equal(t, ha.Index(), hc.Index())
		assert.NotEqual(t, ha.Generation(), hc.Generation())
		assert.Nil(t, storage.Get(ha), "stale handle never sees the new occupant")
	})
}

func TestStorageOrder(t *testing.T) {
	storage := scene.NewStorage()

	var handles []scene.Handle
	for i := range 5 {
		handles = append(handles, storage.Spawn(newMarker(fmt.Sprintf("m%d", i))))
	}
	storage.Delete(handles[1])
	storage.Spawn(newMarker("late"))

	var names []string
	for _, obj := range storage.Iter() {
		names = append(names, obj.Base().Name)
	}
	assert.Equal(t, []string{"m0", "m2", "m3", "m4", "late"}, names, "reused slots still append to the order")
}

func TestStorageFindFirst(t *testing.T) {
	storage := scene.NewStorage()
	first := storage.Spawn(newMarker("dup"))
	storage.Spawn(newMarker("dup"))

	h, obj := storage.FindFirst("dup")
	assert.Equal(t, first, h)
	assert.NotNil(t, obj)

	_, obj = storage.FindFirst("missing")
	assert.Nil(t, obj)
}

func TestStorageManyBlocks(t *testing.T) {
	storage := scene.NewStorage()

	handles := make([]scene.Handle, 200)
	for i := range handles {
		handles[i] = storage.Spawn(newMarker(fmt.Sprintf("m%d", i)))
	}
	for i, h := range handles {
		require.Equal(t, fmt.Sprintf("m%d", i), storage.Get(h).Base().Name)
	}

	stats := storage.CollectStats()
	assert.Equal(t, 200, stats.EntityCount)
	assert.Equal(t, 200, stats.SlotCount)
	assert.Equal(t, 200, stats.KindCounts[scene.KindTree])
}

func TestEntityRefLifecycle(t *testing.T) {
	storage := scene.NewStorage()
	h := storage.Spawn(newMarker("a"))

	ref := storage.CreateEntityRef(h)
	require.NotNil(t, ref)
	assert.Same(t, ref, storage.CreateEntityRef(h), "refs are shared per entity")

	resolved, ok := storage.ResolveEntityRef(ref)
	assert.True(t, ok)
	assert.Equal(t, h, resolved)

	storage.Delete(h)
	assert.False(t, ref.Valid())
	_, ok = storage.ResolveEntityRef(ref)
	assert.False(t, ok)

	assert.Nil(t, storage.CreateEntityRef(h), "stale handles get no ref")
}

func TestEntityRefInvalidate(t *testing.T) {
	storage := scene.NewStorage()
	h1 := storage.Spawn(newMarker("a"))
	h2 := storage.Spawn(newMarker("b"))

	ref1 := storage.CreateEntityRef(h1)
	ref2 := storage.CreateEntityRef(h2)

	assert.True(t, storage.InvalidateEntityRef(ref1))
	assert.False(t, storage.InvalidateEntityRef(ref1))
	assert.True(t, storage.Has(h1), "invalidating a ref keeps the entity")

	_, ok := storage.ResolveEntityRef(ref2)
	assert.True(t, ok)

	var nilRef *scene.EntityRef
	_, ok = storage.ResolveEntityRef(nilRef)
	assert.False(t, ok)
}

func TestEntityRefCollected(t *testing.T) {
	storage := scene.NewStorage()
	h := storage.Spawn(newMarker("a"))

	storage.CreateEntityRef(h)
	runtime.GC()

	ref := storage.CreateEntityRef(h)
	require.NotNil(t, ref)
	assert.Equal(t, h, ref.Handle)
}
