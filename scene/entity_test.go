package scene_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/pasture/scene"
	"github.com/stretchr/testify/assert"
)

type marker struct {
	scene.Entity
	draws   int
	updates int
	panics  bool
}

func newMarker(name string) *marker {
	return &marker{Entity: scene.NewEntity(name, scene.KindTree)}
}

func (m *marker) Draw(dc *scene.DrawContext) {
	m.draws++
	if m.panics {
		panic("draw failed")
	}
	dc.Backend.Sphere(1, markerColor)
}

func (m *marker) Update(frame *scene.Frame) {
	m.updates++
}

func TestNewEntity(t *testing.T) {
	e := scene.NewEntity("Barn", scene.KindHouse)

	assert.Equal(t, "Barn", e.Name)
	assert.True(t, e.Active)
	assert.Equal(t, scene.KindHouse, e.Kind)
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, e.Transform.Scale())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "WaterTank", scene.KindWaterTank.String())
	assert.Equal(t, "Unknown", scene.Kind(200).String())
	assert.Len(t, scene.Kinds(), 6)
}

func TestRenderOrder(t *testing.T) {
	m := newMarker("m")
	m.Transform.SetPosition(mgl64.Vec3{1, 2, 3})
	m.Transform.SetRotation(mgl64.Vec3{10, 20, 30})
	m.Transform.SetUniformScale(2)

	rec := &scene.Recorder{}
	scene.Render(m, &scene.DrawContext{Backend: rec})

	ops := make([]string, 0, len(rec.Calls))
	for _, c := range rec.Calls {
		ops = append(ops, c.String())
	}
	assert.Equal(t, []string{
		"PushFrame",
		"Translate([1 2 3])",
		"Rotate(30, [0 0 1])",
		"Rotate(20, [0 1 0])",
		"Rotate(10, [1 0 0])",
		"Scale([2 2 2])",
		"Sphere",
		"PopFrame",
	}, ops)
	assert.Equal(t, 1, m.draws)
	assert.Equal(t, 0, rec.Depth)
}

func TestRenderInactive(t *testing.T) {
	m := newMarker("m")
	m.Active = false

	rec := &scene.Recorder{}
	scene.Render(m, &scene.DrawContext{Backend: rec})

	assert.Empty(t, rec.Calls)
	assert.Equal(t, 0, m.draws)
}

func TestRenderPopsOnPanic(t *testing.T) {
	m := newMarker("m")
	m.panics = true

	rec := &scene.Recorder{}
	assert.Panics(t, func() {
		scene.Render(m, &scene.DrawContext{Backend: rec})
	})

	assert.Equal(t, 1, rec.Pushes)
	assert.Equal(t, 1, rec.Pops)
	assert.Equal(t, 0, rec.Depth)
}

func TestRecorderUnderflow(t *testing.T) {
	rec := &scene.Recorder{}
	assert.Panics(t, rec.PopFrame)
}
