package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	grassColor = color.RGBA{R: 70, G: 140, B: 60, A: 255}
	wallColor  = color.RGBA{R: 200, G: 170, B: 130, A: 255}
	roofColor  = color.RGBA{R: 150, G: 50, B: 40, A: 255}
	plankColor = color.RGBA{R: 120, G: 85, B: 50, A: 255}
	barkColor  = color.RGBA{R: 90, G: 60, B: 30, A: 255}
	leafColor  = color.RGBA{R: 40, G: 110, B: 40, A: 255}
	steelColor = color.RGBA{R: 150, G: 160, B: 170, A: 255}
)

const groundLines = 20

// Ground is the flat grid the world sits on. Its extent is the world bounds.
type Ground struct {
	Entity
	Extent float64
}

func NewGround(world WorldConfig) *Ground {
	return &Ground{
		Entity: NewEntity("Ground", KindGround),
		Extent: max(-world.Min, world.Max),
	}
}

func (g *Ground) Draw(dc *DrawContext) {
	b := dc.Backend
	step := 2 * g.Extent / float64(groundLines)
	for i := 0; i <= groundLines; i++ {
		d := -g.Extent + float64(i)*step
		b.Line(mgl64.Vec3{d, -g.Extent, 0}, mgl64.Vec3{d, g.Extent, 0}, grassColor)
		b.Line(mgl64.Vec3{-g.Extent, d, 0}, mgl64.Vec3{g.Extent, d, 0}, grassColor)
	}
}

type House struct {
	Entity
}

func NewHouse(name string, pos mgl64.Vec3) *House {
	h := &House{Entity: NewEntity(name, KindHouse)}
	h.Transform.SetPosition(pos)
	return h
}

func (h *House) Draw(dc *DrawContext) {
	b := dc.Backend
	b.PushFrame()
	b.Translate(mgl64.Vec3{0, 0, 2})
	b.Box(mgl64.Vec3{6, 5, 4}, wallColor)
	b.Translate(mgl64.Vec3{0, 0, 2})
	b.Cone(4.2, 2.5, roofColor)
	b.PopFrame()

	b.PushFrame()
	b.Translate(mgl64.Vec3{3.01, 0, 1})
	b.Box(mgl64.Vec3{0.02, 1, 2}, plankColor)
	b.PopFrame()
}

type Shed struct {
	Entity
}

func NewShed(name string, pos mgl64.Vec3, heading float64) *Shed {
	s := &Shed{Entity: NewEntity(name, KindShed)}
	s.Transform.SetPosition(pos)
	s.Transform.SetRotation(mgl64.Vec3{0, 0, heading})
	return s
}

func (s *Shed) Draw(dc *DrawContext) {
	b := dc.Backend
	b.PushFrame()
	b.Translate(mgl64.Vec3{0, 0, 1.25})
	b.Box(mgl64.Vec3{4, 3, 2.5}, plankColor)
	b.Translate(mgl64.Vec3{0, 0, 1.25})
	b.Box(mgl64.Vec3{4.4, 3.4, 0.2}, roofColor)
	b.PopFrame()
}

type Tree struct {
	Entity
}

func NewTree(name string, pos mgl64.Vec3) *Tree {
	t := &Tree{Entity: NewEntity(name, KindTree)}
	t.Transform.SetPosition(pos)
	return t
}

func (t *Tree) Draw(dc *DrawContext) {
	b := dc.Backend
	b.Cylinder(0.3, 3, barkColor)
	b.PushFrame()
	b.Translate(mgl64.Vec3{0, 0, 2.5})
	b.Cone(1.8, 3.5, leafColor)
	b.PopFrame()
}

// WaterTank is a cylinder on four legs
type WaterTank struct {
	Entity
}

func NewWaterTank(name string, pos mgl64.Vec3) *WaterTank {
	w := &WaterTank{Entity: NewEntity(name, KindWaterTank)}
	w.Transform.SetPosition(pos)
	return w
}

func (w *WaterTank) Draw(dc *DrawContext) {
	b := dc.Backend
	for _, leg := range [4]mgl64.Vec3{{0.6, 0.6, 0}, {0.6, -0.6, 0}, {-0.6, 0.6, 0}, {-0.6, -0.6, 0}} {
		b.PushFrame()
		b.Translate(leg)
		b.Cylinder(0.08, 1.5, steelColor)
		b.PopFrame()
	}
	b.PushFrame()
	b.Translate(mgl64.Vec3{0, 0, 1.5})
	b.Cylinder(1, 1.8, steelColor)
	b.PopFrame()
}
