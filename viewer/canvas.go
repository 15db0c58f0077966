// Package viewer renders a scene into an Ebiten window as wireframes and
// feeds keyboard state back into it.
package viewer

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/pasture/scene"
)

const circleSegments = 16

// Segment is one projected line in screen pixels
type Segment struct {
	From, To mgl64.Vec2
	Color    color.RGBA
}

// Canvas is a scene.Backend that turns primitives into wireframe segments.
// Call Begin before each render pass and Draw to stroke the result.
type Canvas struct {
	StrokeWidth float32

	width, height int
	stack         []mgl64.Mat4
	viewProj      mgl64.Mat4
	near          float64
	segments      []Segment
}

// NewCanvas creates a canvas for a width by height pixel target
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{StrokeWidth: 1}
	c.Resize(width, height)
	c.SetView(scene.View{
		Position: mgl64.Vec3{0, -10, 5},
		Up:       scene.AxisZ,
		FOV:      60,
		Near:     0.1,
		Far:      200,
	})
	c.Begin()
	return c
}

// Resize changes the pixel size projections map into
func (c *Canvas) Resize(width, height int) {
	c.width = max(width, 1)
	c.height = max(height, 1)
}

// Begin drops last pass's segments and resets the frame stack
func (c *Canvas) Begin() {
	c.segments = c.segments[:0]
	c.stack = append(c.stack[:0], mgl64.Ident4())
}

func (c *Canvas) Segments() []Segment { return c.segments }

func (c *Canvas) top() *mgl64.Mat4 { return &c.stack[len(c.stack)-1] }

func (c *Canvas) PushFrame() {
	c.stack = append(c.stack, *c.top())
}

func (c *Canvas) PopFrame() {
	if len(c.stack) <= 1 {
		panic("frame stack underflow")
	}
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Canvas) Translate(v mgl64.Vec3) {
	*c.top() = c.top().Mul4(mgl64.Translate3D(v.X(), v.Y(), v.Z()))
}

func (c *Canvas) Rotate(degrees float64, axis mgl64.Vec3) {
	*c.top() = c.top().Mul4(mgl64.HomogRotate3D(mgl64.DegToRad(degrees), axis))
}

func (c *Canvas) Scale(v mgl64.Vec3) {
	*c.top() = c.top().Mul4(mgl64.Scale3D(v.X(), v.Y(), v.Z()))
}

// SetView rebuilds the combined view-projection matrix
func (c *Canvas) SetView(v scene.View) {
	aspect := float64(c.width) / float64(c.height)
	proj := mgl64.Perspective(mgl64.DegToRad(v.FOV), aspect, v.Near, v.Far)
	view := mgl64.LookAtV(v.Position, v.Target, v.Up)
	c.viewProj = proj.Mul4(view)
	c.near = v.Near
}

// Project maps a world point to pixels. ok is false behind the near plane.
func (c *Canvas) Project(p mgl64.Vec3) (mgl64.Vec2, bool) {
	clip := c.viewProj.Mul4x1(p.Vec4(1))
	if clip.W() < c.near {
		return mgl64.Vec2{}, false
	}
	return c.toScreen(clip), true
}

func (c *Canvas) toScreen(clip mgl64.Vec4) mgl64.Vec2 {
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return mgl64.Vec2{
		(ndcX + 1) / 2 * float64(c.width),
		(1 - ndcY) / 2 * float64(c.height),
	}
}

// segment adds a line given in the current frame's local coordinates. The
// part behind the near plane is cut away.
func (c *Canvas) segment(a, b mgl64.Vec3, col color.RGBA) {
	m := c.viewProj.Mul4(*c.top())
	ca := m.Mul4x1(a.Vec4(1))
	cb := m.Mul4x1(b.Vec4(1))

	if ca.W() < c.near && cb.W() < c.near {
		return
	}
	if ca.W() < c.near {
		ca = cb.Add(ca.Sub(cb).Mul((cb.W() - c.near) / (cb.W() - ca.W())))
	} else if cb.W() < c.near {
		cb = ca.Add(cb.Sub(ca).Mul((ca.W() - c.near) / (ca.W() - cb.W())))
	}

	c.segments = append(c.segments, Segment{From: c.toScreen(ca), To: c.toScreen(cb), Color: col})
}

func (c *Canvas) Line(from, to mgl64.Vec3, col color.RGBA) {
	c.segment(from, to, col)
}

func (c *Canvas) Box(size mgl64.Vec3, col color.RGBA) {
	h := size.Mul(0.5)
	var corners [8]mgl64.Vec3
	for i := range corners {
		corners[i] = mgl64.Vec3{
			h.X() * sign(i&1),
			h.Y() * sign(i&2),
			h.Z() * sign(i&4),
		}
	}
	for i := range corners {
		for _, bit := range [3]int{1, 2, 4} {
			if i&bit == 0 {
				c.segment(corners[i], corners[i|bit], col)
			}
		}
	}
}

func sign(bit int) float64 {
	if bit != 0 {
		return 1
	}
	return -1
}

func (c *Canvas) Sphere(radius float64, col color.RGBA) {
	c.circle(radius, 0, scene.AxisX, scene.AxisY, col)
	c.circle(radius, 0, scene.AxisX, scene.AxisZ, col)
	c.circle(radius, 0, scene.AxisY, scene.AxisZ, col)
}

func (c *Canvas) Cylinder(radius, height float64, col color.RGBA) {
	c.circle(radius, 0, scene.AxisX, scene.AxisY, col)
	c.circle(radius, height, scene.AxisX, scene.AxisY, col)
	for i := range 4 {
		p := ringPoint(radius, i, 4, scene.AxisX, scene.AxisY)
		c.segment(p, p.Add(mgl64.Vec3{0, 0, height}), col)
	}
}

func (c *Canvas) Cone(radius, height float64, col color.RGBA) {
	c.circle(radius, 0, scene.AxisX, scene.AxisY, col)
	apex := mgl64.Vec3{0, 0, height}
	for i := range 4 {
		c.segment(ringPoint(radius, i, 4, scene.AxisX, scene.AxisY), apex, col)
	}
}

func (c *Canvas) circle(radius, z float64, u, v mgl64.Vec3, col color.RGBA) {
	lift := mgl64.Vec3{0, 0, z}
	prev := ringPoint(radius, 0, circleSegments, u, v).Add(lift)
	for i := 1; i <= circleSegments; i++ {
		next := ringPoint(radius, i, circleSegments, u, v).Add(lift)
		c.segment(prev, next, col)
		prev = next
	}
}

func ringPoint(radius float64, i, n int, u, v mgl64.Vec3) mgl64.Vec3 {
	a := 2 * math.Pi * float64(i) / float64(n)
	return u.Mul(radius * math.Cos(a)).Add(v.Mul(radius * math.Sin(a)))
}

// Draw strokes every collected segment onto dst
func (c *Canvas) Draw(dst *ebiten.Image) {
	for _, s := range c.segments {
		vector.StrokeLine(dst,
			float32(s.From.X()), float32(s.From.Y()),
			float32(s.To.X()), float32(s.To.Y()),
			c.StrokeWidth, s.Color, true)
	}
}
