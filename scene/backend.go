package scene

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// View holds the resolved camera parameters a backend needs to set up its
// projection and view transforms
type View struct {
	Position mgl64.Vec3
	Target   mgl64.Vec3
	Up       mgl64.Vec3
	FOV      float64
	Near     float64
	Far      float64
}

// Backend is the drawing service the render pass drives. It keeps a stack of
// coordinate frames; transform calls apply to the top frame and primitives are
// placed in it.
type Backend interface {
	PushFrame()
	PopFrame()
	Translate(v mgl64.Vec3)
	Rotate(degrees float64, axis mgl64.Vec3)
	Scale(v mgl64.Vec3)
	SetView(v View)

	// Box is centered on the frame origin
	Box(size mgl64.Vec3, c color.RGBA)
	Sphere(radius float64, c color.RGBA)
	// Cylinder and Cone stand on the frame origin and extend along +Z
	Cylinder(radius, height float64, c color.RGBA)
	Cone(radius, height float64, c color.RGBA)
	Line(from, to mgl64.Vec3, c color.RGBA)
}

// Call is one backend invocation captured by a Recorder
type Call struct {
	Op     string
	Vec    mgl64.Vec3
	Angle  float64
	Radius float64
	Height float64
}

func (c Call) String() string {
	switch c.Op {
	case "Rotate":
		return fmt.Sprintf("Rotate(%g, %v)", c.Angle, c.Vec)
	case "Translate", "Scale", "Box":
		return fmt.Sprintf("%s(%v)", c.Op, c.Vec)
	default:
		return c.Op
	}
}

// Recorder is a Backend that records calls instead of drawing. It tracks the
// frame stack depth so tests and tools can check push/pop balance.
type Recorder struct {
	Calls    []Call
	Views    []View
	Pushes   int
	Pops     int
	Depth    int
	MaxDepth int
}

// Reset clears all recorded state
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
	r.Views = r.Views[:0]
	r.Pushes, r.Pops, r.Depth, r.MaxDepth = 0, 0, 0, 0
}

// Primitives returns the number of recorded draw calls
func (r *Recorder) Primitives() int {
	n := 0
	for _, c := range r.Calls {
		switch c.Op {
		case "Box", "Sphere", "Cylinder", "Cone", "Line":
			n++
		}
	}
	return n
}

func (r *Recorder) PushFrame() {
	r.Pushes++
	r.Depth++
	r.MaxDepth = max(r.MaxDepth, r.Depth)
	r.Calls = append(r.Calls, Call{Op: "PushFrame"})
}

func (r *Recorder) PopFrame() {
	if r.Depth == 0 {
		panic("frame stack underflow")
	}
	r.Pops++
	r.Depth--
	r.Calls = append(r.Calls, Call{Op: "PopFrame"})
}

func (r *Recorder) Translate(v mgl64.Vec3) {
	r.Calls = append(r.Calls, Call{Op: "Translate", Vec: v})
}

func (r *Recorder) Rotate(degrees float64, axis mgl64.Vec3) {
	r.Calls = append(r.Calls, Call{Op: "Rotate", Angle: degrees, Vec: axis})
}

func (r *Recorder) Scale(v mgl64.Vec3) {
	r.Calls = append(r.Calls, Call{Op: "Scale", Vec: v})
}

func (r *Recorder) SetView(v View) {
	r.Views = append(r.Views, v)
	r.Calls = append(r.Calls, Call{Op: "SetView"})
}

func (r *Recorder) Box(size mgl64.Vec3, _ color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: "Box", Vec: size})
}

func (r *Recorder) Sphere(radius float64, _ color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: "Sphere", Radius: radius})
}

func (r *Recorder) Cylinder(radius, height float64, _ color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: "Cylinder", Radius: radius, Height: height})
}

func (r *Recorder) Cone(radius, height float64, _ color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: "Cone", Radius: radius, Height: height})
}

func (r *Recorder) Line(from, to mgl64.Vec3, _ color.RGBA) {
	r.Calls = append(r.Calls, Call{Op: "Line", Vec: to.Sub(from)})
}
