package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	AxisX = mgl64.Vec3{1, 0, 0}
	AxisY = mgl64.Vec3{0, 1, 0}
	AxisZ = mgl64.Vec3{0, 0, 1}
)

// Transform holds the position, orientation and scale of one entity.
// Rotation is a set of Euler angles in degrees: X is roll, Y is pitch and
// Z is yaw (heading).
type Transform struct {
	position mgl64.Vec3
	rotation mgl64.Vec3
	scale    mgl64.Vec3
}

// NewTransform returns an identity transform at the origin with unit scale
func NewTransform() Transform {
	return Transform{scale: mgl64.Vec3{1, 1, 1}}
}

func (t *Transform) Position() mgl64.Vec3 { return t.position }
func (t *Transform) Rotation() mgl64.Vec3 { return t.rotation }
func (t *Transform) Scale() mgl64.Vec3    { return t.scale }

func (t *Transform) SetPosition(p mgl64.Vec3) { t.position = p }
func (t *Transform) SetRotation(r mgl64.Vec3) { t.rotation = r }
func (t *Transform) SetScale(s mgl64.Vec3)    { t.scale = s }

// SetUniformScale sets all three scale factors to s
func (t *Transform) SetUniformScale(s float64) { t.scale = mgl64.Vec3{s, s, s} }

// Translate adds delta to the position
func (t *Transform) Translate(delta mgl64.Vec3) { t.position = t.position.Add(delta) }

// Rotate adds delta to the Euler angles component-wise. Wrapping is left to
// the caller.
func (t *Transform) Rotate(delta mgl64.Vec3) { t.rotation = t.rotation.Add(delta) }

// Heading returns the yaw angle in degrees
func (t *Transform) Heading() float64 { return t.rotation.Z() }

// Forward returns the direction the transform faces, derived from yaw and pitch
func (t *Transform) Forward() mgl64.Vec3 {
	yaw := mgl64.DegToRad(t.rotation.Z())
	pitch := mgl64.DegToRad(t.rotation.Y())
	return mgl64.Vec3{
		math.Cos(yaw) * math.Cos(pitch),
		math.Sin(yaw) * math.Cos(pitch),
		math.Sin(pitch),
	}
}

// Right returns the horizontal direction 90 degrees counter-clockwise from the heading
func (t *Transform) Right() mgl64.Vec3 {
	yaw := mgl64.DegToRad(t.rotation.Z() + 90)
	return mgl64.Vec3{math.Cos(yaw), math.Sin(yaw), 0}
}

// Up returns the world vertical axis
func (t *Transform) Up() mgl64.Vec3 {
	return AxisZ
}
