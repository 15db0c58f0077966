package scene

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ControlMode selects which degree-of-freedom group the secondary
// directional keys drive
type ControlMode uint8

const (
	ControlMovement ControlMode = iota
	ControlHead
	ControlTail
)

func (m ControlMode) String() string {
	switch m {
	case ControlMovement:
		return "Movement"
	case ControlHead:
		return "Head"
	case ControlTail:
		return "Tail"
	default:
		return "Unknown"
	}
}

// Subject is the player-controlled articulated creature. On top of its
// transform it carries head and tail angles, each clamped to the configured
// symmetric limits. Heading is the transform's yaw, kept in [0, 360).
type Subject struct {
	Entity

	headYaw   float64
	headPitch float64
	tailYaw   float64
	tailPitch float64
	mode      ControlMode

	cfg   SubjectConfig
	world WorldConfig
}

// NewSubject creates a subject at the origin, heading 0, head centered and
// tail at its resting pitch
func NewSubject(name string, cfg SubjectConfig, world WorldConfig) *Subject {
	return &Subject{
		Entity:    NewEntity(name, KindSubject),
		tailPitch: cfg.TailRestPitch,
		cfg:       cfg,
		world:     world,
	}
}

func (s *Subject) HeadYaw() float64   { return s.headYaw }
func (s *Subject) HeadPitch() float64 { return s.headPitch }
func (s *Subject) TailYaw() float64   { return s.tailYaw }
func (s *Subject) TailPitch() float64 { return s.tailPitch }

// Heading returns the body yaw in degrees
func (s *Subject) Heading() float64 { return s.Transform.Heading() }

// SetHeading sets the body yaw, wrapped into [0, 360)
func (s *Subject) SetHeading(deg float64) {
	r := s.Transform.Rotation()
	r[2] = wrapDegrees(deg)
	s.Transform.SetRotation(r)
}

// Config returns the tuning the subject was built with
func (s *Subject) Config() SubjectConfig { return s.cfg }

func (s *Subject) ControlMode() ControlMode { return s.mode }

// SetControlMode switches the active DOF group. Angles are left untouched.
func (s *Subject) SetControlMode(m ControlMode) { s.mode = m }

// Update reads this tick's input. Mode keys are checked tail, head, movement
// and the first edge wins. Movement keys are always live; the secondary keys
// go to the group selected by the control mode. Every handler runs in a fixed
// order, so opposing keys held together resolve as last write wins.
func (s *Subject) Update(frame *Frame) {
	in := frame.Input
	dt := frame.DeltaTime

	switch {
	case in.IsKeyJustPressed(KeyModeTail):
		s.SetControlMode(ControlTail)
	case in.IsKeyJustPressed(KeyModeHead):
		s.SetControlMode(ControlHead)
	case in.IsKeyJustPressed(KeyModeMovement):
		s.SetControlMode(ControlMovement)
	}

	if in.IsKeyPressed(KeyForward) {
		s.MoveForward(dt)
	}
	if in.IsKeyPressed(KeyBackward) {
		s.MoveBackward(dt)
	}
	if in.IsKeyPressed(KeyTurnLeft) {
		s.TurnLeft(dt)
	}
	if in.IsKeyPressed(KeyTurnRight) {
		s.TurnRight(dt)
	}

	switch s.mode {
	case ControlHead:
		if in.IsKeyPressed(KeyUp) {
			s.MoveHeadUp(dt)
		}
		if in.IsKeyPressed(KeyDown) {
			s.MoveHeadDown(dt)
		}
		if in.IsKeyPressed(KeyLeft) {
			s.TurnHeadLeft(dt)
		}
		if in.IsKeyPressed(KeyRight) {
			s.TurnHeadRight(dt)
		}
	case ControlTail:
		if in.IsKeyPressed(KeyUp) {
			s.MoveTailUp(dt)
		}
		if in.IsKeyPressed(KeyDown) {
			s.MoveTailDown(dt)
		}
		if in.IsKeyPressed(KeyLeft) {
			s.TurnTailLeft(dt)
		}
		if in.IsKeyPressed(KeyRight) {
			s.TurnTailRight(dt)
		}
	}

	if in.IsKeyPressed(KeyResetPose) {
		s.Reset()
	}
}

func (s *Subject) MoveForward(dt float64)  { s.move(s.cfg.MoveSpeed * dt) }
func (s *Subject) MoveBackward(dt float64) { s.move(-s.cfg.MoveSpeed * dt) }

// move steps along the forward vector. A step that would leave the world
// bounds is dropped.
func (s *Subject) move(distance float64) {
	next := s.Transform.Position().Add(s.Transform.Forward().Mul(distance))
	if !s.inBounds(next) {
		return
	}
	s.Transform.SetPosition(next)
}

func (s *Subject) inBounds(p mgl64.Vec3) bool {
	return p.X() >= s.world.Min && p.X() <= s.world.Max &&
		p.Y() >= s.world.Min && p.Y() <= s.world.Max
}

func (s *Subject) TurnLeft(dt float64)  { s.SetHeading(s.Heading() + s.cfg.TurnSpeed*dt) }
func (s *Subject) TurnRight(dt float64) { s.SetHeading(s.Heading() - s.cfg.TurnSpeed*dt) }

func (s *Subject) MoveHeadUp(dt float64) {
	s.headPitch = clamp(s.headPitch+s.cfg.HeadSpeed*dt, -s.cfg.HeadPitchLimit, s.cfg.HeadPitchLimit)
}

func (s *Subject) MoveHeadDown(dt float64) {
	s.headPitch = clamp(s.headPitch-s.cfg.HeadSpeed*dt, -s.cfg.HeadPitchLimit, s.cfg.HeadPitchLimit)
}

func (s *Subject) TurnHeadLeft(dt float64) {
	s.headYaw = clamp(s.headYaw+s.cfg.HeadSpeed*dt, -s.cfg.HeadYawLimit, s.cfg.HeadYawLimit)
}

func (s *Subject) TurnHeadRight(dt float64) {
	s.headYaw = clamp(s.headYaw-s.cfg.HeadSpeed*dt, -s.cfg.HeadYawLimit, s.cfg.HeadYawLimit)
}

func (s *Subject) MoveTailUp(dt float64) {
	s.tailPitch = clamp(s.tailPitch+s.cfg.TailSpeed*dt, -s.cfg.TailPitchLimit, s.cfg.TailPitchLimit)
}

func (s *Subject) MoveTailDown(dt float64) {
	s.tailPitch = clamp(s.tailPitch-s.cfg.TailSpeed*dt, -s.cfg.TailPitchLimit, s.cfg.TailPitchLimit)
}

func (s *Subject) TurnTailLeft(dt float64) {
	s.tailYaw = clamp(s.tailYaw+s.cfg.TailSpeed*dt, -s.cfg.TailYawLimit, s.cfg.TailYawLimit)
}

func (s *Subject) TurnTailRight(dt float64) {
	s.tailYaw = clamp(s.tailYaw-s.cfg.TailSpeed*dt, -s.cfg.TailYawLimit, s.cfg.TailYawLimit)
}

// ResetHead centers the head
func (s *Subject) ResetHead() {
	s.headYaw = 0
	s.headPitch = 0
}

// ResetTail centers the tail sideways and lets it hang at the resting pitch
func (s *Subject) ResetTail() {
	s.tailYaw = 0
	s.tailPitch = s.cfg.TailRestPitch
}

// Reset restores both head and tail
func (s *Subject) Reset() {
	s.ResetHead()
	s.ResetTail()
}

// EyePosition returns the first-person viewpoint. The eye offset is turned
// by the head yaw only, and head pitch lifts it by a shear term instead of a
// true rotation.
func (s *Subject) EyePosition() mgl64.Vec3 {
	o := s.cfg.EyeOffset
	yaw := mgl64.DegToRad(s.headYaw)
	pitch := mgl64.DegToRad(s.headPitch)

	offset := mgl64.Vec3{
		o.X()*math.Cos(yaw) - o.Y()*math.Sin(yaw),
		o.X()*math.Sin(yaw) + o.Y()*math.Cos(yaw),
		o.Z() + o.X()*math.Sin(pitch),
	}
	return s.Transform.Position().Add(offset)
}

// LookDirection returns the gaze direction from body heading plus head yaw
// and head pitch. Callers normalize if they need a unit vector.
func (s *Subject) LookDirection() mgl64.Vec3 {
	yaw := mgl64.DegToRad(s.Heading() + s.headYaw)
	pitch := mgl64.DegToRad(s.headPitch)
	return mgl64.Vec3{
		math.Cos(yaw) * math.Cos(pitch),
		math.Sin(yaw) * math.Cos(pitch),
		math.Sin(pitch),
	}
}

var (
	hideColor  = color.RGBA{R: 235, G: 235, B: 225, A: 255}
	patchColor = color.RGBA{R: 40, G: 35, B: 30, A: 255}
	hoofColor  = color.RGBA{R: 60, G: 50, B: 40, A: 255}
)

// Draw builds the creature from primitives in its own frame: body, four
// legs, a head on the yaw/pitch joint and a tail on its joint. Nothing is
// drawn while the camera looks out of this subject's eyes.
func (s *Subject) Draw(dc *DrawContext) {
	if cam := dc.Camera; cam != nil && cam.Mode() == FirstPerson && cam.Follows(dc.Handle) {
		return
	}
	b := dc.Backend

	b.PushFrame()
	b.Translate(mgl64.Vec3{0, 0, 1.2})
	b.Box(mgl64.Vec3{2.0, 1.0, 1.0}, hideColor)
	b.Translate(mgl64.Vec3{0.2, 0.51, 0.1})
	b.Box(mgl64.Vec3{0.6, 0.02, 0.5}, patchColor)
	b.PopFrame()

	for _, leg := range [4]mgl64.Vec3{{0.7, 0.35, 0}, {0.7, -0.35, 0}, {-0.7, 0.35, 0}, {-0.7, -0.35, 0}} {
		b.PushFrame()
		b.Translate(leg)
		b.Cylinder(0.12, 0.8, hoofColor)
		b.PopFrame()
	}

	b.PushFrame()
	b.Translate(mgl64.Vec3{1.0, 0, 1.5})
	b.Rotate(s.headYaw, AxisZ)
	b.Rotate(-s.headPitch, AxisY)
	b.Translate(mgl64.Vec3{0.3, 0, 0})
	b.Box(mgl64.Vec3{0.6, 0.5, 0.5}, hideColor)
	b.Translate(mgl64.Vec3{0.1, 0, 0.3})
	b.Cone(0.05, 0.25, patchColor)
	b.PopFrame()

	b.PushFrame()
	b.Translate(mgl64.Vec3{-1.0, 0, 1.5})
	b.Rotate(s.tailYaw, AxisZ)
	b.Rotate(s.tailPitch, AxisY)
	b.Line(mgl64.Vec3{}, mgl64.Vec3{-1.0, 0, 0}, patchColor)
	b.Translate(mgl64.Vec3{-1.0, 0, 0})
	b.Sphere(0.08, patchColor)
	b.PopFrame()
}
