package scene

import (
	"errors"
	"log/slog"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrNoFollowTarget is returned by Camera.Update when the followed entity is
// unset, removed, or cannot provide a viewpoint in the current mode
var ErrNoFollowTarget = errors.New("camera has no follow target")

// CameraMode selects how the camera derives its viewpoint from the followed
// entity
type CameraMode uint8

const (
	ThirdPerson CameraMode = iota
	FirstPerson
)

func (m CameraMode) String() string {
	switch m {
	case ThirdPerson:
		return "ThirdPerson"
	case FirstPerson:
		return "FirstPerson"
	default:
		return "Unknown"
	}
}

// Resolver turns entity refs into live objects
type Resolver interface {
	Resolve(ref *EntityRef) (Object, bool)
}

// Eye is implemented by objects the camera can look out of
type Eye interface {
	EyePosition() mgl64.Vec3
	LookDirection() mgl64.Vec3
}

// Camera follows one entity either from its eyes or from a point on a
// sphere around it. The orbit is described by a distance, a horizontal angle
// around +Z and a vertical angle measured down from +Z.
type Camera struct {
	mode   CameraMode
	follow *EntityRef

	distance   float64
	horizontal float64
	vertical   float64
	fov        float64

	position mgl64.Vec3
	target   mgl64.Vec3
	up       mgl64.Vec3

	frozen bool
	cfg    CameraConfig
	logger *slog.Logger
}

// NewCamera creates a third-person camera with the configured orbit. It
// follows nothing until Follow is called.
func NewCamera(cfg CameraConfig, logger *slog.Logger) *Camera {
	if logger == nil {
		logger = slog.Default()
	}
	return &Camera{
		mode:       ThirdPerson,
		distance:   cfg.Distance,
		horizontal: wrapDegrees(cfg.Horizontal),
		vertical:   cfg.Vertical,
		fov:        cfg.FOV,
		position:   mgl64.Vec3{0, -10, 5},
		target:     cfg.TargetOffset,
		up:         AxisZ,
		cfg:        cfg,
		logger:     logger,
	}
}

func (c *Camera) Mode() CameraMode { return c.mode }

// SetMode switches mode without touching the follow reference
func (c *Camera) SetMode(m CameraMode) { c.mode = m }

// ToggleMode flips between first and third person and rebinds the follow
// reference to ref
func (c *Camera) ToggleMode(ref *EntityRef) {
	if c.mode == ThirdPerson {
		c.mode = FirstPerson
	} else {
		c.mode = ThirdPerson
	}
	c.follow = ref
}

// Follow binds the camera to ref. A nil ref detaches it.
func (c *Camera) Follow(ref *EntityRef) {
	c.follow = ref
	c.frozen = false
}

func (c *Camera) Following() *EntityRef { return c.follow }

// Follows reports whether the camera is bound to the entity behind h
func (c *Camera) Follows(h Handle) bool {
	return h != 0 && c.follow.Valid() && c.follow.Handle == h
}

// Frozen reports whether the last Update found no usable follow target
func (c *Camera) Frozen() bool { return c.frozen }

func (c *Camera) Distance() float64    { return c.distance }
func (c *Camera) Horizontal() float64  { return c.horizontal }
func (c *Camera) Vertical() float64    { return c.vertical }
func (c *Camera) FOV() float64         { return c.fov }
func (c *Camera) Position() mgl64.Vec3 { return c.position }
func (c *Camera) Target() mgl64.Vec3   { return c.target }
func (c *Camera) Up() mgl64.Vec3       { return c.up }
func (c *Camera) Config() CameraConfig { return c.cfg }

// View returns the parameters a backend needs for projection
func (c *Camera) View() View {
	return View{
		Position: c.position,
		Target:   c.target,
		Up:       c.up,
		FOV:      c.fov,
		Near:     c.cfg.Near,
		Far:      c.cfg.Far,
	}
}

// Update recomputes position and target from the followed entity. When the
// target cannot be resolved the previous values are kept, the camera is
// marked frozen and ErrNoFollowTarget is returned. The first freeze after a
// successful update is logged.
func (c *Camera) Update(r Resolver) error {
	obj, ok := r.Resolve(c.follow)
	if !ok {
		return c.freeze("follow target missing")
	}

	switch c.mode {
	case ThirdPerson:
		c.target = obj.Base().Transform.Position().Add(c.cfg.TargetOffset)
		c.position = c.target.Add(c.orbitOffset())
	case FirstPerson:
		eye, ok := obj.(Eye)
		if !ok {
			return c.freeze("follow target has no eye")
		}
		p := eye.EyePosition()
		c.position = p
		c.target = p.Add(eye.LookDirection())
	}

	if c.frozen {
		c.logger.Info("camera follow restored", "entity", obj.Base().Name, "mode", c.mode)
	}
	c.frozen = false
	return nil
}

func (c *Camera) freeze(reason string) error {
	if !c.frozen {
		c.logger.Warn("camera frozen", "reason", reason, "mode", c.mode)
	}
	c.frozen = true
	return ErrNoFollowTarget
}

func (c *Camera) orbitOffset() mgl64.Vec3 {
	h := mgl64.DegToRad(c.horizontal)
	v := mgl64.DegToRad(c.vertical)
	return mgl64.Vec3{
		c.distance * math.Sin(v) * math.Cos(h),
		c.distance * math.Sin(v) * math.Sin(h),
		c.distance * math.Cos(v),
	}
}

// Rotate moves the orbit point. Horizontal wraps, vertical clamps. No-op in
// first person.
func (c *Camera) Rotate(deltaYaw, deltaPitch float64) {
	if c.mode != ThirdPerson {
		return
	}
	c.horizontal = wrapDegrees(c.horizontal + deltaYaw)
	c.vertical = clamp(c.vertical+deltaPitch, c.cfg.MinVertical, c.cfg.MaxVertical)
}

// Zoom changes orbit distance in third person and field of view in first
// person, clamped to the configured ranges
func (c *Camera) Zoom(delta float64) {
	switch c.mode {
	case ThirdPerson:
		c.distance = clamp(c.distance+delta, c.cfg.MinDistance, c.cfg.MaxDistance)
	case FirstPerson:
		c.fov = clamp(c.fov+delta, c.cfg.MinFOV, c.cfg.MaxFOV)
	}
}

// SetOrbit places the orbit point directly, applying the same wrap and
// clamps as Rotate and Zoom
func (c *Camera) SetOrbit(distance, horizontal, vertical float64) {
	c.distance = clamp(distance, c.cfg.MinDistance, c.cfg.MaxDistance)
	c.horizontal = wrapDegrees(horizontal)
	c.vertical = clamp(vertical, c.cfg.MinVertical, c.cfg.MaxVertical)
}

// Reset puts the orbit back to its configured distance and elevation behind
// the followed entity. Without a target the configured horizontal angle is
// used.
func (c *Camera) Reset(r Resolver) {
	c.distance = c.cfg.Distance
	c.vertical = c.cfg.Vertical
	c.horizontal = wrapDegrees(c.cfg.Horizontal)

	if obj, ok := r.Resolve(c.follow); ok {
		c.horizontal = wrapDegrees(obj.Base().Transform.Heading() + 180)
	}
}
