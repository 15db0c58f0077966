package scene_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/pasture/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func subjectFrame(keys *scene.KeyState, dt float64) *scene.Frame {
	return &scene.Frame{DeltaTime: dt, Input: keys, Logger: quietLogger()}
}

func TestSubjectDefaults(t *testing.T) {
	s := newSubject()

	assert.Equal(t, scene.KindSubject, s.Kind)
	assert.Equal(t, scene.ControlMovement, s.ControlMode())
	assert.Equal(t, 0.0, s.Heading())
	assert.Equal(t, 0.0, s.HeadYaw())
	assert.Equal(t, 0.0, s.HeadPitch())
	assert.Equal(t, 0.0, s.TailYaw())
	assert.Equal(t, -30.0, s.TailPitch())
}

func TestSubjectScenario(t *testing.T) {
	cfg := scene.DefaultConfig()
	cfg.Subject.MoveSpeed = 0.25
	cfg.Subject.TurnSpeed = 2.0
	s := scene.NewSubject("cow", cfg.Subject, cfg.World)

	s.MoveForward(1.0)
	assert.InDelta(t, 0.25, s.Transform.Position().X(), eps)
	assert.InDelta(t, 0.0, s.Transform.Position().Y(), eps)

	s.TurnLeft(1.0)
	assert.InDelta(t, 2.0, s.Heading(), eps)
}

func TestSubjectClamps(t *testing.T) {
	t.Run("head", func(t *testing.T) {
		s := newSubject()
		s.MoveHeadUp(10)
		s.TurnHeadLeft(10)
		assert.Equal(t, 60.0, s.HeadPitch())
		assert.Equal(t, 80.0, s.HeadYaw())

		s.MoveHeadDown(100)
		s.TurnHeadRight(100)
		assert.Equal(t, -60.0, s.HeadPitch())
		assert.Equal(t, -80.0, s.HeadYaw())
	})

	t.Run("tail", func(t *testing.T) {
		s := newSubject()
		s.MoveTailUp(10)
		s.TurnTailLeft(10)
		assert.Equal(t, 45.0, s.TailPitch())
		assert.Equal(t, 45.0, s.TailYaw())

		s.MoveTailDown(100)
		s.TurnTailRight(100)
		assert.Equal(t, -45.0, s.TailPitch())
		assert.Equal(t, -45.0, s.TailYaw())
	})
}

func TestSubjectHeadingWraps(t *testing.T) {
	s := newSubject()

	s.TurnRight(0.1)
	assert.InDelta(t, 351.0, s.Heading(), eps)

	s.TurnLeft(0.1)
	assert.InDelta(t, 0.0, s.Heading(), eps)

	s.TurnLeft(4.1)
	assert.InDelta(t, 9.0, s.Heading(), 1e-6)

	s.TurnRight(20)
	h := s.Heading()
	assert.GreaterOrEqual(t, h, 0.0)
	assert.Less(t, h, 360.0)
}

func TestSubjectWorldBounds(t *testing.T) {
	s := newSubject()
	s.Transform.SetPosition(mgl64.Vec3{99.5, 0, 0})

	s.MoveForward(1)
	assert.Equal(t, mgl64.Vec3{99.5, 0, 0}, s.Transform.Position(), "move past the edge is rejected")

	s.MoveBackward(1)
	assert.InDelta(t, 94.5, s.Transform.Position().X(), eps)
}

func TestSubjectReset(t *testing.T) {
	s := newSubject()
	s.MoveHeadUp(0.5)
	s.TurnHeadLeft(0.5)
	s.MoveTailUp(0.5)
	s.TurnTailRight(0.5)

	s.Reset()
	assert.Equal(t, 0.0, s.HeadYaw())
	assert.Equal(t, 0.0, s.HeadPitch())
	assert.Equal(t, 0.0, s.TailYaw())
	assert.Equal(t, -30.0, s.TailPitch(), "tail returns to its rest pitch, not zero")

	s.Reset()
	assert.Equal(t, -30.0, s.TailPitch())
	assert.Equal(t, 0.0, s.HeadPitch())
}

func TestSubjectControlModes(t *testing.T) {
	t.Run("movement mode ignores secondary keys", func(t *testing.T) {
		s := newSubject()
		keys := scene.NewKeyState()
		keys.Press(scene.KeyUp)
		keys.Press(scene.KeyLeft)

		s.Update(subjectFrame(keys, 1))
		assert.Equal(t, 0.0, s.HeadPitch())
		assert.Equal(t, 0.0, s.HeadYaw())
		assert.Equal(t, -30.0, s.TailPitch())
	})

	t.Run("head mode drives head only", func(t *testing.T) {
		s := newSubject()
		keys := scene.NewKeyState()
		keys.Press(scene.KeyModeHead)
		s.Update(subjectFrame(keys, 0))
		keys.Advance()
		require.Equal(t, scene.ControlHead, s.ControlMode())

		keys.Press(scene.KeyUp)
		s.Update(subjectFrame(keys, 0.5))
		assert.Equal(t, 30.0, s.HeadPitch())
		assert.Equal(t, -30.0, s.TailPitch())
	})

	t.Run("switching mode keeps angles", func(t *testing.T) {
		s := newSubject()
		s.SetControlMode(scene.ControlTail)
		s.TurnTailLeft(0.5)
		s.SetControlMode(scene.ControlHead)
		s.SetControlMode(scene.ControlMovement)
		assert.Equal(t, 30.0, s.TailYaw())
	})

	t.Run("tail key wins over head key", func(t *testing.T) {
		s := newSubject()
		keys := scene.NewKeyState()
		keys.Press(scene.KeyModeMovement)
		keys.Press(scene.KeyModeHead)
		keys.Press(scene.KeyModeTail)
		s.Update(subjectFrame(keys, 0))
		assert.Equal(t, scene.ControlTail, s.ControlMode())
	})

	t.Run("opposite keys cancel", func(t *testing.T) {
		s := newSubject()
		keys := scene.NewKeyState()
		keys.Press(scene.KeyTurnLeft)
		keys.Press(scene.KeyTurnRight)
		s.Update(subjectFrame(keys, 0.5))
		assert.InDelta(t, 0.0, s.Heading(), eps)
	})

	t.Run("reset key", func(t *testing.T) {
		s := newSubject()
		s.MoveHeadUp(1)
		keys := scene.NewKeyState()
		keys.Press(scene.KeyResetPose)
		s.Update(subjectFrame(keys, 0.1))
		assert.Equal(t, 0.0, s.HeadPitch())
	})
}

func TestSubjectEye(t *testing.T) {
	s := newSubject()
	s.Transform.SetPosition(mgl64.Vec3{1, 2, 0})

	assertVec(t, mgl64.Vec3{2.1, 2, 1.3}, s.EyePosition(), eps)
	assertVec(t, mgl64.Vec3{1, 0, 0}, s.LookDirection(), eps)

	s.TurnHeadLeft(0.5) // 30 degrees
	cos30, sin30 := math.Cos(math.Pi/6), 0.5
	assertVec(t, mgl64.Vec3{1 + 1.1*cos30, 2 + 1.1*sin30, 1.3}, s.EyePosition(), eps)
	assertVec(t, mgl64.Vec3{cos30, sin30, 0}, s.LookDirection(), eps)

	s.TurnHeadLeft(10)
	assert.Equal(t, 80.0, s.HeadYaw())

	s.ResetHead()
	s.MoveHeadUp(0.5) // 30 degrees
	assertVec(t, mgl64.Vec3{2.1, 2, 1.3 + 1.1*0.5}, s.EyePosition(), eps)
	look := s.LookDirection()
	assert.InDelta(t, 0.5, look.Z(), eps)
	assert.InDelta(t, 1.0, look.Len(), eps)
}

func TestSubjectDrawHiddenInFirstPerson(t *testing.T) {
	sc := scene.New(scene.DefaultConfig(), scene.WithLogger(quietLogger()))
	h := sc.AddEntity(newSubject())
	sc.Track(h)

	rec := &scene.Recorder{}
	sc.Render(rec)
	assert.Positive(t, rec.Primitives())

	sc.Camera().ToggleMode(sc.Tracked())
	require.Equal(t, scene.FirstPerson, sc.Camera().Mode())

	rec.Reset()
	sc.Render(rec)
	assert.Zero(t, rec.Primitives())
	assert.Equal(t, 1, rec.Pushes, "the entity frame is still scoped")
	assert.Equal(t, rec.Pushes, rec.Pops)
}

func TestSubjectMovementIgnoresControlMode(t *testing.T) {
	drive := func(mode scene.ControlMode, held []scene.Key) *scene.Subject {
		s := newSubject()
		s.Transform.SetPosition(mgl64.Vec3{1, 2, 0})
		s.SetHeading(30)
		s.SetControlMode(mode)

		keys := scene.NewKeyState()
		for range 4 {
			for _, k := range held {
				keys.Press(k)
			}
			for _, k := range []scene.Key{scene.KeyUp, scene.KeyDown, scene.KeyLeft, scene.KeyRight} {
				keys.Press(k)
			}
			s.Update(subjectFrame(keys, 0.25))
			keys.Advance()
			keys.ReleaseAll()
		}
		return s
	}

	cases := []struct {
		name string
		held []scene.Key
	}{
		{"forward", []scene.Key{scene.KeyForward}},
		{"backward", []scene.Key{scene.KeyBackward}},
		{"turn left", []scene.Key{scene.KeyTurnLeft}},
		{"turn right", []scene.Key{scene.KeyTurnRight}},
		{"forward while turning", []scene.Key{scene.KeyForward, scene.KeyTurnLeft}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			base := drive(scene.ControlMovement, tc.held)
			for _, mode := range []scene.ControlMode{scene.ControlHead, scene.ControlTail} {
				got := drive(mode, tc.held)
				assertVec(t, base.Transform.Position(), got.Transform.Position(), eps)
				assert.InDelta(t, base.Heading(), got.Heading(), eps, "heading in %s mode", mode)
			}
		})
	}

	moved := drive(scene.ControlMovement, []scene.Key{scene.KeyForward})
	assert.NotEqual(t, mgl64.Vec3{1, 2, 0}, moved.Transform.Position())
}

func TestSubjectBoundsUnderRandomInput(t *testing.T) {
	cfg := scene.DefaultConfig()
	lim := cfg.Subject
	rng := rand.New(rand.NewPCG(1, 2))

	s := newSubject()
	keys := scene.NewKeyState()
	modes := []scene.ControlMode{scene.ControlMovement, scene.ControlHead, scene.ControlTail}

	for step := range 2000 {
		if rng.IntN(10) == 0 {
			s.SetControlMode(modes[rng.IntN(len(modes))])
		}
		for k := scene.KeyForward; k <= scene.KeyResetPose; k++ {
			if rng.IntN(3) == 0 {
				keys.Press(k)
			}
		}
		s.Update(subjectFrame(keys, rng.Float64()*2))
		keys.Advance()
		keys.ReleaseAll()

		require.LessOrEqual(t, math.Abs(s.HeadYaw()), lim.HeadYawLimit, "step %d", step)
		require.LessOrEqual(t, math.Abs(s.HeadPitch()), lim.HeadPitchLimit, "step %d", step)
		require.LessOrEqual(t, math.Abs(s.TailYaw()), lim.TailYawLimit, "step %d", step)
		require.LessOrEqual(t, math.Abs(s.TailPitch()), lim.TailPitchLimit, "step %d", step)
		require.GreaterOrEqual(t, s.Heading(), 0.0, "step %d", step)
		require.Less(t, s.Heading(), 360.0, "step %d", step)

		p := s.Transform.Position()
		require.True(t, p.X() >= cfg.World.Min && p.X() <= cfg.World.Max, "step %d x=%g", step, p.X())
		require.True(t, p.Y() >= cfg.World.Min && p.Y() <= cfg.World.Max, "step %d y=%g", step, p.Y())
	}
}
