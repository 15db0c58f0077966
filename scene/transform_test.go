package scene_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/pasture/scene"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func assertVec(t *testing.T, expected, actual mgl64.Vec3, delta float64) {
	t.Helper()
	for i := range 3 {
		assert.InDelta(t, expected[i], actual[i], delta, "component %d of %v", i, actual)
	}
}

func TestNewTransform(t *testing.T) {
	tr := scene.NewTransform()

	assert.Equal(t, mgl64.Vec3{}, tr.Position())
	assert.Equal(t, mgl64.Vec3{}, tr.Rotation())
	assert.Equal(t, mgl64.Vec3{1, 1, 1}, tr.Scale())
}

func TestTransformTranslateRotate(t *testing.T) {
	tr := scene.NewTransform()

	tr.Translate(mgl64.Vec3{1, 2, 3})
	tr.Translate(mgl64.Vec3{-0.5, 0, 1})
	assert.Equal(t, mgl64.Vec3{0.5, 2, 4}, tr.Position())

	tr.Rotate(mgl64.Vec3{10, 20, 30})
	tr.Rotate(mgl64.Vec3{0, 0, 400})
	assert.Equal(t, mgl64.Vec3{10, 20, 430}, tr.Rotation(), "rotation is not wrapped")

	tr.SetUniformScale(2)
	assert.Equal(t, mgl64.Vec3{2, 2, 2}, tr.Scale())
}

func TestTransformDirections(t *testing.T) {
	tests := []struct {
		name     string
		rotation mgl64.Vec3
		forward  mgl64.Vec3
		right    mgl64.Vec3
	}{
		{"heading 0", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}},
		{"heading 90", mgl64.Vec3{0, 0, 90}, mgl64.Vec3{0, 1, 0}, mgl64.Vec3{-1, 0, 0}},
		{"heading 180", mgl64.Vec3{0, 0, 180}, mgl64.Vec3{-1, 0, 0}, mgl64.Vec3{0, -1, 0}},
		{"pitch 90", mgl64.Vec3{0, 90, 0}, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{0, 1, 0}},
		{"roll ignored", mgl64.Vec3{45, 0, 0}, mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := scene.NewTransform()
			tr.SetRotation(tt.rotation)

			assertVec(t, tt.forward, tr.Forward(), eps)
			assertVec(t, tt.right, tr.Right(), eps)
			assert.Equal(t, scene.AxisZ, tr.Up())
		})
	}
}
