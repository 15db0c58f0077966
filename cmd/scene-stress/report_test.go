package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/pasture/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration:      time.Second,
		Entities:      12,
		RenderEvery:   1,
		TotalUpdates:  60,
		RenderTime:    Stats{Samples: []time.Duration{time.Millisecond}},
		Systems:       []scene.SystemStats{{Name: "EntityUpdate", ExecutionCount: 60}},
		FinalPosition: mgl64.Vec3{1, 2, 0},
		FinalHeading:  90,
	}

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Entities:** 12")
	assert.Contains(t, out, "- EntityUpdate: 60 runs")
	assert.Contains(t, out, "(1.00, 2.00, 0.00)")
	assert.Contains(t, out, "Render Time (1 passes)")
	assert.NotContains(t, out, "GC Pause Durations")
}

func TestScriptCoversControls(t *testing.T) {
	keys := scene.NewKeyState()
	seen := map[scene.Key]bool{}
	for tick := range int64(600) {
		script(keys, tick)
		for k := scene.Key(0); k < scene.KeyCount; k++ {
			if keys.IsKeyPressed(k) {
				seen[k] = true
			}
		}
		keys.Advance()
	}

	for _, k := range []scene.Key{
		scene.KeyForward, scene.KeyTurnLeft, scene.KeyTurnRight, scene.KeyModeHead,
		scene.KeyModeTail, scene.KeyCameraToggle, scene.KeyResetPose, scene.KeyCameraReset,
	} {
		assert.True(t, seen[k], k.String())
	}
}
