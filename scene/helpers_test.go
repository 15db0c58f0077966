package scene_test

import (
	"image/color"
	"io"
	"log/slog"

	"github.com/plus3/pasture/scene"
)

var markerColor = color.RGBA{R: 255, A: 255}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSubject() *scene.Subject {
	cfg := scene.DefaultConfig()
	return scene.NewSubject("cow", cfg.Subject, cfg.World)
}

// tick presses keys for one frame of dt seconds, then releases them
func tick(s *scene.Scene, keys *scene.KeyState, dt float64, pressed ...scene.Key) {
	for _, k := range pressed {
		keys.Press(k)
	}
	s.Update(dt)
	keys.Advance()
	keys.ReleaseAll()
}
