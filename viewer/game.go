package viewer

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/pasture/scene"
)

var skyColor = color.RGBA{R: 150, G: 195, B: 235, A: 255}

// Overlay is drawn over the scene each frame. Scene systems registered by
// the overlay run between BeginFrame and EndFrame.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(width, height int)
}

// Game is the ebiten.Game that ticks a scene once per Update and renders it
// as wireframes in Draw
type Game struct {
	Scene    *scene.Scene
	Canvas   *Canvas
	Overlay  Overlay
	QuitKeys []ebiten.Key
	ShowHUD  bool

	last time.Time
}

// NewGame wires a scene to a fresh canvas of the given size
func NewGame(s *scene.Scene, width, height int) *Game {
	return &Game{
		Scene:    s,
		Canvas:   NewCanvas(width, height),
		QuitKeys: []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape},
		ShowHUD:  true,
	}
}

// deltaTime returns wall time since the previous tick, or one nominal tick
// on the first call
func (g *Game) deltaTime(now time.Time) float64 {
	dt := 1.0 / float64(ebiten.TPS())
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now
	return dt
}

func (g *Game) Update() error {
	for _, k := range g.QuitKeys {
		if inpututil.IsKeyJustPressed(k) {
			return ebiten.Termination
		}
	}

	if g.Overlay != nil {
		g.Overlay.BeginFrame()
	}
	g.Scene.Update(g.deltaTime(time.Now()))
	if g.Overlay != nil {
		g.Overlay.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)

	g.Canvas.Begin()
	g.Scene.Render(g.Canvas)
	g.Canvas.Draw(screen)

	if g.ShowHUD {
		ebitenutil.DebugPrint(screen, g.hud())
	}
	if g.Overlay != nil {
		g.Overlay.Draw(screen)
	}
}

func (g *Game) hud() string {
	cam := g.Scene.Camera()
	line := fmt.Sprintf("camera %s  fps %.0f", cam.Mode(), ebiten.ActualFPS())
	if cam.Frozen() {
		line += "  (no target)"
	}
	if s, ok := g.Scene.Subject(); ok {
		line += fmt.Sprintf("\ncontrol %s  heading %.0f  head %.0f/%.0f  tail %.0f/%.0f",
			s.ControlMode(), s.Heading(), s.HeadYaw(), s.HeadPitch(), s.TailYaw(), s.TailPitch())
	}
	return line
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.Canvas.Resize(outsideWidth, outsideHeight)
	if g.Overlay != nil {
		g.Overlay.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}
