package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/pasture/scene"
)

// KeyMap binds each scene key to the physical keys that trigger it
type KeyMap map[scene.Key][]ebiten.Key

// DefaultKeyMap returns the stock layout: WASD to walk, IJKL for head or
// tail, M/H/T for control modes, R to reset the pose, V to switch camera and
// the number row or keypad for the orbit
func DefaultKeyMap() KeyMap {
	return KeyMap{
		scene.KeyForward:      {ebiten.KeyW},
		scene.KeyBackward:     {ebiten.KeyS},
		scene.KeyTurnLeft:     {ebiten.KeyA},
		scene.KeyTurnRight:    {ebiten.KeyD},
		scene.KeyUp:           {ebiten.KeyI},
		scene.KeyDown:         {ebiten.KeyK},
		scene.KeyLeft:         {ebiten.KeyJ},
		scene.KeyRight:        {ebiten.KeyL},
		scene.KeyModeMovement: {ebiten.KeyM},
		scene.KeyModeHead:     {ebiten.KeyH},
		scene.KeyModeTail:     {ebiten.KeyT},
		scene.KeyResetPose:    {ebiten.KeyR},
		scene.KeyCameraToggle: {ebiten.KeyV},
		scene.KeyOrbitLeft:    {ebiten.KeyDigit4, ebiten.KeyNumpad4},
		scene.KeyOrbitRight:   {ebiten.KeyDigit6, ebiten.KeyNumpad6},
		scene.KeyOrbitUp:      {ebiten.KeyDigit8, ebiten.KeyNumpad8},
		scene.KeyOrbitDown:    {ebiten.KeyDigit2, ebiten.KeyNumpad2},
		scene.KeyZoomIn:       {ebiten.KeyDigit1, ebiten.KeyNumpad1},
		scene.KeyZoomOut:      {ebiten.KeyDigit7, ebiten.KeyNumpad7},
		scene.KeyCameraReset:  {ebiten.KeyDigit5, ebiten.KeyNumpad5},
	}
}

// EbitenInput polls Ebiten's keyboard state through a KeyMap. When Captured
// is set and returns true every key reads as released, so typing into an
// overlay does not drive the scene.
type EbitenInput struct {
	Keys     KeyMap
	Captured func() bool
}

// NewEbitenInput creates an input with the default key map
func NewEbitenInput() *EbitenInput {
	return &EbitenInput{Keys: DefaultKeyMap()}
}

func (in *EbitenInput) blocked() bool {
	return in.Captured != nil && in.Captured()
}

func (in *EbitenInput) IsKeyPressed(key scene.Key) bool {
	if in.blocked() {
		return false
	}
	for _, k := range in.Keys[key] {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func (in *EbitenInput) IsKeyJustPressed(key scene.Key) bool {
	if in.blocked() {
		return false
	}
	for _, k := range in.Keys[key] {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}
