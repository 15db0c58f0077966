package scene

// Key is one entry of the fixed alphabet of keys the scene reacts to. Hosts
// map physical keys onto it.
type Key uint8

const (
	KeyForward Key = iota
	KeyBackward
	KeyTurnLeft
	KeyTurnRight
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyModeMovement
	KeyModeHead
	KeyModeTail
	KeyResetPose
	KeyCameraToggle
	KeyOrbitLeft
	KeyOrbitRight
	KeyOrbitUp
	KeyOrbitDown
	KeyZoomIn
	KeyZoomOut
	KeyCameraReset
	KeyCount
)

var keyNames = [KeyCount]string{
	KeyForward:      "Forward",
	KeyBackward:     "Backward",
	KeyTurnLeft:     "TurnLeft",
	KeyTurnRight:    "TurnRight",
	KeyUp:           "Up",
	KeyDown:         "Down",
	KeyLeft:         "Left",
	KeyRight:        "Right",
	KeyModeMovement: "ModeMovement",
	KeyModeHead:     "ModeHead",
	KeyModeTail:     "ModeTail",
	KeyResetPose:    "ResetPose",
	KeyCameraToggle: "CameraToggle",
	KeyOrbitLeft:    "OrbitLeft",
	KeyOrbitRight:   "OrbitRight",
	KeyOrbitUp:      "OrbitUp",
	KeyOrbitDown:    "OrbitDown",
	KeyZoomIn:       "ZoomIn",
	KeyZoomOut:      "ZoomOut",
	KeyCameraReset:  "CameraReset",
}

func (k Key) String() string {
	if k < KeyCount {
		return keyNames[k]
	}
	return "Unknown"
}

// Input is the polled input service. Queries are instantaneous and have no
// side effects.
type Input interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
}

// NoInput reports every key as released
type NoInput struct{}

func (NoInput) IsKeyPressed(Key) bool     { return false }
func (NoInput) IsKeyJustPressed(Key) bool { return false }

// KeyState is an Input fed by press and release events. A key is "just
// pressed" from the Press that changed it from released until the next
// Advance.
type KeyState struct {
	held        [KeyCount]bool
	justPressed [KeyCount]bool
}

func NewKeyState() *KeyState {
	return &KeyState{}
}

// Press marks key as held
func (ks *KeyState) Press(key Key) {
	if key >= KeyCount {
		return
	}
	if !ks.held[key] {
		ks.justPressed[key] = true
	}
	ks.held[key] = true
}

// Release marks key as no longer held
func (ks *KeyState) Release(key Key) {
	if key >= KeyCount {
		return
	}
	ks.held[key] = false
}

// ReleaseAll releases every key
func (ks *KeyState) ReleaseAll() {
	ks.held = [KeyCount]bool{}
}

// Advance ends the current tick, clearing the just-pressed edges
func (ks *KeyState) Advance() {
	ks.justPressed = [KeyCount]bool{}
}

func (ks *KeyState) IsKeyPressed(key Key) bool {
	return key < KeyCount && ks.held[key]
}

func (ks *KeyState) IsKeyJustPressed(key Key) bool {
	return key < KeyCount && ks.justPressed[key]
}
