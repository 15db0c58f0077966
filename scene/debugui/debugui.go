// Package debugui provides Dear ImGui panels for inspecting and steering a
// running scene. Panels render from a scene system so they see the state of
// the tick they belong to.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pasture/scene"
)

// Panel is one ImGui window
type Panel interface {
	Render(s *scene.Scene, frame *scene.Frame)
}

// PanelFunc adapts a plain function to Panel
type PanelFunc func(s *scene.Scene, frame *scene.Frame)

func (f PanelFunc) Render(s *scene.Scene, frame *scene.Frame) { f(s, frame) }

// InputState mirrors Dear ImGui's input capture flags for the last frame
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Captured reports whether ImGui is consuming keyboard input
func (st *InputState) Captured() bool {
	return st.WantCaptureKeyboard
}

// Selection is the entity the browser and inspector share
type Selection struct {
	Handle scene.Handle
	Kind   *scene.Kind
}

// ImguiSystem defers every panel's render function to the end of the tick
// and refreshes the input capture state.
type ImguiSystem struct {
	Scene  *scene.Scene
	Panels []Panel
	Input  InputState
}

func (i *ImguiSystem) Name() string { return "DebugUI" }

// Execute updates input state and queues all panels for rendering
func (i *ImguiSystem) Execute(frame *scene.Frame) {
	io := imgui.CurrentIO()
	i.Input.WantCaptureMouse = io.WantCaptureMouse()
	i.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, panel := range i.Panels {
		frame.Commands.Defer(func() {
			panel.Render(i.Scene, frame)
		})
	}
}
