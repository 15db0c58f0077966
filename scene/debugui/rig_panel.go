package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pasture/scene"
)

// RigPanel drives the camera and the tracked subject directly
type RigPanel struct{}

func NewRigPanel() *RigPanel {
	return &RigPanel{}
}

func (rp *RigPanel) Render(s *scene.Scene, frame *scene.Frame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 380), imgui.CondOnce)
	if !imgui.BeginV("Camera & Subject", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	rp.renderCamera(s)
	imgui.Separator()
	rp.renderSubject(s)

	imgui.End()
}

func (rp *RigPanel) renderCamera(s *scene.Scene) {
	cam := s.Camera()

	imgui.Text(fmt.Sprintf("Mode: %s", cam.Mode()))
	imgui.SameLine()
	if imgui.Button("Toggle") {
		cam.ToggleMode(s.Tracked())
	}
	if cam.Frozen() {
		imgui.TextColored(imgui.NewVec4(1.0, 0.4, 0.3, 1.0), "No follow target, view frozen")
	}

	distance := float32(cam.Distance())
	horizontal := float32(cam.Horizontal())
	vertical := float32(cam.Vertical())
	changed := false
	for _, f := range []struct {
		label string
		v     *float32
	}{
		{"Distance", &distance},
		{"Horizontal", &horizontal},
		{"Vertical", &vertical},
	} {
		imgui.SetNextItemWidth(150)
		if imgui.InputFloat(f.label, f.v) {
			changed = true
		}
	}
	if changed {
		cam.SetOrbit(float64(distance), float64(horizontal), float64(vertical))
	}

	imgui.Text(fmt.Sprintf("FOV: %.1f", cam.FOV()))
	p, t := cam.Position(), cam.Target()
	imgui.Text(fmt.Sprintf("Position: %.2f, %.2f, %.2f", p.X(), p.Y(), p.Z()))
	imgui.Text(fmt.Sprintf("Target: %.2f, %.2f, %.2f", t.X(), t.Y(), t.Z()))

	if imgui.Button("Reset Camera") {
		cam.Reset(s)
	}
}

func (rp *RigPanel) renderSubject(s *scene.Scene) {
	subject, ok := s.Subject()
	if !ok {
		imgui.Text("No subject")
		return
	}
	cfg := subject.Config()

	imgui.Text(fmt.Sprintf("%s heading %.1f", subject.Name, subject.Heading()))
	for _, m := range []scene.ControlMode{scene.ControlMovement, scene.ControlHead, scene.ControlTail} {
		if m != scene.ControlMovement {
			imgui.SameLine()
		}
		label := m.String()
		if subject.ControlMode() == m {
			label = "[" + label + "]"
		}
		if imgui.Button(label) {
			subject.SetControlMode(m)
		}
	}

	angleBar("Head yaw", subject.HeadYaw(), cfg.HeadYawLimit)
	angleBar("Head pitch", subject.HeadPitch(), cfg.HeadPitchLimit)
	angleBar("Tail yaw", subject.TailYaw(), cfg.TailYawLimit)
	angleBar("Tail pitch", subject.TailPitch(), cfg.TailPitchLimit)

	if imgui.Button("Reset Head") {
		subject.ResetHead()
	}
	imgui.SameLine()
	if imgui.Button("Reset Tail") {
		subject.ResetTail()
	}
}

// angleBar shows a symmetric angle as a bar where the middle is zero
func angleBar(label string, v, limit float64) {
	progress := float32(0.5)
	if limit > 0 {
		progress = float32((v + limit) / (2 * limit))
	}
	imgui.ProgressBarV(progress, imgui.NewVec2(-1, 0), fmt.Sprintf("%s %.1f", label, v))
}
