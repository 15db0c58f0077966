package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/plus3/pasture/scene"
)

// Inspector edits the transform and flags of the selected entity
type Inspector struct {
	sel *Selection
}

func NewInspector(sel *Selection) *Inspector {
	return &Inspector{sel: sel}
}

func (in *Inspector) Render(s *scene.Scene, frame *scene.Frame) {
	if !imgui.BeginV("Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}
	defer imgui.End()

	h := in.sel.Handle
	if h == 0 {
		imgui.Text("No entity selected")
		return
	}
	obj := s.Get(h)
	if obj == nil {
		imgui.Text(fmt.Sprintf("Entity %d no longer exists", h))
		return
	}
	e := obj.Base()

	imgui.Text(fmt.Sprintf("Handle: %d (slot %d, gen %d)", h, h.Index(), h.Generation()))
	imgui.Text(fmt.Sprintf("Kind: %s", e.Kind))
	imgui.Separator()

	imgui.Text("Name:")
	imgui.SameLine()
	imgui.SetNextItemWidth(200)
	imgui.InputTextWithHint("##name", "", &e.Name, imgui.InputTextFlagsNone, nil)
	imgui.Checkbox("Active", &e.Active)

	if v, ok := editVec3("Position", e.Transform.Position()); ok {
		e.Transform.SetPosition(v)
	}
	if v, ok := editVec3("Rotation", e.Transform.Rotation()); ok {
		setRotation(obj, v)
	}
	if v, ok := editVec3("Scale", e.Transform.Scale()); ok {
		e.Transform.SetScale(v)
	}

	if subject, ok := obj.(*scene.Subject); ok && imgui.TreeNodeStr("Articulation") {
		imgui.Text(fmt.Sprintf("Control: %s", subject.ControlMode()))
		imgui.Text(fmt.Sprintf("Heading: %.1f", subject.Heading()))
		imgui.Text(fmt.Sprintf("Head yaw/pitch: %.1f / %.1f", subject.HeadYaw(), subject.HeadPitch()))
		imgui.Text(fmt.Sprintf("Tail yaw/pitch: %.1f / %.1f", subject.TailYaw(), subject.TailPitch()))
		eye := subject.EyePosition()
		imgui.Text(fmt.Sprintf("Eye: %.2f, %.2f, %.2f", eye.X(), eye.Y(), eye.Z()))
		imgui.TreePop()
	}

	imgui.Separator()
	if imgui.Button("Follow") {
		s.Track(h)
	}
	imgui.SameLine()
	if imgui.Button("Remove") {
		frame.Commands.Remove(h)
		in.sel.Handle = 0
	}
}

// setRotation applies an edited rotation. A subject's yaw goes through
// SetHeading so it stays in [0, 360).
func setRotation(obj scene.Object, v mgl64.Vec3) {
	subject, ok := obj.(*scene.Subject)
	if !ok {
		obj.Base().Transform.SetRotation(v)
		return
	}
	subject.Transform.SetRotation(mgl64.Vec3{v.X(), v.Y(), subject.Heading()})
	subject.SetHeading(v.Z())
}

func editVec3(label string, v mgl64.Vec3) (mgl64.Vec3, bool) {
	changed := false
	imgui.Text(label)
	for i, axis := range [3]string{"x", "y", "z"} {
		if i > 0 {
			imgui.SameLine()
		}
		f := float32(v[i])
		imgui.SetNextItemWidth(90)
		if imgui.InputFloat(fmt.Sprintf("%s##%s", axis, label), &f) {
			v[i] = float64(f)
			changed = true
		}
	}
	return v, changed
}
