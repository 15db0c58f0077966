package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pasture/scene"
)

// KindViewer shows how many entities of each kind the scene holds. Clicking
// a row filters the scene browser to that kind.
type KindViewer struct {
	sel *Selection
}

func NewKindViewer(sel *Selection) *KindViewer {
	return &KindViewer{sel: sel}
}

func (kv *KindViewer) Render(s *scene.Scene, frame *scene.Frame) {
	if !imgui.BeginV("Kinds", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := s.Stats()
	maxCount := 0
	for _, n := range stats.KindCounts {
		maxCount = max(maxCount, n)
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("KindTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Entities")
		imgui.TableHeadersRow()

		for _, kind := range scene.Kinds() {
			count := stats.KindCounts[kind]
			imgui.TableNextRow()

			imgui.TableNextColumn()
			isSelected := kv.sel.Kind != nil && *kv.sel.Kind == kind
			if imgui.SelectableBoolV(kind.String(), isSelected, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				if isSelected {
					kv.sel.Kind = nil
				} else {
					k := kind
					kv.sel.Kind = &k
				}
			}

			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%d", count))

			if maxCount > 0 {
				barWidth := float32(count) / float32(maxCount) * 80.0
				imgui.SameLine()
				drawList := imgui.WindowDrawList()
				pos := imgui.CursorScreenPos()
				color := imgui.ColorU32Vec4(imgui.NewVec4(0.2, 0.6, 0.8, 0.6))
				drawList.AddRectFilled(pos, imgui.NewVec2(pos.X+barWidth, pos.Y+10), color)
			}
		}

		imgui.EndTable()
	}

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Active: %d / %d", stats.ActiveCount, stats.EntityCount))
	imgui.Text(fmt.Sprintf("Slots: %d (%d free)", stats.SlotCount, stats.FreeSlots))
	imgui.Text(fmt.Sprintf("Live refs: %d", stats.RefCount))

	imgui.End()
}
