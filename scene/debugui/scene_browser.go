package debugui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/pasture/scene"
)

type EntityInfo struct {
	Handle   scene.Handle
	Order    int
	Name     string
	Kind     scene.Kind
	Active   bool
	Position string
}

// SceneBrowser lists entities in a sortable, filterable table
type SceneBrowser struct {
	sel                *Selection
	entities           []EntityInfo
	lastVersion        uint64
	built              bool
	sortColumn         int
	sortAscending      bool
	filterText         string
	maxEntitiesPerPage int
	currentPage        int
}

func NewSceneBrowser(sel *Selection, maxEntitiesPerPage int) *SceneBrowser {
	return &SceneBrowser{
		sel:                sel,
		sortAscending:      true,
		maxEntitiesPerPage: maxEntitiesPerPage,
	}
}

func (sb *SceneBrowser) Render(s *scene.Scene, frame *scene.Frame) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 300), imgui.CondOnce)
	if !imgui.BeginV("Scene Browser", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	sb.rebuild(s)

	imgui.InputTextWithHint("##search", "Search...", &sb.filterText, imgui.InputTextFlagsNone, nil)
	imgui.SameLine()
	if imgui.Button("Clear Filter") {
		sb.filterText = ""
		sb.sel.Kind = nil
	}

	filtered := sb.filtered()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg | imgui.TableFlagsSortable | imgui.TableFlagsScrollY
	if imgui.BeginTableV("EntityTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("#")
		imgui.TableSetupColumn("Name")
		imgui.TableSetupColumn("Kind")
		imgui.TableSetupColumn("Position")
		imgui.TableHeadersRow()

		sortSpecs := imgui.TableGetSortSpecs()
		if sortSpecs.SpecsDirty() && sortSpecs.SpecsCount() > 0 {
			spec := sortSpecs.Specs()
			sb.sortColumn = int(spec.ColumnIndex())
			sb.sortAscending = spec.SortDirection() == imgui.SortDirectionAscending
			sb.sort()
			sortSpecs.SetSpecsDirty(false)
			filtered = sb.filtered()
		}

		startIdx := min(sb.currentPage*sb.maxEntitiesPerPage, len(filtered))
		endIdx := min(startIdx+sb.maxEntitiesPerPage, len(filtered))

		for _, e := range filtered[startIdx:endIdx] {
			imgui.TableNextRow()

			imgui.TableNextColumn()
			label := fmt.Sprintf("%d", e.Order)
			if !e.Active {
				label += " (off)"
			}
			if imgui.SelectableBoolV(label, sb.sel.Handle == e.Handle, imgui.SelectableFlagsSpanAllColumns, imgui.NewVec2(0, 0)) {
				sb.sel.Handle = e.Handle
			}

			imgui.TableNextColumn()
			imgui.Text(e.Name)
			imgui.TableNextColumn()
			imgui.Text(e.Kind.String())
			imgui.TableNextColumn()
			imgui.Text(e.Position)
		}

		imgui.EndTable()
	}

	if len(filtered) > sb.maxEntitiesPerPage {
		totalPages := (len(filtered) + sb.maxEntitiesPerPage - 1) / sb.maxEntitiesPerPage
		imgui.Text(fmt.Sprintf("Page %d / %d (%d entities)", sb.currentPage+1, totalPages, len(filtered)))
		imgui.SameLine()
		if imgui.Button("Prev") && sb.currentPage > 0 {
			sb.currentPage--
		}
		imgui.SameLine()
		if imgui.Button("Next") && sb.currentPage < totalPages-1 {
			sb.currentPage++
		}
	} else {
		imgui.Text(fmt.Sprintf("Total: %d entities", len(filtered)))
	}

	imgui.End()
}

// rebuild refreshes the row cache. Positions change every tick, so only the
// set of rows is cached on the storage version and the values are refreshed.
func (sb *SceneBrowser) rebuild(s *scene.Scene) {
	storage := s.Storage()
	if !sb.built || sb.lastVersion != storage.Version() {
		sb.entities = sb.entities[:0]
		i := 0
		for h := range storage.Iter() {
			sb.entities = append(sb.entities, EntityInfo{Handle: h, Order: i})
			i++
		}
		sb.lastVersion = storage.Version()
		sb.built = true
	}

	for i := range sb.entities {
		e := &sb.entities[i]
		obj := storage.Get(e.Handle)
		if obj == nil {
			continue
		}
		base := obj.Base()
		p := base.Transform.Position()
		e.Name = base.Name
		e.Kind = base.Kind
		e.Active = base.Active
		e.Position = fmt.Sprintf("%.1f, %.1f, %.1f", p.X(), p.Y(), p.Z())
	}
	sb.sort()
}

func (sb *SceneBrowser) sort() {
	sort.SliceStable(sb.entities, func(i, j int) bool {
		a, b := sb.entities[i], sb.entities[j]
		if !sb.sortAscending {
			a, b = b, a
		}
		return entityLess(a, b, sb.sortColumn)
	})
}

func entityLess(a, b EntityInfo, column int) bool {
	switch column {
	case 1:
		return a.Name < b.Name
	case 2:
		return a.Kind < b.Kind
	case 3:
		return a.Position < b.Position
	default:
		return a.Order < b.Order
	}
}

func (sb *SceneBrowser) filtered() []EntityInfo {
	if sb.filterText == "" && sb.sel.Kind == nil {
		return sb.entities
	}

	out := make([]EntityInfo, 0, len(sb.entities))
	filterLower := strings.ToLower(sb.filterText)
	for _, e := range sb.entities {
		if sb.sel.Kind != nil && e.Kind != *sb.sel.Kind {
			continue
		}
		if sb.filterText != "" &&
			!strings.Contains(strings.ToLower(e.Name), filterLower) &&
			!strings.Contains(strings.ToLower(e.Kind.String()), filterLower) {
			continue
		}
		out = append(out, e)
	}
	return out
}
