package debugui

import "github.com/plus3/pasture/scene"

// Install builds the standard panel set and registers it as a system of s
func Install(s *scene.Scene) *ImguiSystem {
	sel := &Selection{}
	sys := &ImguiSystem{
		Scene: s,
		Panels: []Panel{
			NewSceneBrowser(sel, 100),
			NewInspector(sel),
			NewKindViewer(sel),
			NewRigPanel(),
			NewPerformanceStats(120),
		},
	}
	s.RegisterSystem(sys)
	return sys
}
