// Package debugui provides Dear ImGui windows for inspecting a hooks.Runtime:
// mounted scopes, the hooks stored in each scope and render timings.
package debugui

import "github.com/plus3/hooklist/hooks"

// Panel groups the inspector windows and keeps the selection shared between them.
type Panel struct {
	Browser   ScopeBrowser
	Inspector HookInspector
	Stats     RenderStatsWindow
}

// NewPanel creates a panel keeping historyFrames frame times for the plot.
func NewPanel(historyFrames int) *Panel {
	return &Panel{
		Browser:   NewScopeBrowser(100),
		Inspector: NewHookInspector(),
		Stats:     NewRenderStatsWindow(historyFrames),
	}
}

// Render draws every window. It must be called between the backend's
// BeginFrame and EndFrame, and outside of Runtime.Once: the inspector edits
// hook values in place.
func (p *Panel) Render(rt *hooks.Runtime, deltaTime float32) {
	stats := rt.CollectStats()
	p.Browser.Render(stats)
	p.Inspector.Render(rt, p.Browser.Selected())
	p.Stats.Render(stats, deltaTime)
}
