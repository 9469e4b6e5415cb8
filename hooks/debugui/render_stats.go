package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/hooklist/hooks"
)

// RenderStatsWindow plots frame times and lists per-scope render timings.
type RenderStatsWindow struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewRenderStatsWindow(historyFrames int) RenderStatsWindow {
	if historyFrames <= 0 {
		historyFrames = 1
	}
	return RenderStatsWindow{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

func (rs *RenderStatsWindow) record(deltaTime float32) {
	rs.frameHistory[rs.frameIndex] = deltaTime * 1000.0
	rs.frameIndex = (rs.frameIndex + 1) % rs.historyFrames
}

func (rs *RenderStatsWindow) average() float32 {
	var total float32
	for _, ft := range rs.frameHistory {
		total += ft
	}
	return total / float32(rs.historyFrames)
}

func (rs *RenderStatsWindow) Render(stats hooks.RuntimeStats, deltaTime float32) {
	if !imgui.BeginV("Render Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	rs.record(deltaTime)

	imgui.Text(fmt.Sprintf("Scopes: %d", stats.ScopeCount))
	imgui.Text(fmt.Sprintf("Hooks: %d", stats.TotalHooks))
	imgui.Text(fmt.Sprintf("Renders: %d", stats.TotalRenders))

	avg := rs.average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &rs.frameHistory[0], int32(len(rs.frameHistory)))

	if imgui.TreeNodeStr("Scope Details") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("ScopeStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Scope")
			imgui.TableSetupColumn("Renders")
			imgui.TableSetupColumn("Errors")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, scope := range stats.Scopes {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%s (%d)", scope.Name, scope.ID))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", scope.RenderCount))
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", scope.ErrorCount))
				imgui.TableNextColumn()
				imgui.Text(scope.AvgDuration.Round(time.Microsecond).String())
				imgui.TableNextColumn()
				imgui.Text(scope.MaxDuration.Round(time.Microsecond).String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer measures the time between successive frames.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) DeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
