package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/runchicken/game"
)

type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Record adds a frame time to the history.
func (ps *PerformanceStats) Record(deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

// AverageFrameTime returns the mean of the recorded frame times in
// milliseconds.
func (ps *PerformanceStats) AverageFrameTime() float32 {
	var avg float32
	for _, ft := range ps.frameHistory {
		avg += ft
	}
	return avg / float32(ps.historyFrames)
}

func (ps *PerformanceStats) Render(session *game.Session, deltaTime float32) {
	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.Record(deltaTime)

	w := session.World()
	stats := w.CollectStats()
	score := session.Score()

	imgui.Text(fmt.Sprintf("Round %d: %s", session.Round(), session.Phase()))
	imgui.Text(fmt.Sprintf("Grain: %d (last %d)  Total: %d  Multiplier: %dx",
		score.Eaten, score.LastScore, score.Total, score.Multiplier))
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Bodies: %d (next id %d)", stats.BodyCount, stats.NextBodyId))
	imgui.Text(fmt.Sprintf("Trees: %d  Grain: %d", stats.TreeCount, stats.GrainCount))
	imgui.Text(fmt.Sprintf("Spawned: %d  Pruned: %d", stats.SpawnedBodies, stats.PrunedBodies))
	imgui.Text(fmt.Sprintf("Camera: %.3f  Frontier: %.1f", stats.Camera.X, stats.Frontier))
	imgui.Text(fmt.Sprintf("Fox distance: %.3f", stats.ChickenToFox))

	avgFrameTime := ps.AverageFrameTime()
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Step Phases") {
		steps := w.Stats()
		imgui.Text(fmt.Sprintf("Steps this round: %d", steps.Steps))

		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PhaseTable", 6, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Phase")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Last")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableSetupColumn("Effects")
			imgui.TableHeadersRow()

			for _, phase := range steps.Phases {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(phase.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", phase.Runs))
				imgui.TableNextColumn()
				imgui.Text(micros(phase.Last))
				imgui.TableNextColumn()
				imgui.Text(micros(phase.Avg()))
				imgui.TableNextColumn()
				imgui.Text(micros(phase.Max))
				imgui.TableNextColumn()
				imgui.Text(phase.Effects())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}

func micros(d time.Duration) string {
	return fmt.Sprintf("%.1f us", float64(d)/float64(time.Microsecond))
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

// Elapsed returns the time since the previous call.
func (ft *FrameTimer) Elapsed() time.Duration {
	now := time.Now()
	delta := now.Sub(ft.lastFrameTime)
	ft.lastFrameTime = now
	return delta
}
