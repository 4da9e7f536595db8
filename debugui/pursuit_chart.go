package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/AllenDang/cimgui-go/implot"
	"github.com/plus3/runchicken/world"
)

// PursuitChart plots how the chase develops: the distance between the
// animals and their speeds, one sample per rendered frame.
type PursuitChart struct {
	Distance     []float32
	ChickenSpeed []float32
	FoxSpeed     []float32
	Offset       int

	paused bool
}

func NewPursuitChart(historySize int) *PursuitChart {
	return &PursuitChart{
		Distance:     make([]float32, historySize),
		ChickenSpeed: make([]float32, historySize),
		FoxSpeed:     make([]float32, historySize),
	}
}

// Sample records the current state of the chase.
func (pc *PursuitChart) Sample(stats world.WorldStats) {
	if pc.paused {
		return
	}
	pc.Distance[pc.Offset] = float32(stats.ChickenToFox)
	pc.ChickenSpeed[pc.Offset] = float32(stats.ChickenSpeed)
	pc.FoxSpeed[pc.Offset] = float32(stats.FoxSpeed)
	pc.Offset = (pc.Offset + 1) % len(pc.Distance)
}

// ordered returns a ring buffer oldest sample first.
func (pc *PursuitChart) ordered(samples []float32) []float32 {
	out := make([]float32, len(samples))
	copy(out, samples[pc.Offset:])
	copy(out[len(samples)-pc.Offset:], samples[:pc.Offset])
	return out
}

func (pc *PursuitChart) Render(w *world.World) {
	pc.Sample(w.CollectStats())

	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 300), imgui.CondOnce)
	if !imgui.BeginV("Pursuit", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Checkbox("Pause", &pc.paused)
	if imgui.BeginTabBar("PursuitTabs") {
		if imgui.BeginTabItem("Distance") {
			distance := pc.ordered(pc.Distance)
			if implot.BeginPlotV("Chicken to fox", imgui.NewVec2(-1, -1), 0) {
				implot.SetupAxesV("Frame", "Distance", 0, implot.AxisFlagsAutoFit)
				implot.PlotLineFloatPtrInt("distance", &distance[0], int32(len(distance)))
				implot.EndPlot()
			}
			imgui.EndTabItem()
		}

		if imgui.BeginTabItem("Speed") {
			chicken := pc.ordered(pc.ChickenSpeed)
			fox := pc.ordered(pc.FoxSpeed)
			if implot.BeginPlotV("Speed", imgui.NewVec2(-1, -1), 0) {
				implot.SetupAxesV("Frame", "Units/s", 0, implot.AxisFlagsAutoFit)
				implot.PlotLineFloatPtrInt("chicken", &chicken[0], int32(len(chicken)))
				implot.PlotLineFloatPtrInt("fox", &fox[0], int32(len(fox)))
				implot.EndPlot()
			}
			imgui.EndTabItem()
		}
		imgui.EndTabBar()
	}
	imgui.End()
}
