// Package debugui draws Dear ImGui debug windows on top of a running session:
// step timings, world counters, the moving bodies, the terrain and the chase.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/runchicken/game"
)

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Clicks captured by a window must not steer the chicken.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// CaptureInput reads the input capture state of the current ImGui frame.
func CaptureInput() InputState {
	return InputState{
		WantCaptureMouse:    imgui.CurrentIO().WantCaptureMouse(),
		WantCaptureKeyboard: imgui.CurrentIO().WantCaptureKeyboard(),
	}
}

// Overlay groups the debug windows.
type Overlay struct {
	Performance *PerformanceStats
	Bodies      *BodyInspector
	Terrain     *TerrainBrowser
	Pursuit     *PursuitChart
}

func NewOverlay() *Overlay {
	return &Overlay{
		Performance: NewPerformanceStats(120),
		Bodies:      NewBodyInspector(),
		Terrain:     NewTerrainBrowser(50),
		Pursuit:     NewPursuitChart(300),
	}
}

// Render draws every window. It must be called between the backend's
// BeginFrame and EndFrame.
func (o *Overlay) Render(session *game.Session, deltaTime float32) {
	o.Performance.Render(session, deltaTime)
	o.Bodies.Render(session.World())
	o.Terrain.Render(session.World())
	o.Pursuit.Render(session.World())
}
