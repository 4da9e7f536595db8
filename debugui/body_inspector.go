package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/runchicken/physics"
	"github.com/plus3/runchicken/world"
)

// BodyInspector shows the state of the chicken or the fox.
type BodyInspector struct {
	showFox    bool
	foxStopped bool
}

func NewBodyInspector() *BodyInspector {
	return &BodyInspector{}
}

func (bi *BodyInspector) Render(w *world.World) {
	if !imgui.BeginV("Body Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	if imgui.Button("Chicken") {
		bi.showFox = false
	}
	imgui.SameLine()
	if imgui.Button("Fox") {
		bi.showFox = true
	}
	imgui.SameLine()
	imgui.Checkbox("Stop fox", &bi.foxStopped)
	bi.applyFoxStop(w)
	imgui.Separator()

	body := w.Chicken()
	if bi.showFox {
		body = w.Fox()
	}

	for _, row := range describeBody(body) {
		imgui.Text(fmt.Sprintf("%s: %s", row[0], row[1]))
	}

	if imgui.TreeNodeStr("Corners") {
		for i, c := range body.Corners() {
			imgui.BulletText(fmt.Sprintf("%d: (%.4f, %.4f)", i, c.X, c.Y))
		}
		imgui.TreePop()
	}

	imgui.End()
}

// applyFoxStop sets the fox thrust from the checkbox. It runs every frame so
// the fox of a new round obeys it too.
func (bi *BodyInspector) applyFoxStop(w *world.World) {
	thrust := world.FoxThrust
	if bi.foxStopped {
		thrust = 0
	}
	w.Fox().SetThrust(thrust)
}

// describeBody returns label and value pairs for the inspector.
func describeBody(b *physics.Body) [][2]string {
	steering := "inactive"
	if b.TargetRadius() > 0 {
		steering = fmt.Sprintf("radius %.3f", b.TargetRadius())
	}
	return [][2]string{
		{"Id", fmt.Sprintf("%d (%s)", b.Id(), b.Kind())},
		{"Origin", fmt.Sprintf("(%.4f, %.4f)", b.Origin().X, b.Origin().Y)},
		{"Velocity", fmt.Sprintf("(%.4f, %.4f) |%.4f|", b.Velocity().X, b.Velocity().Y, b.Velocity().Norm())},
		{"Orientation", fmt.Sprintf("%.4f rad", b.Orientation())},
		{"Angular Velocity", fmt.Sprintf("%.4f rad/s", b.AngularVelocity())},
		{"Target", fmt.Sprintf("(%.4f, %.4f) %s", b.Target().X, b.Target().Y, steering)},
		{"Thrust", fmt.Sprintf("%.2f", b.Thrust())},
		{"Eyes", fmt.Sprintf("(%.4f, %.4f)", b.EyesDirection().X, b.EyesDirection().Y)},
	}
}
