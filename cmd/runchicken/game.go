package main

import (
	"fmt"
	"log"
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/runchicken/debugui"
	"github.com/plus3/runchicken/game"
)

// maxFrameTime limits how much simulated time one frame may catch up on,
// e.g. after the window was hidden.
const maxFrameTime = 250 * time.Millisecond

// Game implements ebiten.Game around a session.
type Game struct {
	session *game.Session
	painter *Painter
	timer   *debugui.FrameTimer

	imgui   *ebitenbackend.EbitenBackend
	overlay *debugui.Overlay

	screenW, screenH int
}

func NewGame(session *game.Session) *Game {
	return &Game{
		session: session,
		painter: &Painter{},
		timer:   debugui.NewFrameTimer(),
	}
}

// EnableOverlay draws the debug windows through backend.
func (g *Game) EnableOverlay(backend *ebitenbackend.EbitenBackend) {
	g.imgui = backend
	g.overlay = debugui.NewOverlay()
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	elapsed := min(g.timer.Elapsed(), maxFrameTime)

	if g.imgui != nil {
		g.imgui.BeginFrame()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !g.overlayWantsMouse() {
		g.click(ebiten.CursorPosition())
	}

	playing := g.session.Phase() == game.Playing
	g.session.Update(elapsed)
	if playing && g.session.Phase() != game.Playing {
		score := g.session.Score()
		log.Printf("Round %d ended (%s): %d grain, total %d, %s",
			g.session.Round(), g.session.EndReason(), score.Eaten, score.Total, g.session.Phase())
	}

	if g.imgui != nil {
		g.overlay.Render(g.session, float32(elapsed.Seconds()))
		g.imgui.EndFrame()
	}
	return nil
}

func (g *Game) overlayWantsMouse() bool {
	return g.imgui != nil && debugui.CaptureInput().WantCaptureMouse
}

// click steers while a round is on and moves to the next round or a new game
// from the summary screens.
func (g *Game) click(x, y int) {
	switch g.session.Phase() {
	case game.GetReady, game.Playing:
		view := View{Width: float64(g.screenW), Height: float64(g.screenH), Camera: g.session.World().Camera()}
		g.session.Click(view.ToWorld(x, y))
	case game.EndOfRound:
		g.session.NextRound()
		log.Printf("Starting round %d with multiplier %dx", g.session.Round(), g.session.Score().Multiplier)
	case game.GameOver:
		g.session.Restart()
		log.Println("Starting a new game")
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Paint(screen, g.session.World())
	ebitenutil.DebugPrintAt(screen, hudText(g.session), 8, 8)

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.screenW, g.screenH = outsideWidth, outsideHeight
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func hudText(s *game.Session) string {
	score := s.Score()
	text := fmt.Sprintf("Grain %d   Total %d   %dx", score.Eaten, score.Total, score.Multiplier)
	if score.Multiplier > 1 {
		text += fmt.Sprintf(" (beat %d)", score.LastScore)
	}

	switch s.Phase() {
	case game.GetReady:
		text += "\nClick to run. Keep clicking or the round ends."
	case game.EndOfRound:
		text += fmt.Sprintf("\nEnd of round: %d x %d grain. Click to play on.", score.Multiplier, score.Eaten)
	case game.GameOver:
		text += fmt.Sprintf("\nGame over (%s). Click to start again.", s.EndReason())
	}
	return text
}
