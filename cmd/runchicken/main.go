package main

import (
	"log"
	"math/rand/v2"
	"os"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/runchicken/game"
)

func main() {
	cfg, err := loadConfig(os.Args[1:], ".env")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	width, height := cfg.WindowSize()
	log.Printf("Starting runchicken with seed %d (%dx%d, debug %t)", cfg.Seed, width, height, cfg.Debug)

	session := game.NewSession(rand.New(rand.NewPCG(cfg.Seed, cfg.Seed)))
	g := NewGame(session)

	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Run Chicken")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if cfg.Debug {
		backend := ebitenbackend.NewEbitenBackend()
		backend.CreateWindow("Run Chicken", width, height)
		imgui.CurrentIO().SetIniFilename("")
		g.EnableOverlay(backend)
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Game stopped: %v", err)
	}
}
