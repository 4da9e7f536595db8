package main

import (
	"math/rand/v2"

	"github.com/plus3/runchicken/game"
	"github.com/plus3/runchicken/geom"
	"github.com/plus3/runchicken/world"
)

// Player clicks for the chicken: it heads for the nearest grain in front of
// it, or straight ahead when there is none. A lazy player stops clicking
// after the first click and lets the round time out.
type Player struct {
	ClickEvery int
	Lazy       float64

	rng   *rand.Rand
	steps int
	idle  bool
}

func NewPlayer(rng *rand.Rand, clickEvery int, lazy float64) *Player {
	return &Player{ClickEvery: max(1, clickEvery), Lazy: lazy, rng: rng}
}

// Act clicks when it is time to. It returns true when a click was made.
func (p *Player) Act(s *game.Session) bool {
	switch s.Phase() {
	case game.GetReady:
		p.steps = 0
		p.idle = p.rng.Float64() < p.Lazy
	case game.Playing:
		p.steps++
		if p.idle || p.steps%p.ClickEvery != 0 {
			return false
		}
	default:
		return false
	}
	s.Click(Target(s.World()))
	return true
}

// Target picks the grain closest to the chicken among those ahead of it.
func Target(w *world.World) geom.Vec2 {
	chicken := w.Chicken().Origin()
	target := geom.V(chicken.X+0.5, 0)
	best := -1.0
	for _, g := range w.Grains() {
		o := g.Origin()
		if o.X <= chicken.X {
			continue
		}
		if d := geom.Distance(chicken, o); best < 0 || d < best {
			best, target = d, o
		}
	}
	return target
}
