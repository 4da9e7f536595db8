package world_test

import (
	"fmt"
	"math/rand/v2"

	"github.com/plus3/runchicken/geom"
	"github.com/plus3/runchicken/world"
)

// ExampleWorld plays a round without terrain: the chicken is steered onto a
// grain while the fox closes in.
func ExampleWorld() {
	w := world.New(rand.New(rand.NewPCG(1, 2)), world.WithoutTerrain())
	w.PlaceGrain(geom.V(0.3, 0))
	w.SteerChicken(geom.V(0.3, 0))

	steps := 0
	for w.EatenGrains() == 0 && steps < 1000 {
		w.Advance(world.FixedStep.Seconds())
		steps++
	}

	fmt.Println("eaten:", w.EatenGrains())
	fmt.Println("grain left:", len(w.Grains()))
	fmt.Println("caught:", w.FoxCaughtChicken())
	// Output:
	// eaten: 1
	// grain left: 0
	// caught: false
}
