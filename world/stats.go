package world

import "github.com/plus3/runchicken/geom"

// WorldStats is a snapshot of the world's bookkeeping.
type WorldStats struct {
	TreeCount        int
	GrainCount       int
	BodyCount        int
	NextBodyId       int
	SpawnedBodies    int
	PrunedBodies     int
	EatenGrains      int
	FoxCaughtChicken bool
	Camera           geom.Vec2
	Frontier         float64
	ChickenSpeed     float64
	FoxSpeed         float64
	ChickenToFox     float64
}

// CollectStats gathers counters describing the current state of the world.
func (w *World) CollectStats() WorldStats {
	return WorldStats{
		TreeCount:        len(w.trees),
		GrainCount:       len(w.grains),
		BodyCount:        w.bodies.Len(),
		NextBodyId:       int(w.nextId),
		SpawnedBodies:    w.spawned,
		PrunedBodies:     w.pruned,
		EatenGrains:      w.eatenGrains,
		FoxCaughtChicken: w.foxCaughtChicken,
		Camera:           w.camera,
		Frontier:         w.frontier,
		ChickenSpeed:     w.chicken.Velocity().Norm(),
		FoxSpeed:         w.fox.Velocity().Norm(),
		ChickenToFox:     geom.Distance(w.chicken.Origin(), w.fox.Origin()),
	}
}
