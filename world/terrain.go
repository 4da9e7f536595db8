package world

import (
	"math"
	"slices"

	"github.com/plus3/runchicken/geom"
	"github.com/plus3/runchicken/physics"
)

const (
	// batchBase is the batch size of the band at x = 0. Each band further
	// right adds one tree and one grain per unit of distance.
	batchBase = 7
	// treeClearance is the minimum distance of a new tree from the fox and
	// the chicken.
	treeClearance = 0.15
	// maxPlacementTries bounds the resampling of a tree that lands too close.
	maxPlacementTries = 40
)

// extendTerrain advances the frontier past the camera one playfield width at
// a time. Each advance prunes the terrain behind the boundary and spawns a
// band of trees and grain centred on the new frontier. It returns the number
// of bands added.
func (w *World) extendTerrain() int {
	bands := 0
	for w.frontier < w.camera.X {
		w.frontier += PlayfieldWidth
		bands++

		edge := w.leadingEdge()
		w.trees = w.prune(w.trees, edge)
		w.grains = w.prune(w.grains, edge)

		if !w.terrain {
			continue
		}

		n := batchSize(w.frontier)
		for range n {
			tree := physics.NewFixed(w.newId(), w.treeSpot(), geom.V(treeSize, treeSize))
			w.trees = append(w.trees, w.track(tree))
		}
		slices.SortStableFunc(w.trees, byDescendingY)

		for range n {
			grain := physics.NewFixed(w.newId(), w.samplePoint(), geom.V(grainSize, grainSize))
			w.grains = append(w.grains, w.track(grain))
		}
		slices.SortStableFunc(w.grains, byDescendingY)

		w.spawned += 2 * n
	}
	return bands
}

// batchSize grows linearly with the distance of the frontier from the start.
func batchSize(frontier float64) int {
	return max(0, batchBase+int(math.Round(frontier)))
}

// prune removes the bodies lying entirely behind edge, preserving order.
func (w *World) prune(bodies []*physics.Body, edge float64) []*physics.Body {
	kept := bodies[:0]
	for _, b := range bodies {
		if isBehind(b, edge) {
			w.bodies.Del(b.Id())
			w.pruned++
			continue
		}
		kept = append(kept, b)
	}
	clear(bodies[len(kept):])
	return kept
}

// samplePoint draws a uniform point from the band around the frontier.
func (w *World) samplePoint() geom.Vec2 {
	x := w.rng.Float64()*PlayfieldWidth - PlayfieldWidth/2 + w.frontier
	y := w.rng.Float64()*PlayfieldHeight - PlayfieldHeight/2
	return geom.V(x, y)
}

// treeSpot samples until a point keeps clear of the fox and the chicken. When
// every try lands too close the farthest candidate is used.
func (w *World) treeSpot() geom.Vec2 {
	var best geom.Vec2
	bestDist := math.Inf(-1)
	for tries := 0; tries < maxPlacementTries; tries++ {
		p := w.samplePoint()
		dist := math.Min(geom.Distance(p, w.fox.Origin()), geom.Distance(p, w.chicken.Origin()))
		if dist >= treeClearance {
			return p
		}
		if dist > bestDist {
			best, bestDist = p, dist
		}
	}
	return best
}
