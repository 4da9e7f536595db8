// Package world advances a round of the chase: the chicken steered by the
// player, the fox pursuing it, the walls and the procedurally generated trees
// and grain of the scrolling playfield.
package world

import (
	"math"
	"slices"

	"github.com/kamstrup/intmap"
	"github.com/plus3/runchicken/geom"
	"github.com/plus3/runchicken/physics"
)

const (
	PlayfieldWidth  = 2.0
	PlayfieldHeight = 1.0

	ChickenThrust = 1.0
	FoxThrust     = 0.9
	// FoxTargetRadius is never cleared: the fox keeps pursuing.
	FoxTargetRadius = 0.2
	// ClickTargetRadius is the arrival tolerance of a player steering command.
	ClickTargetRadius = 0.08

	// CameraLead keeps the chicken this far left of the screen centre.
	CameraLead = 0.1 * PlayfieldWidth

	wallLength   = 1e6
	wallHeight   = 0.1
	boundaryGap  = 0.1
	treeSize     = 0.08
	grainSize    = 0.04
	chickenSize  = 0.1
	foxSize      = 0.07
	foxStartX    = -0.4 * PlayfieldWidth
	cameraStartX = -PlayfieldWidth
)

// Rand is the random source consumed by terrain generation. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
}

// World owns every body of one round. A new round starts with a new World.
type World struct {
	chicken  *physics.Body
	fox      *physics.Body
	walls    [2]*physics.Body
	boundary *physics.Body
	trees    []*physics.Body
	grains   []*physics.Body
	bodies   *intmap.Map[physics.BodyId, *physics.Body]

	camera   geom.Vec2
	frontier float64
	terrain  bool

	eatenGrains      int
	foxCaughtChicken bool
	spawned          int
	pruned           int

	nextId    physics.BodyId
	rng       Rand
	scheduler *Scheduler
}

// Option configures a World created by New.
type Option func(*World)

// WithoutTerrain disables tree and grain generation. The camera and the
// boundary still follow the chicken.
func WithoutTerrain() Option {
	return func(w *World) { w.terrain = false }
}

// New creates the starting state of a round: chicken at the origin, fox
// behind it, walls above and below and the boundary at the left edge of the
// screen. Terrain is generated on the first step.
func New(rng Rand, opts ...Option) *World {
	w := &World{
		bodies:   intmap.New[physics.BodyId, *physics.Body](64),
		camera:   geom.V(cameraStartX, 0),
		frontier: cameraStartX,
		terrain:  true,
		rng:      rng,
	}
	for _, opt := range opts {
		opt(w)
	}

	w.chicken = w.track(physics.NewDynamic(w.newId(), geom.V(0, 0), geom.V(chickenSize, chickenSize)))
	w.chicken.SetThrust(ChickenThrust)

	w.fox = w.track(physics.NewDynamic(w.newId(), geom.V(foxStartX, 0), geom.V(foxSize, foxSize)))
	w.fox.SetThrust(FoxThrust)
	w.fox.SetTarget(w.chicken.Origin(), FoxTargetRadius)

	wallY := PlayfieldHeight/2 + wallHeight/2
	for i, y := range []float64{wallY, -wallY} {
		w.walls[i] = w.track(physics.NewFixed(w.newId(),
			geom.V(wallLength/2-PlayfieldWidth, y),
			geom.V(wallLength, wallHeight)))
	}

	w.boundary = w.track(physics.NewFixed(w.newId(),
		geom.V(-PlayfieldWidth/2-boundaryGap/2, 0),
		geom.V(boundaryGap, PlayfieldHeight+boundaryGap)))

	w.scheduler = NewScheduler(w)
	w.scheduler.Register(&PursuitSystem{})
	w.scheduler.Register(&CollisionSystem{})
	w.scheduler.Register(&MergeSystem{})
	w.scheduler.Register(&SteeringSystem{})
	w.scheduler.Register(&ImpulseSystem{Coefficients: physics.DefaultCoefficients})
	w.scheduler.Register(&IntegrationSystem{})
	w.scheduler.Register(&ArrivalSystem{})
	w.scheduler.Register(&ConsumeSystem{})
	w.scheduler.Register(&ScrollSystem{})

	return w
}

func (w *World) newId() physics.BodyId {
	id := w.nextId
	w.nextId++
	return id
}

func (w *World) track(b *physics.Body) *physics.Body {
	w.bodies.Put(b.Id(), b)
	return b
}

// Advance runs one fixed step of length dt seconds.
func (w *World) Advance(dt float64) {
	w.scheduler.Once(dt)
}

// Scheduler exposes the step pipeline, for stats and for driving the world
// from a ticker.
func (w *World) Scheduler() *Scheduler { return w.scheduler }

// Stats returns per-phase timings and effects of the step pipeline.
func (w *World) Stats() StepStats { return w.scheduler.Stats() }

func (w *World) Chicken() *physics.Body  { return w.chicken }
func (w *World) Fox() *physics.Body      { return w.fox }
func (w *World) Walls() [2]*physics.Body { return w.walls }
func (w *World) Boundary() *physics.Body { return w.boundary }
func (w *World) Camera() geom.Vec2       { return w.camera }
func (w *World) Frontier() float64       { return w.frontier }
func (w *World) EatenGrains() int        { return w.eatenGrains }
func (w *World) FoxCaughtChicken() bool  { return w.foxCaughtChicken }

// Trees returns the trees sorted by descending y. The slice must not be
// modified.
func (w *World) Trees() []*physics.Body { return w.trees }

// Grains returns the uneaten grain sorted by descending y. The slice must not
// be modified.
func (w *World) Grains() []*physics.Body { return w.grains }

// Body looks up a live body by id. Eaten and pruned bodies are gone.
func (w *World) Body(id physics.BodyId) (*physics.Body, bool) {
	return w.bodies.Get(id)
}

// SteerChicken sends the chicken toward target, as a player click does.
func (w *World) SteerChicken(target geom.Vec2) {
	w.chicken.SetTarget(target, ClickTargetRadius)
}

// PlaceTree adds a tree at origin, keeping the trees sorted.
func (w *World) PlaceTree(origin geom.Vec2) *physics.Body {
	tree := w.track(physics.NewFixed(w.newId(), origin, geom.V(treeSize, treeSize)))
	w.trees = insertSorted(w.trees, tree)
	return tree
}

// PlaceGrain adds a grain at origin, keeping the grain sorted.
func (w *World) PlaceGrain(origin geom.Vec2) *physics.Body {
	grain := w.track(physics.NewFixed(w.newId(), origin, geom.V(grainSize, grainSize)))
	w.grains = insertSorted(w.grains, grain)
	return grain
}

// byDescendingY orders bodies for back-to-front painting.
func byDescendingY(a, b *physics.Body) int {
	ay, by := a.Origin().Y, b.Origin().Y
	switch {
	case ay > by:
		return -1
	case ay < by:
		return 1
	default:
		return 0
	}
}

func insertSorted(bodies []*physics.Body, b *physics.Body) []*physics.Body {
	i, _ := slices.BinarySearchFunc(bodies, b, byDescendingY)
	// after bodies of equal height
	for i < len(bodies) && bodies[i].Origin().Y == b.Origin().Y {
		i++
	}
	return slices.Insert(bodies, i, b)
}

// leadingEdge is the x coordinate of the boundary's right face. Terrain whose
// right edge lies behind it can never become visible again.
func (w *World) leadingEdge() float64 {
	return w.boundary.Origin().X + w.boundary.HalfExtent().X
}

func isBehind(b *physics.Body, edge float64) bool {
	return b.Origin().X+b.HalfExtent().X <= edge
}

// Scroll moves the camera after the chicken, slides the boundary and extends
// the terrain past the camera. It runs at the end of every step; a viewer may
// also call it before the first step to show the opening terrain. It returns
// the number of terrain bands added.
func (w *World) Scroll() int {
	w.follow()
	return w.extendTerrain()
}

// follow moves the camera to keep up with the chicken and slides the boundary
// to the left edge of the screen. The camera never moves backward.
func (w *World) follow() {
	w.camera.X = math.Max(w.camera.X, w.chicken.Origin().X+CameraLead)
	w.boundary.SetOrigin(geom.V(w.camera.X-PlayfieldWidth/2-w.boundary.HalfExtent().X, w.boundary.Origin().Y))
}
