package world

import "github.com/plus3/runchicken/physics"

// PursuitSystem points the fox at the chicken's current position.
type PursuitSystem struct{}

func (s *PursuitSystem) Execute(frame *UpdateFrame) {
	w := frame.World
	w.fox.SetTargetPoint(w.chicken.Origin())
}

// CollisionSystem tests the fixed set of body pairs. Bounce contacts are
// collected on the frame in enumeration order. A fox touching the chicken and
// the chicken touching grain never bounce; they queue commands instead.
type CollisionSystem struct{}

func (s *CollisionSystem) Execute(frame *UpdateFrame) {
	w := frame.World

	if _, ok := physics.Detect(w.fox, w.chicken); ok {
		frame.Commands.CatchChicken()
	}

	for _, tree := range w.trees {
		frame.collide(w.chicken, tree)
	}

	// trees behind the boundary are off screen and no longer block the fox
	edge := w.boundary.Origin().X
	for _, tree := range w.trees {
		if tree.Origin().X >= edge {
			frame.collide(w.fox, tree)
		}
	}

	for _, wall := range w.walls {
		frame.collide(w.chicken, wall)
		frame.collide(w.fox, wall)
	}

	frame.collide(w.chicken, w.boundary)

	for _, grain := range w.grains {
		if _, ok := physics.Detect(w.chicken, grain); ok {
			frame.Commands.EatGrain(grain.Id())
		}
	}
}

// MergeSystem drops repeated reports of the same body pair.
type MergeSystem struct{}

func (s *MergeSystem) Execute(frame *UpdateFrame) {
	frame.Contacts = physics.Merge(frame.Contacts)
}

// SteeringSystem applies thrust, heading alignment and damping.
type SteeringSystem struct{}

func (s *SteeringSystem) Execute(frame *UpdateFrame) {
	w := frame.World
	w.chicken.ApplyForces(frame.DeltaTime)
	w.fox.ApplyForces(frame.DeltaTime)
}

// ImpulseSystem resolves the merged contacts one after another, each seeing
// the velocities the previous ones left. Nothing moves until
// IntegrationSystem runs.
type ImpulseSystem struct {
	Coefficients physics.Coefficients
}

func (s *ImpulseSystem) Execute(frame *UpdateFrame) {
	frame.Impulses = physics.ResolveAll(frame.Contacts, s.Coefficients)
}

// IntegrationSystem advances each dynamic body exactly once.
type IntegrationSystem struct{}

func (s *IntegrationSystem) Execute(frame *UpdateFrame) {
	w := frame.World
	w.chicken.Advance(frame.DeltaTime)
	w.fox.Advance(frame.DeltaTime)
}

// ArrivalSystem clears the chicken's target on arrival and keeps the eyes on
// the targets. The fox never arrives; its eyes always follow the chicken,
// while the chicken's eyes only move while it is being steered.
type ArrivalSystem struct{}

func (s *ArrivalSystem) Execute(frame *UpdateFrame) {
	w := frame.World
	w.chicken.CheckTarget()

	w.fox.LookAtTarget()
	if w.chicken.TargetRadius() > 0 {
		w.chicken.LookAtTarget()
	}
}

// ConsumeSystem applies the grain and catch commands queued this step.
type ConsumeSystem struct{}

func (s *ConsumeSystem) Execute(frame *UpdateFrame) {
	frame.Eaten += frame.Commands.Flush(frame.World)
}

// ScrollSystem moves the camera and the boundary and extends the terrain once
// the camera passes the frontier.
type ScrollSystem struct{}

func (s *ScrollSystem) Execute(frame *UpdateFrame) {
	frame.Bands += frame.World.Scroll()
}
