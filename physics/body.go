// Package physics implements oriented rigid bodies, separating-axis collision
// detection and impulse-based collision response.
package physics

import (
	"math"

	"github.com/plus3/runchicken/geom"
)

// Kind discriminates the two body variants.
type Kind uint8

const (
	// Dynamic bodies integrate forces and impulses and may steer toward a target.
	Dynamic Kind = iota
	// Fixed bodies never move in response to collisions.
	Fixed
)

func (k Kind) String() string {
	switch k {
	case Dynamic:
		return "dynamic"
	case Fixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// BodyId identifies a body within the world that created it.
type BodyId uint32

// Body is an oriented rectangle. Corners are kept in the order upper-right,
// upper-left, lower-left, lower-right.
type Body struct {
	id   BodyId
	kind Kind

	origin          geom.Vec2
	velocity        geom.Vec2
	orientation     float64
	angularVelocity float64
	halfExtent      geom.Vec2
	corners         [4]geom.Vec2

	// pose the corners were last computed for
	cornerOrigin      geom.Vec2
	cornerOrientation float64

	target        geom.Vec2
	targetRadius  float64
	thrust        float64
	eyesDirection geom.Vec2
}

// NewDynamic creates a movable body centred on origin with the given full
// width and height.
func NewDynamic(id BodyId, origin, size geom.Vec2) *Body {
	b := &Body{
		id:            id,
		kind:          Dynamic,
		origin:        origin,
		halfExtent:    size.Mul(0.5),
		thrust:        DefaultThrust,
		eyesDirection: geom.V(0, 1),
	}
	b.updateCorners()
	return b
}

// NewFixed creates an immovable body centred on origin with the given full
// width and height.
func NewFixed(id BodyId, origin, size geom.Vec2) *Body {
	b := &Body{
		id:         id,
		kind:       Fixed,
		origin:     origin,
		halfExtent: size.Mul(0.5),
	}
	b.updateCorners()
	return b
}

func (b *Body) Id() BodyId               { return b.id }
func (b *Body) Kind() Kind               { return b.kind }
func (b *Body) IsDynamic() bool          { return b.kind == Dynamic }
func (b *Body) Origin() geom.Vec2        { return b.origin }
func (b *Body) Velocity() geom.Vec2      { return b.velocity }
func (b *Body) Orientation() float64     { return b.orientation }
func (b *Body) AngularVelocity() float64 { return b.angularVelocity }
func (b *Body) HalfExtent() geom.Vec2    { return b.halfExtent }
func (b *Body) Target() geom.Vec2        { return b.target }
func (b *Body) TargetRadius() float64    { return b.targetRadius }
func (b *Body) Thrust() float64          { return b.thrust }
func (b *Body) EyesDirection() geom.Vec2 { return b.eyesDirection }

// Corners returns the four world-space corners.
func (b *Body) Corners() [4]geom.Vec2 {
	if !invariant(b.cornerOrigin == b.origin && b.cornerOrientation == b.orientation, "stale corners") {
		b.updateCorners()
	}
	return b.corners
}

// Bounds returns the axis-aligned rectangle enclosing the corners.
func (b *Body) Bounds() geom.Rect {
	c := b.Corners()
	return geom.Bounds(c[:]...)
}

// InverseMass is 1 for dynamic bodies and 0 for fixed ones, so two dynamic
// bodies share an impulse equally and fixed bodies absorb it entirely.
func (b *Body) InverseMass() float64 {
	if b.kind != Dynamic {
		return 0
	}
	return 1
}

// InverseInertia of a unit-mass rectangle; 0 for fixed bodies.
func (b *Body) InverseInertia() float64 {
	if b.kind != Dynamic {
		return 0
	}
	return 3 / (b.halfExtent.X*b.halfExtent.X + b.halfExtent.Y*b.halfExtent.Y)
}

// SetOrigin moves the body and recomputes its corners.
func (b *Body) SetOrigin(origin geom.Vec2) {
	b.origin = origin
	b.updateCorners()
}

// SetOrientation rotates a dynamic body and recomputes its corners. Fixed
// bodies keep the orientation they were created with.
func (b *Body) SetOrientation(orientation float64) {
	if b.kind != Dynamic {
		return
	}
	b.orientation = orientation
	b.updateCorners()
}

// SetVelocity overwrites the linear velocity of a dynamic body.
func (b *Body) SetVelocity(v geom.Vec2) {
	if b.kind != Dynamic {
		return
	}
	b.velocity = v
}

// SetThrust sets the steering force magnitude.
func (b *Body) SetThrust(thrust float64) {
	b.thrust = thrust
}

// SetTarget activates steering toward target until the body comes within
// radius of it. A radius of zero deactivates steering.
func (b *Body) SetTarget(target geom.Vec2, radius float64) {
	if !invariant(radius >= 0, "negative target radius") {
		radius = 0
	}
	b.target = target
	b.targetRadius = radius
}

// SetTargetPoint moves the target without touching the arrival radius.
func (b *Body) SetTargetPoint(target geom.Vec2) {
	b.target = target
}

// ApplyForces adds thrust toward an active target, turns the heading toward
// the direction of travel and applies lateral and rotational damping.
func (b *Body) ApplyForces(dt float64) {
	if b.kind != Dynamic {
		return
	}

	if b.targetRadius > 0 {
		dir := b.target.Sub(b.origin).Normalize()
		b.velocity = b.velocity.Add(dir.Mul(b.thrust * dt))
	}

	if b.velocity.Norm() > MinAlignmentSpeed {
		misalignment := geom.SignedAngle(geom.Heading(b.orientation), b.velocity)
		b.angularVelocity += AlignmentGain * misalignment * dt
	}

	b.velocity = b.velocity.Mul(math.Max(0, 1-LateralFriction*dt))
	b.angularVelocity *= math.Max(0, 1-RotationalFriction*dt)
}

// ApplyImpulse adds an instantaneous change of linear and angular velocity.
// Deltas accumulate until the next Advance.
func (b *Body) ApplyImpulse(linear geom.Vec2, angular float64) {
	if b.kind != Dynamic {
		return
	}
	b.velocity = b.velocity.Add(linear)
	b.angularVelocity += angular
}

// Advance integrates position and orientation over dt.
func (b *Body) Advance(dt float64) {
	if b.kind != Dynamic {
		return
	}
	b.origin = b.origin.Add(b.velocity.Mul(dt))
	b.orientation += b.angularVelocity * dt
	b.updateCorners()
}

// CheckTarget deactivates the target once the body has arrived within its
// radius.
func (b *Body) CheckTarget() {
	if !invariant(b.targetRadius >= 0, "negative target radius") {
		b.targetRadius = 0
	}
	if b.targetRadius > 0 && geom.Distance(b.origin, b.target) <= b.targetRadius {
		b.targetRadius = 0
	}
}

// LookAtTarget points the eyes from the origin toward the target.
func (b *Body) LookAtTarget() {
	b.eyesDirection = b.target.Sub(b.origin)
}

func (b *Body) updateCorners() {
	hx, hy := b.halfExtent.X, b.halfExtent.Y
	local := [4]geom.Vec2{
		{X: hx, Y: hy},
		{X: -hx, Y: hy},
		{X: -hx, Y: -hy},
		{X: hx, Y: -hy},
	}
	for i, c := range local {
		b.corners[i] = b.origin.Add(geom.Rotate(c, b.orientation))
	}
	b.cornerOrigin = b.origin
	b.cornerOrientation = b.orientation
}
