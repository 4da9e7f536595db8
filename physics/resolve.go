package physics

import (
	"math"

	"github.com/plus3/runchicken/geom"
)

// tangentEpsilon below which a contact has no sliding component.
const tangentEpsilon = 1e-9

// Coefficients control how a contact is resolved.
type Coefficients struct {
	Restitution        float64
	LateralFriction    float64
	RotationalFriction float64
}

// DefaultCoefficients are the fixed tuning values used by the world.
var DefaultCoefficients = Coefficients{
	Restitution:        Restitution,
	LateralFriction:    LateralFriction,
	RotationalFriction: RotationalFriction,
}

// Delta is an instantaneous change of a body's velocity.
type Delta struct {
	Linear  geom.Vec2
	Angular float64
}

// Impulse holds the velocity changes a resolved contact applies to its two
// bodies. Fixed bodies always receive a zero delta.
type Impulse struct {
	A, B   *Body
	DeltaA Delta
	DeltaB Delta
}

// Apply accumulates the deltas onto the bodies.
func (i Impulse) Apply() {
	i.A.ApplyImpulse(i.DeltaA.Linear, i.DeltaA.Angular)
	i.B.ApplyImpulse(i.DeltaB.Linear, i.DeltaB.Angular)
}

// Empty reports whether the impulse changes neither body.
func (i Impulse) Empty() bool {
	return i.DeltaA == Delta{} && i.DeltaB == Delta{}
}

// Resolve computes the impulse for a contact from the bodies' current
// velocities. Fixed bodies have infinite mass and dynamic bodies unit mass.
// Separating pairs produce a zero impulse even when they still overlap.
func Resolve(c Contact, k Coefficients) Impulse {
	imp := Impulse{A: c.A, B: c.B}

	invMass := c.A.InverseMass() + c.B.InverseMass()
	if invMass == 0 {
		return imp
	}

	rel := c.A.velocity.Sub(c.B.velocity)
	vn := rel.Dot(c.Normal)
	if vn >= 0 {
		return imp
	}

	j := -(1 + k.Restitution) * vn / invMass
	total := c.Normal.Mul(j)

	// Coulomb friction: cancel sliding up to mu times the normal impulse.
	tangent := rel.Sub(c.Normal.Mul(vn))
	if vt := tangent.Norm(); vt > tangentEpsilon {
		jt := math.Min(vt/invMass, k.LateralFriction*FrictionImpulseScale*j)
		total = total.Sub(tangent.Mul(jt / vt))
	}

	imp.DeltaA = deltaFor(c.A, c.Point, total, k)
	imp.DeltaB = deltaFor(c.B, c.Point, total.Mul(-1), k)
	return imp
}

func deltaFor(b *Body, point, impulse geom.Vec2, k Coefficients) Delta {
	inv := b.InverseMass()
	if inv == 0 {
		return Delta{}
	}
	r := point.Sub(b.origin)
	return Delta{
		Linear:  impulse.Mul(inv),
		Angular: r.Cross(impulse) * b.InverseInertia() / (1 + k.RotationalFriction),
	}
}
