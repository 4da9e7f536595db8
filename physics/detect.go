package physics

import (
	"math"

	"github.com/plus3/runchicken/geom"
)

// Contact describes the overlap of two bodies. Normal is a unit vector
// pointing from B toward A: moving A by Normal*Depth separates the pair.
type Contact struct {
	A, B   *Body
	Normal geom.Vec2
	Depth  float64
	// RelativeVelocity is the velocity of A relative to B along Normal at
	// detection time. Negative values mean the bodies approach each other.
	RelativeVelocity float64
	// Point is where the impulse is applied when resolving.
	Point geom.Vec2
}

// Approaching reports whether the bodies were moving into each other when
// the contact was detected.
func (c Contact) Approaching() bool {
	return c.RelativeVelocity < 0
}

// Detect tests two oriented rectangles for overlap using the separating-axis
// theorem. The axis of least overlap becomes the contact normal. Pairs
// without a dynamic participant are never tested.
func Detect(a, b *Body) (Contact, bool) {
	if !a.IsDynamic() && !b.IsDynamic() {
		return Contact{}, false
	}
	if !a.Bounds().Intersects(b.Bounds()) {
		return Contact{}, false
	}

	ca, cb := a.Corners(), b.Corners()
	axes := [4]geom.Vec2{
		edgeNormal(ca[0], ca[1]),
		edgeNormal(ca[1], ca[2]),
		edgeNormal(cb[0], cb[1]),
		edgeNormal(cb[1], cb[2]),
	}

	depth := math.Inf(1)
	var normal geom.Vec2
	for _, axis := range axes {
		overlap := overlapAlong(ca, cb, axis)
		if overlap <= 0 {
			return Contact{}, false
		}
		if overlap < depth {
			depth = overlap
			normal = axis
		}
	}

	if a.origin.Sub(b.origin).Dot(normal) < 0 {
		normal = normal.Mul(-1)
	}

	return Contact{
		A:                a,
		B:                b,
		Normal:           normal,
		Depth:            depth,
		RelativeVelocity: a.velocity.Sub(b.velocity).Dot(normal),
		Point:            contactPoint(a, b, ca, cb),
	}, true
}

// Penetration returns how far the two bodies overlap when projected on axis.
// Non-positive values mean the bodies are separated along that axis.
func Penetration(a, b *Body, axis geom.Vec2) float64 {
	return overlapAlong(a.Corners(), b.Corners(), axis.Normalize())
}

func edgeNormal(from, to geom.Vec2) geom.Vec2 {
	return to.Sub(from).Ortho().Normalize()
}

func overlapAlong(ca, cb [4]geom.Vec2, axis geom.Vec2) float64 {
	minA, maxA := project(ca, axis)
	minB, maxB := project(cb, axis)
	return math.Min(maxA, maxB) - math.Max(minA, minB)
}

func project(corners [4]geom.Vec2, axis geom.Vec2) (lo, hi float64) {
	lo = corners[0].Dot(axis)
	hi = lo
	for _, c := range corners[1:] {
		d := c.Dot(axis)
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}

// contactPoint averages the corners of each rectangle that lie inside the
// other. Edge-on-edge crossings without contained corners fall back to the
// midpoint of the two origins.
func contactPoint(a, b *Body, ca, cb [4]geom.Vec2) geom.Vec2 {
	var sum geom.Vec2
	n := 0
	for _, c := range ca {
		if contains(cb, c) {
			sum = sum.Add(c)
			n++
		}
	}
	for _, c := range cb {
		if contains(ca, c) {
			sum = sum.Add(c)
			n++
		}
	}
	if n == 0 {
		return a.origin.Add(b.origin).Mul(0.5)
	}
	return sum.Mul(1 / float64(n))
}

// contains reports whether p lies inside or on the counter-clockwise quad.
func contains(quad [4]geom.Vec2, p geom.Vec2) bool {
	for i := range quad {
		from, to := quad[i], quad[(i+1)%len(quad)]
		if to.Sub(from).Cross(p.Sub(from)) < 0 {
			return false
		}
	}
	return true
}
