// Package geom provides the planar vector and rectangle primitives shared by
// the physics and world packages.
//
// Vectors are plain values. Arithmetic comes from r2.Point (Add, Sub, Mul,
// Dot, Cross, Norm, Normalize, Ortho); this package adds the few helpers the
// simulation needs on top.
package geom

import (
	"math"

	"github.com/golang/geo/r2"
)

// Vec2 is a 2D vector in world units.
type Vec2 = r2.Point

// Rect is an axis-aligned rectangle in world units.
type Rect = r2.Rect

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return a.Sub(b).Norm()
}

// Rotate rotates v counter-clockwise by angle radians.
func Rotate(v Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Heading returns the unit vector a body faces at the given orientation.
// Bodies face local +Y, so orientation 0 points up.
func Heading(orientation float64) Vec2 {
	return Rotate(Vec2{X: 0, Y: 1}, orientation)
}

// SignedAngle returns the angle in (-pi, pi] that rotates from onto to.
func SignedAngle(from, to Vec2) float64 {
	return math.Atan2(from.Cross(to), from.Dot(to))
}

// Bounds returns the smallest axis-aligned rectangle holding all points.
func Bounds(points ...Vec2) Rect {
	return r2.RectFromPoints(points...)
}
