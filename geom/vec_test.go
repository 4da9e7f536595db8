package geom_test

import (
	"math"
	"testing"

	"github.com/plus3/runchicken/geom"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-12

func TestDistance(t *testing.T) {
	assert.InDelta(t, 5.0, geom.Distance(geom.V(1, 1), geom.V(4, 5)), eps)
	assert.Equal(t, 0.0, geom.Distance(geom.V(-2, 3), geom.V(-2, 3)))
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name  string
		v     geom.Vec2
		angle float64
		want  geom.Vec2
	}{
		{"quarter turn", geom.V(1, 0), math.Pi / 2, geom.V(0, 1)},
		{"half turn", geom.V(1, 2), math.Pi, geom.V(-1, -2)},
		{"negative", geom.V(0, 1), -math.Pi / 2, geom.V(1, 0)},
		{"identity", geom.V(0.3, -0.7), 0, geom.V(0.3, -0.7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := geom.Rotate(tt.v, tt.angle)
			assert.InDelta(t, tt.want.X, got.X, eps)
			assert.InDelta(t, tt.want.Y, got.Y, eps)
		})
	}
}

func TestRotatePreservesLength(t *testing.T) {
	v := geom.V(0.05, -0.035)
	for _, angle := range []float64{0.1, 1, 2.5, -4} {
		assert.InDelta(t, v.Norm(), geom.Rotate(v, angle).Norm(), eps)
	}
}

func TestHeading(t *testing.T) {
	up := geom.Heading(0)
	assert.InDelta(t, 0, up.X, eps)
	assert.InDelta(t, 1, up.Y, eps)

	left := geom.Heading(math.Pi / 2)
	assert.InDelta(t, -1, left.X, eps)
	assert.InDelta(t, 0, left.Y, eps)
}

func TestSignedAngle(t *testing.T) {
	assert.InDelta(t, math.Pi/2, geom.SignedAngle(geom.V(1, 0), geom.V(0, 3)), eps)
	assert.InDelta(t, -math.Pi/2, geom.SignedAngle(geom.V(1, 0), geom.V(0, -3)), eps)
	assert.InDelta(t, 0, geom.SignedAngle(geom.V(2, 2), geom.V(1, 1)), eps)
}

func TestBounds(t *testing.T) {
	r := geom.Bounds(geom.V(1, -1), geom.V(-1, 2), geom.V(0.5, 0))
	assert.Equal(t, geom.V(-1, -1), r.Lo())
	assert.Equal(t, geom.V(1, 2), r.Hi())

	assert.True(t, r.Intersects(geom.Bounds(geom.V(0.9, 1.9), geom.V(3, 3))))
	assert.False(t, r.Intersects(geom.Bounds(geom.V(1.1, 0), geom.V(3, 3))))
}
