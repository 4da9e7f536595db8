//go:build !physdebug

package physics_test

import (
	"testing"

	"github.com/plus3/runchicken/geom"
	"github.com/plus3/runchicken/physics"
	"github.com/stretchr/testify/assert"
)

func TestNegativeTargetRadiusIsClamped(t *testing.T) {
	b := physics.NewDynamic(1, geom.V(0, 0), geom.V(0.1, 0.1))
	b.SetTarget(geom.V(1, 0), -0.5)

	assert.Equal(t, 0.0, b.TargetRadius())

	b.ApplyForces(0.01)
	assert.Equal(t, geom.Vec2{}, b.Velocity(), "a clamped target does not steer")
}
