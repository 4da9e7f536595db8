package physics_test

import (
	"testing"

	"github.com/plus3/runchicken/geom"
	"github.com/plus3/runchicken/physics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chickenOnWall returns a 0.1 body sunk 0.002 into the top of a wide fixed
// wall whose upper face is at y = -0.5.
func chickenOnWall(v geom.Vec2) (*physics.Body, *physics.Body) {
	chicken := physics.NewDynamic(1, geom.V(0, -0.452), geom.V(0.1, 0.1))
	chicken.SetVelocity(v)
	wall := physics.NewFixed(2, geom.V(0, -0.55), geom.V(4, 0.1))
	return chicken, wall
}

func TestResolveWallBounce(t *testing.T) {
	chicken, wall := chickenOnWall(geom.V(0.4, -1))
	c, ok := physics.Detect(chicken, wall)
	require.True(t, ok)

	imp := physics.Resolve(c, physics.DefaultCoefficients)
	imp.Apply()

	// normal component reflected at half speed, sliding slowed by the
	// Coulomb-limited friction impulse
	assert.InDelta(t, 0.5, chicken.Velocity().Y, eps)
	assert.InDelta(t, 0.4-physics.LateralFriction*physics.FrictionImpulseScale*1.5, chicken.Velocity().X, eps)
	assert.Equal(t, physics.Delta{}, imp.DeltaB)
	assert.Equal(t, geom.Vec2{}, wall.Velocity())
}

func TestResolveFrictionStopsSlowSlide(t *testing.T) {
	chicken, wall := chickenOnWall(geom.V(0.01, -1))
	c, ok := physics.Detect(chicken, wall)
	require.True(t, ok)

	physics.Resolve(c, physics.DefaultCoefficients).Apply()

	assert.InDelta(t, 0, chicken.Velocity().X, eps, "friction cancels the slide but never reverses it")
}

func TestResolveDoesNotAddEnergy(t *testing.T) {
	elastic := physics.Coefficients{Restitution: 1}
	chicken, wall := chickenOnWall(geom.V(0.3, -0.8))
	before := chicken.Velocity().Norm()

	c, ok := physics.Detect(chicken, wall)
	require.True(t, ok)
	physics.Resolve(c, elastic).Apply()

	assertVec(t, geom.V(0.3, 0.8), chicken.Velocity())
	assert.LessOrEqual(t, chicken.Velocity().Norm(), before+eps)
	assert.Zero(t, chicken.AngularVelocity())
}

func TestResolveIgnoresSeparatingPair(t *testing.T) {
	chicken, wall := chickenOnWall(geom.V(0.2, 0.3))
	c, ok := physics.Detect(chicken, wall)
	require.True(t, ok)

	imp := physics.Resolve(c, physics.DefaultCoefficients)

	assert.Equal(t, physics.Delta{}, imp.DeltaA)
	assert.Equal(t, physics.Delta{}, imp.DeltaB)
}

func TestResolveSplitsBetweenDynamicBodies(t *testing.T) {
	a := square(1, 0, 0, 0.1)
	a.SetVelocity(geom.V(1, 0))
	b := square(2, 0.09, 0, 0.1)
	b.SetVelocity(geom.V(-1, 0))

	c, ok := physics.Detect(a, b)
	require.True(t, ok)
	physics.Resolve(c, physics.DefaultCoefficients).Apply()

	assertVec(t, geom.V(-0.5, 0), a.Velocity())
	assertVec(t, geom.V(0.5, 0), b.Velocity())
	assertVec(t, geom.Vec2{}, a.Velocity().Add(b.Velocity()))
	assert.InDelta(t, 0, a.AngularVelocity(), eps)
	assert.InDelta(t, 0, b.AngularVelocity(), eps)
}

func TestResolveOffCentreHitSpins(t *testing.T) {
	a := square(1, 0, 0, 0.1)
	a.SetVelocity(geom.V(0, -1))
	tree := physics.NewFixed(2, geom.V(0.04, -0.085), geom.V(0.08, 0.08))

	c, ok := physics.Detect(a, tree)
	require.True(t, ok)
	assertVec(t, geom.V(0, 1), c.Normal)

	physics.Resolve(c, physics.DefaultCoefficients).Apply()

	// struck from below on its right half, the body turns counter-clockwise
	assert.Greater(t, a.AngularVelocity(), 0.0)
	assert.InDelta(t, 0.5, a.Velocity().Y, eps)
}

func TestResolveThenAdvanceDoesNotDeepen(t *testing.T) {
	tests := []struct {
		name string
		k    physics.Coefficients
		pair func() (*physics.Body, *physics.Body)
	}{
		{"wall, default tuning", physics.DefaultCoefficients, func() (*physics.Body, *physics.Body) {
			return chickenOnWall(geom.V(0, -0.8))
		}},
		{"wall, inelastic", physics.Coefficients{}, func() (*physics.Body, *physics.Body) {
			return chickenOnWall(geom.V(0, -0.8))
		}},
		{"wall, elastic", physics.Coefficients{Restitution: 1}, func() (*physics.Body, *physics.Body) {
			return chickenOnWall(geom.V(0, -2))
		}},
		{"head on", physics.DefaultCoefficients, func() (*physics.Body, *physics.Body) {
			a := square(1, 0, 0, 0.1)
			a.SetVelocity(geom.V(0.7, 0))
			b := square(2, 0.095, 0, 0.1)
			b.SetVelocity(geom.V(-0.7, 0))
			return a, b
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := tt.pair()
			c, ok := physics.Detect(a, b)
			require.True(t, ok)
			require.True(t, c.Approaching())

			physics.ResolveAll([]physics.Contact{c}, tt.k)
			a.Advance(0.01)
			b.Advance(0.01)

			assert.LessOrEqual(t, physics.Penetration(a, b, c.Normal), c.Depth+eps)
		})
	}
}
