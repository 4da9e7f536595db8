package game_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/plus3/runchicken/game"
	"github.com/plus3/runchicken/geom"
	"github.com/plus3/runchicken/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(opts ...world.Option) *game.Session {
	return game.NewSession(rand.New(rand.NewPCG(3, 4)), opts...)
}

// catch moves the fox onto the chicken and steps once.
func catch(t *testing.T, s *game.Session) {
	t.Helper()
	w := s.World()
	w.Fox().SetOrigin(w.Chicken().Origin())
	s.Update(20 * time.Millisecond)
	require.True(t, w.FoxCaughtChicken())
}

// playRound starts a round, feeds the chicken grain and ends it with a catch.
func playRound(t *testing.T, s *game.Session, grain int) {
	t.Helper()
	for i := range grain {
		s.World().PlaceGrain(geom.V(0.01*float64(i), 0))
	}
	s.Click(geom.V(0, 0))
	s.Update(20 * time.Millisecond)
	require.Equal(t, grain, s.World().EatenGrains())
	catch(t, s)
}

func TestNewSession(t *testing.T) {
	s := newSession()

	assert.Equal(t, game.GetReady, s.Phase())
	assert.Equal(t, 1, s.Round())
	assert.Equal(t, game.Score{Multiplier: 1}, s.Score())
	assert.NotEmpty(t, s.World().Trees(), "the opening terrain is visible before the first click")
	assert.Zero(t, s.Update(time.Second), "nothing moves before the first click")
}

func TestClickStartsRound(t *testing.T) {
	s := newSession(world.WithoutTerrain())
	target := geom.V(0.4, 0.2)

	s.Click(target)

	assert.Equal(t, game.Playing, s.Phase())
	assert.Equal(t, target, s.World().Chicken().Target())
	assert.Equal(t, world.ClickTargetRadius, s.World().Chicken().TargetRadius())
	assert.Equal(t, 2, s.Update(25*time.Millisecond))
	assert.Equal(t, 0, s.Update(5*time.Millisecond))
	assert.Equal(t, 1, s.Update(time.Millisecond))
}

func TestRoundEndsWhenIdle(t *testing.T) {
	s := newSession(world.WithoutTerrain())
	s.World().Fox().SetThrust(0)
	s.Click(geom.V(0.3, 0))

	assert.Equal(t, 1000, s.Update(game.IdleTimeout+5*time.Millisecond))
	assert.Equal(t, game.Playing, s.Phase(), "exactly the timeout is not yet idle")

	assert.Equal(t, 1, s.Update(10*time.Millisecond))
	assert.Equal(t, game.GameOver, s.Phase())
	assert.Equal(t, game.Idle, s.EndReason())
}

func TestClickResetsIdleTimer(t *testing.T) {
	s := newSession(world.WithoutTerrain())
	s.World().Fox().SetThrust(0)
	s.Click(geom.V(0.3, 0))

	s.Update(8 * time.Second)
	s.Click(geom.V(0.5, 0))
	s.Update(8 * time.Second)

	assert.Equal(t, game.Playing, s.Phase())
}

func TestRoundEndsWhenCaught(t *testing.T) {
	s := newSession(world.WithoutTerrain())
	s.Click(geom.V(0, 0))

	steps := s.Update(5 * time.Second)

	assert.Less(t, steps, 499, "stepping stops at the catch")
	assert.Equal(t, game.GameOver, s.Phase())
	assert.Equal(t, game.Caught, s.EndReason())
	assert.Zero(t, s.Update(time.Second))
}

func TestScoring(t *testing.T) {
	s := newSession(world.WithoutTerrain())

	playRound(t, s, 1)
	assert.Equal(t, game.EndOfRound, s.Phase())
	assert.Equal(t, game.Score{Eaten: 1, LastScore: 0, Total: 1, LastTotal: 0, Multiplier: 1}, s.Score())

	require.True(t, s.NextRound())
	assert.Equal(t, game.GetReady, s.Phase())
	assert.Equal(t, 2, s.Round())
	assert.Equal(t, game.Score{Eaten: 0, LastScore: 1, Total: 1, LastTotal: 0, Multiplier: 2}, s.Score())

	playRound(t, s, 2)
	assert.Equal(t, game.EndOfRound, s.Phase())
	assert.Equal(t, 5, s.Score().Total, "beating the last round multiplies the grain")
	assert.Equal(t, 1, s.Score().LastTotal)

	require.True(t, s.NextRound())
	assert.Equal(t, 3, s.Score().Multiplier)

	playRound(t, s, 2)
	assert.Equal(t, game.GameOver, s.Phase(), "a tie does not beat the last round")
	assert.Equal(t, 7, s.Score().Total)
	assert.Equal(t, 5, s.Score().LastTotal)

	require.True(t, s.Restart())
	assert.Equal(t, 1, s.Round())
	assert.Equal(t, game.Score{Multiplier: 1}, s.Score())
}

func TestOutOfPhaseActionsAreIgnored(t *testing.T) {
	s := newSession(world.WithoutTerrain())
	assert.False(t, s.NextRound())
	assert.False(t, s.Restart())

	s.Click(geom.V(0, 0))
	catch(t, s)
	require.Equal(t, game.GameOver, s.Phase())

	before := s.World().Chicken().Target()
	s.Click(geom.V(0.7, 0.1))
	assert.Equal(t, before, s.World().Chicken().Target())
	assert.False(t, s.NextRound())
}
