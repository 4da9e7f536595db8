package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/plus3/runchicken/game"
	"github.com/plus3/runchicken/geom"
	"github.com/plus3/runchicken/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)
	assert.Equal(t, 2*time.Millisecond, s.P99)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestRoundTally(t *testing.T) {
	var tally RoundTally
	tally.Add(world.WorldStats{EatenGrains: 3, SpawnedBodies: 20, BodyCount: 15, Camera: geom.V(4, 0)}, game.Caught, 3)
	tally.Add(world.WorldStats{EatenGrains: 1, SpawnedBodies: 10, PrunedBodies: 4, BodyCount: 9, Camera: geom.V(1, 0)}, game.Idle, 4)

	assert.Equal(t, RoundTally{
		Played:    2,
		Caught:    1,
		Idle:      1,
		Eaten:     4,
		BestRound: 3,
		BestTotal: 4,
		Spawned:   30,
		Pruned:    4,
		MaxBodies: 15,
		Distance:  5,
	}, tally)
}

func TestReportAddPhases(t *testing.T) {
	r := &Report{}
	round := world.StepStats{Steps: 10, Phases: []world.PhaseStats{
		{Name: "PursuitSystem", Runs: 10, Total: 10 * time.Microsecond, Max: 2 * time.Microsecond},
		{Name: "CollisionSystem", Runs: 10, Total: 50 * time.Microsecond, Max: 9 * time.Microsecond, Contacts: 4, Commands: 1},
	}}
	r.AddPhases(round)
	r.AddPhases(round)

	require.Len(t, r.Phases, 2)
	assert.Equal(t, "PursuitSystem", r.Phases[0].Name)
	assert.Equal(t, int64(20), r.Phases[1].Runs)
	assert.Equal(t, 5*time.Microsecond, r.Phases[1].Avg())
	assert.Equal(t, 9*time.Microsecond, r.Phases[1].Max)
	assert.Equal(t, "8 contacts, 2 commands", r.Phases[1].Effects())
}

func TestReportGenerate(t *testing.T) {
	r := &Report{Duration: time.Second, Seed: 7, ClickEvery: 25, Lazy: 0.1}
	r.Rounds.Played = 4
	r.Phases = []world.PhaseStats{{Name: "ScrollSystem", Runs: 2, Total: 4 * time.Microsecond, Bands: 2}}

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "**Seed:** 7")
	assert.Contains(t, out, "**Round Limit:** none")
	assert.Contains(t, out, "**Lazy Rounds:** 10%")
	assert.Contains(t, out, "**Played:** 4")
	assert.Contains(t, out, "- ScrollSystem: 2 runs, avg 2µs, max 0s, 2 bands")
}
