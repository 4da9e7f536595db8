// Package game keeps score across the rounds of a session and decides when a
// round ends.
package game

import (
	"time"

	"github.com/plus3/runchicken/geom"
	"github.com/plus3/runchicken/world"
)

// IdleTimeout ends a round when the player stops steering.
const IdleTimeout = 10 * time.Second

// Phase is the stage of the session.
type Phase uint8

const (
	// GetReady shows a fresh world; the first click starts the round.
	GetReady Phase = iota
	Playing
	// EndOfRound follows a round that beat the previous round's grain count.
	EndOfRound
	GameOver
)

func (p Phase) String() string {
	switch p {
	case GetReady:
		return "get ready"
	case Playing:
		return "playing"
	case EndOfRound:
		return "end of round"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// EndReason tells why the last round ended.
type EndReason uint8

const (
	NotEnded EndReason = iota
	Caught
	Idle
)

func (r EndReason) String() string {
	switch r {
	case NotEnded:
		return "not ended"
	case Caught:
		return "caught by the fox"
	case Idle:
		return "idle"
	default:
		return "unknown"
	}
}

// Score is the session's scoreboard.
type Score struct {
	// Eaten grain in the current round.
	Eaten int
	// LastScore is the grain count the current round has to beat to raise
	// the multiplier.
	LastScore  int
	Total      int
	LastTotal  int
	Multiplier int
}

// Session runs rounds one after another. Each round gets a new World.
type Session struct {
	rng   world.Rand
	opts  []world.Option
	world *world.World
	clock *world.Clock

	phase  Phase
	reason EndReason
	idle   time.Duration
	rounds int

	lastScore  int
	total      int
	lastTotal  int
	multiplier int
}

// NewSession creates a session waiting for the first click. The random source
// and options are used for every round's world.
func NewSession(rng world.Rand, opts ...world.Option) *Session {
	s := &Session{
		rng:        rng,
		opts:       opts,
		clock:      world.NewClock(world.FixedStep),
		multiplier: 1,
	}
	s.newRound()
	return s
}

func (s *Session) newRound() {
	s.world = world.New(s.rng, s.opts...)
	s.world.Scroll()
	s.clock.Reset()
	s.phase = GetReady
	s.reason = NotEnded
	s.idle = 0
	s.rounds++
}

func (s *Session) World() *world.World  { return s.world }
func (s *Session) Phase() Phase         { return s.phase }
func (s *Session) EndReason() EndReason { return s.reason }

// Round is the 1-based number of the current round.
func (s *Session) Round() int { return s.rounds }

// Score returns the current scoreboard.
func (s *Session) Score() Score {
	return Score{
		Eaten:      s.world.EatenGrains(),
		LastScore:  s.lastScore,
		Total:      s.total,
		LastTotal:  s.lastTotal,
		Multiplier: s.multiplier,
	}
}

// Click steers the chicken toward target. The first click of a round starts
// it. Clicks outside a round are ignored.
func (s *Session) Click(target geom.Vec2) {
	switch s.phase {
	case GetReady:
		s.phase = Playing
		s.clock.Reset()
	case Playing:
	default:
		return
	}
	s.idle = 0
	s.world.SteerChicken(target)
}

// Update advances the round by the fixed steps that fit into elapsed and
// returns how many were taken. The round ends as soon as the fox catches the
// chicken or the player has been idle for longer than IdleTimeout.
func (s *Session) Update(elapsed time.Duration) int {
	if s.phase != Playing {
		return 0
	}

	steps := s.clock.Steps(elapsed)
	for i := range steps {
		s.world.Advance(s.clock.Step().Seconds())
		s.idle += s.clock.Step()

		switch {
		case s.world.FoxCaughtChicken():
			s.end(Caught)
		case s.idle > IdleTimeout:
			s.end(Idle)
		default:
			continue
		}
		return i + 1
	}
	return steps
}

// end books the round's grain. Beating the previous round multiplies the
// grain into the total and allows another round; otherwise the grain is
// added once and the game is over.
func (s *Session) end(reason EndReason) {
	eaten := s.world.EatenGrains()
	s.reason = reason
	s.lastTotal = s.total
	if eaten > s.lastScore {
		s.total += s.multiplier * eaten
		s.phase = EndOfRound
		return
	}
	s.total += eaten
	s.phase = GameOver
}

// NextRound starts the next round after EndOfRound with a raised multiplier.
func (s *Session) NextRound() bool {
	if s.phase != EndOfRound {
		return false
	}
	s.lastScore = s.world.EatenGrains()
	s.multiplier++
	s.newRound()
	return true
}

// Restart starts over after GameOver with a cleared scoreboard.
func (s *Session) Restart() bool {
	if s.phase != GameOver {
		return false
	}
	s.lastScore = 0
	s.total = 0
	s.lastTotal = 0
	s.multiplier = 1
	s.rounds = 0
	s.newRound()
	return true
}
