package world

import "time"

// FixedStep is the simulation timestep.
const FixedStep = 10 * time.Millisecond

// Clock converts elapsed wall-clock time into a whole number of fixed steps,
// carrying the remainder into the next call.
type Clock struct {
	step    time.Duration
	pending time.Duration
}

// NewClock creates a clock that emits steps of the given length.
func NewClock(step time.Duration) *Clock {
	return &Clock{step: step}
}

// Step returns the fixed step length.
func (c *Clock) Step() time.Duration { return c.step }

// Remainder returns the time carried over to the next call to Steps.
func (c *Clock) Remainder() time.Duration { return c.pending }

// Steps adds elapsed to the carried time and returns how many whole steps
// fit strictly inside it.
func (c *Clock) Steps(elapsed time.Duration) int {
	c.pending += elapsed
	n := 0
	for c.pending > c.step {
		c.pending -= c.step
		n++
	}
	return n
}

// Reset discards the carried time.
func (c *Clock) Reset() {
	c.pending = 0
}
