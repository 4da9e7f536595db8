package world

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/runchicken/physics"
)

// Commands buffers the consumption and termination side effects detected
// during a step. They are applied together once every body has been
// integrated, so no collection changes while it is being iterated.
type Commands struct {
	eaten  []physics.BodyId
	caught bool
}

func newCommands() *Commands {
	return &Commands{}
}

// EatGrain queues the removal of a grain and one increment of the eaten
// counter.
func (c *Commands) EatGrain(id physics.BodyId) {
	c.eaten = append(c.eaten, id)
}

// CatchChicken queues setting the fox-caught-chicken flag.
func (c *Commands) CatchChicken() {
	c.caught = true
}

// Pending returns the number of queued commands.
func (c *Commands) Pending() int {
	n := len(c.eaten)
	if c.caught {
		n++
	}
	return n
}

// Flush applies all queued commands to w, resetting the buffer state. It
// returns the number of grains removed.
func (c *Commands) Flush(w *World) int {
	removed := 0
	if len(c.eaten) > 0 {
		eaten := intmap.NewSet[physics.BodyId](len(c.eaten))
		for _, id := range c.eaten {
			if _, ok := w.bodies.Get(id); ok {
				eaten.Add(id)
			}
		}

		kept := w.grains[:0]
		for _, grain := range w.grains {
			if eaten.Has(grain.Id()) {
				w.bodies.Del(grain.Id())
				w.eatenGrains++
				removed++
				continue
			}
			kept = append(kept, grain)
		}
		clear(w.grains[len(kept):])
		w.grains = kept
	}

	if c.caught {
		w.foxCaughtChicken = true
	}

	c.eaten = c.eaten[:0]
	c.caught = false
	return removed
}
