package world

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"time"
)

// PhaseStats describes one phase over every step run so far: how long it
// took and what it did to the step.
type PhaseStats struct {
	Name  string
	Runs  int64
	Last  time.Duration
	Min   time.Duration
	Max   time.Duration
	Total time.Duration

	// Contacts reported by the phase.
	Contacts int64
	// Merged counts contacts the phase dropped as repeats of a pair.
	Merged int64
	// Impulses that changed a velocity.
	Impulses int64
	// Commands queued for the end of the step.
	Commands int64
	Eaten    int64
	Bands    int64
}

// Avg returns the mean duration of one run.
func (p PhaseStats) Avg() time.Duration {
	if p.Runs == 0 {
		return 0
	}
	return p.Total / time.Duration(p.Runs)
}

// Add accumulates the runs of the same phase from another world.
func (p *PhaseStats) Add(o PhaseStats) {
	if p.Runs == 0 || (o.Runs > 0 && o.Min < p.Min) {
		p.Min = o.Min
	}
	p.Runs += o.Runs
	p.Last = o.Last
	p.Max = max(p.Max, o.Max)
	p.Total += o.Total
	p.Contacts += o.Contacts
	p.Merged += o.Merged
	p.Impulses += o.Impulses
	p.Commands += o.Commands
	p.Eaten += o.Eaten
	p.Bands += o.Bands
}

// Effects lists the non-zero counters, or "-" when the phase only reads.
func (p PhaseStats) Effects() string {
	var parts []string
	for _, c := range []struct {
		n    int64
		unit string
	}{
		{p.Contacts, "contacts"},
		{p.Merged, "merged"},
		{p.Impulses, "impulses"},
		{p.Commands, "commands"},
		{p.Eaten, "eaten"},
		{p.Bands, "bands"},
	} {
		if c.n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", c.n, c.unit))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

// record books one run that took d and moved the frame from before to after.
func (p *PhaseStats) record(d time.Duration, before, after frameTally) {
	if p.Runs == 0 || d < p.Min {
		p.Min = d
	}
	p.Runs++
	p.Last = d
	p.Max = max(p.Max, d)
	p.Total += d

	if n := after.contacts - before.contacts; n > 0 {
		p.Contacts += int64(n)
	} else {
		p.Merged += int64(-n)
	}
	p.Impulses += int64(after.impulses - before.impulses)
	p.Commands += int64(max(0, after.commands-before.commands))
	p.Eaten += int64(after.eaten - before.eaten)
	p.Bands += int64(after.bands - before.bands)
}

// StepStats summarizes the steps a scheduler has run.
type StepStats struct {
	Steps  int64
	Phases []PhaseStats
}

// Scheduler runs the phases of a world step in registration order.
type Scheduler struct {
	world  *World
	phases []System
	stats  []PhaseStats
	steps  int64
}

func NewScheduler(w *World) *Scheduler {
	return &Scheduler{world: w}
}

// Register appends a phase to the step. Phases are named after their type.
func (s *Scheduler) Register(system System) {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.phases = append(s.phases, system)
	s.stats = append(s.stats, PhaseStats{Name: systemType.Name()})
}

// Once runs one step of dt seconds. Commands still queued after the last
// phase are applied before it returns.
func (s *Scheduler) Once(dt float64) {
	frame := newUpdateFrame(dt, s.world)

	for i, phase := range s.phases {
		before := frame.tally()
		start := time.Now()
		phase.Execute(frame)
		s.stats[i].record(time.Since(start), before, frame.tally())
	}

	frame.Commands.Flush(s.world)
	s.steps++
}

// Run polls the wall clock at the given interval and runs one step per
// elapsed FixedStep until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	clock := NewClock(FixedStep)
	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			steps := clock.Steps(now.Sub(lastTime))
			lastTime = now
			for range steps {
				s.Once(clock.Step().Seconds())
			}
		}
	}
}

// Stats returns a copy of the per-phase statistics.
func (s *Scheduler) Stats() StepStats {
	return StepStats{Steps: s.steps, Phases: slices.Clone(s.stats)}
}
