package world

import "github.com/plus3/runchicken/physics"

// System is one phase of a world step. Systems run in registration order and
// may keep state between steps.
type System interface {
	Execute(frame *UpdateFrame)
}

// UpdateFrame carries the per-step state shared by the phases of one step.
type UpdateFrame struct {
	DeltaTime float64
	Commands  *Commands
	World     *World

	// Contacts that produce a bounce this step, in enumeration order.
	Contacts []physics.Contact
	// Impulses resolved from Contacts, one per contact.
	Impulses []physics.Impulse
	// Eaten grain removed and terrain Bands added during the step.
	Eaten int
	Bands int
}

func newUpdateFrame(dt float64, w *World) *UpdateFrame {
	return &UpdateFrame{
		DeltaTime: dt,
		Commands:  newCommands(),
		World:     w,
	}
}

// collide detects a bounce contact between a and b and records it.
func (f *UpdateFrame) collide(a, b *physics.Body) {
	if c, ok := physics.Detect(a, b); ok {
		f.Contacts = append(f.Contacts, c)
	}
}

// frameTally counts what the step has produced so far.
type frameTally struct {
	contacts, impulses, commands, eaten, bands int
}

func (f *UpdateFrame) tally() frameTally {
	t := frameTally{
		contacts: len(f.Contacts),
		commands: f.Commands.Pending(),
		eaten:    f.Eaten,
		bands:    f.Bands,
	}
	for _, imp := range f.Impulses {
		if !imp.Empty() {
			t.impulses++
		}
	}
	return t
}
