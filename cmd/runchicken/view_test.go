package main

import (
	"testing"

	"github.com/plus3/runchicken/geom"
	"github.com/stretchr/testify/assert"
)

func TestViewToScreen(t *testing.T) {
	view := View{Width: 1000, Height: 500, Camera: geom.V(0.2, 0)}

	tests := []struct {
		name string
		p    geom.Vec2
		x, y float32
	}{
		{"camera is the screen centre", geom.V(0.2, 0), 500, 250},
		{"left edge", geom.V(-0.8, 0), 0, 250},
		{"right edge", geom.V(1.2, 0), 1000, 250},
		{"top", geom.V(0.2, 0.5), 500, 0},
		{"bottom", geom.V(0.2, -0.5), 500, 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := view.ToScreen(tt.p)
			assert.InDelta(t, tt.x, x, 1e-3)
			assert.InDelta(t, tt.y, y, 1e-3)
		})
	}
}

func TestViewToWorld(t *testing.T) {
	view := View{Width: 800, Height: 600, Camera: geom.V(3, 0)}

	p := view.ToWorld(400, 300)
	assert.InDelta(t, 3, p.X, 1e-9)
	assert.InDelta(t, 0, p.Y, 1e-9)

	p = view.ToWorld(0, 0)
	assert.InDelta(t, 2, p.X, 1e-9)
	assert.InDelta(t, 0.75, p.Y, 1e-9)

	x, y := view.ToScreen(view.ToWorld(123, 456))
	assert.InDelta(t, 123, x, 1e-3)
	assert.InDelta(t, 456, y, 1e-3)
}
