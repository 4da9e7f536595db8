package main

import (
	"github.com/plus3/runchicken/geom"
	"github.com/plus3/runchicken/world"
)

// View maps world coordinates to screen pixels. The playfield width always
// fills the screen width; the camera is at the horizontal centre.
type View struct {
	Width, Height float64
	Camera        geom.Vec2
}

// PixelsPerUnit is the screen size of one world unit.
func (v View) PixelsPerUnit() float64 {
	return v.Width / world.PlayfieldWidth
}

func (v View) ToScreen(p geom.Vec2) (float32, float32) {
	s := v.PixelsPerUnit()
	x := s * (p.X - v.Camera.X + world.PlayfieldWidth/2)
	y := -s*(p.Y-v.Camera.Y) + v.Height/2
	return float32(x), float32(y)
}

func (v View) ToWorld(x, y int) geom.Vec2 {
	s := v.PixelsPerUnit()
	return geom.V(
		float64(x)/s-world.PlayfieldWidth/2+v.Camera.X,
		(v.Height/2-float64(y))/s+v.Camera.Y,
	)
}
