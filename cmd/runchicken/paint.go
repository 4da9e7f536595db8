package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/runchicken/geom"
	"github.com/plus3/runchicken/physics"
	"github.com/plus3/runchicken/world"
)

type spriteKind uint8

const (
	spriteTree spriteKind = iota
	spriteGrain
	spriteChicken
	spriteFox
)

type sprite struct {
	body *physics.Body
	kind spriteKind
}

var (
	backgroundColor = color.RGBA{196, 229, 210, 255}
	wallColor       = color.RGBA{0, 140, 61, 255}
	treeColor       = color.RGBA{0, 182, 79, 255}
	grainColor      = color.RGBA{255, 197, 0, 255}
	chickenColor    = color.RGBA{252, 249, 222, 255}
	foxColor        = color.RGBA{255, 127, 0, 255}
	eyeColor        = color.RGBA{255, 255, 255, 255}
	pupilColor      = color.RGBA{40, 30, 20, 255}
	targetColor     = color.RGBA{95, 72, 8, 160}
)

// paintOrder merges the terrain and the two animals back to front, highest y
// first. Trees and grain are already sorted, so this is a merge.
func paintOrder(w *world.World) []sprite {
	queues := [3][]sprite{
		sprites(w.Trees(), spriteTree),
		sprites(w.Grains(), spriteGrain),
	}
	chicken, fox := sprite{w.Chicken(), spriteChicken}, sprite{w.Fox(), spriteFox}
	if fox.body.Origin().Y > chicken.body.Origin().Y {
		queues[2] = []sprite{fox, chicken}
	} else {
		queues[2] = []sprite{chicken, fox}
	}

	out := make([]sprite, 0, len(queues[0])+len(queues[1])+2)
	for {
		pick := -1
		for q := range queues {
			if len(queues[q]) == 0 {
				continue
			}
			if pick < 0 || queues[q][0].body.Origin().Y > queues[pick][0].body.Origin().Y {
				pick = q
			}
		}
		if pick < 0 {
			return out
		}
		out = append(out, queues[pick][0])
		queues[pick] = queues[pick][1:]
	}
}

func sprites(bodies []*physics.Body, kind spriteKind) []sprite {
	out := make([]sprite, len(bodies))
	for i, b := range bodies {
		out[i] = sprite{b, kind}
	}
	return out
}

// Painter draws a world onto an ebiten image.
type Painter struct {
	whiteImage    *ebiten.Image
	whiteSubImage *ebiten.Image
	vertices      []ebiten.Vertex
	indices       []uint16
}

func (p *Painter) Paint(screen *ebiten.Image, w *world.World) {
	view := View{
		Width:  float64(screen.Bounds().Dx()),
		Height: float64(screen.Bounds().Dy()),
		Camera: w.Camera(),
	}

	screen.Fill(backgroundColor)

	for _, wall := range w.Walls() {
		p.drawWall(screen, view, wall)
	}

	chicken := w.Chicken()
	if chicken.TargetRadius() > 0 {
		x, y := view.ToScreen(chicken.Target())
		r := float32(chicken.TargetRadius() * view.PixelsPerUnit())
		vector.StrokeCircle(screen, x, y, r, 2, targetColor, true)
	}

	for _, s := range paintOrder(w) {
		switch s.kind {
		case spriteTree:
			p.drawBody(screen, view, s.body, treeColor)
		case spriteGrain:
			p.drawBody(screen, view, s.body, grainColor)
		case spriteChicken:
			p.drawBody(screen, view, s.body, chickenColor)
			p.drawEyes(screen, view, s.body)
		case spriteFox:
			p.drawBody(screen, view, s.body, foxColor)
			p.drawEyes(screen, view, s.body)
		}
	}
}

// drawWall fills the visible part of a wall. Walls are far wider than the
// screen, so only their vertical extent is projected.
func (p *Painter) drawWall(screen *ebiten.Image, view View, wall *physics.Body) {
	bounds := wall.Bounds()
	_, top := view.ToScreen(geom.V(0, bounds.Hi().Y))
	_, bottom := view.ToScreen(geom.V(0, bounds.Lo().Y))
	vector.DrawFilledRect(screen, 0, top, float32(view.Width), bottom-top, wallColor, false)
}

func (p *Painter) drawBody(screen *ebiten.Image, view View, b *physics.Body, c color.RGBA) {
	if p.whiteImage == nil {
		p.whiteImage = ebiten.NewImage(3, 3)
		p.whiteImage.Fill(color.White)
		p.whiteSubImage = p.whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	var path vector.Path
	for i, corner := range b.Corners() {
		x, y := view.ToScreen(corner)
		if i == 0 {
			path.MoveTo(x, y)
		} else {
			path.LineTo(x, y)
		}
	}
	path.Close()

	p.vertices, p.indices = path.AppendVerticesAndIndicesForFilling(p.vertices[:0], p.indices[:0])
	for i := range p.vertices {
		p.vertices[i].SrcX = 1
		p.vertices[i].SrcY = 1
		p.vertices[i].ColorR = float32(c.R) / 0xff
		p.vertices[i].ColorG = float32(c.G) / 0xff
		p.vertices[i].ColorB = float32(c.B) / 0xff
		p.vertices[i].ColorA = float32(c.A) / 0xff
	}

	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(p.vertices, p.indices, p.whiteSubImage, op)
}

// drawEyes places two eyes on the front of the body with pupils looking
// along its eyes direction.
func (p *Painter) drawEyes(screen *ebiten.Image, view View, b *physics.Body) {
	h := b.HalfExtent()
	look := b.EyesDirection().Normalize().Mul(h.X * 0.15)
	scale := float32(view.PixelsPerUnit())

	for _, side := range []float64{-1, 1} {
		local := geom.V(side*h.X*0.45, h.Y*0.5)
		eye := b.Origin().Add(geom.Rotate(local, b.Orientation()))

		x, y := view.ToScreen(eye)
		vector.DrawFilledCircle(screen, x, y, float32(h.X*0.3)*scale, eyeColor, true)

		px, py := view.ToScreen(eye.Add(look))
		vector.DrawFilledCircle(screen, px, py, float32(h.X*0.15)*scale, pupilColor, true)
	}
}
