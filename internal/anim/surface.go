package anim

import (
	"image/color"
	"math"

	"github.com/iburimskiy/ladder-rot-expand/internal/config"
)

// Surface is the drawing capability the engine renders onto. Transforms
// compose like a 2D canvas: Save pushes the current transform and stroke,
// Restore pops them.
type Surface interface {
	Bounds() (w, h float64)
	SetStroke(c color.Color, width float64)
	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)
	Line(x1, y1, x2, y2 float64)
}

// DrawNode draws node i of an n-node chain at the given scale. The first half
// of the scale spreads the rungs apart; the second half turns the whole node
// a quarter turn.
func DrawNode(s Surface, i, n int, scale float64) {
	w, h := s.Bounds()
	gap := h / float64(n+1)
	size := gap / config.SizeFactor
	sc1 := DivideScale(scale, 0, 2)
	sc2 := DivideScale(scale, 1, 2)

	s.SetStroke(config.ForeColor, math.Min(w, h)/config.StrokeFactor)
	s.Save()
	s.Translate(w/2, gap*float64(i+1))
	s.Rotate(math.Pi / 2 * sc2)
	y := 0.0
	for j := 0; j < config.Lines; j++ {
		y += DivideScale(sc1, j, config.Lines) * size
		for k := 0; k < 2; k++ {
			s.Save()
			s.Translate(0, y*float64(1-2*k))
			for e := 0; e < 2; e++ {
				s.Save()
				s.Rotate(math.Pi / 2 * float64(1-2*e))
				s.Line(0, 0, 0, -size/2)
				s.Restore()
			}
			s.Restore()
		}
	}
	s.Restore()
}
