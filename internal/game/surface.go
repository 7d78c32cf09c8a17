package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// surface draws onto an ebiten image with a canvas-style transform stack.
type surface struct {
	dst   *ebiten.Image
	geo   ebiten.GeoM
	stack []ebiten.GeoM
	clr   color.Color
	width float32
}

// begin targets dst for the next frame and resets the transform.
func (s *surface) begin(dst *ebiten.Image) {
	s.dst = dst
	s.geo.Reset()
	s.stack = s.stack[:0]
}

func (s *surface) Bounds() (float64, float64) {
	b := s.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *surface) SetStroke(c color.Color, width float64) {
	s.clr = c
	s.width = float32(width)
}

func (s *surface) Save() { s.stack = append(s.stack, s.geo) }

func (s *surface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.geo = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// local applies g before the current transform, as canvas transforms do.
func (s *surface) local(g ebiten.GeoM) {
	g.Concat(s.geo)
	s.geo = g
}

func (s *surface) Translate(x, y float64) {
	var g ebiten.GeoM
	g.Translate(x, y)
	s.local(g)
}

func (s *surface) Rotate(angle float64) {
	var g ebiten.GeoM
	g.Rotate(angle)
	s.local(g)
}

func (s *surface) Line(x1, y1, x2, y2 float64) {
	ax, ay := s.geo.Apply(x1, y1)
	bx, by := s.geo.Apply(x2, y2)
	vector.StrokeLine(s.dst, float32(ax), float32(ay), float32(bx), float32(by), s.width, s.clr, true)

	// Round caps
	r := s.width / 2
	vector.DrawFilledCircle(s.dst, float32(ax), float32(ay), r, s.clr, true)
	vector.DrawFilledCircle(s.dst, float32(bx), float32(by), r, s.clr, true)
}
