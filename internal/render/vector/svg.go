// Package vector writes ladder frames as SVG documents.
package vector

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/iburimskiy/ladder-rot-expand/internal/anim"
	"github.com/iburimskiy/ladder-rot-expand/internal/config"
)

// Surface maps canvas-style transforms onto nested SVG groups. Every
// Translate or Rotate opens a transformed <g>; Restore closes the groups
// opened since the matching Save.
type Surface struct {
	canvas *svg.SVG
	w, h   int
	open   []int
	style  string
}

// New starts an SVG document of the given size on w.
func New(w io.Writer, width, height int) *Surface {
	s := &Surface{canvas: svg.New(w), w: width, h: height, open: []int{0}}
	s.canvas.Start(width, height)
	return s
}

func (s *Surface) Bounds() (float64, float64) {
	return float64(s.w), float64(s.h)
}

func (s *Surface) SetStroke(c color.Color, width float64) {
	r, g, b, _ := c.RGBA()
	s.style = fmt.Sprintf("stroke:#%02x%02x%02x;stroke-width:%.2f;stroke-linecap:round",
		r>>8, g>>8, b>>8, width)
}

func (s *Surface) Save() { s.open = append(s.open, 0) }

func (s *Surface) Restore() {
	if len(s.open) == 1 {
		return
	}
	for i := 0; i < s.open[len(s.open)-1]; i++ {
		s.canvas.Gend()
	}
	s.open = s.open[:len(s.open)-1]
}

func (s *Surface) Translate(x, y float64) {
	s.group(fmt.Sprintf("translate(%.3f,%.3f)", x, y))
}

func (s *Surface) Rotate(angle float64) {
	s.group(fmt.Sprintf("rotate(%.3f)", angle*180/math.Pi))
}

func (s *Surface) group(transform string) {
	s.canvas.Gtransform(transform)
	s.open[len(s.open)-1]++
}

func (s *Surface) Line(x1, y1, x2, y2 float64) {
	s.canvas.Line(round(x1), round(y1), round(x2), round(y2), s.style)
}

func round(v float64) int { return int(math.Round(v)) }

// Clear paints the background.
func (s *Surface) Clear() {
	s.canvas.Rect(0, 0, s.w, s.h, "fill:"+config.BackHex)
}

// End closes any groups still open and finishes the document.
func (s *Surface) End() {
	for len(s.open) > 1 {
		s.Restore()
	}
	for i := 0; i < s.open[0]; i++ {
		s.canvas.Gend()
	}
	s.open[0] = 0
	s.canvas.End()
}

// WriteSVG renders one frame of c as a complete SVG document.
func WriteSVG(w io.Writer, c *anim.Coordinator, width, height int) {
	s := New(w, width, height)
	s.Clear()
	c.Render(s)
	s.End()
}
