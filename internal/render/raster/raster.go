// Package raster renders the ladder chain headlessly into an image using gg.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/ladder-rot-expand/internal/anim"
	"github.com/iburimskiy/ladder-rot-expand/internal/config"
)

// Surface adapts a gg.Context to anim.Surface. Push/Pop only stack the
// transform; DrawNode sets the stroke before every node.
type Surface struct {
	dc  *gg.Context
	err error
}

// New returns a surface of the given pixel size.
func New(width, height int) *Surface {
	dc := gg.NewContext(width, height)
	dc.SetLineCap(gg.LineCapRound)
	return &Surface{dc: dc}
}

// Image returns the rendered frame.
func (s *Surface) Image() image.Image { return s.dc.Image() }

func (s *Surface) Bounds() (float64, float64) {
	return float64(s.dc.Width()), float64(s.dc.Height())
}

func (s *Surface) SetStroke(c color.Color, width float64) {
	s.dc.SetColor(c)
	s.dc.SetLineWidth(width)
}

func (s *Surface) Save()                  { s.dc.Push() }
func (s *Surface) Restore()               { s.dc.Pop() }
func (s *Surface) Translate(x, y float64) { s.dc.Translate(x, y) }
func (s *Surface) Rotate(angle float64)   { s.dc.Rotate(angle) }

func (s *Surface) Line(x1, y1, x2, y2 float64) {
	s.dc.DrawLine(x1, y1, x2, y2)
	if err := s.dc.Stroke(); err != nil && s.err == nil {
		s.err = err
	}
}

// Clear fills the whole surface with the background colour.
func (s *Surface) Clear() {
	s.dc.ClearWithColor(gg.Hex(config.BackHex))
}

// Err returns the first stroke error, if any.
func (s *Surface) Err() error { return s.err }

// EncodePNG writes the current frame as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.err != nil {
		return fmt.Errorf("raster: stroke: %w", s.err)
	}
	return s.dc.EncodePNG(w)
}

// Close releases the context.
func (s *Surface) Close() error { return s.dc.Close() }

// WritePNG renders one frame of c at the given size and writes it as PNG.
func WritePNG(w io.Writer, c *anim.Coordinator, width, height int) error {
	s := New(width, height)
	defer s.Close()
	s.Clear()
	c.Render(s)
	return s.EncodePNG(w)
}
