// Package term rasterizes ladder frames onto a terminal cell grid.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"

	"github.com/iburimskiy/ladder-rot-expand/internal/config"
)

// CellSetter is the part of tcell.Screen the surface draws through.
type CellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

const glyph = '█'

// Surface plots lines cell by cell. A cell is one surface unit wide and
// aspect units tall, so geometry keeps its shape on typical terminal fonts.
type Surface struct {
	cells      CellSetter
	cols, rows int
	aspect     float64

	m     gg.Matrix
	stack []gg.Matrix
	style tcell.Style
	bg    tcell.Style
}

// New returns a surface over cols x rows cells.
func New(cells CellSetter, cols, rows int) *Surface {
	return &Surface{
		cells:  cells,
		cols:   cols,
		rows:   rows,
		aspect: config.TermCellAspect,
		m:      gg.Identity(),
		style:  styleFor(config.ForeColor),
		bg:     tcell.StyleDefault.Background(toTcell(config.BackColor)),
	}
}

// Resize updates the grid size after a terminal resize.
func (s *Surface) Resize(cols, rows int) {
	s.cols, s.rows = cols, rows
}

func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

func styleFor(c color.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(toTcell(c)).Background(toTcell(config.BackColor))
}

func (s *Surface) Bounds() (float64, float64) {
	return float64(s.cols), float64(s.rows) * s.aspect
}

// SetStroke picks the colour; a cell grid has a single stroke width.
func (s *Surface) SetStroke(c color.Color, _ float64) {
	s.style = styleFor(c)
}

func (s *Surface) Save() { s.stack = append(s.stack, s.m) }

func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.m = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *Surface) Translate(x, y float64) { s.m = s.m.Multiply(gg.Translate(x, y)) }

func (s *Surface) Rotate(angle float64) { s.m = s.m.Multiply(gg.Rotate(angle)) }

func (s *Surface) Line(x1, y1, x2, y2 float64) {
	a := s.m.TransformPoint(gg.Point{X: x1, Y: y1})
	b := s.m.TransformPoint(gg.Point{X: x2, Y: y2})
	s.plotLine(
		int(math.Round(a.X)), int(math.Round(a.Y/s.aspect)),
		int(math.Round(b.X)), int(math.Round(b.Y/s.aspect)),
	)
}

// plotLine is Bresenham's line over cells, clipped to the grid.
func (s *Surface) plotLine(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	e := dx + dy
	for {
		s.plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (s *Surface) plot(x, y int) {
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return
	}
	s.cells.SetContent(x, y, glyph, nil, s.style)
}

// Clear paints every cell with the background.
func (s *Surface) Clear() {
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			s.cells.SetContent(x, y, ' ', nil, s.bg)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
