package term

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/ladder-rot-expand/internal/anim"
	"github.com/iburimskiy/ladder-rot-expand/internal/config"
)

type cell struct{ x, y int }

type fakeCells struct {
	cols, rows int
	runes      map[cell]rune
}

func newFakeCells(cols, rows int) *fakeCells {
	return &fakeCells{cols: cols, rows: rows, runes: map[cell]rune{}}
}

func (f *fakeCells) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) {
	if x < 0 || y < 0 || x >= f.cols || y >= f.rows {
		panic("write outside grid")
	}
	f.runes[cell{x, y}] = r
}

func TestSurfaceCollapsedNode(t *testing.T) {
	cells := newFakeCells(40, 30)
	s := New(cells, 40, 30)
	s.Clear()
	if len(cells.runes) != 40*30 {
		t.Fatalf("Clear touched %d cells, want %d", len(cells.runes), 40*30)
	}

	c, err := anim.NewCoordinator(config.Nodes, config.TickInterval)
	if err != nil {
		t.Fatal(err)
	}
	c.Render(s)

	// Node 0 centre: x = 40/2, y = (30*aspect)/(n+1) in surface units.
	row := int(math.Round(30 * config.TermCellAspect / float64(config.Nodes+1) / config.TermCellAspect))
	if got := cells.runes[cell{20, row}]; got != glyph {
		t.Errorf("centre cell (20,%d) = %q, want %q", row, got, glyph)
	}
	if got := cells.runes[cell{0, 0}]; got != ' ' {
		t.Errorf("corner cell = %q, want blank", got)
	}
}

func TestSurfaceClipsToGrid(t *testing.T) {
	cells := newFakeCells(3, 2)
	s := New(cells, 3, 2)
	s.Translate(-10, -10)
	s.Line(0, 0, 100, 100)
	s.Restore() // unmatched, ignored
}

func TestPlotLineEndpoints(t *testing.T) {
	cells := newFakeCells(10, 10)
	s := New(cells, 10, 10)
	s.plotLine(1, 1, 7, 4)
	for _, p := range []cell{{1, 1}, {7, 4}} {
		if cells.runes[p] != glyph {
			t.Errorf("endpoint %v not plotted", p)
		}
	}
	if len(cells.runes) != 7 {
		t.Errorf("plotted %d cells, want 7", len(cells.runes))
	}
}
