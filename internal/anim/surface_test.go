package anim

import (
	"image/color"
	"math"
	"testing"

	"github.com/iburimskiy/ladder-rot-expand/internal/config"
)

type affine struct{ a, b, c, d, e, f float64 }

func (m affine) apply(x, y float64) (float64, float64) {
	return m.a*x + m.b*y + m.c, m.d*x + m.e*y + m.f
}

func (m affine) mul(o affine) affine {
	return affine{
		a: m.a*o.a + m.b*o.d, b: m.a*o.b + m.b*o.e, c: m.a*o.c + m.b*o.f + m.c,
		d: m.d*o.a + m.e*o.d, e: m.d*o.b + m.e*o.e, f: m.d*o.c + m.e*o.f + m.f,
	}
}

type segment struct{ x1, y1, x2, y2 float64 }

// recorder resolves transforms and records lines in surface coordinates.
type recorder struct {
	w, h  float64
	m     affine
	stack []affine
	lines []segment
	width float64
}

func newRecorder(w, h float64) *recorder {
	return &recorder{w: w, h: h, m: affine{a: 1, e: 1}}
}

func (r *recorder) Bounds() (float64, float64) { return r.w, r.h }

func (r *recorder) SetStroke(_ color.Color, w float64) { r.width = w }

func (r *recorder) Save() { r.stack = append(r.stack, r.m) }

func (r *recorder) Restore() {
	r.m = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *recorder) Translate(x, y float64) { r.m = r.m.mul(affine{a: 1, c: x, e: 1, f: y}) }

func (r *recorder) Rotate(t float64) {
	s, c := math.Sin(t), math.Cos(t)
	r.m = r.m.mul(affine{a: c, b: -s, d: s, e: c})
}

func (r *recorder) Line(x1, y1, x2, y2 float64) {
	ax, ay := r.m.apply(x1, y1)
	bx, by := r.m.apply(x2, y2)
	r.lines = append(r.lines, segment{ax, ay, bx, by})
}

const eps = 1e-6

func TestDrawNodeCollapsed(t *testing.T) {
	r := newRecorder(600, 600)
	DrawNode(r, 1, 5, 0)

	if want := config.Lines * 4; len(r.lines) != want {
		t.Fatalf("lines = %d, want %d", len(r.lines), want)
	}
	if len(r.stack) != 0 {
		t.Errorf("unbalanced Save/Restore: depth %d", len(r.stack))
	}
	if math.Abs(r.width-600.0/config.StrokeFactor) > eps {
		t.Errorf("stroke width = %v", r.width)
	}

	cy := 600.0 / 6 * 2
	half := 600.0 / 6 / config.SizeFactor / 2
	for _, l := range r.lines {
		if math.Abs(l.y1-cy) > eps || math.Abs(l.y2-cy) > eps {
			t.Fatalf("collapsed rung off centre line: %+v", l)
		}
		if math.Abs(math.Abs(l.x2-l.x1)-half) > eps || math.Abs(l.x1-300) > eps {
			t.Fatalf("collapsed rung wrong extent: %+v", l)
		}
	}
}

func TestDrawNodeExpandedIsRotated(t *testing.T) {
	r := newRecorder(600, 600)
	DrawNode(r, 0, 5, 1)

	size := 600.0 / 6 / config.SizeFactor
	spread := 0.0
	for _, l := range r.lines {
		if math.Abs(l.x1-l.x2) > eps {
			t.Fatalf("expanded rung not vertical: %+v", l)
		}
		spread = math.Max(spread, math.Abs(l.x1-300))
	}
	if want := size * config.Lines; math.Abs(spread-want) > eps {
		t.Errorf("rung spread = %v, want %v", spread, want)
	}
}

func TestChainDrawCoversEveryNode(t *testing.T) {
	c, _ := NewChain(3)
	r := newRecorder(400, 400)
	c.Draw(r)
	if want := 3 * config.Lines * 4; len(r.lines) != want {
		t.Errorf("lines = %d, want %d", len(r.lines), want)
	}
}
