package anim

import (
	"fmt"
	"math"

	"github.com/iburimskiy/ladder-rot-expand/internal/config"
)

// MaxScale returns how far s has progressed past the i-th of n equal slices.
func MaxScale(s float64, i, n int) float64 {
	return math.Max(0, s-float64(i)/float64(n))
}

// DivideScale maps s onto the i-th of n sub-steps, returning the sub-step's
// own progress in [0, 1]. Sub-steps activate one after another as s grows.
func DivideScale(s float64, i, n int) float64 {
	return math.Min(1/float64(n), MaxScale(s, i, n)) * float64(n)
}

// ScaleFactor is 0 during the first phase of a step and 1 during the second.
func ScaleFactor(s float64) float64 {
	return math.Floor(s / config.ScDiv)
}

// MirrorValue picks the speed divisor for the phase s is in: a for the
// first phase, b for the second.
func MirrorValue(s float64, a, b int) float64 {
	k := ScaleFactor(s)
	return (1-k)/float64(a) + k/float64(b)
}

// UpdateValue is the per-tick scale increment.
func UpdateValue(s float64, dir, a, b int) float64 {
	return MirrorValue(s, a, b) * float64(dir) * config.ScGap
}

// ScaleState tracks one node's progress between its two rest positions,
// 0 (collapsed) and 1 (expanded and rotated).
type ScaleState struct {
	scale     float64
	prevScale float64
	dir       int
}

// Update advances the scale by one tick. It returns true when the node has
// travelled a full unit from its last checkpoint; the scale is then snapped
// onto the new checkpoint and the state goes idle.
func (s *ScaleState) Update() bool {
	if s.dir == 0 {
		return false
	}
	s.scale += UpdateValue(s.scale, s.dir, config.Lines, 1)
	if math.Abs(s.scale-s.prevScale) > 1 {
		s.scale = s.prevScale + float64(s.dir)
		s.dir = 0
		s.prevScale = s.scale
		return true
	}
	return false
}

// StartUpdating begins a step away from the last checkpoint. It returns
// false, changing nothing, if a step is already in flight.
func (s *ScaleState) StartUpdating() bool {
	if s.dir != 0 {
		return false
	}
	if s.prevScale != 0 && s.prevScale != 1 {
		panic(fmt.Sprintf("anim: checkpoint drifted to %v, want 0 or 1", s.prevScale))
	}
	s.dir = 1 - 2*int(s.prevScale)
	return true
}

// Scale is the current progress value.
func (s *ScaleState) Scale() float64 { return s.scale }

// Dir is the in-flight direction; 0 when idle.
func (s *ScaleState) Dir() int { return s.dir }

// Progress is the distance travelled from the last checkpoint.
func (s *ScaleState) Progress() float64 { return math.Abs(s.scale - s.prevScale) }

// Idle reports whether no step is in flight.
func (s *ScaleState) Idle() bool { return s.dir == 0 }
