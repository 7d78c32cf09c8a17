package game

import (
	"fmt"
	"strings"

	"github.com/iburimskiy/ladder-rot-expand/internal/anim"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatDirection names the traversal direction as seen on screen.
func formatDirection(dir int) string {
	if dir < 0 {
		return "up"
	}
	return "down"
}

// statusLine summarises the engine state for the debug overlay.
func statusLine(snap anim.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "node %d/%d  heading %s", snap.Current+1, len(snap.Scales), formatDirection(snap.Direction))
	if snap.Animating {
		fmt.Fprintf(&b, "  %3.0f%%", clamp01(snap.Progress)*100)
	} else {
		b.WriteString("  tap or Space to step")
	}
	return b.String()
}
