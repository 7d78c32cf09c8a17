// Package frames replays taps against a coordinator at the fixed tick rate
// and hands every resulting frame to a writer.
package frames

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/iburimskiy/ladder-rot-expand/internal/anim"
	"github.com/iburimskiy/ladder-rot-expand/internal/render/raster"
	"github.com/iburimskiy/ladder-rot-expand/internal/render/vector"
)

// maxTicksPerTap bounds a single step so a broken engine can't spin forever.
const maxTicksPerTap = 1000

// Format selects the output encoding.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case PNG, SVG:
		return f, nil
	}
	return "", fmt.Errorf("frames: unknown format %q (want png or svg)", s)
}

// Replay renders the initial frame, then triggers taps steps one after
// another, calling emit after every tick. It returns the number of frames.
func Replay(c *anim.Coordinator, taps int, emit func(frame int) error) (int, error) {
	frame := 0
	if err := emit(frame); err != nil {
		return frame, err
	}
	frame++

	for tap := 0; tap < taps; tap++ {
		if !c.Trigger(nil) {
			return frame, fmt.Errorf("frames: tap %d absorbed", tap)
		}
		for ticks := 0; c.Animating(); ticks++ {
			if ticks >= maxTicksPerTap {
				return frame, fmt.Errorf("frames: tap %d did not settle", tap)
			}
			c.Advance(c.Period())
			if err := emit(frame); err != nil {
				return frame, err
			}
			frame++
		}
		anim.Logger().Debug("tap replayed", "tap", tap, "frames", frame)
	}
	return frame, nil
}

// Writer renders frames of a coordinator into numbered files in a directory.
type Writer struct {
	Dir           string
	Format        Format
	Width, Height int
}

// Write renders the current frame of c as file number n.
func (w Writer) Write(c *anim.Coordinator, n int) (err error) {
	path := filepath.Join(w.Dir, fmt.Sprintf("frame_%05d.%s", n, w.Format))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return w.encode(f, c)
}

func (w Writer) encode(out io.Writer, c *anim.Coordinator) error {
	switch w.Format {
	case SVG:
		vector.WriteSVG(out, c, w.Width, w.Height)
		return nil
	default:
		return raster.WritePNG(out, c, w.Width, w.Height)
	}
}
