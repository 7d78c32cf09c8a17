// Command ladderframes replays taps headlessly and writes every tick as an
// image, for turning the animation into a video or a contact sheet.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/ladder-rot-expand/internal/anim"
	"github.com/iburimskiy/ladder-rot-expand/internal/config"
	"github.com/iburimskiy/ladder-rot-expand/internal/frames"
)

func main() {
	out := flag.String("out", "frames", "output directory")
	format := flag.String("format", "png", "frame format: png or svg")
	taps := flag.Int("taps", config.Nodes*2, "number of taps to replay")
	width := flag.Int("width", config.WindowWidth, "frame width in pixels")
	height := flag.Int("height", config.WindowHeight, "frame height in pixels")
	verbose := flag.Bool("v", false, "log animation steps to stderr")
	flag.Parse()

	if *verbose {
		l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		anim.SetLogger(l)
		gg.SetLogger(l)
	}

	if err := run(*out, *format, *taps, *width, *height); err != nil {
		fmt.Fprintf(os.Stderr, "ladderframes: %v\n", err)
		os.Exit(1)
	}
}

func run(dir, format string, taps, width, height int) error {
	f, err := frames.ParseFormat(format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	c, err := anim.NewCoordinator(config.Nodes, config.TickInterval)
	if err != nil {
		return err
	}
	w := frames.Writer{Dir: dir, Format: f, Width: width, Height: height}
	n, err := frames.Replay(c, taps, func(frame int) error {
		return w.Write(c, frame)
	})
	if err != nil {
		return err
	}
	fmt.Printf("Wrote %d frames to %s\n", n, dir)
	return nil
}
