package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/ladder-rot-expand/internal/anim"
	"github.com/iburimskiy/ladder-rot-expand/internal/config"
	"github.com/iburimskiy/ladder-rot-expand/internal/game"
	"github.com/iburimskiy/ladder-rot-expand/internal/sound"
)

func main() {
	verbose := flag.Bool("v", false, "log animation steps to stderr")
	mute := flag.Bool("mute", false, "disable step sounds")
	flag.Parse()

	if *verbose {
		l := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		anim.SetLogger(l)
		gg.SetLogger(l)
	}

	player := &sound.Player{}
	if !*mute {
		if err := player.Init(); err != nil {
			// Non-fatal, the ladder runs without sound
			anim.Logger().Warn("audio disabled", "err", err)
		}
	}
	defer player.Close()

	g, err := game.New(player)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Ladder Rot Expand - Click or Space: step, S: export frame, Esc/Q: Quit")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		panic(err)
	}
}
