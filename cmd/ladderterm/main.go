// Command ladderterm runs the ladder animation in a terminal.
// Space or a mouse click steps; Esc, q or Ctrl-C quits.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/iburimskiy/ladder-rot-expand/internal/anim"
	"github.com/iburimskiy/ladder-rot-expand/internal/config"
	"github.com/iburimskiy/ladder-rot-expand/internal/render/term"
)

type app struct {
	screen  tcell.Screen
	coord   *anim.Coordinator
	surface *term.Surface

	buttons tcell.ButtonMask
	last    time.Time
}

func newApp() (*app, error) {
	coord, err := anim.NewCoordinator(config.Nodes, config.TickInterval)
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	cols, rows := screen.Size()
	return &app{
		screen:  screen,
		coord:   coord,
		surface: term.New(screen, cols, rows),
		last:    time.Now(),
	}, nil
}

func (a *app) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
			(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return false
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
			a.coord.Trigger(nil)
		}

	case *tcell.EventMouse:
		b := ev.Buttons()
		if b&tcell.Button1 != 0 && a.buttons&tcell.Button1 == 0 {
			a.coord.Trigger(nil)
		}
		a.buttons = b

	case *tcell.EventResize:
		cols, rows := a.screen.Size()
		a.surface.Resize(cols, rows)
		a.screen.Sync()
	}
	return true
}

func (a *app) draw() {
	a.surface.Clear()
	a.coord.Render(a.surface)

	snap := a.coord.Snapshot()
	status := fmt.Sprintf(" node %d/%d  dir %+d  space: step  q: quit", snap.Current+1, len(snap.Scales), snap.Direction)
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, r := range status {
		a.screen.SetContent(i, 0, r, nil, style)
	}
	a.screen.Show()
}

func (a *app) run() {
	ticker := time.NewTicker(config.TermFrameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	a.draw()
	for {
		select {
		case ev := <-eventChan:
			if ev == nil {
				return
			}
			if !a.handleInput(ev) {
				return
			}

		case now := <-ticker.C:
			a.coord.Advance(now.Sub(a.last))
			a.last = now
			a.draw()
		}
	}
}

func main() {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer a.screen.Fini()

	a.run()
}
