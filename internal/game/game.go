package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/ladder-rot-expand/internal/anim"
	"github.com/iburimskiy/ladder-rot-expand/internal/config"
	"github.com/iburimskiy/ladder-rot-expand/internal/sound"
)

// Game hosts the ladder chain in an ebiten window. A mouse press, a touch or
// Space is a tap; S exports the current frame; Esc or Q quits.
type Game struct {
	coord   *anim.Coordinator
	surface surface
	player  *sound.Player

	// input edge detection
	prevKey map[ebiten.Key]bool

	status  string
	lastErr error
}

// New builds the game. player may be nil for a silent game.
func New(player *sound.Player) (*Game, error) {
	coord, err := anim.NewCoordinator(config.Nodes, config.TickInterval)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}
	g := &Game{
		coord:   coord,
		player:  player,
		prevKey: map[ebiten.Key]bool{},
	}
	coord.OnStep = g.onStep
	g.refreshStatus()
	return g, nil
}

func (g *Game) onStep(ev anim.StepEvent) {
	if g.player != nil {
		g.player.Play(ev.From)
	}
}

func (g *Game) refreshStatus() {
	g.status = statusLine(g.coord.Snapshot())
}

func (g *Game) tapped() bool {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if g.tapped() || justPressed(ebiten.KeySpace) {
		if g.coord.Trigger(g.refreshStatus) {
			g.refreshStatus()
		}
	}
	if justPressed(ebiten.KeyS) {
		if err := g.exportFrameDialog(); err != nil {
			g.lastErr = err
		}
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.coord.Advance(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackColor)
	g.surface.begin(screen)
	g.coord.Render(&g.surface)

	status := g.status
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
