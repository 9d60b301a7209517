// Package window runs the ball breaker simulation in a desktop window with
// ebiten, using real key press and release events.
package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/ballbreaker/internal/games/breaker"
)

// Colours of the classic desktop game.
var (
	backgroundColor = color.RGBA{18, 18, 18, 255}
	paddleColor     = color.RGBA{0, 150, 255, 255}
	ballColor       = color.RGBA{255, 255, 255, 255}
	textColor       = color.RGBA{255, 255, 255, 255}
	headerColor     = color.RGBA{30, 30, 30, 255}
	gridColor       = color.RGBA{40, 40, 40, 255}
	blockColor      = color.RGBA{255, 50, 50, 255}
	lostLifeColor   = color.RGBA{90, 90, 90, 255}
	overlayColor    = color.RGBA{0, 0, 0, 150}
	gameOverColor   = color.RGBA{0, 0, 0, 200}
)

const (
	gridSpacing = 40
	glyphW      = 6 // debug font cell width
	glyphH      = 16
)

// Game implements ebiten.Game around a Simulation.
type Game struct {
	sim    *breaker.Simulation
	logger *log.Logger
	flow   breaker.FlowState
}

// New creates a window game for sim.
func New(sim *breaker.Simulation, logger *log.Logger) *Game {
	return &Game{sim: sim, logger: logger, flow: sim.Flow()}
}

// Update forwards key edges to the simulation and advances it one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for _, k := range []struct {
		key ebiten.Key
		dir breaker.Direction
	}{
		{ebiten.KeyArrowLeft, breaker.DirLeft},
		{ebiten.KeyArrowRight, breaker.DirRight},
	} {
		if inpututil.IsKeyJustPressed(k.key) {
			g.sim.ApplyInput(k.dir, true)
		}
		if inpututil.IsKeyJustReleased(k.key) {
			g.sim.ApplyInput(k.dir, false)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sim.ApplyToggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.ApplyRestart()
	}

	for _, e := range g.sim.Tick() {
		g.logger.Debug("event", "kind", e.Kind, "value", e.Value)
	}
	if flow := g.sim.Flow(); flow != g.flow {
		g.logger.Info("flow changed", "from", g.flow, "to", flow)
		g.flow = flow
	}
	return nil
}

// Draw renders the current snapshot.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.sim.Snapshot()
	w, h := float32(snap.ArenaW), float32(snap.ArenaH)

	screen.Fill(backgroundColor)
	for x := 0; x < snap.ArenaW; x += gridSpacing {
		vector.StrokeLine(screen, float32(x), 0, float32(x), h, 1, gridColor, false)
	}
	for y := 0; y < snap.ArenaH; y += gridSpacing {
		vector.StrokeLine(screen, 0, float32(y), w, float32(y), 1, gridColor, false)
	}

	for _, b := range snap.Blocks {
		if b.Active {
			vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.Width), float32(b.Height), blockColor, false)
		}
	}

	p := snap.Paddle
	vector.DrawFilledRect(screen, float32(p.X), float32(p.Y), float32(p.Width), float32(p.Height), paddleColor, true)

	r := float32(snap.Ball.Size) / 2
	vector.DrawFilledCircle(screen, float32(snap.Ball.X)+r, float32(snap.Ball.Y)+r, r, ballColor, true)

	g.drawHeader(screen, snap)
	g.drawOverlay(screen, snap)
}

func (g *Game) drawHeader(screen *ebiten.Image, snap breaker.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, float32(snap.ArenaW), float32(snap.HeaderH), headerColor, false)

	mid := snap.HeaderH/2 - glyphH/2
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Score), 20, mid)
	centerText(screen, fmt.Sprintf("Level: %d", snap.Level), snap.ArenaW, mid)

	for i, alive := range snap.Lives {
		c := lostLifeColor
		if alive {
			c = blockColor
		}
		cx := float32(snap.ArenaW - 40 - 28*(len(snap.Lives)-1-i))
		vector.DrawFilledCircle(screen, cx, float32(snap.HeaderH/2), 9, c, true)
	}
}

func (g *Game) drawOverlay(screen *ebiten.Image, snap breaker.Snapshot) {
	w, h := float32(snap.ArenaW), float32(snap.ArenaH)
	mid := snap.ArenaH / 2

	switch snap.Flow {
	case breaker.FlowNotStarted:
		vector.DrawFilledRect(screen, 0, 0, w, h, overlayColor, false)
		centerText(screen, "Press SPACE to Start", snap.ArenaW, mid)
	case breaker.FlowPaused:
		vector.DrawFilledRect(screen, 0, 0, w, h, overlayColor, false)
		centerText(screen, "Press SPACE to Resume", snap.ArenaW, mid)
	case breaker.FlowGameOver:
		vector.DrawFilledRect(screen, 0, 0, w, h, gameOverColor, false)
		centerText(screen, "GAME OVER!", snap.ArenaW, mid-60)
		centerText(screen, fmt.Sprintf("Score: %d", snap.Score), snap.ArenaW, mid-10)
		centerText(screen, fmt.Sprintf("Level: %d", snap.Level), snap.ArenaW, mid+20)
		centerText(screen, "Press R to Restart", snap.ArenaW, mid+70)
	}
}

// centerText prints text horizontally centred at row y.
func centerText(screen *ebiten.Image, text string, width, y int) {
	ebitenutil.DebugPrintAt(screen, text, (width-len(text)*glyphW)/2, y)
}

// Layout keeps the arena at its native pixel size; ebiten scales it to
// the window.
func (g *Game) Layout(_, _ int) (int, int) {
	cfg := g.sim.Config()
	return cfg.Arena.Width, cfg.Arena.Height
}

// Run opens the window and blocks until it is closed.
func Run(sim *breaker.Simulation, scale float64, logger *log.Logger) error {
	cfg := sim.Config()
	if scale <= 0 {
		scale = 1
	}

	ebiten.SetWindowSize(int(float64(cfg.Arena.Width)*scale), int(float64(cfg.Arena.Height)*scale))
	ebiten.SetWindowTitle("Ball Breaker")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	err := ebiten.RunGame(New(sim, logger))
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
