package breaker

import (
	"fmt"

	"github.com/vovakirdan/ballbreaker/internal/core"
)

// Visual characters for rendering
const (
	BlockChar  = '█'
	PaddleChar = '▀'
	BallChar   = '●'
	GridChar   = '·'
	LifeAlive  = '♥'
	LifeLost   = '♡'
)

// gridSpacing is the background grid pitch in arena pixels.
const gridSpacing = 40

// Render draws the game into dst, scaling the arena to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorText)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH), core.ColorText)
		return
	}

	RenderSnapshot(dst, g.sim.Snapshot())
}

// RenderSnapshot draws a snapshot into dst. It is independent of Game so
// other frontends and tests can reuse it.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	v := core.NewViewport(float64(snap.ArenaW), float64(snap.ArenaH), dst.Width(), dst.Height())
	headerRows := max(v.Y(float64(snap.HeaderH)), 1)

	renderGrid(dst, v, snap, headerRows)
	renderHeader(dst, snap, headerRows)

	for _, b := range snap.Blocks {
		if !b.Active {
			continue
		}
		r := v.Project(float64(b.X), float64(b.Y), float64(b.Width), float64(b.Height))
		dst.DrawRect(r, BlockChar, core.ColorBlock)
	}

	p := snap.Paddle
	dst.DrawRect(v.Project(float64(p.X), float64(p.Y), float64(p.Width), float64(p.Height)), PaddleChar, core.ColorPaddle)

	half := float64(snap.Ball.Size) / 2
	bx := core.Clamp(v.X(snap.Ball.X+half), 0, dst.Width()-1)
	by := max(v.Y(snap.Ball.Y+half), headerRows)
	dst.SetColor(bx, by, BallChar, core.ColorBall)

	renderOverlay(dst, snap)
}

func renderGrid(dst *core.Screen, v core.Viewport, snap Snapshot, headerRows int) {
	for y := 0; y < snap.ArenaH; y += gridSpacing {
		row := v.Y(float64(y))
		if row < headerRows {
			continue
		}
		for x := 0; x < snap.ArenaW; x += gridSpacing {
			dst.SetColor(v.X(float64(x)), row, GridChar, core.ColorGrid)
		}
	}
}

func renderHeader(dst *core.Screen, snap Snapshot, headerRows int) {
	dst.DrawRect(core.NewRect(0, 0, dst.Width(), headerRows), ' ', core.ColorHeader)

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorText)
	dst.DrawTextCentered(0, fmt.Sprintf("Level: %d", snap.Level), core.ColorText)

	// Hearts, right-aligned, separated by spaces.
	x := dst.Width() - 2*len(snap.Lives)
	for i, alive := range snap.Lives {
		if alive {
			dst.SetColor(x+2*i, 0, LifeAlive, core.ColorLifeAlive)
		} else {
			dst.SetColor(x+2*i, 0, LifeLost, core.ColorLifeLost)
		}
	}
}

func renderOverlay(dst *core.Screen, snap Snapshot) {
	mid := dst.Height() / 2

	switch snap.Flow {
	case FlowNotStarted:
		overlayBanner(dst, mid, "Press SPACE to Start")
	case FlowPaused:
		overlayBanner(dst, mid, "Press SPACE to Resume")
	case FlowGameOver:
		lines := []string{
			"GAME OVER!",
			fmt.Sprintf("Score: %d", snap.Score),
			fmt.Sprintf("Level: %d", snap.Level),
			"Press R to Restart",
		}
		width := 0
		for _, l := range lines {
			width = max(width, len([]rune(l)))
		}
		box := core.NewRect((dst.Width()-width-4)/2, mid-len(lines)/2-1, width+4, len(lines)+2)
		dst.DrawRect(box, ' ', core.ColorOverlay)
		dst.DrawBox(box, core.ColorText)
		for i, l := range lines {
			dst.DrawTextCentered(box.Y+1+i, l, core.ColorText)
		}
	}
}

// overlayBanner dims one row and centres text on it.
func overlayBanner(dst *core.Screen, y int, text string) {
	dst.DrawRect(core.NewRect(0, y, dst.Width(), 1), ' ', core.ColorOverlay)
	dst.DrawTextCentered(y, " "+text+" ", core.ColorText)
}
