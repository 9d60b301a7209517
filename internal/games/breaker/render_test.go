package breaker

import (
	"strings"
	"testing"

	"github.com/vovakirdan/ballbreaker/internal/core"
)

func containsText(row, text string) bool {
	return strings.Contains(row, text)
}

func renderGame(g *Game, w, h int) *core.Screen {
	screen := core.NewScreen(w, h)
	g.Render(screen)
	return screen
}

func TestRenderHeader(t *testing.T) {
	g := newTestGame(t, 80, 24)
	g.sim.stats.Score = 120
	g.sim.stats.Lives[0] = false

	header := renderGame(g, 80, 24).Row(0)
	if !containsText(header, "Score: 120") {
		t.Errorf("header %q missing score", header)
	}
	if !containsText(header, "Level: 1") {
		t.Errorf("header %q missing level", header)
	}
	if !strings.HasSuffix(strings.TrimRight(header, " "), "♡ ♥ ♥") {
		t.Errorf("header %q should end with lives ♡ ♥ ♥", header)
	}
}

func TestRenderPlayfield(t *testing.T) {
	g := newTestGame(t, 80, 24)
	screen := renderGame(g, 80, 24)

	tests := []struct {
		name  string
		x, y  int
		glyph rune
		color core.Color
	}{
		{"first block", 2, 4, BlockChar, core.ColorBlock},
		{"second block", 9, 4, BlockChar, core.ColorBlock},
		{"block gap", 23, 4, ' ', core.ColorDefault},
		{"paddle left", 32, 21, PaddleChar, core.ColorPaddle},
		{"paddle right", 46, 21, PaddleChar, core.ColorPaddle},
		{"ball", 40, 9, BallChar, core.ColorBall},
		{"grid", 0, 6, GridChar, core.ColorGrid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := screen.GetCell(tt.x, tt.y)
			if cell.Rune != tt.glyph || cell.Color != tt.color {
				t.Errorf("cell (%d,%d) = %q/%v, want %q/%v", tt.x, tt.y, cell.Rune, cell.Color, tt.glyph, tt.color)
			}
		})
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, 80, 24)

	if row := renderGame(g, 80, 24).Row(12); !containsText(row, "Press SPACE to Start") {
		t.Errorf("not started overlay row = %q", row)
	}

	g.sim.ApplyToggle()
	if out := renderGame(g, 80, 24).String(); containsText(out, "Press SPACE") {
		t.Error("running game should have no overlay")
	}

	g.sim.ApplyToggle()
	if row := renderGame(g, 80, 24).Row(12); !containsText(row, "Press SPACE to Resume") {
		t.Errorf("paused overlay row = %q", row)
	}

	g.sim.flow = FlowGameOver
	g.sim.stats.Score = 340
	g.sim.stats.Level = 3
	out := renderGame(g, 80, 24).String()
	for _, want := range []string{"GAME OVER!", "Score: 340", "Level: 3", "Press R to Restart"} {
		if !containsText(out, want) {
			t.Errorf("game over overlay missing %q:\n%s", want, out)
		}
	}
}

func TestRenderHidesInactiveBlocks(t *testing.T) {
	g := newTestGame(t, 80, 24)
	g.sim.blocks[0].Active = false

	if cell := renderGame(g, 80, 24).GetCell(2, 4); cell.Rune == BlockChar {
		t.Error("inactive block was drawn")
	}
}

func TestRenderKeepsBallOnScreenPastRightWall(t *testing.T) {
	g := newTestGame(t, 80, 24)
	g.sim.ball.X = 795
	g.sim.ball.Y = 213

	if cell := renderGame(g, 80, 24).GetCell(79, 8); cell.Rune != BallChar {
		t.Errorf("cell (79,8) = %q, want ball in the last column", cell.Rune)
	}
}
