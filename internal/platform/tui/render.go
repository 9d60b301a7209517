package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ballbreaker/internal/core"
)

// Palette of the classic desktop game.
const (
	backgroundHex = "#121212"
	headerHex     = "#1E1E1E"
	gridHex       = "#282828"
	blockHex      = "#FF3232"
	paddleHex     = "#0096FF"
	ballHex       = "#FFFFFF"
	lostLifeHex   = "#6C6C6C"
)

var (
	baseStyle  = lipgloss.NewStyle().Background(lipgloss.Color(backgroundHex))
	panelStyle = lipgloss.NewStyle().Background(lipgloss.Color(headerHex))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// colorStyles maps core.Color roles to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:   baseStyle,
	core.ColorGrid:      baseStyle.Foreground(lipgloss.Color(gridHex)),
	core.ColorHeader:    panelStyle,
	core.ColorText:      panelStyle.Foreground(lipgloss.Color(ballHex)).Bold(true),
	core.ColorBlock:     baseStyle.Foreground(lipgloss.Color(blockHex)),
	core.ColorPaddle:    baseStyle.Foreground(lipgloss.Color(paddleHex)),
	core.ColorBall:      baseStyle.Foreground(lipgloss.Color(ballHex)),
	core.ColorLifeAlive: panelStyle.Foreground(lipgloss.Color(blockHex)),
	core.ColorLifeLost:  panelStyle.Foreground(lipgloss.Color(lostLifeHex)),
	core.ColorOverlay:   panelStyle,
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[color]
			if !ok {
				style = baseStyle
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
