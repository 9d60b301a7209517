package core

// Color is the foreground colour of a screen cell. Values are semantic
// roles; the platform layer decides how each role looks on a terminal.
type Color uint8

// Colour roles used by the renderers.
const (
	ColorDefault Color = iota
	ColorGrid          // background grid dots
	ColorHeader        // header bar background glyphs
	ColorText          // HUD and overlay text
	ColorBlock         // breakable blocks
	ColorPaddle        // player paddle
	ColorBall          // the ball
	ColorLifeAlive     // heart for a remaining life
	ColorLifeLost      // heart for a spent life
	ColorOverlay       // message box frames
)

// String returns the role name, used in screenshots and test output.
func (c Color) String() string {
	switch c {
	case ColorGrid:
		return "grid"
	case ColorHeader:
		return "header"
	case ColorText:
		return "text"
	case ColorBlock:
		return "block"
	case ColorPaddle:
		return "paddle"
	case ColorBall:
		return "ball"
	case ColorLifeAlive:
		return "life"
	case ColorLifeLost:
		return "life-lost"
	case ColorOverlay:
		return "overlay"
	default:
		return "default"
	}
}
