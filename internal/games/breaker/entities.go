// Package breaker implements the ball breaker game: a paddle deflects a
// bouncing ball into a grid of blocks across ten levels.
package breaker

import (
	"github.com/vovakirdan/ballbreaker/internal/core"
)

// Direction is a paddle movement input.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
)

// String returns the direction name.
func (d Direction) String() string {
	if d == DirLeft {
		return "left"
	}
	return "right"
}

// FlowState is the game flow state.
type FlowState int

const (
	FlowNotStarted FlowState = iota // waiting for the first toggle
	FlowRunning
	FlowPaused
	FlowGameOver // out of lives or campaign complete; only restart leaves it
)

// String returns the flow state name.
func (f FlowState) String() string {
	switch f {
	case FlowNotStarted:
		return "not_started"
	case FlowRunning:
		return "running"
	case FlowPaused:
		return "paused"
	case FlowGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Ball is the ball state in arena pixels. X and Y are the top-left corner.
type Ball struct {
	X, Y   float64
	VX, VY float64
	Size   int
}

// Rect returns the collision rectangle. Positions are truncated toward zero.
func (b Ball) Rect() core.Rect {
	return core.NewRect(int(b.X), int(b.Y), b.Size, b.Size)
}

// CenterX returns the horizontal centre of the ball.
func (b Ball) CenterX() float64 {
	return b.X + float64(b.Size/2)
}

// Paddle is the player's paddle. X is kept on whole pixels.
type Paddle struct {
	X        int
	Y        int
	Width    int
	Height   int
	Velocity float64
}

// Rect returns the collision rectangle.
func (p Paddle) Rect() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// CenterX returns the horizontal centre of the paddle.
func (p Paddle) CenterX() float64 {
	return float64(p.X + p.Width/2)
}

// Block is a breakable block. Hit blocks are deactivated, never removed.
type Block struct {
	X, Y          int
	Width, Height int
	Active        bool
}

// Rect returns the collision rectangle.
func (b Block) Rect() core.Rect {
	return core.NewRect(b.X, b.Y, b.Width, b.Height)
}

// Stats holds score, level and the life flags.
type Stats struct {
	Score int
	Level int
	Lives []bool // true = alive; depleted left to right
}

// LivesLeft returns the number of alive flags.
func (s Stats) LivesLeft() int {
	n := 0
	for _, alive := range s.Lives {
		if alive {
			n++
		}
	}
	return n
}

// loseLife flips the leftmost alive flag and reports the lives left.
func (s *Stats) loseLife() int {
	for i, alive := range s.Lives {
		if alive {
			s.Lives[i] = false
			break
		}
	}
	return s.LivesLeft()
}

func fullLives(n int) []bool {
	lives := make([]bool, n)
	for i := range lives {
		lives[i] = true
	}
	return lives
}
