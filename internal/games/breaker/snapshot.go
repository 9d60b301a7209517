package breaker

import (
	"math"
	"slices"
)

// Snapshot is a read-only copy of the simulation state for rendering and
// determinism checks.
type Snapshot struct {
	Tick uint64

	Ball   Ball
	Paddle Paddle
	Blocks []Block

	Score        int
	Level        int
	Lives        []bool
	LivesLeft    int
	ActiveBlocks int
	Flow         FlowState

	ArenaW  int
	ArenaH  int
	HeaderH int
}

// Snapshot returns a copy of the current state. It mutates nothing.
func (s *Simulation) Snapshot() Snapshot {
	return Snapshot{
		Tick:         s.ticks,
		Ball:         s.ball,
		Paddle:       s.paddle,
		Blocks:       slices.Clone(s.blocks),
		Score:        s.stats.Score,
		Level:        s.stats.Level,
		Lives:        slices.Clone(s.stats.Lives),
		LivesLeft:    s.stats.LivesLeft(),
		ActiveBlocks: countActive(s.blocks),
		Flow:         s.flow,
		ArenaW:       s.cfg.Arena.Width,
		ArenaH:       s.cfg.Arena.Height,
		HeaderH:      s.cfg.Arena.HeaderHeight,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v uint64) { h = h*31 + v }

	mix(math.Float64bits(snap.Ball.X))
	mix(math.Float64bits(snap.Ball.Y))
	mix(math.Float64bits(snap.Ball.VX))
	mix(math.Float64bits(snap.Ball.VY))
	mix(uint64(snap.Paddle.X))
	mix(math.Float64bits(snap.Paddle.Velocity))
	mix(uint64(snap.Score))
	mix(uint64(snap.Level))
	mix(uint64(snap.Flow))

	for _, alive := range snap.Lives {
		if alive {
			mix(1)
		} else {
			mix(0)
		}
	}
	for _, b := range snap.Blocks {
		if b.Active {
			mix(1)
		} else {
			mix(2)
		}
	}
	return h
}
