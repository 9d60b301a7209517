package breaker

import (
	"math"

	"golang.org/x/exp/rand"

	"github.com/vovakirdan/ballbreaker/internal/config"
	"github.com/vovakirdan/ballbreaker/internal/core"
)

// Simulation owns the complete game state. It is driven by an external
// fixed-rate clock through Tick and by input setters; it performs no I/O
// and is not safe for concurrent use.
type Simulation struct {
	cfg        config.BreakerConfig
	difficulty *config.DifficultyManager
	rng        *rand.Rand

	ball   Ball
	paddle Paddle
	blocks []Block
	stats  Stats
	flow   FlowState

	movingLeft  bool
	movingRight bool

	ticks   uint64
	pending []Event
}

// NewSimulation creates a simulation in the NotStarted state. The seed
// drives the horizontal serve velocity.
func NewSimulation(cfg config.BreakerConfig, seed int64) *Simulation {
	s := &Simulation{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		rng:        rand.New(rand.NewSource(uint64(seed))), //#nosec G115 -- seed bits are reused as-is
	}
	s.resetStats()
	s.blocks = GenerateBlocks(cfg.Blocks, s.stats.Level)
	s.resetPaddle()
	s.spawnBall()
	s.flow = FlowNotStarted
	return s
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() config.BreakerConfig {
	return s.cfg
}

// Flow returns the current flow state.
func (s *Simulation) Flow() FlowState {
	return s.flow
}

// ApplyInput records a direction key press or release. Flags are kept in
// every flow state but only move the paddle while running.
func (s *Simulation) ApplyInput(dir Direction, pressed bool) {
	switch dir {
	case DirLeft:
		s.movingLeft = pressed
	case DirRight:
		s.movingRight = pressed
	}
}

// ApplyToggle starts the game, or toggles pause once started.
// It does nothing after game over.
func (s *Simulation) ApplyToggle() {
	switch s.flow {
	case FlowNotStarted, FlowPaused:
		s.flow = FlowRunning
	case FlowRunning:
		s.flow = FlowPaused
	}
}

// ApplyRestart resets the whole game to NotStarted. It only acts in the
// GameOver state.
func (s *Simulation) ApplyRestart() {
	if s.flow != FlowGameOver {
		return
	}
	s.resetStats()
	s.blocks = GenerateBlocks(s.cfg.Blocks, s.stats.Level)
	s.resetBall()
	s.resetPaddle()
	s.movingLeft = false
	s.movingRight = false
	s.flow = FlowNotStarted
}

// Tick advances the simulation by one step and returns what happened.
// Outside the Running state it does nothing and returns nil.
func (s *Simulation) Tick() []Event {
	if s.flow != FlowRunning {
		return nil
	}
	s.ticks++

	s.updatePaddle()
	s.updateBall()
	s.checkPaddleCollision()
	s.checkBlockCollisions()
	s.checkBottomBorder()
	if s.flow == FlowRunning {
		s.checkLevelCompletion()
	}

	events := s.pending
	s.pending = nil
	return events
}

func (s *Simulation) emit(kind EventKind, value int) {
	s.pending = append(s.pending, Event{Kind: kind, Value: value})
}

func (s *Simulation) updatePaddle() {
	p := &s.paddle
	pc := s.cfg.Paddle

	if s.movingLeft {
		p.Velocity -= pc.Acceleration
	}
	if s.movingRight {
		p.Velocity += pc.Acceleration
	}
	p.Velocity = core.ClampF(p.Velocity*pc.Damping, -pc.MaxSpeed, pc.MaxSpeed)

	maxX := float64(s.cfg.Arena.Width - p.Width - pc.RightMargin)
	p.X = int(core.ClampF(float64(p.X)+p.Velocity, 0, maxX))
}

func (s *Simulation) updateBall() {
	b := &s.ball
	b.X += b.VX
	b.Y += b.VY

	if b.X <= 0 || b.X >= float64(s.cfg.Arena.Width-s.cfg.Arena.WallMargin) {
		b.VX = -b.VX
		s.emit(EventWallBounce, 0)
	}
	if b.Y <= float64(s.cfg.Arena.HeaderHeight) {
		b.VY = -b.VY
		s.emit(EventWallBounce, 0)
	}
}

func (s *Simulation) checkPaddleCollision() {
	if !s.ball.Rect().Intersects(s.paddle.Rect()) {
		return
	}
	offset := s.ball.CenterX() - s.paddle.CenterX()
	s.ball.VX = offset / s.cfg.Paddle.SpinDivisor
	s.ball.VY = -math.Abs(s.ball.VY)
	s.emit(EventPaddleHit, int(offset))
}

// checkBlockCollisions flips vy once for every block hit this tick, so an
// even number of simultaneous hits leaves vy unchanged.
func (s *Simulation) checkBlockCollisions() {
	ballRect := s.ball.Rect()
	for i := range s.blocks {
		blk := &s.blocks[i]
		if !blk.Active || !ballRect.Intersects(blk.Rect()) {
			continue
		}
		s.ball.VY = -s.ball.VY
		blk.Active = false
		s.stats.Score += s.cfg.Blocks.Points
		s.emit(EventBlockDestroyed, i)
	}
}

func (s *Simulation) checkBottomBorder() {
	if s.ball.Y < float64(s.cfg.Arena.Height) {
		return
	}
	left := s.stats.loseLife()
	s.emit(EventLifeLost, left)
	if left == 0 {
		s.flow = FlowGameOver
		s.emit(EventGameOver, s.stats.Score)
		return
	}
	s.resetBall()
	s.resetPaddle()
}

func (s *Simulation) checkLevelCompletion() {
	if countActive(s.blocks) > 0 {
		return
	}
	if s.stats.Level >= s.cfg.Gameplay.MaxLevel {
		s.flow = FlowGameOver
		s.emit(EventCampaignComplete, s.stats.Level)
		s.emit(EventGameOver, s.stats.Score)
		return
	}
	s.stats.Level++
	s.blocks = GenerateBlocks(s.cfg.Blocks, s.stats.Level)
	s.resetBall()
	s.resetPaddle()
	s.emit(EventLevelCleared, s.stats.Level)
}

func (s *Simulation) resetStats() {
	s.stats = Stats{
		Score: 0,
		Level: 1,
		Lives: fullLives(s.cfg.Gameplay.Lives),
	}
}

// serveSpeed returns the vertical speed for a new serve.
func (s *Simulation) serveSpeed() float64 {
	return s.difficulty.BallSpeed(s.cfg.Ball.Speed, s.stats.Level, s.stats.Score)
}

// spawnBall places the first ball of a fresh game: centred, falling
// straight down.
func (s *Simulation) spawnBall() {
	a, bc := s.cfg.Arena, s.cfg.Ball
	s.ball = Ball{
		X:    float64((a.Width - bc.Size) / 2),
		Y:    float64((a.Height-bc.Size)/2 - bc.SpawnOffset),
		VX:   0,
		VY:   s.serveSpeed(),
		Size: bc.Size,
	}
}

// resetBall serves a new ball from the centre with a random horizontal
// velocity in [-spread, spread).
func (s *Simulation) resetBall() {
	a, bc := s.cfg.Arena, s.cfg.Ball
	s.ball = Ball{
		X:    float64((a.Width - bc.Size) / 2),
		Y:    float64((a.Height-bc.Size)/2 - bc.RespawnOffset),
		VX:   s.rng.Float64()*2*bc.ServeSpread - bc.ServeSpread,
		VY:   s.serveSpeed(),
		Size: bc.Size,
	}
}

func (s *Simulation) resetPaddle() {
	pc := s.cfg.Paddle
	s.paddle = Paddle{
		X:        (s.cfg.Arena.Width - pc.Width) / 2,
		Y:        pc.Y,
		Width:    pc.Width,
		Height:   pc.Height,
		Velocity: 0,
	}
}
