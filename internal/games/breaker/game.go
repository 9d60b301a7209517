package breaker

import (
	"github.com/vovakirdan/ballbreaker/internal/config"
	"github.com/vovakirdan/ballbreaker/internal/core"
	"github.com/vovakirdan/ballbreaker/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "ballbreaker"

// Smallest terminal the renderer supports.
const (
	MinScreenW = 40
	MinScreenH = 16
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

func init() {
	registry.Register(ID, func() registry.Game { return New() })
}

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// LoadConfig loads the configuration selected through SetConfigPath and
// applies the preset from SetDifficultyPreset. Only an explicit config path
// can fail; the built-in defaults are returned alongside the error.
func LoadConfig() (config.BreakerConfig, error) {
	cfg, err := config.LoadBreaker(configPath)
	if err != nil {
		cfg = config.DefaultBreakerConfig()
	}
	config.ApplyBreakerPreset(&cfg, difficultyPreset)
	return cfg, err
}

// Game adapts a Simulation to the registry.Game interface used by the
// terminal frontends.
type Game struct {
	sim     *Simulation
	runtime core.RuntimeConfig

	screenTooSmall bool
}

// New creates a new ball breaker game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Ball Breaker"
}

// Reset loads the configuration and starts a fresh simulation.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, _ := LoadConfig() // defaults on error
	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig starts a fresh simulation with an explicit configuration.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.BreakerConfig) {
	g.runtime = runtime
	g.sim = NewSimulation(cfg, runtime.Seed)
	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize updates the screen size without touching the game. The arena is
// resolution independent, so only the too-small check changes.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < MinScreenW || h < MinScreenH
}

// HoldTicks returns how many ticks a terminal key press is held.
func (g *Game) HoldTicks() int {
	return g.sim.Config().Input.HoldTicks
}

// Simulation exposes the underlying simulation.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Step applies the frame's input and advances the simulation one tick.
// Releases are applied before presses so a release and re-press in the
// same frame leaves the direction held. On a too-small screen only the
// releases are applied and the simulation stays frozen.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.WasReleased(core.ActionLeft) {
		g.sim.ApplyInput(DirLeft, false)
	}
	if in.WasReleased(core.ActionRight) {
		g.sim.ApplyInput(DirRight, false)
	}
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionLeft) {
		g.sim.ApplyInput(DirLeft, true)
	}
	if in.Has(core.ActionRight) {
		g.sim.ApplyInput(DirRight, true)
	}
	if in.Has(core.ActionPause) {
		g.sim.ApplyToggle()
	}
	if in.Has(core.ActionRestart) {
		g.sim.ApplyRestart()
	}

	events := g.sim.Tick()
	return core.StepResult{State: g.State(), Events: toCoreEvents(events)}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	flow := g.sim.Flow()
	return core.GameState{
		Score:    g.sim.stats.Score,
		Level:    g.sim.stats.Level,
		Lives:    g.sim.stats.LivesLeft(),
		Started:  flow != FlowNotStarted,
		GameOver: flow == FlowGameOver,
		Paused:   flow == FlowPaused,
	}
}
