package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ballbreaker/internal/core"
	"github.com/vovakirdan/ballbreaker/internal/logging"
	"github.com/vovakirdan/ballbreaker/internal/registry"
)

// footerRows is the number of rows reserved for the help line.
const footerRows = 1

// resizer is implemented by games that can follow terminal resizes
// without a reset.
type resizer interface {
	Resize(w, h int)
}

// holdConfigurer is implemented by games that tune key hold emulation.
type holdConfigurer interface {
	HoldTicks() int
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game          registry.Game
	screen        *core.Screen
	config        core.RuntimeConfig
	keys          KeyMap
	help          help.Model
	hold          *HoldTracker
	inputFrame    core.InputFrame
	gameState     core.GameState
	logger        *log.Logger
	screenshotDir string
	quitting      bool
}

// NewModel creates a new Bubble Tea model for the given game. cfg holds the
// full terminal size; the game gets everything above the help line.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:          game,
		screen:        core.NewScreen(cfg.ScreenW, playRows(cfg.ScreenH)),
		config:        cfg,
		keys:          DefaultKeyMap(),
		help:          h,
		hold:          NewHoldTracker(1),
		inputFrame:    core.NewInputFrame(),
		logger:        logger,
		screenshotDir: defaultScreenshotDir(),
	}
}

// WithScreenshotDir returns a copy of the model saving screenshots to dir.
func (m Model) WithScreenshotDir(dir string) Model {
	m.screenshotDir = dir
	return m
}

func playRows(termRows int) int {
	return max(termRows-footerRows, 0)
}

// gameConfig is the runtime config as seen by the game.
func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = playRows(cfg.ScreenH)
	return cfg
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.gameConfig())
	if hc, ok := m.game.(holdConfigurer); ok {
		m.hold.SetHoldTicks(hc.HoldTicks())
	}
	m.logger.Info("game ready", "game", m.game.ID(), "seed", m.config.Seed,
		"size", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score, "level", m.gameState.Level)
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	case key.Matches(msg, m.keys.Left):
		m.hold.Press(core.ActionLeft, &m.inputFrame)
	case key.Matches(msg, m.keys.Right):
		m.hold.Press(core.ActionRight, &m.inputFrame)
	case key.Matches(msg, m.keys.Stop):
		m.hold.ReleaseAll(&m.inputFrame)
	case key.Matches(msg, m.keys.Toggle):
		m.inputFrame.Set(core.ActionPause)
	case key.Matches(msg, m.keys.Restart):
		m.inputFrame.Set(core.ActionRestart)
	}

	return m, nil
}

// handleResize follows the terminal size. The game keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(msg.Width, playRows(msg.Height))
	}
	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)

	for _, e := range result.Events {
		m.logger.Debug("event", "kind", e.Kind, "value", e.Value)
	}
	m.logFlowChange(m.gameState, result.State)
	m.gameState = result.State

	// Expired holds become releases in the next frame.
	m.inputFrame.Clear()
	m.hold.Tick(&m.inputFrame)

	return m, tickCmd(m.config.TickRate)
}

// logFlowChange logs transitions between flow states at info level.
func (m Model) logFlowChange(prev, next core.GameState) {
	switch {
	case prev.GameOver && !next.GameOver:
		m.logger.Info("game restarted")
	case !prev.GameOver && next.GameOver:
		m.logger.Info("game over", "score", next.Score, "level", next.Level, "lives", next.Lives)
	case !prev.Started && next.Started:
		m.logger.Info("game started")
	case !prev.Paused && next.Paused:
		m.logger.Info("game paused")
	case prev.Paused && !next.Paused:
		m.logger.Info("game resumed")
	}
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "ballbreaker-screenshots")
	}
	return filepath.Join(home, ".ballbreaker", "screenshots")
}

// saveScreenshot writes the current frame as plain text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.screenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(m.screenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
