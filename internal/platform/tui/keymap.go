package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/ballbreaker/internal/core"
)

// KeyMap defines the key bindings for playing.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Stop       key.Binding
	Toggle     key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Stop, k.Toggle, k.Restart, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Stop},
		{k.Toggle, k.Restart, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Stop: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "stop"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "p"),
			key.WithHelp("space", "start/pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HoldTracker turns the press-only key stream of a terminal into press and
// release edges for held actions. A held action is released after
// holdTicks ticks without a repeat, when its opposite is pressed, or on
// ReleaseAll.
type HoldTracker struct {
	holdTicks int
	remaining map[core.Action]int
}

// NewHoldTracker creates a tracker; holdTicks below 1 is treated as 1.
func NewHoldTracker(holdTicks int) *HoldTracker {
	return &HoldTracker{
		holdTicks: max(holdTicks, 1),
		remaining: make(map[core.Action]int),
	}
}

// SetHoldTicks changes the hold duration for future presses.
func (h *HoldTracker) SetHoldTicks(n int) {
	h.holdTicks = max(n, 1)
}

// Held reports whether the action is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	return h.remaining[a] > 0
}

// Press records a (possibly repeated) key press. Only the first press of a
// hold is written to the frame; repeats just extend it.
func (h *HoldTracker) Press(a core.Action, frame *core.InputFrame) {
	if opp := opposite(a); opp != core.ActionNone && h.Held(opp) {
		delete(h.remaining, opp)
		frame.Release(opp)
	}
	if !h.Held(a) {
		frame.Set(a)
	}
	h.remaining[a] = h.holdTicks
}

// ReleaseAll releases every held action.
func (h *HoldTracker) ReleaseAll(frame *core.InputFrame) {
	for a := range h.remaining {
		frame.Release(a)
	}
	clear(h.remaining)
}

// Tick ages every hold by one tick and writes expired holds as releases
// into frame. Call it after the frame was stepped, so releases land in the
// next frame.
func (h *HoldTracker) Tick(frame *core.InputFrame) {
	for a, n := range h.remaining {
		if n <= 1 {
			delete(h.remaining, a)
			frame.Release(a)
			continue
		}
		h.remaining[a] = n - 1
	}
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	default:
		return core.ActionNone
	}
}
