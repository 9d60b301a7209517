package tui

import (
	"testing"

	"github.com/vovakirdan/ballbreaker/internal/core"
)

func TestHoldTrackerReleasesAfterHoldTicks(t *testing.T) {
	h := NewHoldTracker(18)
	frame := core.NewInputFrame()

	h.Press(core.ActionLeft, &frame)
	if !frame.Has(core.ActionLeft) {
		t.Fatal("first press should set the action")
	}

	for i := 1; i <= 18; i++ {
		frame.Clear()
		h.Tick(&frame)
		released := frame.WasReleased(core.ActionLeft)
		if i < 18 && released {
			t.Fatalf("released after %d ticks, want 18", i)
		}
		if i == 18 && !released {
			t.Fatal("not released after 18 ticks")
		}
	}
	if h.Held(core.ActionLeft) {
		t.Error("still held after release")
	}
}

func TestHoldTrackerRepeatExtendsHold(t *testing.T) {
	h := NewHoldTracker(3)
	frame := core.NewInputFrame()

	h.Press(core.ActionRight, &frame)
	frame.Clear()
	h.Tick(&frame)
	h.Tick(&frame)

	h.Press(core.ActionRight, &frame)
	if frame.Has(core.ActionRight) {
		t.Error("repeat press should not emit a new press edge")
	}

	h.Tick(&frame)
	h.Tick(&frame)
	if frame.WasReleased(core.ActionRight) {
		t.Error("repeat should have extended the hold")
	}
	h.Tick(&frame)
	if !frame.WasReleased(core.ActionRight) {
		t.Error("hold should expire three ticks after the repeat")
	}
}

func TestHoldTrackerOppositeAndStop(t *testing.T) {
	h := NewHoldTracker(10)
	frame := core.NewInputFrame()

	h.Press(core.ActionLeft, &frame)
	frame.Clear()

	h.Press(core.ActionRight, &frame)
	if !frame.WasReleased(core.ActionLeft) || !frame.Has(core.ActionRight) {
		t.Errorf("opposite press: released left=%v pressed right=%v, want both", frame.WasReleased(core.ActionLeft), frame.Has(core.ActionRight))
	}
	frame.Clear()

	h.ReleaseAll(&frame)
	if !frame.WasReleased(core.ActionRight) {
		t.Error("ReleaseAll should release right")
	}
	if h.Held(core.ActionLeft) || h.Held(core.ActionRight) {
		t.Error("nothing should be held after ReleaseAll")
	}
}

func TestNewHoldTrackerMinimum(t *testing.T) {
	h := NewHoldTracker(0)
	frame := core.NewInputFrame()
	h.Press(core.ActionLeft, &frame)
	frame.Clear()
	h.Tick(&frame)
	if !frame.WasReleased(core.ActionLeft) {
		t.Error("hold of at least one tick should expire after one tick")
	}
}
